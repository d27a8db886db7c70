package handlers

import (
	"context"
	"net/http"
	"strings"

	request "takaful_quote/internal/adapter/http/dto/request"
	response "takaful_quote/internal/adapter/http/dto/response"
	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase"
	"takaful_quote/pkg"
	"takaful_quote/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAgentID   = "X-Agent-ID"
	HeaderAgentName = "X-Agent-Name"
)

// QuoteFlowHandler exposes the step controller. Every action answers with
// the session view; failed actions carry it in the error details so the
// screen can still render field errors and the locally merged quote.
type QuoteFlowHandler struct {
	usecase      usecase.IQuoteFlowUseCase
	defaultActor usecase.Actor
}

func NewQuoteFlowHandler(uc usecase.IQuoteFlowUseCase, defaultActor usecase.Actor) *QuoteFlowHandler {
	return &QuoteFlowHandler{usecase: uc, defaultActor: defaultActor}
}

func (h *QuoteFlowHandler) actor(c *gin.Context) usecase.Actor {
	a := h.defaultActor
	if v := strings.TrimSpace(c.GetHeader(HeaderAgentID)); v != "" {
		a.AgentID = v
		a.AgentName = ""
	}
	if v := strings.TrimSpace(c.GetHeader(HeaderAgentName)); v != "" {
		a.AgentName = v
	}
	return a
}

// StartFlow godoc
// @Summary      Start a quote flow session
// @Description  Opens a new quote, or resumes one by id or reference at the step its state implies.
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        X-Agent-ID    header  string                    false  "Agent id"
// @Param        X-Agent-Name  header  string                    false  "Agent name"
// @Param        request       body    request.StartFlowRequest  false  "Start options"
// @Success      201  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flows [post]
func (h *QuoteFlowHandler) StartFlow(c *gin.Context) {
	var payload request.StartFlowRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	view, err := h.usecase.Start(c.Request.Context(), payload.ToInput(), h.actor(c))
	if err != nil {
		h.fail(c, "start", view, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

// GetFlow godoc
// @Summary      Get a flow session
// @Tags         flows
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flows/{session_id} [get]
func (h *QuoteFlowHandler) GetFlow(c *gin.Context) {
	h.respond(c, "view", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.View(ctx, id)
	})
}

// AbandonFlow godoc
// @Summary      Abandon a flow session
// @Description  Cancels in-flight lookups. The persisted quote is kept.
// @Tags         flows
// @Param        session_id  path  string  true  "Session id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /flows/{session_id} [delete]
func (h *QuoteFlowHandler) AbandonFlow(c *gin.Context) {
	if err := h.usecase.Abandon(c.Request.Context(), c.Param("session_id")); err != nil {
		h.fail(c, "abandon", usecase.SessionView{}, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IdentifyCustomer godoc
// @Summary      Identify the customer by CPR
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                           true  "Session id"
// @Param        request     body  request.IdentifyCustomerRequest  true  "Customer identifier"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/customer [post]
func (h *QuoteFlowHandler) IdentifyCustomer(c *gin.Context) {
	var payload request.IdentifyCustomerRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "identify", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.IdentifyCustomer(ctx, id, payload.ToInput())
	})
}

// SubmitSubscriber godoc
// @Summary      Submit a new customer's contact data
// @Description  Runs the eligibility check. An in-flight draft opens the resume prompt.
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                     true  "Session id"
// @Param        request     body  request.SubscriberRequest  true  "Contact data"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/subscriber [post]
func (h *QuoteFlowHandler) SubmitSubscriber(c *gin.Context) {
	var payload request.SubscriberRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "subscriber", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.SubmitSubscriber(ctx, id, payload.ToInput())
	})
}

// ResolveDraftPrompt godoc
// @Summary      Answer the draft-resume prompt
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "Session id"
// @Param        request     body  request.DraftChoiceRequest  true  "continue or new"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/draft-prompt [post]
func (h *QuoteFlowHandler) ResolveDraftPrompt(c *gin.Context) {
	var payload request.DraftChoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "draft-prompt", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.ResolveDraftPrompt(ctx, id, usecase.DraftChoice(payload.Choice))
	})
}

// UpdateInput godoc
// @Summary      Update the form buffer
// @Description  Partial JSON merged over the buffer ({"contact":{...},"motor":{...},"travel":{...}}). Nothing is persisted.
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Router       /flows/{session_id}/input [patch]
func (h *QuoteFlowHandler) UpdateInput(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respond(c, "input", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.UpdateInput(ctx, id, raw)
	})
}

// Commit godoc
// @Summary      Persist the current step's input without moving
// @Tags         flows
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/commit [post]
func (h *QuoteFlowHandler) Commit(c *gin.Context) {
	h.respond(c, "commit", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.Commit(ctx, id)
	})
}

// LookupVehicle godoc
// @Summary      Prefill vehicle details by plate number
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                        true  "Session id"
// @Param        request     body  request.VehicleLookupRequest  true  "Plate number"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/vehicle-lookup [post]
func (h *QuoteFlowHandler) LookupVehicle(c *gin.Context) {
	var payload request.VehicleLookupRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "vehicle-lookup", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.LookupVehicle(ctx, id, payload.PlateNumber)
	})
}

// Next godoc
// @Summary      Advance to the next step
// @Tags         flows
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/next [post]
func (h *QuoteFlowHandler) Next(c *gin.Context) {
	h.respond(c, "next", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.Next(ctx, id)
	})
}

// Back godoc
// @Summary      Go back one step
// @Tags         flows
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Router       /flows/{session_id}/back [post]
func (h *QuoteFlowHandler) Back(c *gin.Context) {
	h.respond(c, "back", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.Back(ctx, id)
	})
}

// SelectPlan godoc
// @Summary      Select a plan
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                     true  "Session id"
// @Param        request     body  request.SelectPlanRequest  true  "Plan id"
// @Success      200  {object}  response.SessionResponse
// @Router       /flows/{session_id}/plan [put]
func (h *QuoteFlowHandler) SelectPlan(c *gin.Context) {
	var payload request.SelectPlanRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "plan", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.SelectPlan(ctx, id, payload.PlanID)
	})
}

// SetPaymentMethod godoc
// @Summary      Choose FULL or INSTALLMENT
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                        true  "Session id"
// @Param        request     body  request.PaymentMethodRequest  true  "Payment method"
// @Success      200  {object}  response.SessionResponse
// @Router       /flows/{session_id}/payment-method [put]
func (h *QuoteFlowHandler) SetPaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "payment-method", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.SetPaymentMethod(ctx, id, entities.PaymentMethod(payload.PaymentMethod))
	})
}

// ApplyDiscount godoc
// @Summary      Apply a discount code
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Session id"
// @Param        request     body  request.DiscountRequest  true  "Discount code"
// @Success      200  {object}  response.SessionResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/discount [put]
func (h *QuoteFlowHandler) ApplyDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "discount", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.ApplyDiscount(ctx, id, payload.Code)
	})
}

// RemoveDiscount godoc
// @Summary      Remove the applied discount
// @Tags         flows
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Router       /flows/{session_id}/discount [delete]
func (h *QuoteFlowHandler) RemoveDiscount(c *gin.Context) {
	h.respond(c, "discount-remove", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.RemoveDiscount(ctx, id)
	})
}

// RequestException godoc
// @Summary      Request an installment exception for the selected plan
// @Tags         flows
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/exception [post]
func (h *QuoteFlowHandler) RequestException(c *gin.Context) {
	h.respond(c, "exception", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.RequestException(ctx, id)
	})
}

// SendLink godoc
// @Summary      Send the payment link
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true   "Session id"
// @Param        request     body  request.SendLinkRequest  false  "Contact number and mode"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /flows/{session_id}/send-link [post]
func (h *QuoteFlowHandler) SendLink(c *gin.Context) {
	var payload request.SendLinkRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &payload) {
		return
	}
	h.respond(c, "send-link", func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.SendLink(ctx, id, payload.ToInput())
	})
}

func (h *QuoteFlowHandler) respond(c *gin.Context, action string, call func(ctx context.Context, sessionID string) (usecase.SessionView, error)) {
	view, err := call(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, action, view, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

func (h *QuoteFlowHandler) fail(c *gin.Context, action string, view usecase.SessionView, err error) {
	appErr := mapError(err)
	if view.SessionID != "" {
		details := map[string]any{"session": response.FromSessionView(view)}
		if m, ok := appErr.Details.(map[string]any); ok {
			for k, v := range m {
				details[k] = v
			}
		}
		appErr = appErr.WithDetails(details)
	}
	log := logger.For("flow", "handler")
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("action", action).Str("session_id", c.Param("session_id")).Msg("flow action failed")
	} else {
		log.Debug().Err(err).Str("action", action).Str("session_id", c.Param("session_id")).Msg("flow action rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).
			WithDetails(map[string]any{"reason": err.Error()})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	return true
}
