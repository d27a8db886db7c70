package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "takaful_quote/internal/adapter/http/dto/response"
	"takaful_quote/internal/usecase"
	"takaful_quote/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PolicyPaymentHandler handles the upfront payment that issues a quote.
type PolicyPaymentHandler struct {
	usecase  usecase.IPolicyPaymentUseCase
	mockMode bool
}

// NewPolicyPaymentHandler builds the handler. In mock mode an unreadable
// body falls back to an empty provider payload.
func NewPolicyPaymentHandler(uc usecase.IPolicyPaymentUseCase, mockMode bool) *PolicyPaymentHandler {
	return &PolicyPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CapturePayment godoc
// @Summary      Capture the upfront payment and issue the policy
// @Description  Accepts the provider payload directly or wrapped as {"provider_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true   "Quote id"
// @Param        request  body  request.PolicyPaymentRequest  false  "Provider payload"
// @Success      200  {object}  response.QuotePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      402  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/payments [post]
func (h *PolicyPaymentHandler) CapturePayment(c *gin.Context) {
	quoteID := c.Param("id")
	log := logger.For("payment", "handler").With().Str("quote_id", quoteID).Logger()
	log.Info().Msg("capture start")

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn().Err(err).Msg("invalid payload")
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		log.Warn().Err(err).Msg("payload invalid in mock mode; fallback to empty payload")
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CaptureAndIssue(c.Request.Context(), quoteID, payload)
	if err != nil {
		log.Error().Err(err).Msg("capture failed")
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("capture success")

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// ListPayments godoc
// @Summary      List payments of a quote
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "Quote id"
// @Success      200  {array}   response.QuotePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes/{id}/payments [get]
func (h *PolicyPaymentHandler) ListPayments(c *gin.Context) {
	quoteID := c.Param("id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		logger.For("payment", "handler").Error().Err(err).Str("quote_id", quoteID).Msg("list failed")
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment by id
// @Tags         payments
// @Produce      json
// @Param        payment_id  path  string  true  "Payment id"
// @Success      200  {object}  response.QuotePaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *PolicyPaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	payment, err := h.usecase.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		appErr := mapError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.For("payment", "handler").Error().Err(err).Str("payment_id", paymentID).Msg("get failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(payment))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
