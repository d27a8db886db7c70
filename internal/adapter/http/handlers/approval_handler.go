package handlers

import (
	"net/http"

	request "takaful_quote/internal/adapter/http/dto/request"
	response "takaful_quote/internal/adapter/http/dto/response"
	"takaful_quote/internal/usecase"
	"takaful_quote/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler receives asynchronous exception decisions from the
// approval service.
type ApprovalHandler struct {
	eligibility usecase.IEligibilityUseCase
}

func NewApprovalHandler(eligibility usecase.IEligibilityUseCase) *ApprovalHandler {
	return &ApprovalHandler{eligibility: eligibility}
}

// ReceiveDecision godoc
// @Summary      Record an exception decision
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        request  body  request.ApprovalDecisionRequest  true  "Decision"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /approvals/decisions [post]
func (h *ApprovalHandler) ReceiveDecision(c *gin.Context) {
	var payload request.ApprovalDecisionRequest
	if !bindJSON(c, &payload) {
		return
	}
	log := logger.For("approval", "handler").With().
		Str("ticket_id", payload.TicketID).
		Str("quote_id", payload.QuoteID).
		Logger()

	q, err := h.eligibility.ResolveException(c.Request.Context(), payload.ToDecision())
	if err != nil {
		log.Warn().Err(err).Msg("decision rejected")
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().Str("status", string(q.Status)).Msg("decision recorded")
	c.JSON(http.StatusOK, response.FromQuote(q))
}
