package request

import (
	"strings"

	"takaful_quote/internal/usecase/interfaces"
)

// ApprovalDecisionRequest is posted by the approval service when a pending
// exception is adjudicated.
type ApprovalDecisionRequest struct {
	TicketID string `json:"ticket_id" binding:"required"`
	QuoteID  string `json:"quote_id" binding:"required"`
	Granted  *bool  `json:"granted" binding:"required"`
	Reason   string `json:"reason"`
}

func (r ApprovalDecisionRequest) ToDecision() interfaces.ApprovalDecision {
	granted := r.Granted != nil && *r.Granted
	return interfaces.ApprovalDecision{
		TicketID: strings.TrimSpace(r.TicketID),
		QuoteID:  strings.TrimSpace(r.QuoteID),
		Granted:  granted,
		Reason:   strings.TrimSpace(r.Reason),
	}
}
