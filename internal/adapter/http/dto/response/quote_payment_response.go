package response

import (
	"time"

	"takaful_quote/internal/domain/entities"
)

type QuotePaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromQuotePayments(ps []entities.QuotePayment) []QuotePaymentResponse {
	out := make([]QuotePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromQuotePayment(p))
	}
	return out
}
