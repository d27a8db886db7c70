package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotePayment is the upfront payment captured for a quote before issuance.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for querying/debugging.
type QuotePayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
