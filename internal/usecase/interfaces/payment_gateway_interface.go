package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentLinkRequest describes the checkout link sent to the customer.
type PaymentLinkRequest struct {
	QuoteID        string
	QuoteReference string
	Title          string
	Amount         float64
	PayerEmail     string
}

type PaymentLink struct {
	ID  string
	URL string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreatePaymentLink backs the send-link step; CreatePayment captures the
// upfront payment before issuance and returns the raw provider response
// for traceability.
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLink, error)
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
