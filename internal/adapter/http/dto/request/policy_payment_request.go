package request

import "encoding/json"

// PolicyPaymentRequest is the payload of the capture-and-issue route.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying provider
// schemas. The amount is always taken from the quote.
type PolicyPaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
