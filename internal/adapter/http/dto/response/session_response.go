package response

import (
	"takaful_quote/internal/domain/pricing"
	"takaful_quote/internal/usecase"
)

var stepNames = map[usecase.Step]string{
	usecase.StepCustomer: "customer",
	usecase.StepDetails:  "details",
	usecase.StepQuote:    "quote",
}

// SessionResponse is the state an agent screen renders after every action.
type SessionResponse struct {
	SessionID      string                `json:"session_id"`
	Step           int                   `json:"step"`
	StepName       string                `json:"step_name"`
	ReadOnly       bool                  `json:"read_only"`
	SubViews       usecase.SubViews      `json:"sub_views"`
	Quote          QuoteResponse         `json:"quote"`
	Input          usecase.InputBuffer   `json:"input"`
	Derived        usecase.DerivedValues `json:"derived"`
	Plans          []pricing.PricedPlan  `json:"plans"`
	SelectedPlan   *pricing.PricedPlan   `json:"selected_plan,omitempty"`
	Eligibility    usecase.Eligibility   `json:"eligibility"`
	PendingDraft   *usecase.DraftSummary `json:"pending_draft,omitempty"`
	PaymentLinkURL string                `json:"payment_link_url,omitempty"`
	FieldErrors    map[string]string     `json:"field_errors,omitempty"`
	Notices        []string              `json:"notices,omitempty"`
	PendingSync    bool                  `json:"pending_sync"`
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	plans := v.Plans
	if plans == nil {
		plans = []pricing.PricedPlan{}
	}
	return SessionResponse{
		SessionID:      v.SessionID,
		Step:           int(v.Step),
		StepName:       stepNames[v.Step],
		ReadOnly:       v.ReadOnly,
		SubViews:       v.SubViews,
		Quote:          FromQuote(v.Quote),
		Input:          v.Input,
		Derived:        v.Derived,
		Plans:          plans,
		SelectedPlan:   v.SelectedPlan,
		Eligibility:    v.Eligibility,
		PendingDraft:   v.PendingDraft,
		PaymentLinkURL: v.PaymentLinkURL,
		FieldErrors:    v.FieldErrors,
		Notices:        v.Notices,
		PendingSync:    v.PendingSync,
	}
}
