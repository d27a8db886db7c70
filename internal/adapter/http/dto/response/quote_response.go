package response

import (
	"time"

	"takaful_quote/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string `json:"id"`
	QuoteReference string `json:"quote_reference"`
	Status         string `json:"status"`
	InsuranceType  string `json:"insurance_type"`
	ReadOnly       bool   `json:"read_only"`

	Customer       entities.Customer        `json:"customer"`
	Vehicle        *entities.Vehicle        `json:"vehicle,omitempty"`
	TravelCriteria *entities.TravelCriteria `json:"travel_criteria,omitempty"`

	SelectedPlanID       string                     `json:"selected_plan_id,omitempty"`
	PaymentMethod        string                     `json:"payment_method,omitempty"`
	DiscountCode         string                     `json:"discount_code,omitempty"`
	DiscountPercent      float64                    `json:"discount_percent,omitempty"`
	ContactNumberForLink string                     `json:"contact_number_for_link,omitempty"`
	LinkMode             string                     `json:"link_mode,omitempty"`
	Exception            *entities.ExceptionRequest `json:"exception,omitempty"`

	AgentID   string    `json:"agent_id"`
	AgentName string    `json:"agent_name"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	q = q.Clone()
	return QuoteResponse{
		ID:                   q.ID,
		QuoteReference:       q.QuoteReference,
		Status:               string(q.Status),
		InsuranceType:        string(q.InsuranceType),
		ReadOnly:             q.ReadOnly(),
		Customer:             q.Customer,
		Vehicle:              q.Vehicle,
		TravelCriteria:       q.TravelCriteria,
		SelectedPlanID:       q.SelectedPlanID,
		PaymentMethod:        string(q.PaymentMethod),
		DiscountCode:         q.DiscountCode(),
		DiscountPercent:      q.DiscountPercent(),
		ContactNumberForLink: q.ContactNumberForLink,
		LinkMode:             string(q.LinkMode),
		Exception:            q.Exception,
		AgentID:              q.AgentID,
		AgentName:            q.AgentName,
		Source:               q.Source,
		CreatedAt:            q.CreatedAt,
	}
}
