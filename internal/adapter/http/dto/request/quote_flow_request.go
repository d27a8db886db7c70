package request

import (
	"strings"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase"
)

// StartFlowRequest opens a flow session. Leave both identifiers empty to
// start a new quote.
type StartFlowRequest struct {
	QuoteID        string `json:"quote_id"`
	QuoteReference string `json:"quote_reference"`
	InsuranceType  string `json:"insurance_type"`
}

func (r StartFlowRequest) ToInput() usecase.StartInput {
	return usecase.StartInput{
		QuoteID:        strings.TrimSpace(r.QuoteID),
		QuoteReference: strings.TrimSpace(r.QuoteReference),
		InsuranceType:  entities.ParseInsuranceType(r.InsuranceType),
	}
}

type IdentifyCustomerRequest struct {
	CPR           string `json:"cpr" binding:"required"`
	InsuranceType string `json:"insurance_type"`
}

func (r IdentifyCustomerRequest) ToInput() usecase.IdentifyInput {
	var t entities.InsuranceType
	if strings.TrimSpace(r.InsuranceType) != "" {
		t = entities.ParseInsuranceType(r.InsuranceType)
	}
	return usecase.IdentifyInput{CPR: strings.TrimSpace(r.CPR), InsuranceType: t}
}

// SubscriberRequest carries the contact data of a NEW customer. Field rules
// are enforced by the flow so errors come back per field.
type SubscriberRequest struct {
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
}

func (r SubscriberRequest) ToInput() usecase.ContactInput {
	return usecase.ContactInput{FullName: r.FullName, Mobile: r.Mobile, Email: r.Email}
}

type DraftChoiceRequest struct {
	Choice string `json:"choice" binding:"required,oneof=continue new"`
}

type VehicleLookupRequest struct {
	PlateNumber string `json:"plate_number" binding:"required"`
}

type SelectPlanRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

type PaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type DiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// SendLinkRequest: an empty contact number falls back to the customer mobile,
// an empty mode to SMS.
type SendLinkRequest struct {
	ContactNumber string `json:"contact_number"`
	Mode          string `json:"mode"`
}

func (r SendLinkRequest) ToInput() usecase.SendLinkInput {
	return usecase.SendLinkInput{
		ContactNumber: strings.TrimSpace(r.ContactNumber),
		Mode:          entities.LinkMode(strings.ToUpper(strings.TrimSpace(r.Mode))),
	}
}
