package entities

import (
	"strings"
	"time"
)

// QuoteStatus represents the lifecycle of a quote request.
//
// Main path:   DRAFT -> LINK_SENT -> PAYMENT_PENDING -> ISSUED
// Side branch: DRAFT -> PENDING_APPROVAL -> APPROVAL_GRANTED | APPROVAL_REJECTED
//
// ISSUED is terminal and locks the aggregate (read-only).
type QuoteStatus string

const (
	QuoteStatusDraft            QuoteStatus = "DRAFT"
	QuoteStatusLinkSent         QuoteStatus = "LINK_SENT"
	QuoteStatusPaymentPending   QuoteStatus = "PAYMENT_PENDING"
	QuoteStatusIssued           QuoteStatus = "ISSUED"
	QuoteStatusPendingApproval  QuoteStatus = "PENDING_APPROVAL"
	QuoteStatusApprovalGranted  QuoteStatus = "APPROVAL_GRANTED"
	QuoteStatusApprovalRejected QuoteStatus = "APPROVAL_REJECTED"
)

var quoteStatusTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:            {QuoteStatusLinkSent, QuoteStatusPendingApproval},
	QuoteStatusPendingApproval:  {QuoteStatusApprovalGranted, QuoteStatusApprovalRejected, QuoteStatusLinkSent},
	QuoteStatusApprovalGranted:  {QuoteStatusLinkSent},
	QuoteStatusApprovalRejected: {QuoteStatusLinkSent, QuoteStatusPendingApproval},
	QuoteStatusLinkSent:         {QuoteStatusLinkSent, QuoteStatusPaymentPending},
	QuoteStatusPaymentPending:   {QuoteStatusIssued},
}

// CanTransitionTo checks if a status transition is allowed.
// An empty status is treated as DRAFT.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	if s == "" {
		s = QuoteStatusDraft
	}
	for _, allowed := range quoteStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusIssued
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusLinkSent, QuoteStatusPaymentPending, QuoteStatusIssued,
		QuoteStatusPendingApproval, QuoteStatusApprovalGranted, QuoteStatusApprovalRejected:
		return true
	}
	return false
}

type InsuranceType string

const (
	InsuranceTypeMotor  InsuranceType = "MOTOR"
	InsuranceTypeTravel InsuranceType = "TRAVEL"
	// Listed by the portal but not quotable yet.
	InsuranceTypeHome    InsuranceType = "HOME"
	InsuranceTypeMedical InsuranceType = "MEDICAL"
)

// Enabled reports whether the flow can quote this product line.
func (t InsuranceType) Enabled() bool {
	return t == InsuranceTypeMotor || t == InsuranceTypeTravel
}

func ParseInsuranceType(v string) InsuranceType {
	return InsuranceType(strings.ToUpper(strings.TrimSpace(v)))
}

type PaymentMethod string

const (
	PaymentMethodFull        PaymentMethod = "FULL"
	PaymentMethodInstallment PaymentMethod = "INSTALLMENT"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodFull || m == PaymentMethodInstallment
}

// LinkMode is the channel used to deliver the payment link.
type LinkMode string

const (
	LinkModeSMS      LinkMode = "SMS"
	LinkModeWhatsApp LinkMode = "WHATSAPP"
)

func (m LinkMode) Valid() bool {
	return m == LinkModeSMS || m == LinkModeWhatsApp
}

const SourceAgentPortal = "AGENT_PORTAL"

// DateLayout is the calendar date format used by every date field of the aggregate.
const DateLayout = "2006-01-02"

// AppliedDiscount keeps code and percent together so a code can never be
// stored without its percent (or the reverse).
type AppliedDiscount struct {
	Code       string  `json:"code"`
	Percent    float64 `json:"percent"`
	OwnerLabel string  `json:"owner_label,omitempty"`
}

// ExceptionRequest tracks a manual installment approval.
type ExceptionRequest struct {
	TicketID     string     `json:"ticket_id"`
	PlanID       string     `json:"plan_id"`
	PlanProvider string     `json:"plan_provider"`
	PlanName     string     `json:"plan_name"`
	RequestedAt  time.Time  `json:"requested_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	Reason       string     `json:"reason,omitempty"`
}

// QuoteRequest is the aggregate owned by an agent flow session.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (quote_reference-index): quote_reference
//   - GSI (customer_cpr-index): customer_cpr
//
// Exactly one of Vehicle / TravelCriteria may be populated, matching InsuranceType.
type QuoteRequest struct {
	ID             string        `json:"id"`
	QuoteReference string        `json:"quote_reference"`
	Status         QuoteStatus   `json:"status"`
	InsuranceType  InsuranceType `json:"insurance_type"`

	Customer       Customer        `json:"customer"`
	Vehicle        *Vehicle        `json:"vehicle,omitempty"`
	TravelCriteria *TravelCriteria `json:"travel_criteria,omitempty"`

	SelectedPlanID       string            `json:"selected_plan_id,omitempty"`
	PaymentMethod        PaymentMethod     `json:"payment_method,omitempty"`
	Discount             *AppliedDiscount  `json:"discount,omitempty"`
	ContactNumberForLink string            `json:"contact_number_for_link,omitempty"`
	LinkMode             LinkMode          `json:"link_mode,omitempty"`
	Exception            *ExceptionRequest `json:"exception,omitempty"`

	AgentID   string    `json:"agent_id"`
	AgentName string    `json:"agent_name"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

func (q QuoteRequest) DiscountCode() string {
	if q.Discount == nil {
		return ""
	}
	return q.Discount.Code
}

func (q QuoteRequest) DiscountPercent() float64 {
	if q.Discount == nil {
		return 0
	}
	return q.Discount.Percent
}

// ReadOnly reports whether the aggregate is locked against further mutation.
func (q QuoteRequest) ReadOnly() bool {
	return q.Status.IsTerminal()
}

// HasVehicleIdentity reports whether step 2 was already reached with a vehicle.
func (q QuoteRequest) HasVehicleIdentity() bool {
	return q.Vehicle != nil && strings.TrimSpace(q.Vehicle.PlateNumber) != ""
}

// HasRiskDetails reports whether a vehicle or travel block was ever stored.
// A quote without one is only a customer stub.
func (q QuoteRequest) HasRiskDetails() bool {
	return q.Vehicle != nil || q.TravelCriteria != nil
}

// Clone returns a deep copy so callers can hand the aggregate out safely.
func (q QuoteRequest) Clone() QuoteRequest {
	out := q
	out.Customer.ActiveLines = append([]string(nil), q.Customer.ActiveLines...)
	if q.Vehicle != nil {
		v := *q.Vehicle
		out.Vehicle = &v
	}
	if q.TravelCriteria != nil {
		tc := *q.TravelCriteria
		out.TravelCriteria = &tc
	}
	if q.Discount != nil {
		d := *q.Discount
		out.Discount = &d
	}
	if q.Exception != nil {
		e := *q.Exception
		if q.Exception.DecidedAt != nil {
			at := *q.Exception.DecidedAt
			e.DecidedAt = &at
		}
		out.Exception = &e
	}
	return out
}
