package interfaces

import (
	"context"

	"takaful_quote/internal/domain/entities"
)

// Collaborator contracts. Transport is irrelevant to the flow; every
// implementation lives under infrastructure/collaborators.

type MotorData struct {
	Make              string `json:"make"`
	Model             string `json:"model"`
	Year              int    `json:"year"`
	ChassisNumber     string `json:"chassisNumber"`
	BodyType          string `json:"bodyType"`
	EngineSize        string `json:"engineSize"`
	RegistrationMonth string `json:"registrationMonth"`
}

type MotorLookupResult struct {
	Success bool      `json:"success"`
	Data    MotorData `json:"data"`
	Error   string    `json:"error,omitempty"`
}

type RegistryData struct {
	PolicyStartDate string  `json:"policyStartDate"`
	PolicyEndDate   string  `json:"policyEndDate"`
	VehicleValue    float64 `json:"vehicleValue"`
}

type RegistryLookupResult struct {
	Success bool         `json:"success"`
	Data    RegistryData `json:"data"`
	Error   string       `json:"error,omitempty"`
}

type ContactInfo struct {
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email,omitempty"`
}

// EligibilityCheckResult mirrors the eligibility service response. A Message
// carrying the draft-exists signal must trigger the draft-resume prompt.
type EligibilityCheckResult struct {
	Success             bool     `json:"success"`
	IsEligible          bool     `json:"isEligible"`
	Plan                string   `json:"plan"`
	Message             string   `json:"message,omitempty"`
	InstallmentEligible *bool    `json:"installmentEligible,omitempty"`
	CreditScore         int      `json:"creditScore,omitempty"`
	ActiveLines         []string `json:"activeLines,omitempty"`
}

// RiskInputs are the only inputs plan generation depends on.
type RiskInputs struct {
	InsuranceType entities.InsuranceType   `json:"insuranceType"`
	Vehicle       *entities.Vehicle        `json:"vehicle,omitempty"`
	Travel        *entities.TravelCriteria `json:"travel,omitempty"`
}

type DiscountValidationResult struct {
	IsValid         bool    `json:"isValid"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
	OwnerLabel      string  `json:"ownerLabel,omitempty"`
	Error           string  `json:"error,omitempty"`
}

type LinkDispatchRequest struct {
	QuoteID        string            `json:"quoteId"`
	QuoteReference string            `json:"quoteReference"`
	ContactNumber  string            `json:"contactNumber"`
	Mode           entities.LinkMode `json:"mode"`
	PaymentURL     string            `json:"paymentUrl"`
	Amount         float64           `json:"amount"`
}

type ApprovalRequest struct {
	QuoteID        string `json:"quoteId"`
	QuoteReference string `json:"quoteReference"`
	CustomerCPR    string `json:"customerCpr"`
	PlanID         string `json:"planId"`
	PlanProvider   string `json:"planProvider"`
	PlanName       string `json:"planName"`
	AgentID        string `json:"agentId"`
}

// ApprovalDecision is the later event resolving a pending-request ticket.
type ApprovalDecision struct {
	TicketID string `json:"ticketId"`
	QuoteID  string `json:"quoteId"`
	Granted  bool   `json:"granted"`
	Reason   string `json:"reason,omitempty"`
}

type ICustomerLookup interface {
	FindByCPR(ctx context.Context, cpr string) (entities.Customer, bool, error)
}

type IVehicleLookup interface {
	LookupMotor(ctx context.Context, plateNumber string) (MotorLookupResult, error)
}

type IRegistryLookup interface {
	LookupPolicy(ctx context.Context, plateNumber, chassisNumber string) (RegistryLookupResult, error)
}

type IEligibilityChecker interface {
	Check(ctx context.Context, subscriberID string, contact ContactInfo) (EligibilityCheckResult, error)
}

type IPlanGenerator interface {
	Generate(ctx context.Context, in RiskInputs) ([]entities.InsurancePlan, error)
}

type IDiscountAuthority interface {
	Validate(ctx context.Context, code string) (DiscountValidationResult, error)
}

type ILinkDispatcher interface {
	Dispatch(ctx context.Context, req LinkDispatchRequest) error
}

// IApprovalService submits an exception for adjudication and returns a ticket.
// The outcome arrives later as an ApprovalDecision.
type IApprovalService interface {
	Submit(ctx context.Context, req ApprovalRequest) (ticketID string, err error)
}
