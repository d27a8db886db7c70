package entities

import "strings"

type CustomerType string

const (
	CustomerTypeNew      CustomerType = "NEW"
	CustomerTypeExisting CustomerType = "EXISTING"
)

// Customer is created as soon as an identifier is entered and is mutated
// field by field while the agent supplies data.
type Customer struct {
	CPR                       string       `json:"cpr"`
	FullName                  string       `json:"full_name,omitempty"`
	Mobile                    string       `json:"mobile,omitempty"`
	Email                     string       `json:"email,omitempty"`
	Type                      CustomerType `json:"type,omitempty"`
	ZainPlan                  string       `json:"zain_plan,omitempty"`
	IsEligibleForZain         bool         `json:"is_eligible_for_zain"`
	IsEligibleForInstallments bool         `json:"is_eligible_for_installments"`
	CreditScore               int          `json:"credit_score,omitempty"`
	ActiveLines               []string     `json:"active_lines,omitempty"`
}

// Vehicle holds the motor risk inputs.
type Vehicle struct {
	PlateNumber       string  `json:"plate_number"`
	Make              string  `json:"make,omitempty"`
	Model             string  `json:"model,omitempty"`
	Year              int     `json:"year,omitempty"`
	ChassisNumber     string  `json:"chassis_number,omitempty"`
	BodyType          string  `json:"body_type,omitempty"`
	EngineSize        string  `json:"engine_size,omitempty"`
	RegistrationMonth string  `json:"registration_month,omitempty"`
	Value             float64 `json:"value,omitempty"`
	PolicyStartDate   string  `json:"policy_start_date,omitempty"`
	PolicyEndDate     string  `json:"policy_end_date,omitempty"`
	AgencyRepair      bool    `json:"agency_repair"`
	HasPriorClaims    bool    `json:"has_prior_claims"`
}

type TravelType string

const (
	TravelTypeSingleTrip TravelType = "SINGLE_TRIP"
	TravelTypeAnnual     TravelType = "ANNUAL_MULTI_TRIP"
)

// TravelCriteria holds the travel risk inputs.
type TravelCriteria struct {
	Destination   string     `json:"destination"`
	TravelType    TravelType `json:"travel_type,omitempty"`
	DepartureDate string     `json:"departure_date,omitempty"`
	ReturnDate    string     `json:"return_date,omitempty"`
	Adults        int        `json:"adults"`
	Children      int        `json:"children"`
	Seniors       int        `json:"seniors"`
	DateOfBirth   string     `json:"date_of_birth,omitempty"`
}

func (t TravelCriteria) Travelers() int {
	return t.Adults + t.Children + t.Seniors
}

// NormalizePlate upper-cases and strips blanks so cached lookups compare equal.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), ""))
}
