package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"takaful_quote/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// InputBuffer is the ephemeral form state of a flow session. It may hold
// invalid values; nothing here reaches the aggregate until it validates.
type InputBuffer struct {
	Contact ContactInput `json:"contact"`
	Motor   MotorInput   `json:"motor"`
	Travel  TravelInput  `json:"travel"`
}

type ContactInput struct {
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	Mobile   string `json:"mobile" validate:"required,numeric,len=8"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type MotorInput struct {
	PlateNumber       string  `json:"plate_number" validate:"required,alphanum,max=10"`
	Make              string  `json:"make" validate:"required,max=60"`
	Model             string  `json:"model" validate:"required,max=60"`
	Year              int     `json:"year" validate:"required,gte=1950"`
	ChassisNumber     string  `json:"chassis_number" validate:"omitempty,alphanum,max=17"`
	BodyType          string  `json:"body_type"`
	EngineSize        string  `json:"engine_size"`
	RegistrationMonth string  `json:"registration_month"`
	Value             float64 `json:"value" validate:"required,gt=0"`
	PolicyStartDate   string  `json:"policy_start_date" validate:"required,datetime=2006-01-02"`
	PolicyEndDate     string  `json:"policy_end_date" validate:"omitempty,datetime=2006-01-02"`
	AgencyRepair      bool    `json:"agency_repair"`
	HasPriorClaims    bool    `json:"has_prior_claims"`
}

type TravelInput struct {
	Destination   string              `json:"destination" validate:"required,max=80"`
	TravelType    entities.TravelType `json:"travel_type" validate:"required,oneof=SINGLE_TRIP ANNUAL_MULTI_TRIP"`
	DepartureDate string              `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string              `json:"return_date" validate:"required,datetime=2006-01-02"`
	Adults        int                 `json:"adults" validate:"gte=0,lte=20"`
	Children      int                 `json:"children" validate:"gte=0,lte=20"`
	Seniors       int                 `json:"seniors" validate:"gte=0,lte=20"`
	DateOfBirth   string              `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// DerivedValues are recomputed from the buffer on every change.
type DerivedValues struct {
	PolicyEndDate string `json:"policy_end_date,omitempty"`
	TripDays      int    `json:"trip_days,omitempty"`
	Travelers     int    `json:"travelers,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

func toValidationError(err error) *ValidationError {
	out := &ValidationError{Fields: map[string]string{}}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			out.Add(fe.Field(), validationMessage(fe))
		}
		return out
	}
	out.Add("input", err.Error())
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be %s characters", fe.Param())
	case "numeric":
		return "must contain digits only"
	case "alphanum":
		return "must contain letters and digits only"
	case "email":
		return "must be a valid email"
	case "datetime":
		return "must be a date (YYYY-MM-DD)"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	}
	return "is invalid"
}

// ValidateCPR checks the customer identifier.
func ValidateCPR(cpr string) *ValidationError {
	if err := validate.Var(strings.TrimSpace(cpr), "required,len=9,numeric"); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return NewValidationError("cpr", validationMessage(errs[0]))
		}
		return NewValidationError("cpr", "is invalid")
	}
	return nil
}

func (c ContactInput) Normalize() ContactInput {
	c.FullName = strings.Join(strings.Fields(c.FullName), " ")
	c.Mobile = strings.TrimSpace(c.Mobile)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c
}

func (c ContactInput) Validate() *ValidationError {
	if err := validate.Struct(c); err != nil {
		return toValidationError(err)
	}
	return nil
}

func (m MotorInput) Validate(today time.Time) *ValidationError {
	var verr *ValidationError
	if err := validate.Struct(m); err != nil {
		verr = toValidationError(err)
	} else {
		verr = &ValidationError{}
	}
	if m.Year > today.Year()+1 {
		verr.Add("year", fmt.Sprintf("must be at most %d", today.Year()+1))
	}
	if start, err := time.Parse(entities.DateLayout, m.PolicyStartDate); err == nil {
		if start.Before(truncateDay(today)) {
			verr.Add("policy_start_date", "must not be in the past")
		}
		if end, err := time.Parse(entities.DateLayout, m.PolicyEndDate); err == nil && !end.After(start) {
			verr.Add("policy_end_date", "must be after the start date")
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func (t TravelInput) Validate(today time.Time) *ValidationError {
	var verr *ValidationError
	if err := validate.Struct(t); err != nil {
		verr = toValidationError(err)
	} else {
		verr = &ValidationError{}
	}
	if t.Adults+t.Children+t.Seniors < 1 {
		verr.Add("adults", "at least one traveler is required")
	}
	departure, depErr := time.Parse(entities.DateLayout, t.DepartureDate)
	if depErr == nil && departure.Before(truncateDay(today)) {
		verr.Add("departure_date", "must not be in the past")
	}
	if ret, err := time.Parse(entities.DateLayout, t.ReturnDate); err == nil && depErr == nil && ret.Before(departure) {
		verr.Add("return_date", "must not be before the departure date")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// Merge decodes a partial JSON document over a copy of the buffer; absent
// keys keep their current values. Derived fields are recomputed afterwards.
func (b InputBuffer) Merge(raw json.RawMessage) (InputBuffer, error) {
	next := b
	if len(raw) == 0 {
		return next, nil
	}
	if err := json.Unmarshal(raw, &next); err != nil {
		return b, NewValidationError("input", "must be a JSON object")
	}
	var keys struct {
		Motor map[string]json.RawMessage `json:"motor"`
	}
	_ = json.Unmarshal(raw, &keys)
	_, modelSet := keys.Motor["model"]

	next.derive(b, modelSet)
	return next, nil
}

func (b *InputBuffer) derive(prev InputBuffer, modelSet bool) {
	b.Motor.PlateNumber = entities.NormalizePlate(b.Motor.PlateNumber)
	b.Motor.ChassisNumber = strings.ToUpper(strings.TrimSpace(b.Motor.ChassisNumber))

	if !strings.EqualFold(strings.TrimSpace(b.Motor.Make), strings.TrimSpace(prev.Motor.Make)) &&
		!modelSet {
		b.Motor.Model = ""
	}
	if b.Motor.PolicyStartDate != prev.Motor.PolicyStartDate || b.Motor.PolicyEndDate == "" {
		if end, ok := PolicyEndDate(b.Motor.PolicyStartDate); ok {
			b.Motor.PolicyEndDate = end
		}
	}

	if b.Travel.TravelType == entities.TravelTypeAnnual &&
		(b.Travel.DepartureDate != prev.Travel.DepartureDate || b.Travel.TravelType != prev.Travel.TravelType) {
		if end, ok := PolicyEndDate(b.Travel.DepartureDate); ok {
			b.Travel.ReturnDate = end
		}
	}
}

// Derived reports the values computed from the buffer.
func (b InputBuffer) Derived(insuranceType entities.InsuranceType) DerivedValues {
	var d DerivedValues
	switch insuranceType {
	case entities.InsuranceTypeMotor:
		d.PolicyEndDate = b.Motor.PolicyEndDate
	case entities.InsuranceTypeTravel:
		d.Travelers = b.Travel.Adults + b.Travel.Children + b.Travel.Seniors
		d.TripDays = TripDays(b.Travel.DepartureDate, b.Travel.ReturnDate)
	}
	return d
}

// PolicyEndDate is one year after start, minus a day.
func PolicyEndDate(start string) (string, bool) {
	t, err := time.Parse(entities.DateLayout, strings.TrimSpace(start))
	if err != nil {
		return "", false
	}
	return t.AddDate(1, 0, -1).Format(entities.DateLayout), true
}

// TripDays counts both the departure and the return day.
func TripDays(departure, ret string) int {
	d, err := time.Parse(entities.DateLayout, departure)
	if err != nil {
		return 0
	}
	r, err := time.Parse(entities.DateLayout, ret)
	if err != nil || r.Before(d) {
		return 0
	}
	return int(r.Sub(d).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BufferFromQuote rehydrates the form from the committed aggregate.
func BufferFromQuote(q entities.QuoteRequest) InputBuffer {
	b := InputBuffer{
		Contact: ContactInput{
			FullName: q.Customer.FullName,
			Mobile:   q.Customer.Mobile,
			Email:    q.Customer.Email,
		},
	}
	if v := q.Vehicle; v != nil {
		b.Motor = MotorInput{
			PlateNumber:       v.PlateNumber,
			Make:              v.Make,
			Model:             v.Model,
			Year:              v.Year,
			ChassisNumber:     v.ChassisNumber,
			BodyType:          v.BodyType,
			EngineSize:        v.EngineSize,
			RegistrationMonth: v.RegistrationMonth,
			Value:             v.Value,
			PolicyStartDate:   v.PolicyStartDate,
			PolicyEndDate:     v.PolicyEndDate,
			AgencyRepair:      v.AgencyRepair,
			HasPriorClaims:    v.HasPriorClaims,
		}
	}
	if t := q.TravelCriteria; t != nil {
		b.Travel = TravelInput{
			Destination:   t.Destination,
			TravelType:    t.TravelType,
			DepartureDate: t.DepartureDate,
			ReturnDate:    t.ReturnDate,
			Adults:        t.Adults,
			Children:      t.Children,
			Seniors:       t.Seniors,
			DateOfBirth:   t.DateOfBirth,
		}
	}
	return b
}

func (m MotorInput) Vehicle() entities.Vehicle {
	return entities.Vehicle{
		PlateNumber:       entities.NormalizePlate(m.PlateNumber),
		Make:              strings.TrimSpace(m.Make),
		Model:             strings.TrimSpace(m.Model),
		Year:              m.Year,
		ChassisNumber:     strings.ToUpper(strings.TrimSpace(m.ChassisNumber)),
		BodyType:          strings.TrimSpace(m.BodyType),
		EngineSize:        strings.TrimSpace(m.EngineSize),
		RegistrationMonth: strings.TrimSpace(m.RegistrationMonth),
		Value:             m.Value,
		PolicyStartDate:   m.PolicyStartDate,
		PolicyEndDate:     m.PolicyEndDate,
		AgencyRepair:      m.AgencyRepair,
		HasPriorClaims:    m.HasPriorClaims,
	}
}

func (t TravelInput) Criteria() entities.TravelCriteria {
	return entities.TravelCriteria{
		Destination:   strings.TrimSpace(t.Destination),
		TravelType:    t.TravelType,
		DepartureDate: t.DepartureDate,
		ReturnDate:    t.ReturnDate,
		Adults:        t.Adults,
		Children:      t.Children,
		Seniors:       t.Seniors,
		DateOfBirth:   t.DateOfBirth,
	}
}
