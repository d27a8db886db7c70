package entities

// QuotePatch is a partial update of a QuoteRequest.
//
// Nil fields are left untouched; the patch is merged into the stored
// document field by field and never replaces it.
type QuotePatch struct {
	Status         *QuoteStatus   `json:"status,omitempty"`
	InsuranceType  *InsuranceType `json:"insurance_type,omitempty"`
	Customer       *CustomerPatch `json:"customer,omitempty"`
	Vehicle        *VehiclePatch  `json:"vehicle,omitempty"`
	TravelCriteria *TravelPatch   `json:"travel_criteria,omitempty"`

	SelectedPlanID       *string        `json:"selected_plan_id,omitempty"`
	PaymentMethod        *PaymentMethod `json:"payment_method,omitempty"`
	ContactNumberForLink *string        `json:"contact_number_for_link,omitempty"`
	LinkMode             *LinkMode      `json:"link_mode,omitempty"`

	// Discount replaces the applied discount; ClearDiscount removes it.
	Discount      *AppliedDiscount `json:"discount,omitempty"`
	ClearDiscount bool             `json:"clear_discount,omitempty"`

	Exception *ExceptionRequest `json:"exception,omitempty"`
}

type CustomerPatch struct {
	CPR                       *string       `json:"cpr,omitempty"`
	FullName                  *string       `json:"full_name,omitempty"`
	Mobile                    *string       `json:"mobile,omitempty"`
	Email                     *string       `json:"email,omitempty"`
	Type                      *CustomerType `json:"type,omitempty"`
	ZainPlan                  *string       `json:"zain_plan,omitempty"`
	IsEligibleForZain         *bool         `json:"is_eligible_for_zain,omitempty"`
	IsEligibleForInstallments *bool         `json:"is_eligible_for_installments,omitempty"`
	CreditScore               *int          `json:"credit_score,omitempty"`
	ActiveLines               []string      `json:"active_lines,omitempty"`
}

type VehiclePatch struct {
	PlateNumber       *string  `json:"plate_number,omitempty"`
	Make              *string  `json:"make,omitempty"`
	Model             *string  `json:"model,omitempty"`
	Year              *int     `json:"year,omitempty"`
	ChassisNumber     *string  `json:"chassis_number,omitempty"`
	BodyType          *string  `json:"body_type,omitempty"`
	EngineSize        *string  `json:"engine_size,omitempty"`
	RegistrationMonth *string  `json:"registration_month,omitempty"`
	Value             *float64 `json:"value,omitempty"`
	PolicyStartDate   *string  `json:"policy_start_date,omitempty"`
	PolicyEndDate     *string  `json:"policy_end_date,omitempty"`
	AgencyRepair      *bool    `json:"agency_repair,omitempty"`
	HasPriorClaims    *bool    `json:"has_prior_claims,omitempty"`
}

type TravelPatch struct {
	Destination   *string     `json:"destination,omitempty"`
	TravelType    *TravelType `json:"travel_type,omitempty"`
	DepartureDate *string     `json:"departure_date,omitempty"`
	ReturnDate    *string     `json:"return_date,omitempty"`
	Adults        *int        `json:"adults,omitempty"`
	Children      *int        `json:"children,omitempty"`
	Seniors       *int        `json:"seniors,omitempty"`
	DateOfBirth   *string     `json:"date_of_birth,omitempty"`
}

// Ptr returns a pointer to v. Handy when building patches.
func Ptr[T any](v T) *T {
	return &v
}

// IsEmpty reports whether applying the patch would change nothing.
func (p QuotePatch) IsEmpty() bool {
	return p.Status == nil && p.InsuranceType == nil && p.Customer == nil && p.Vehicle == nil &&
		p.TravelCriteria == nil && p.SelectedPlanID == nil && p.PaymentMethod == nil &&
		p.ContactNumberForLink == nil && p.LinkMode == nil && p.Discount == nil && !p.ClearDiscount &&
		p.Exception == nil
}

// Apply merges the patch into q. The vehicle/travel exclusivity invariant is
// re-established afterwards: the block that does not match InsuranceType is dropped.
func (p QuotePatch) Apply(q *QuoteRequest) {
	if p.Status != nil {
		q.Status = *p.Status
	}
	if p.InsuranceType != nil {
		q.InsuranceType = *p.InsuranceType
	}
	if p.Customer != nil {
		p.Customer.apply(&q.Customer)
	}
	if p.Vehicle != nil {
		if q.Vehicle == nil {
			q.Vehicle = &Vehicle{}
		}
		p.Vehicle.apply(q.Vehicle)
	}
	if p.TravelCriteria != nil {
		if q.TravelCriteria == nil {
			q.TravelCriteria = &TravelCriteria{}
		}
		p.TravelCriteria.apply(q.TravelCriteria)
	}
	if p.SelectedPlanID != nil {
		q.SelectedPlanID = *p.SelectedPlanID
	}
	if p.PaymentMethod != nil {
		q.PaymentMethod = *p.PaymentMethod
	}
	if p.ContactNumberForLink != nil {
		q.ContactNumberForLink = *p.ContactNumberForLink
	}
	if p.LinkMode != nil {
		q.LinkMode = *p.LinkMode
	}
	if p.ClearDiscount {
		q.Discount = nil
	}
	if p.Discount != nil {
		d := *p.Discount
		q.Discount = &d
	}
	if p.Exception != nil {
		e := *p.Exception
		q.Exception = &e
	}

	switch q.InsuranceType {
	case InsuranceTypeMotor:
		q.TravelCriteria = nil
	case InsuranceTypeTravel:
		q.Vehicle = nil
	}
}

func (p CustomerPatch) apply(c *Customer) {
	if p.CPR != nil {
		c.CPR = *p.CPR
	}
	if p.FullName != nil {
		c.FullName = *p.FullName
	}
	if p.Mobile != nil {
		c.Mobile = *p.Mobile
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.ZainPlan != nil {
		c.ZainPlan = *p.ZainPlan
	}
	if p.IsEligibleForZain != nil {
		c.IsEligibleForZain = *p.IsEligibleForZain
	}
	if p.IsEligibleForInstallments != nil {
		c.IsEligibleForInstallments = *p.IsEligibleForInstallments
	}
	if p.CreditScore != nil {
		c.CreditScore = *p.CreditScore
	}
	if p.ActiveLines != nil {
		c.ActiveLines = append([]string(nil), p.ActiveLines...)
	}
}

func (p VehiclePatch) apply(v *Vehicle) {
	if p.PlateNumber != nil {
		v.PlateNumber = *p.PlateNumber
	}
	if p.Make != nil {
		v.Make = *p.Make
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Year != nil {
		v.Year = *p.Year
	}
	if p.ChassisNumber != nil {
		v.ChassisNumber = *p.ChassisNumber
	}
	if p.BodyType != nil {
		v.BodyType = *p.BodyType
	}
	if p.EngineSize != nil {
		v.EngineSize = *p.EngineSize
	}
	if p.RegistrationMonth != nil {
		v.RegistrationMonth = *p.RegistrationMonth
	}
	if p.Value != nil {
		v.Value = *p.Value
	}
	if p.PolicyStartDate != nil {
		v.PolicyStartDate = *p.PolicyStartDate
	}
	if p.PolicyEndDate != nil {
		v.PolicyEndDate = *p.PolicyEndDate
	}
	if p.AgencyRepair != nil {
		v.AgencyRepair = *p.AgencyRepair
	}
	if p.HasPriorClaims != nil {
		v.HasPriorClaims = *p.HasPriorClaims
	}
}

func (p TravelPatch) apply(t *TravelCriteria) {
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.TravelType != nil {
		t.TravelType = *p.TravelType
	}
	if p.DepartureDate != nil {
		t.DepartureDate = *p.DepartureDate
	}
	if p.ReturnDate != nil {
		t.ReturnDate = *p.ReturnDate
	}
	if p.Adults != nil {
		t.Adults = *p.Adults
	}
	if p.Children != nil {
		t.Children = *p.Children
	}
	if p.Seniors != nil {
		t.Seniors = *p.Seniors
	}
	if p.DateOfBirth != nil {
		t.DateOfBirth = *p.DateOfBirth
	}
}

// VehiclePatchFrom builds a patch that sets every field of v.
func VehiclePatchFrom(v Vehicle) *VehiclePatch {
	return &VehiclePatch{
		PlateNumber:       Ptr(v.PlateNumber),
		Make:              Ptr(v.Make),
		Model:             Ptr(v.Model),
		Year:              Ptr(v.Year),
		ChassisNumber:     Ptr(v.ChassisNumber),
		BodyType:          Ptr(v.BodyType),
		EngineSize:        Ptr(v.EngineSize),
		RegistrationMonth: Ptr(v.RegistrationMonth),
		Value:             Ptr(v.Value),
		PolicyStartDate:   Ptr(v.PolicyStartDate),
		PolicyEndDate:     Ptr(v.PolicyEndDate),
		AgencyRepair:      Ptr(v.AgencyRepair),
		HasPriorClaims:    Ptr(v.HasPriorClaims),
	}
}

// TravelPatchFrom builds a patch that sets every field of t.
func TravelPatchFrom(t TravelCriteria) *TravelPatch {
	return &TravelPatch{
		Destination:   Ptr(t.Destination),
		TravelType:    Ptr(t.TravelType),
		DepartureDate: Ptr(t.DepartureDate),
		ReturnDate:    Ptr(t.ReturnDate),
		Adults:        Ptr(t.Adults),
		Children:      Ptr(t.Children),
		Seniors:       Ptr(t.Seniors),
		DateOfBirth:   Ptr(t.DateOfBirth),
	}
}

// CustomerPatchFrom builds a patch that sets every field of c.
func CustomerPatchFrom(c Customer) *CustomerPatch {
	return &CustomerPatch{
		CPR:                       Ptr(c.CPR),
		FullName:                  Ptr(c.FullName),
		Mobile:                    Ptr(c.Mobile),
		Email:                     Ptr(c.Email),
		Type:                      Ptr(c.Type),
		ZainPlan:                  Ptr(c.ZainPlan),
		IsEligibleForZain:         Ptr(c.IsEligibleForZain),
		IsEligibleForInstallments: Ptr(c.IsEligibleForInstallments),
		CreditScore:               Ptr(c.CreditScore),
		ActiveLines:               append([]string{}, c.ActiveLines...),
	}
}

// SnapshotPatch captures every mutable field of q. Replaying it restores q on
// top of an older stored copy. A DRAFT (or empty) status is left out so the
// replay never tries to move a stored status backwards.
func SnapshotPatch(q QuoteRequest) QuotePatch {
	p := QuotePatch{
		InsuranceType:        Ptr(q.InsuranceType),
		Customer:             CustomerPatchFrom(q.Customer),
		SelectedPlanID:       Ptr(q.SelectedPlanID),
		PaymentMethod:        Ptr(q.PaymentMethod),
		ContactNumberForLink: Ptr(q.ContactNumberForLink),
		LinkMode:             Ptr(q.LinkMode),
		ClearDiscount:        q.Discount == nil,
	}
	if q.Status != "" && q.Status != QuoteStatusDraft {
		p.Status = Ptr(q.Status)
	}
	if q.Vehicle != nil {
		p.Vehicle = VehiclePatchFrom(*q.Vehicle)
	}
	if q.TravelCriteria != nil {
		p.TravelCriteria = TravelPatchFrom(*q.TravelCriteria)
	}
	if q.Discount != nil {
		d := *q.Discount
		p.Discount = &d
	}
	if q.Exception != nil {
		e := *q.Exception
		p.Exception = &e
	}
	return p
}

// RebaseOnto drops the patch's status and exception changes when the stored
// status has moved to a state they can no longer be applied from.
func (p QuotePatch) RebaseOnto(stored QuoteStatus) QuotePatch {
	if p.Status == nil || *p.Status == stored || stored.CanTransitionTo(*p.Status) {
		return p
	}
	p.Status = nil
	p.Exception = nil
	return p
}
