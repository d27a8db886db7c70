package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/domain/pricing"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// IdentifyCustomer commits the customer identifier. With the customer
// lookup enabled an existing customer is hydrated; otherwise, or when no
// match is found, the customer is NEW and the subscriber form opens.
func (u *QuoteFlowUseCase) IdentifyCustomer(ctx context.Context, sessionID string, in IdentifyInput) (SessionView, error) {
	log := logger.For("flow", "usecase")

	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepCustomer); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	if s.sub.ShowDraftPopup {
		s.mu.Unlock()
		return SessionView{}, ErrDraftPromptOpen
	}
	cpr := strings.TrimSpace(in.CPR)
	if verr := ValidateCPR(cpr); verr != nil {
		defer s.mu.Unlock()
		return u.reject(s, verr)
	}
	insuranceType := s.quote.InsuranceType
	if in.InsuranceType != "" {
		insuranceType = in.InsuranceType
	}
	if !insuranceType.Enabled() {
		defer s.mu.Unlock()
		return u.view(s), fmt.Errorf("%w: %s", ErrInsuranceTypeDisabled, insuranceType)
	}
	previousCPR := s.quote.Customer.CPR
	fetchCtx, token := s.guard.Begin(ctx, fetchCustomer)
	s.mu.Unlock()
	defer s.guard.Done(fetchCustomer, token)

	customer := entities.Customer{CPR: cpr, Type: entities.CustomerTypeNew}
	var notice string
	if u.opts.CustomerLookupEnabled {
		found, ok, lerr := u.deps.Customers.FindByCPR(fetchCtx, cpr)
		u.deps.Metrics.CollaboratorCall("customer", callResult(lerr))
		switch {
		case lerr != nil:
			log.Warn().Err(lerr).Str("cpr", cpr).Msg("customer lookup failed; treating as new")
			notice = "Customer lookup unavailable; continue as a new customer"
		case ok:
			customer = found
			customer.CPR = cpr
			customer.Type = entities.CustomerTypeExisting
		}
	}

	s.mu.Lock()
	if !s.guard.Valid(fetchCustomer, token) {
		s.mu.Unlock()
		return SessionView{}, ErrSuperseded
	}
	s.mu.Unlock()

	patch := entities.QuotePatch{InsuranceType: entities.Ptr(insuranceType)}
	if (previousCPR != "" && previousCPR != cpr) || customer.Type == entities.CustomerTypeExisting {
		patch.Customer = entities.CustomerPatchFrom(customer)
	} else {
		patch.Customer = &entities.CustomerPatch{CPR: entities.Ptr(cpr), Type: entities.Ptr(customer.Type)}
	}
	perr := u.persist(ctx, s, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if notice != "" {
		s.notice(notice)
	}
	s.sub.ShowSubscriberInput = s.quote.Customer.Type != entities.CustomerTypeExisting
	s.input.Contact = BufferFromQuote(s.quote).Contact
	return u.view(s), perr
}

// SubmitSubscriber captures a new customer's contact data and runs the
// eligibility check. A draft-exists signal opens the resume prompt instead
// of committing anything.
func (u *QuoteFlowUseCase) SubmitSubscriber(ctx context.Context, sessionID string, contact ContactInput) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepCustomer); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	if s.sub.ShowDraftPopup {
		s.mu.Unlock()
		return SessionView{}, ErrDraftPromptOpen
	}
	if s.quote.Customer.CPR == "" {
		defer s.mu.Unlock()
		return u.reject(s, NewValidationError("cpr", "is required"))
	}
	contact = contact.Normalize()
	s.input.Contact = contact
	if verr := contact.Validate(); verr != nil {
		defer s.mu.Unlock()
		return u.reject(s, verr)
	}
	current := s.quote.Clone()
	fetchCtx, token := s.guard.Begin(ctx, fetchEligibility)
	s.mu.Unlock()
	defer s.guard.Done(fetchEligibility, token)

	check, cerr := u.deps.Eligibility.CheckSubscriber(fetchCtx, current, interfaces.ContactInfo{
		FullName: contact.FullName,
		Mobile:   contact.Mobile,
		Email:    contact.Email,
	})

	s.mu.Lock()
	if s.closed || !s.guard.Valid(fetchEligibility, token) {
		s.mu.Unlock()
		return SessionView{}, ErrSuperseded
	}
	if cerr != nil && !errors.Is(cerr, ErrLookupFailure) {
		defer s.mu.Unlock()
		return u.reject(s, cerr)
	}
	if check.DraftExists {
		defer s.mu.Unlock()
		draft := check.Draft.Clone()
		s.pendingDraft = &draft
		s.pendingContact = check.Customer
		s.sub.ShowDraftPopup = true
		return u.view(s), nil
	}
	s.mu.Unlock()

	perr := u.persist(ctx, s, entities.QuotePatch{Customer: check.Customer})

	s.mu.Lock()
	defer s.mu.Unlock()
	if check.LookupFailed {
		s.notice(check.Message)
	}
	if perr == nil {
		s.sub.ShowSubscriberInput = false
	}
	return u.view(s), perr
}

// ResolveDraftPrompt handles the draft-resume choice. Both choices clear the
// vehicle lookup cache and move to the details step.
func (u *QuoteFlowUseCase) ResolveDraftPrompt(ctx context.Context, sessionID string, choice DraftChoice) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepCustomer); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	if s.pendingDraft == nil {
		s.mu.Unlock()
		return SessionView{}, ErrNoDraftPrompt
	}
	if choice != DraftChoiceContinue && choice != DraftChoiceNew {
		defer s.mu.Unlock()
		return u.reject(s, NewValidationError("choice", "must be one of continue new"))
	}

	s.guard.Cancel(fetchVehicle)
	s.vehicleCache = map[string]vehicleLookup{}

	var patches []entities.QuotePatch
	if choice == DraftChoiceContinue {
		s.quote = s.pendingDraft.Clone()
		s.unsynced = nil
	} else if s.pendingContact != nil {
		patches = append(patches, entities.QuotePatch{Customer: s.pendingContact})
	}
	s.mu.Unlock()

	perr := u.persist(ctx, s, patches...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if perr != nil {
		return u.view(s), perr
	}
	logger.For("flow", "usecase").Info().Str("session_id", s.id).Str("quote_id", s.quote.ID).Str("choice", string(choice)).Msg("draft prompt resolved")
	s.pendingDraft = nil
	s.pendingContact = nil
	s.sub.ShowDraftPopup = false
	s.sub.ShowSubscriberInput = false
	s.step = StepDetails
	s.input = BufferFromQuote(s.quote)
	return u.view(s), nil
}

// UpdateInput writes the ephemeral input buffer. Nothing is persisted.
func (u *QuoteFlowUseCase) UpdateInput(_ context.Context, sessionID string, raw []byte) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(StepCustomer, StepDetails); err != nil {
		return SessionView{}, err
	}
	next, merr := s.input.Merge(raw)
	if merr != nil {
		return u.reject(s, merr)
	}
	if next.Motor.PlateNumber != s.input.Motor.PlateNumber {
		s.guard.Cancel(fetchVehicle)
	}
	s.input = next
	return u.view(s), nil
}

// Commit validates the buffer of the current step and persists it without
// moving. Invalid input stays in the buffer.
func (u *QuoteFlowUseCase) Commit(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepCustomer, StepDetails); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	var (
		patch entities.QuotePatch
		verr  *ValidationError
	)
	if s.step == StepCustomer {
		contact := s.input.Contact.Normalize()
		if verr = contact.Validate(); verr == nil {
			patch.Customer = &entities.CustomerPatch{
				FullName: entities.Ptr(contact.FullName),
				Mobile:   entities.Ptr(contact.Mobile),
				Email:    entities.Ptr(contact.Email),
			}
		}
	} else {
		patch, verr = u.detailsPatch(s)
	}
	if verr != nil {
		defer s.mu.Unlock()
		return u.reject(s, verr)
	}
	s.mu.Unlock()

	perr := u.persist(ctx, s, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), perr
}

// detailsPatch validates the details buffer for the quote's insurance type.
// Caller holds s.mu.
func (u *QuoteFlowUseCase) detailsPatch(s *flowSession) (entities.QuotePatch, *ValidationError) {
	today := u.now()
	switch s.quote.InsuranceType {
	case entities.InsuranceTypeMotor:
		if verr := s.input.Motor.Validate(today); verr != nil {
			return entities.QuotePatch{}, verr
		}
		return entities.QuotePatch{Vehicle: entities.VehiclePatchFrom(s.input.Motor.Vehicle())}, nil
	case entities.InsuranceTypeTravel:
		if verr := s.input.Travel.Validate(today); verr != nil {
			return entities.QuotePatch{}, verr
		}
		return entities.QuotePatch{TravelCriteria: entities.TravelPatchFrom(s.input.Travel.Criteria())}, nil
	}
	return entities.QuotePatch{}, NewValidationError("insurance_type", "is not available")
}

// LookupVehicle fetches motor and registry data for a plate in parallel and
// prefills the buffer. A late response for a superseded plate is dropped.
func (u *QuoteFlowUseCase) LookupVehicle(ctx context.Context, sessionID, plateNumber string) (SessionView, error) {
	log := logger.For("flow", "usecase")

	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepDetails); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	if s.quote.InsuranceType != entities.InsuranceTypeMotor {
		s.mu.Unlock()
		return SessionView{}, ErrInvalidStep
	}
	plate := entities.NormalizePlate(plateNumber)
	if err := validate.Var(plate, "required,alphanum,max=10"); err != nil {
		defer s.mu.Unlock()
		return u.reject(s, NewValidationError("plate_number", "must be a valid plate number"))
	}
	s.input.Motor.PlateNumber = plate
	if cached, ok := s.vehicleCache[plate]; ok {
		defer s.mu.Unlock()
		s.guard.Cancel(fetchVehicle)
		s.applyVehicleLookup(cached)
		return u.view(s), nil
	}
	chassis := s.input.Motor.ChassisNumber
	fetchCtx, token := s.guard.Begin(ctx, fetchVehicle)
	s.mu.Unlock()
	defer s.guard.Done(fetchVehicle, token)

	var (
		g        errgroup.Group
		motor    interfaces.MotorLookupResult
		registry interfaces.RegistryLookupResult
	)
	g.Go(func() error {
		res, err := u.deps.Vehicles.LookupMotor(fetchCtx, plate)
		u.deps.Metrics.CollaboratorCall("motor", callResult(err))
		if err != nil {
			return fmt.Errorf("motor lookup: %w", err)
		}
		motor = res
		return nil
	})
	g.Go(func() error {
		res, err := u.deps.Registry.LookupPolicy(fetchCtx, plate, chassis)
		u.deps.Metrics.CollaboratorCall("registry", callResult(err))
		if err != nil {
			return fmt.Errorf("registry lookup: %w", err)
		}
		registry = res
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Str("plate", plate).Msg("vehicle lookup incomplete")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.guard.Valid(fetchVehicle, token) {
		log.Debug().Str("plate", plate).Msg("discarding superseded vehicle lookup")
		return SessionView{}, ErrSuperseded
	}

	var found vehicleLookup
	if motor.Success {
		data := motor.Data
		found.motor = &data
	} else {
		s.notice("Vehicle data not found; enter the vehicle details manually")
	}
	if registry.Success {
		data := registry.Data
		found.registry = &data
	} else {
		s.notice("Registry data not found; enter the policy dates and value manually")
	}
	if found.motor != nil || found.registry != nil {
		s.vehicleCache[plate] = found
	}
	s.applyVehicleLookup(found)
	return u.view(s), nil
}

// applyVehicleLookup prefills the motor buffer. Caller holds s.mu.
func (s *flowSession) applyVehicleLookup(l vehicleLookup) {
	m := &s.input.Motor
	if d := l.motor; d != nil {
		setIfPresent(&m.Make, d.Make)
		setIfPresent(&m.Model, d.Model)
		setIfPresent(&m.ChassisNumber, strings.ToUpper(d.ChassisNumber))
		setIfPresent(&m.BodyType, d.BodyType)
		setIfPresent(&m.EngineSize, d.EngineSize)
		setIfPresent(&m.RegistrationMonth, d.RegistrationMonth)
		if d.Year > 0 {
			m.Year = d.Year
		}
	}
	if d := l.registry; d != nil {
		if d.VehicleValue > 0 {
			m.Value = d.VehicleValue
		}
		if d.PolicyStartDate != "" {
			m.PolicyStartDate = d.PolicyStartDate
			if end, ok := PolicyEndDate(d.PolicyStartDate); ok {
				m.PolicyEndDate = end
			}
		}
		setIfPresent(&m.PolicyEndDate, d.PolicyEndDate)
	}
}

func setIfPresent(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Next advances one step when the current step's guard passes.
func (u *QuoteFlowUseCase) Next(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepCustomer, StepDetails); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}

	switch s.step {
	case StepCustomer:
		if s.sub.ShowDraftPopup {
			s.mu.Unlock()
			return SessionView{}, ErrDraftPromptOpen
		}
		if verr := customerStepGuard(s.quote.Customer); verr != nil {
			defer s.mu.Unlock()
			return u.reject(s, verr)
		}
		s.mu.Unlock()

		perr := u.persist(ctx, s)

		s.mu.Lock()
		defer s.mu.Unlock()
		if perr != nil {
			return u.view(s), perr
		}
		s.step = StepDetails
		s.input = BufferFromQuote(s.quote)
		return u.view(s), nil

	default:
		patch, verr := u.detailsPatch(s)
		if verr != nil {
			defer s.mu.Unlock()
			return u.reject(s, verr)
		}
		s.mu.Unlock()

		if perr := u.persist(ctx, s, patch); perr != nil {
			s.mu.Lock()
			defer s.mu.Unlock()
			return u.view(s), perr
		}
		rerr := u.regeneratePlans(ctx, s)

		s.mu.Lock()
		defer s.mu.Unlock()
		if rerr != nil {
			return u.view(s), rerr
		}
		s.step = StepQuote
		return u.view(s), nil
	}
}

func customerStepGuard(c entities.Customer) *ValidationError {
	verr := &ValidationError{}
	if strings.TrimSpace(c.CPR) == "" {
		verr.Add("cpr", "is required")
	}
	if c.Type != entities.CustomerTypeExisting {
		if strings.TrimSpace(c.FullName) == "" {
			verr.Add("full_name", "is required")
		}
		if strings.TrimSpace(c.Mobile) == "" {
			verr.Add("mobile", "is required")
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// Back moves one step back. Persisted state is kept; the buffer is
// rehydrated from the aggregate and pending fetches are cancelled.
func (u *QuoteFlowUseCase) Back(_ context.Context, sessionID string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return SessionView{}, ErrSessionNotFound
	}
	s.fieldErrors = nil
	s.notices = nil
	if s.step == StepCustomer {
		return u.view(s), ErrInvalidStep
	}
	s.guard.CancelAll()
	s.step--
	s.input = BufferFromQuote(s.quote)
	return u.view(s), nil
}

func (u *QuoteFlowUseCase) SelectPlan(ctx context.Context, sessionID, planID string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepQuote); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	planID = strings.TrimSpace(planID)
	if _, ok := entities.FindPlan(s.plans, planID); !ok {
		defer s.mu.Unlock()
		return u.reject(s, NewValidationError("plan_id", "is not one of the offered plans"))
	}
	if s.quote.Status == entities.QuoteStatusPendingApproval && planID != s.quote.SelectedPlanID {
		defer s.mu.Unlock()
		return u.reject(s, NewValidationError("plan_id", "cannot change while an exception is pending"))
	}
	s.mu.Unlock()

	perr := u.persist(ctx, s, entities.QuotePatch{SelectedPlanID: entities.Ptr(planID)})

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), perr
}

// SetPaymentMethod stores the method. INSTALLMENT may be chosen for price
// comparison even when it cannot be checked out.
func (u *QuoteFlowUseCase) SetPaymentMethod(ctx context.Context, sessionID string, method entities.PaymentMethod) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepQuote); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	method = entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(method))))
	if !method.Valid() {
		defer s.mu.Unlock()
		return u.reject(s, NewValidationError("payment_method", "must be one of FULL INSTALLMENT"))
	}
	s.mu.Unlock()

	perr := u.persist(ctx, s, entities.QuotePatch{PaymentMethod: entities.Ptr(method)})

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), perr
}

// ApplyDiscount validates the code and, on success, stores code and percent
// together. A rejection keeps the previously applied discount.
func (u *QuoteFlowUseCase) ApplyDiscount(ctx context.Context, sessionID, code string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepQuote); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	s.mu.Unlock()

	patch, derr := u.deps.Discounts.ApplyCode(ctx, code)
	if derr != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if errors.Is(derr, ErrLookupFailure) {
			s.notice("Discount service unavailable; try again")
			return u.view(s), derr
		}
		return u.reject(s, derr)
	}

	perr := u.persist(ctx, s, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), perr
}

func (u *QuoteFlowUseCase) RemoveDiscount(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepQuote); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	s.mu.Unlock()

	perr := u.persist(ctx, s, u.deps.Discounts.RemoveCode())

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), perr
}

func (u *QuoteFlowUseCase) RequestException(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepQuote); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	plan, ok := entities.FindPlan(s.plans, s.quote.SelectedPlanID)
	if !ok {
		s.mu.Unlock()
		return SessionView{}, ErrNoPlanSelected
	}
	s.mu.Unlock()

	werr := u.write(s, func(base entities.QuoteRequest, pending []entities.QuotePatch) (entities.QuoteRequest, error) {
		return u.deps.Eligibility.RequestException(ctx, base, plan, s.actor, pending...)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if werr != nil && !errors.Is(werr, ErrPersistenceFailure) {
		return u.view(s), werr
	}
	s.sub.ExceptionSent = s.quote.Status == entities.QuoteStatusPendingApproval
	return u.view(s), werr
}

// SendLink moves the quote to LINK_SENT, creates the payment link for the
// amount due now, dispatches it and then marks the quote PAYMENT_PENDING.
// A dispatch failure is surfaced and leaves the quote at LINK_SENT. From
// PAYMENT_PENDING the link is only re-created and re-dispatched.
func (u *QuoteFlowUseCase) SendLink(ctx context.Context, sessionID string, in SendLinkInput) (SessionView, error) {
	log := logger.For("flow", "usecase")

	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	if err := s.begin(StepQuote); err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	q := s.quote.Clone()
	plan, ok := entities.FindPlan(s.plans, q.SelectedPlanID)
	if !ok {
		s.mu.Unlock()
		return SessionView{}, ErrNoPlanSelected
	}
	method := q.PaymentMethod
	if method == "" {
		method = entities.PaymentMethodFull
	}
	if method == entities.PaymentMethodInstallment && !ResolveEligibility(q).InstallmentSelectable {
		defer s.mu.Unlock()
		return u.view(s), ErrEligibilityDenied
	}

	contact := strings.TrimSpace(in.ContactNumber)
	if contact == "" {
		contact = q.Customer.Mobile
	}
	mode := entities.LinkMode(strings.ToUpper(strings.TrimSpace(string(in.Mode))))
	if mode == "" {
		mode = entities.LinkModeSMS
	}
	verr := &ValidationError{}
	if err := validate.Var(contact, "required,numeric,len=8"); err != nil {
		verr.Add("contact_number", "must be an 8 digit mobile number")
	}
	if !mode.Valid() {
		verr.Add("mode", "must be one of SMS WHATSAPP")
	}
	if !verr.Empty() {
		defer s.mu.Unlock()
		return u.reject(s, verr)
	}
	// A resend keeps PAYMENT_PENDING and only re-creates and re-delivers the link.
	resend := q.Status == entities.QuoteStatusPaymentPending
	if !resend && !q.Status.CanTransitionTo(entities.QuoteStatusLinkSent) {
		s.mu.Unlock()
		return SessionView{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, statusOrDraft(q.Status), entities.QuoteStatusLinkSent)
	}
	price, perr := pricing.Compute(plan.BasePremium, q.DiscountPercent(), method)
	s.mu.Unlock()
	if perr != nil {
		return SessionView{}, perr
	}

	linkPatch := entities.QuotePatch{
		PaymentMethod:        entities.Ptr(method),
		ContactNumberForLink: entities.Ptr(contact),
		LinkMode:             entities.Ptr(mode),
	}
	if !resend {
		linkPatch.Status = entities.Ptr(entities.QuoteStatusLinkSent)
	}
	if err := u.persist(ctx, s, linkPatch); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return u.view(s), err
	}

	s.mu.Lock()
	q = s.quote.Clone()
	s.mu.Unlock()

	link, lerr := u.deps.Payments.CreatePaymentLink(ctx, interfaces.PaymentLinkRequest{
		QuoteID:        q.ID,
		QuoteReference: q.QuoteReference,
		Title:          strings.TrimSpace(plan.Provider + " " + plan.Name),
		Amount:         price.DueNow,
		PayerEmail:     q.Customer.Email,
	})
	u.deps.Metrics.CollaboratorCall("payment_link", callResult(lerr))
	if lerr != nil {
		log.Error().Err(lerr).Str("quote_id", q.ID).Msg("payment link creation failed")
		s.mu.Lock()
		defer s.mu.Unlock()
		s.notice("Payment link could not be created; try sending again")
		return u.view(s), fmt.Errorf("%w: payment link: %v", ErrDispatchFailure, lerr)
	}

	derr := u.deps.Links.Dispatch(ctx, interfaces.LinkDispatchRequest{
		QuoteID:        q.ID,
		QuoteReference: q.QuoteReference,
		ContactNumber:  contact,
		Mode:           mode,
		PaymentURL:     link.URL,
		Amount:         price.DueNow,
	})
	u.deps.Metrics.CollaboratorCall("link_dispatch", callResult(derr))
	if derr != nil {
		log.Error().Err(derr).Str("quote_id", q.ID).Str("mode", string(mode)).Msg("payment link dispatch failed")
		s.mu.Lock()
		defer s.mu.Unlock()
		s.paymentLinkURL = link.URL
		s.notice("Payment link could not be delivered; try sending again")
		return u.view(s), fmt.Errorf("%w: %v", ErrDispatchFailure, derr)
	}

	var werr error
	if !resend {
		werr = u.persist(ctx, s, entities.QuotePatch{Status: entities.Ptr(entities.QuoteStatusPaymentPending)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentLinkURL = link.URL
	if werr == nil || errors.Is(werr, ErrPersistenceFailure) {
		s.sub.QuoteSent = true
	}
	log.Info().Str("quote_id", q.ID).Str("mode", string(mode)).Float64("due_now", price.DueNow).Msg("payment link sent")
	return u.view(s), werr
}
