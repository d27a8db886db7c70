package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/domain/pricing"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"

	"github.com/google/uuid"
)

// Step is the position of a flow session in Customer -> Details -> Quote.
type Step int

const (
	StepCustomer Step = 1
	StepDetails  Step = 2
	StepQuote    Step = 3
)

// Fetch targets guarded by the per-session sequence guard.
const (
	fetchVehicle     = "vehicle"
	fetchPlans       = "plans"
	fetchEligibility = "eligibility"
	fetchCustomer    = "customer"
)

type DraftChoice string

const (
	DraftChoiceContinue DraftChoice = "continue"
	DraftChoiceNew      DraftChoice = "new"
)

// SubViews are the sub-view flags of a session.
type SubViews struct {
	QuoteSent           bool `json:"quote_sent"`
	PolicyIssued        bool `json:"policy_issued"`
	ExceptionSent       bool `json:"exception_sent"`
	ShowSubscriberInput bool `json:"show_subscriber_input"`
	ShowDraftPopup      bool `json:"show_draft_popup"`
}

// DraftSummary describes the in-flight draft offered by the resume prompt.
type DraftSummary struct {
	ID             string                 `json:"id"`
	QuoteReference string                 `json:"quote_reference"`
	InsuranceType  entities.InsuranceType `json:"insurance_type"`
	PlateNumber    string                 `json:"plate_number,omitempty"`
	Destination    string                 `json:"destination,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// SessionView is the read model returned by every flow operation.
type SessionView struct {
	SessionID      string                `json:"session_id"`
	Step           Step                  `json:"step"`
	ReadOnly       bool                  `json:"read_only"`
	SubViews       SubViews              `json:"sub_views"`
	Quote          entities.QuoteRequest `json:"quote"`
	Input          InputBuffer           `json:"input"`
	Derived        DerivedValues         `json:"derived"`
	Plans          []pricing.PricedPlan  `json:"plans"`
	SelectedPlan   *pricing.PricedPlan   `json:"selected_plan,omitempty"`
	Eligibility    Eligibility           `json:"eligibility"`
	PendingDraft   *DraftSummary         `json:"pending_draft,omitempty"`
	PaymentLinkURL string                `json:"payment_link_url,omitempty"`
	FieldErrors    map[string]string     `json:"field_errors,omitempty"`
	Notices        []string              `json:"notices,omitempty"`
	PendingSync    bool                  `json:"pending_sync"`
}

type StartInput struct {
	QuoteID        string
	QuoteReference string
	InsuranceType  entities.InsuranceType
}

type IdentifyInput struct {
	CPR           string
	InsuranceType entities.InsuranceType
}

type SendLinkInput struct {
	ContactNumber string
	Mode          entities.LinkMode
}

// IQuoteFlowUseCase is the step controller.
type IQuoteFlowUseCase interface {
	Start(ctx context.Context, in StartInput, actor Actor) (SessionView, error)
	View(ctx context.Context, sessionID string) (SessionView, error)
	IdentifyCustomer(ctx context.Context, sessionID string, in IdentifyInput) (SessionView, error)
	SubmitSubscriber(ctx context.Context, sessionID string, contact ContactInput) (SessionView, error)
	ResolveDraftPrompt(ctx context.Context, sessionID string, choice DraftChoice) (SessionView, error)
	UpdateInput(ctx context.Context, sessionID string, raw []byte) (SessionView, error)
	Commit(ctx context.Context, sessionID string) (SessionView, error)
	LookupVehicle(ctx context.Context, sessionID, plateNumber string) (SessionView, error)
	Next(ctx context.Context, sessionID string) (SessionView, error)
	Back(ctx context.Context, sessionID string) (SessionView, error)
	SelectPlan(ctx context.Context, sessionID, planID string) (SessionView, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method entities.PaymentMethod) (SessionView, error)
	ApplyDiscount(ctx context.Context, sessionID, code string) (SessionView, error)
	RemoveDiscount(ctx context.Context, sessionID string) (SessionView, error)
	RequestException(ctx context.Context, sessionID string) (SessionView, error)
	SendLink(ctx context.Context, sessionID string, in SendLinkInput) (SessionView, error)
	Abandon(ctx context.Context, sessionID string) error
}

type FlowOptions struct {
	CustomerLookupEnabled bool
	DefaultInsuranceType  entities.InsuranceType
	// SessionIdleTTL closes sessions untouched for longer. Zero keeps them
	// until abandoned.
	SessionIdleTTL time.Duration
}

// FlowDependencies groups the collaborators the step controller drives.
type FlowDependencies struct {
	Drafts      IDraftUseCase
	Eligibility IEligibilityUseCase
	Discounts   IDiscountUseCase

	Customers     interfaces.ICustomerLookup
	Vehicles      interfaces.IVehicleLookup
	Registry      interfaces.IRegistryLookup
	Plans         interfaces.IPlanGenerator
	FallbackPlans interfaces.IPlanGenerator
	Links         interfaces.ILinkDispatcher
	Payments      interfaces.IPaymentGateway

	Metrics Metrics
}

type QuoteFlowUseCase struct {
	deps FlowDependencies
	opts FlowOptions
	now  func() time.Time

	mu       sync.RWMutex
	sessions map[string]*flowSession
}

var _ IQuoteFlowUseCase = (*QuoteFlowUseCase)(nil)

type vehicleLookup struct {
	motor    *interfaces.MotorData
	registry *interfaces.RegistryData
}

// flowSession owns one aggregate. mu guards the fields below it; persistMu
// orders this session's writes so a later write always carries earlier ones.
type flowSession struct {
	id    string
	actor Actor

	// lastSeen is the unix nano time of the last lookup.
	lastSeen atomic.Int64

	persistMu sync.Mutex

	mu             sync.Mutex
	closed         bool
	step           Step
	quote          entities.QuoteRequest
	unsynced       []entities.QuotePatch
	input          InputBuffer
	plans          []entities.InsurancePlan
	vehicleCache   map[string]vehicleLookup
	pendingDraft   *entities.QuoteRequest
	pendingContact *entities.CustomerPatch
	sub            SubViews
	paymentLinkURL string
	fieldErrors    map[string]string
	notices        []string
	guard          *fetchGuard
}

func NewQuoteFlowUseCase(deps FlowDependencies, opts FlowOptions) *QuoteFlowUseCase {
	deps.Metrics = metricsOrNoop(deps.Metrics)
	if deps.FallbackPlans == nil {
		deps.FallbackPlans = deps.Plans
	}
	if !opts.DefaultInsuranceType.Enabled() {
		opts.DefaultInsuranceType = entities.InsuranceTypeMotor
	}
	u := &QuoteFlowUseCase{
		deps:     deps,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: map[string]*flowSession{},
	}
	deps.Drafts.Subscribe(u.onQuotePersisted)
	return u
}

// WithClock overrides the time source. Used by tests.
func (u *QuoteFlowUseCase) WithClock(now func() time.Time) *QuoteFlowUseCase {
	u.now = now
	return u
}

// ResumeStep computes where a session starts for an existing aggregate.
// It tolerates an aggregate at any lifecycle stage.
func ResumeStep(q entities.QuoteRequest) (Step, SubViews) {
	var sub SubViews
	switch q.Status {
	case entities.QuoteStatusPaymentPending:
		sub.QuoteSent = true
	case entities.QuoteStatusIssued:
		sub.QuoteSent = true
		sub.PolicyIssued = true
	case entities.QuoteStatusPendingApproval:
		sub.ExceptionSent = true
	}

	switch {
	case q.SelectedPlanID != "" || (q.Status != "" && q.Status != entities.QuoteStatusDraft):
		return StepQuote, sub
	case q.HasVehicleIdentity() || (q.TravelCriteria != nil && strings.TrimSpace(q.TravelCriteria.Destination) != ""):
		return StepDetails, sub
	default:
		sub.ShowSubscriberInput = q.Customer.CPR != "" && q.Customer.Type != entities.CustomerTypeExisting
		return StepCustomer, sub
	}
}

func (u *QuoteFlowUseCase) Start(ctx context.Context, in StartInput, actor Actor) (SessionView, error) {
	log := logger.For("flow", "usecase")

	var (
		q   entities.QuoteRequest
		err error
	)
	switch {
	case strings.TrimSpace(in.QuoteID) != "":
		q, err = u.deps.Drafts.Load(ctx, in.QuoteID)
	case strings.TrimSpace(in.QuoteReference) != "":
		q, err = u.deps.Drafts.LoadByReference(ctx, in.QuoteReference)
	default:
		t := in.InsuranceType
		if t == "" {
			t = u.opts.DefaultInsuranceType
		}
		if !t.Enabled() {
			return SessionView{}, fmt.Errorf("%w: %s", ErrInsuranceTypeDisabled, t)
		}
		q = entities.QuoteRequest{InsuranceType: t}
	}
	if err != nil {
		return SessionView{}, err
	}

	s := &flowSession{
		id:           uuid.NewString(),
		actor:        actor,
		quote:        q,
		vehicleCache: map[string]vehicleLookup{},
		guard:        newFetchGuard(),
	}
	s.step, s.sub = ResumeStep(q)
	s.input = BufferFromQuote(q)
	s.lastSeen.Store(u.now().UnixNano())

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	if s.step == StepQuote {
		if err := u.regeneratePlans(ctx, s); err != nil && !errors.Is(err, ErrSuperseded) {
			log.Warn().Err(err).Str("session_id", s.id).Msg("plan regeneration on resume failed")
		}
	}
	log.Info().Str("session_id", s.id).Str("quote_id", q.ID).Int("step", int(s.step)).Msg("flow session started")

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), nil
}

func (u *QuoteFlowUseCase) View(_ context.Context, sessionID string) (SessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), nil
}

func (u *QuoteFlowUseCase) Abandon(_ context.Context, sessionID string) error {
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	delete(u.sessions, sessionID)
	u.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	quoteID := s.close()
	logger.For("flow", "usecase").Info().Str("session_id", s.id).Str("quote_id", quoteID).Msg("flow session abandoned")
	return nil
}

// SweepIdle closes every session not looked up within SessionIdleTTL of now
// and returns how many were closed.
func (u *QuoteFlowUseCase) SweepIdle(now time.Time) int {
	if u.opts.SessionIdleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-u.opts.SessionIdleTTL).UnixNano()

	u.mu.Lock()
	var idle []*flowSession
	for id, s := range u.sessions {
		if s.lastSeen.Load() < cutoff {
			idle = append(idle, s)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, s := range idle {
		s.close()
	}
	if len(idle) > 0 {
		logger.For("flow", "usecase").Info().Int("sessions", len(idle)).Dur("idle_ttl", u.opts.SessionIdleTTL).Msg("idle flow sessions closed")
	}
	return len(idle)
}

// RunIdleSweep calls SweepIdle every interval until ctx is done.
func (u *QuoteFlowUseCase) RunIdleSweep(ctx context.Context, interval time.Duration) {
	if u.opts.SessionIdleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.SweepIdle(u.now())
		}
	}
}

func (u *QuoteFlowUseCase) session(id string) (*flowSession, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	s, ok := u.sessions[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen.Store(u.now().UnixNano())
	return s, nil
}

// close cancels in-flight fetches and returns the held quote ID.
func (s *flowSession) close() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.guard.CancelAll()
	return s.quote.ID
}

// onQuotePersisted refreshes sessions holding a quote written elsewhere, e.g.
// by an approval decision or a payment capture.
func (u *QuoteFlowUseCase) onQuotePersisted(q entities.QuoteRequest) {
	u.mu.RLock()
	var holders []*flowSession
	for _, s := range u.sessions {
		holders = append(holders, s)
	}
	u.mu.RUnlock()

	for _, s := range holders {
		s.mu.Lock()
		if !s.closed && s.quote.ID == q.ID {
			s.quote = q.Clone()
			for i, p := range s.unsynced {
				s.unsynced[i] = p.RebaseOnto(q.Status)
				s.unsynced[i].Apply(&s.quote)
			}
			if q.Status == entities.QuoteStatusIssued {
				s.sub.PolicyIssued = true
				s.sub.QuoteSent = true
			}
			if q.Status == entities.QuoteStatusApprovalGranted || q.Status == entities.QuoteStatusApprovalRejected {
				s.sub.ExceptionSent = false
			}
		}
		s.mu.Unlock()
	}
}

// write runs one gateway call for the session. The session's unsynced
// patches are passed first so a retry carries everything a failed write
// held. On ErrPersistenceFailure the merged aggregate is kept locally.
// Unsynced status changes the stored aggregate has moved past are dropped
// and the call is retried once without them.
func (u *QuoteFlowUseCase) write(s *flowSession, call func(base entities.QuoteRequest, pending []entities.QuotePatch) (entities.QuoteRequest, error)) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	base := s.quote.Clone()
	pending := append([]entities.QuotePatch(nil), s.unsynced...)
	s.mu.Unlock()

	merged, err := call(base, pending)
	if errors.Is(err, ErrInvalidStatusTransition) && carriesLifecycle(pending) {
		logger.For("flow", "usecase").Warn().Err(err).Str("session_id", s.id).Msg("dropping stale unsynced status change")
		for i := range pending {
			pending[i].Status = nil
			pending[i].Exception = nil
		}
		s.mu.Lock()
		s.unsynced = append([]entities.QuotePatch(nil), pending...)
		s.mu.Unlock()
		merged, err = call(base, pending)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err == nil:
		s.quote = merged
		s.unsynced = nil
	case errors.Is(err, ErrPersistenceFailure):
		s.quote = merged
		s.unsynced = []entities.QuotePatch{entities.SnapshotPatch(merged)}
		s.notices = append(s.notices, "Draft could not be saved; it will be retried on the next change")
	}
	return err
}

func carriesLifecycle(patches []entities.QuotePatch) bool {
	for _, p := range patches {
		if p.Status != nil || p.Exception != nil {
			return true
		}
	}
	return false
}

func (u *QuoteFlowUseCase) persist(ctx context.Context, s *flowSession, patches ...entities.QuotePatch) error {
	return u.write(s, func(base entities.QuoteRequest, pending []entities.QuotePatch) (entities.QuoteRequest, error) {
		return u.deps.Drafts.Persist(ctx, base, s.actor, append(pending, patches...)...)
	})
}

// regeneratePlans is side-effect free beyond the session's plan list.
func (u *QuoteFlowUseCase) regeneratePlans(ctx context.Context, s *flowSession) error {
	s.mu.Lock()
	q := s.quote.Clone()
	fetchCtx, token := s.guard.Begin(ctx, fetchPlans)
	s.mu.Unlock()
	defer s.guard.Done(fetchPlans, token)

	plans, notice := u.generatePlans(fetchCtx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.guard.Valid(fetchPlans, token) {
		return ErrSuperseded
	}
	s.plans = plans
	if notice != "" {
		s.notices = append(s.notices, notice)
	}
	return nil
}

func (u *QuoteFlowUseCase) generatePlans(ctx context.Context, q entities.QuoteRequest) ([]entities.InsurancePlan, string) {
	log := logger.For("flow", "usecase")
	in := interfaces.RiskInputs{InsuranceType: q.InsuranceType, Vehicle: q.Vehicle, Travel: q.TravelCriteria}

	plans, err := u.deps.Plans.Generate(ctx, in)
	u.deps.Metrics.CollaboratorCall("plans", callResult(err))
	if err == nil && len(plans) > 0 {
		return plans, ""
	}
	log.Warn().Err(err).Str("quote_id", q.ID).Int("plans", len(plans)).Msg("plan generation failed; using fallback plans")

	fallback, ferr := u.deps.FallbackPlans.Generate(ctx, in)
	if ferr != nil || len(fallback) == 0 {
		log.Error().Err(ferr).Str("quote_id", q.ID).Msg("fallback plan generation failed")
		return nil, "Plans are unavailable right now; try again"
	}
	return fallback, "Pricing service unavailable; showing indicative plans"
}

// view builds the read model. Caller holds s.mu.
func (u *QuoteFlowUseCase) view(s *flowSession) SessionView {
	q := s.quote.Clone()
	v := SessionView{
		SessionID:      s.id,
		Step:           s.step,
		ReadOnly:       q.ReadOnly(),
		SubViews:       s.sub,
		Quote:          q,
		Input:          s.input,
		Derived:        s.input.Derived(q.InsuranceType),
		Eligibility:    ResolveEligibility(q),
		PaymentLinkURL: s.paymentLinkURL,
		Notices:        append([]string(nil), s.notices...),
		PendingSync:    len(s.unsynced) > 0,
	}
	if len(s.fieldErrors) > 0 {
		v.FieldErrors = make(map[string]string, len(s.fieldErrors))
		for k, msg := range s.fieldErrors {
			v.FieldErrors[k] = msg
		}
	}
	if d := s.pendingDraft; d != nil {
		sum := &DraftSummary{ID: d.ID, QuoteReference: d.QuoteReference, InsuranceType: d.InsuranceType, CreatedAt: d.CreatedAt}
		if d.Vehicle != nil {
			sum.PlateNumber = d.Vehicle.PlateNumber
		}
		if d.TravelCriteria != nil {
			sum.Destination = d.TravelCriteria.Destination
		}
		v.PendingDraft = sum
	}

	method := q.PaymentMethod
	if method == "" {
		method = entities.PaymentMethodFull
	}
	priced, err := pricing.PricePlans(s.plans, q.DiscountPercent(), method)
	if err != nil {
		v.Notices = append(v.Notices, "Plans could not be priced: "+err.Error())
		priced = nil
	}
	v.Plans = priced
	for i := range priced {
		if priced[i].Plan.ID == q.SelectedPlanID {
			p := priced[i]
			v.SelectedPlan = &p
			break
		}
	}
	return v
}

// fail records field errors from err on the session and returns err.
// Caller holds s.mu.
func (s *flowSession) fail(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		s.fieldErrors = map[string]string{}
		for k, msg := range verr.Fields {
			s.fieldErrors[k] = msg
		}
	}
	var derr *DiscountError
	if errors.As(err, &derr) {
		s.fieldErrors = map[string]string{"discount_code": derr.Reason}
	}
	return err
}

// reject records err on the session and returns the resulting view.
// Caller holds s.mu.
func (u *QuoteFlowUseCase) reject(s *flowSession, err error) (SessionView, error) {
	err = s.fail(err)
	return u.view(s), err
}

// begin resets per-action messages and checks the common preconditions.
// Caller holds s.mu.
func (s *flowSession) begin(steps ...Step) error {
	if s.closed {
		return ErrSessionNotFound
	}
	s.fieldErrors = nil
	s.notices = nil
	if s.quote.ReadOnly() {
		return ErrQuoteReadOnly
	}
	if len(steps) == 0 {
		return nil
	}
	for _, st := range steps {
		if s.step == st {
			return nil
		}
	}
	return ErrInvalidStep
}

func (s *flowSession) notice(msg string) {
	for _, n := range s.notices {
		if n == msg {
			return
		}
	}
	s.notices = append(s.notices, msg)
}
