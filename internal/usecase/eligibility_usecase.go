package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"
)

// Eligibility is derived from the aggregate on every read and never stored.
type Eligibility struct {
	NaturallyEligible      bool `json:"naturally_eligible"`
	ExceptionGranted       bool `json:"exception_granted"`
	EligibleForInstallment bool `json:"eligible_for_installment"`
	PendingApproval        bool `json:"pending_approval"`
	ExceptionRejected      bool `json:"exception_rejected"`
	CanRequestException    bool `json:"can_request_exception"`
	InstallmentSelectable  bool `json:"installment_selectable"`
}

// ResolveEligibility is pure over the aggregate.
func ResolveEligibility(q entities.QuoteRequest) Eligibility {
	e := Eligibility{
		NaturallyEligible: q.Customer.IsEligibleForInstallments,
		ExceptionGranted:  q.Status == entities.QuoteStatusApprovalGranted,
		PendingApproval:   q.Status == entities.QuoteStatusPendingApproval,
		ExceptionRejected: q.Status == entities.QuoteStatusApprovalRejected,
	}
	e.EligibleForInstallment = e.NaturallyEligible || e.ExceptionGranted
	e.CanRequestException = q.SelectedPlanID != "" && !e.NaturallyEligible && !e.PendingApproval &&
		!e.ExceptionGranted && !q.ReadOnly()
	e.InstallmentSelectable = e.EligibleForInstallment && !e.PendingApproval
	return e
}

// SubscriberCheck is the outcome of the eligibility service call made when a
// new customer's contact data is submitted.
type SubscriberCheck struct {
	Customer     *entities.CustomerPatch
	DraftExists  bool
	Draft        entities.QuoteRequest
	Message      string
	LookupFailed bool
}

// IEligibilityUseCase covers the subscriber check and the exception sub-flow.
type IEligibilityUseCase interface {
	CheckSubscriber(ctx context.Context, current entities.QuoteRequest, contact interfaces.ContactInfo) (SubscriberCheck, error)
	RequestException(ctx context.Context, current entities.QuoteRequest, plan entities.InsurancePlan, actor Actor, patches ...entities.QuotePatch) (entities.QuoteRequest, error)
	ResolveException(ctx context.Context, decision interfaces.ApprovalDecision) (entities.QuoteRequest, error)
}

type EligibilityUseCase struct {
	checker  interfaces.IEligibilityChecker
	approval interfaces.IApprovalService
	drafts   IDraftUseCase
	metrics  Metrics
	now      func() time.Time
}

var _ IEligibilityUseCase = (*EligibilityUseCase)(nil)

func NewEligibilityUseCase(checker interfaces.IEligibilityChecker, approval interfaces.IApprovalService, drafts IDraftUseCase, metrics Metrics) *EligibilityUseCase {
	return &EligibilityUseCase{
		checker:  checker,
		approval: approval,
		drafts:   drafts,
		metrics:  metricsOrNoop(metrics),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// draftSignal marks an eligibility message that reports an in-flight draft.
const draftSignal = "draft"

// CheckSubscriber asks the eligibility service about the subscriber. A service
// fault is reported as ErrLookupFailure together with a patch carrying the
// contact data, so the flow can continue manually.
func (u *EligibilityUseCase) CheckSubscriber(ctx context.Context, current entities.QuoteRequest, contact interfaces.ContactInfo) (SubscriberCheck, error) {
	log := logger.For("eligibility", "usecase")

	cpr := strings.TrimSpace(current.Customer.CPR)
	if cpr == "" {
		return SubscriberCheck{}, NewValidationError("cpr", "is required")
	}

	out := SubscriberCheck{
		Customer: &entities.CustomerPatch{
			FullName: entities.Ptr(strings.TrimSpace(contact.FullName)),
			Mobile:   entities.Ptr(strings.TrimSpace(contact.Mobile)),
			Email:    entities.Ptr(strings.TrimSpace(contact.Email)),
		},
	}

	res, err := u.checker.Check(ctx, cpr, contact)
	u.metrics.CollaboratorCall("eligibility", callResult(err))
	if err != nil || !res.Success {
		if err == nil {
			err = fmt.Errorf("%s", strings.TrimSpace(res.Message))
		}
		log.Warn().Err(err).Str("cpr", cpr).Msg("eligibility check failed; continuing manually")
		out.LookupFailed = true
		out.Message = "Eligibility service unavailable; continue manually"
		out.Customer.IsEligibleForZain = entities.Ptr(false)
		out.Customer.IsEligibleForInstallments = entities.Ptr(false)
		return out, fmt.Errorf("%w: eligibility: %v", ErrLookupFailure, err)
	}

	out.Message = res.Message
	if strings.Contains(strings.ToLower(res.Message), draftSignal) {
		draft, found, err := u.drafts.FindInFlightDraft(ctx, cpr, current.ID)
		if err != nil {
			log.Warn().Err(err).Str("cpr", cpr).Msg("draft lookup failed; treating customer as fresh")
		} else if found {
			out.DraftExists = true
			out.Draft = draft
			return out, nil
		}
	}

	installments := res.IsEligible
	if res.InstallmentEligible != nil {
		installments = *res.InstallmentEligible
	}
	out.Customer.ZainPlan = entities.Ptr(res.Plan)
	out.Customer.IsEligibleForZain = entities.Ptr(res.IsEligible)
	out.Customer.IsEligibleForInstallments = entities.Ptr(installments)
	if res.CreditScore != 0 {
		out.Customer.CreditScore = entities.Ptr(res.CreditScore)
	}
	if res.ActiveLines != nil {
		out.Customer.ActiveLines = append([]string{}, res.ActiveLines...)
	}
	return out, nil
}

// RequestException submits the plan for manual approval and persists
// PENDING_APPROVAL with the plan provider/name. The decision arrives later
// through ResolveException.
func (u *EligibilityUseCase) RequestException(ctx context.Context, current entities.QuoteRequest, plan entities.InsurancePlan, actor Actor, patches ...entities.QuotePatch) (entities.QuoteRequest, error) {
	log := logger.For("eligibility", "usecase")

	if current.ReadOnly() {
		return current, ErrQuoteReadOnly
	}
	if strings.TrimSpace(plan.ID) == "" {
		return current, ErrNoPlanSelected
	}
	view := ResolveEligibility(current)
	if !view.CanRequestException {
		return current, ErrExceptionNotAllowed
	}
	if !current.Status.CanTransitionTo(entities.QuoteStatusPendingApproval) {
		return current, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, statusOrDraft(current.Status), entities.QuoteStatusPendingApproval)
	}

	ticket, err := u.approval.Submit(ctx, interfaces.ApprovalRequest{
		QuoteID:        current.ID,
		QuoteReference: current.QuoteReference,
		CustomerCPR:    current.Customer.CPR,
		PlanID:         plan.ID,
		PlanProvider:   plan.Provider,
		PlanName:       plan.Name,
		AgentID:        actor.AgentID,
	})
	u.metrics.CollaboratorCall("approval", callResult(err))
	if err != nil {
		log.Error().Err(err).Str("quote_id", current.ID).Msg("approval submission failed")
		return current, fmt.Errorf("%w: approval: %v", ErrLookupFailure, err)
	}

	patch := entities.QuotePatch{
		Status: entities.Ptr(entities.QuoteStatusPendingApproval),
		Exception: &entities.ExceptionRequest{
			TicketID:     ticket,
			PlanID:       plan.ID,
			PlanProvider: plan.Provider,
			PlanName:     plan.Name,
			RequestedAt:  u.now(),
		},
	}
	all := append(append([]entities.QuotePatch{}, patches...), patch)
	updated, err := u.drafts.Persist(ctx, current, actor, all...)
	if err != nil {
		return updated, err
	}
	log.Info().Str("quote_id", updated.ID).Str("ticket_id", ticket).Str("plan_id", plan.ID).Msg("exception requested")
	return updated, nil
}

// ResolveException applies the approval outcome to the quote it was raised for.
func (u *EligibilityUseCase) ResolveException(ctx context.Context, decision interfaces.ApprovalDecision) (entities.QuoteRequest, error) {
	log := logger.For("eligibility", "usecase")

	decision.TicketID = strings.TrimSpace(decision.TicketID)
	if decision.TicketID == "" {
		return entities.QuoteRequest{}, NewValidationError("ticket_id", "is required")
	}
	q, err := u.drafts.Load(ctx, decision.QuoteID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.Exception == nil || q.Exception.TicketID != decision.TicketID {
		return q, ErrApprovalTicketMismatch
	}
	if q.Status != entities.QuoteStatusPendingApproval {
		return q, fmt.Errorf("%w: %s is not awaiting approval", ErrInvalidStatusTransition, q.Status)
	}

	next := entities.QuoteStatusApprovalRejected
	if decision.Granted {
		next = entities.QuoteStatusApprovalGranted
	}
	exc := *q.Exception
	decidedAt := u.now()
	exc.DecidedAt = &decidedAt
	exc.Reason = strings.TrimSpace(decision.Reason)

	updated, err := u.drafts.Persist(ctx, q, Actor{}, entities.QuotePatch{Status: entities.Ptr(next), Exception: &exc})
	if err != nil {
		return updated, err
	}
	log.Info().Str("quote_id", updated.ID).Str("ticket_id", decision.TicketID).Str("status", string(next)).Msg("exception resolved")
	return updated, nil
}
