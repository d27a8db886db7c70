package usecase

import (
	"context"
	"errors"
	"testing"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
	mock_interfaces "takaful_quote/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveEligibility(t *testing.T) {
	tests := []struct {
		name string
		q    entities.QuoteRequest
		want Eligibility
	}{
		{
			name: "naturally eligible",
			q:    entities.QuoteRequest{Status: entities.QuoteStatusDraft, SelectedPlanID: "p", Customer: entities.Customer{IsEligibleForInstallments: true}},
			want: Eligibility{NaturallyEligible: true, EligibleForInstallment: true, InstallmentSelectable: true},
		},
		{
			name: "not eligible without plan cannot request",
			q:    entities.QuoteRequest{Status: entities.QuoteStatusDraft},
			want: Eligibility{},
		},
		{
			name: "not eligible with plan can request",
			q:    entities.QuoteRequest{Status: entities.QuoteStatusDraft, SelectedPlanID: "p"},
			want: Eligibility{CanRequestException: true},
		},
		{
			name: "pending approval",
			q:    entities.QuoteRequest{Status: entities.QuoteStatusPendingApproval, SelectedPlanID: "p"},
			want: Eligibility{PendingApproval: true},
		},
		{
			name: "granted",
			q:    entities.QuoteRequest{Status: entities.QuoteStatusApprovalGranted, SelectedPlanID: "p"},
			want: Eligibility{ExceptionGranted: true, EligibleForInstallment: true, InstallmentSelectable: true},
		},
		{
			name: "rejected may ask again",
			q:    entities.QuoteRequest{Status: entities.QuoteStatusApprovalRejected, SelectedPlanID: "p"},
			want: Eligibility{ExceptionRejected: true, CanRequestException: true},
		},
		{
			name: "issued is read-only",
			q:    entities.QuoteRequest{Status: entities.QuoteStatusIssued, SelectedPlanID: "p"},
			want: Eligibility{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveEligibility(tt.q))
		})
	}
}

func TestResolveEligibility_InstallmentIffNaturalOrGranted(t *testing.T) {
	statuses := []entities.QuoteStatus{
		entities.QuoteStatusDraft, entities.QuoteStatusLinkSent, entities.QuoteStatusPaymentPending,
		entities.QuoteStatusPendingApproval, entities.QuoteStatusApprovalGranted, entities.QuoteStatusApprovalRejected,
	}
	for _, s := range statuses {
		for _, natural := range []bool{true, false} {
			q := entities.QuoteRequest{Status: s, Customer: entities.Customer{IsEligibleForInstallments: natural}}
			want := natural || s == entities.QuoteStatusApprovalGranted
			if got := ResolveEligibility(q).EligibleForInstallment; got != want {
				t.Fatalf("status=%s natural=%v: expected %v, got %v", s, natural, want, got)
			}
		}
	}
}

type eligibilityFixture struct {
	checker  *mock_interfaces.MockIEligibilityChecker
	approval *mock_interfaces.MockIApprovalService
	repo     *memoryQuoteRepo
	drafts   *DraftUseCase
	uc       *EligibilityUseCase
}

func newEligibilityFixture(t *testing.T) eligibilityFixture {
	ctrl := gomock.NewController(t)
	f := eligibilityFixture{
		checker:  mock_interfaces.NewMockIEligibilityChecker(ctrl),
		approval: mock_interfaces.NewMockIApprovalService(ctrl),
		repo:     newMemoryQuoteRepo(),
	}
	f.drafts = newTestDraftUseCase(f.repo)
	f.uc = NewEligibilityUseCase(f.checker, f.approval, f.drafts, nil)
	f.uc.now = fixedClock
	return f
}

func (f eligibilityFixture) seed(t *testing.T, patches ...entities.QuotePatch) entities.QuoteRequest {
	t.Helper()
	q, err := f.drafts.Persist(context.Background(), motorQuote(), agent, patches...)
	require.NoError(t, err)
	return q
}

func TestEligibilityUseCase_CheckSubscriber(t *testing.T) {
	f := newEligibilityFixture(t)
	current := f.seed(t, entities.QuotePatch{Customer: &entities.CustomerPatch{CPR: entities.Ptr("880101234")}})
	contact := interfaces.ContactInfo{FullName: " Ali Hasan ", Mobile: "36000000"}

	installments := false
	f.checker.EXPECT().Check(gomock.Any(), "880101234", contact).Return(interfaces.EligibilityCheckResult{
		Success: true, IsEligible: true, Plan: "Zain Plus", InstallmentEligible: &installments, CreditScore: 640,
	}, nil)

	res, err := f.uc.CheckSubscriber(context.Background(), current, contact)
	require.NoError(t, err)
	assert.False(t, res.DraftExists)
	assert.Equal(t, "Ali Hasan", *res.Customer.FullName)
	assert.Equal(t, "Zain Plus", *res.Customer.ZainPlan)
	assert.True(t, *res.Customer.IsEligibleForZain)
	assert.False(t, *res.Customer.IsEligibleForInstallments)
	assert.Equal(t, 640, *res.Customer.CreditScore)
}

func TestEligibilityUseCase_CheckSubscriberFindsDraft(t *testing.T) {
	f := newEligibilityFixture(t)
	existing := f.seed(t, entities.QuotePatch{Customer: &entities.CustomerPatch{CPR: entities.Ptr("880101230")}})
	current := f.seed(t, entities.QuotePatch{Customer: &entities.CustomerPatch{CPR: entities.Ptr("880101230")}})

	f.checker.EXPECT().Check(gomock.Any(), "880101230", gomock.Any()).Return(interfaces.EligibilityCheckResult{
		Success: true, Message: "Subscriber has an existing DRAFT",
	}, nil)

	res, err := f.uc.CheckSubscriber(context.Background(), current, interfaces.ContactInfo{FullName: "Ali", Mobile: "36000000"})
	require.NoError(t, err)
	assert.True(t, res.DraftExists)
	assert.Equal(t, existing.ID, res.Draft.ID)
}

func TestEligibilityUseCase_CheckSubscriberLookupFailure(t *testing.T) {
	f := newEligibilityFixture(t)
	current := f.seed(t, entities.QuotePatch{Customer: &entities.CustomerPatch{CPR: entities.Ptr("880101234")}})

	f.checker.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.EligibilityCheckResult{}, errors.New("timeout"))
	res, err := f.uc.CheckSubscriber(context.Background(), current, interfaces.ContactInfo{FullName: "Ali", Mobile: "36000000"})
	assert.ErrorIs(t, err, ErrLookupFailure)
	assert.True(t, res.LookupFailed)
	require.NotNil(t, res.Customer)
	assert.Equal(t, "36000000", *res.Customer.Mobile, "contact data survives a failed check")

	f.checker.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.EligibilityCheckResult{Success: false, Message: "no subscriber"}, nil)
	_, err = f.uc.CheckSubscriber(context.Background(), current, interfaces.ContactInfo{})
	assert.ErrorIs(t, err, ErrLookupFailure)

	_, err = f.uc.CheckSubscriber(context.Background(), entities.QuoteRequest{}, interfaces.ContactInfo{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEligibilityUseCase_ExceptionLifecycle(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	plan := entities.InsurancePlan{ID: "motor-comprehensive", Provider: "Takaful International", Name: "Comprehensive", BasePremium: 250}
	current := f.seed(t, entities.QuotePatch{
		Customer:       &entities.CustomerPatch{CPR: entities.Ptr("880101233")},
		SelectedPlanID: entities.Ptr(plan.ID),
		PaymentMethod:  entities.Ptr(entities.PaymentMethodInstallment),
	})

	f.approval.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.ApprovalRequest) (string, error) {
		assert.Equal(t, current.ID, req.QuoteID)
		assert.Equal(t, "Takaful International", req.PlanProvider)
		return "APR-1", nil
	})

	pending, err := f.uc.RequestException(ctx, current, plan, agent)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusPendingApproval, pending.Status)
	require.NotNil(t, pending.Exception)
	assert.Equal(t, "APR-1", pending.Exception.TicketID)
	assert.Equal(t, "Comprehensive", pending.Exception.PlanName)

	view := ResolveEligibility(pending)
	assert.False(t, view.InstallmentSelectable)
	assert.False(t, view.CanRequestException)

	_, err = f.uc.RequestException(ctx, pending, plan, agent)
	assert.ErrorIs(t, err, ErrExceptionNotAllowed)

	_, err = f.uc.ResolveException(ctx, interfaces.ApprovalDecision{TicketID: "APR-other", QuoteID: current.ID, Granted: true})
	assert.ErrorIs(t, err, ErrApprovalTicketMismatch)

	granted, err := f.uc.ResolveException(ctx, interfaces.ApprovalDecision{TicketID: "APR-1", QuoteID: current.ID, Granted: true})
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusApprovalGranted, granted.Status)
	require.NotNil(t, granted.Exception.DecidedAt)
	assert.True(t, ResolveEligibility(granted).InstallmentSelectable)

	_, err = f.uc.ResolveException(ctx, interfaces.ApprovalDecision{TicketID: "APR-1", QuoteID: current.ID, Granted: false})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestEligibilityUseCase_RequestExceptionPreconditions(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()

	eligible := f.seed(t, entities.QuotePatch{
		SelectedPlanID: entities.Ptr("p"),
		Customer:       &entities.CustomerPatch{IsEligibleForInstallments: entities.Ptr(true)},
	})
	_, err := f.uc.RequestException(ctx, eligible, entities.InsurancePlan{ID: "p"}, agent)
	assert.ErrorIs(t, err, ErrExceptionNotAllowed)

	_, err = f.uc.RequestException(ctx, eligible, entities.InsurancePlan{}, agent)
	assert.ErrorIs(t, err, ErrNoPlanSelected)

	notEligible := f.seed(t, entities.QuotePatch{SelectedPlanID: entities.Ptr("p")})
	f.approval.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("", errors.New("approval service down"))
	_, err = f.uc.RequestException(ctx, notEligible, entities.InsurancePlan{ID: "p"}, agent)
	assert.ErrorIs(t, err, ErrLookupFailure)
	assert.Equal(t, entities.QuoteStatusDraft, f.repo.stored(notEligible.ID).Status)
}

func TestEligibilityUseCase_RejectedDecision(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	current := f.seed(t, entities.QuotePatch{SelectedPlanID: entities.Ptr("p")})

	f.approval.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("APR-9", nil)
	_, err := f.uc.RequestException(ctx, current, entities.InsurancePlan{ID: "p"}, agent)
	require.NoError(t, err)

	rejected, err := f.uc.ResolveException(ctx, interfaces.ApprovalDecision{TicketID: "APR-9", QuoteID: current.ID, Reason: " credit "})
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusApprovalRejected, rejected.Status)
	assert.Equal(t, "credit", rejected.Exception.Reason)
	assert.True(t, ResolveEligibility(rejected).CanRequestException)

	_, err = f.uc.ResolveException(ctx, interfaces.ApprovalDecision{QuoteID: current.ID})
	assert.ErrorIs(t, err, ErrValidation)
}
