package collaborators

import (
	"context"
	"sync"
	"testing"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockVehicleLookup_Deterministic(t *testing.T) {
	m := NewMockVehicleLookup()
	a, err := m.LookupMotor(context.Background(), "12345")
	require.NoError(t, err)
	b, _ := m.LookupMotor(context.Background(), " 123 45 ")
	assert.True(t, a.Success)
	assert.Equal(t, a, b)

	miss, _ := m.LookupMotor(context.Background(), "55550")
	assert.False(t, miss.Success)
}

func TestMockRegistryLookup(t *testing.T) {
	m := NewMockRegistryLookup()
	m.now = func() time.Time { return time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC) }

	res, _ := m.LookupPolicy(context.Background(), "12345", "")
	require.True(t, res.Success)
	assert.Equal(t, "2026-05-11", res.Data.PolicyStartDate)
	assert.Equal(t, "2027-05-10", res.Data.PolicyEndDate)
	assert.Greater(t, res.Data.VehicleValue, 0.0)

	miss, _ := m.LookupPolicy(context.Background(), "12349", "")
	assert.False(t, miss.Success)
}

func TestMockEligibilityChecker(t *testing.T) {
	var m MockEligibilityChecker

	even, _ := m.Check(context.Background(), "880101234", interfaces.ContactInfo{Mobile: "36000000"})
	assert.True(t, even.Success)
	assert.True(t, even.IsEligible)
	assert.Equal(t, []string{"36000000"}, even.ActiveLines)
	require.NotNil(t, even.InstallmentEligible)

	odd, _ := m.Check(context.Background(), "880101233", interfaces.ContactInfo{})
	assert.False(t, odd.IsEligible)
	assert.False(t, *odd.InstallmentEligible)

	draft, _ := m.Check(context.Background(), "880101230", interfaces.ContactInfo{})
	assert.Contains(t, draft.Message, "draft")

	empty, _ := m.Check(context.Background(), "", interfaces.ContactInfo{})
	assert.False(t, empty.Success)
}

func TestMockPlanGenerator(t *testing.T) {
	var g MockPlanGenerator
	in := interfaces.RiskInputs{
		InsuranceType: entities.InsuranceTypeMotor,
		Vehicle:       &entities.Vehicle{Value: 10000, Year: time.Now().Year()},
	}
	first, err := g.Generate(context.Background(), in)
	require.NoError(t, err)
	second, _ := g.Generate(context.Background(), in)
	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, 250.0, first[1].BasePremium)

	in.Vehicle.AgencyRepair = true
	withAgency, _ := g.Generate(context.Background(), in)
	assert.Equal(t, 287.5, withAgency[1].BasePremium)

	empty, _ := g.Generate(context.Background(), interfaces.RiskInputs{InsuranceType: entities.InsuranceTypeMotor})
	assert.Equal(t, motorMinimumContribution, empty[1].BasePremium)

	travel, _ := g.Generate(context.Background(), interfaces.RiskInputs{
		InsuranceType: entities.InsuranceTypeTravel,
		Travel: &entities.TravelCriteria{
			Destination:   "France",
			TravelType:    entities.TravelTypeSingleTrip,
			DepartureDate: "2026-06-01",
			ReturnDate:    "2026-06-10",
			Adults:        2,
		},
	})
	require.Len(t, travel, 2)
	assert.Equal(t, 30.0, travel[0].BasePremium)
	assert.Equal(t, 54.0, travel[1].BasePremium)
}

func TestMockDiscountAuthority(t *testing.T) {
	m := NewMockDiscountAuthority()
	ok, _ := m.Validate(context.Background(), " takaful10 ")
	assert.True(t, ok.IsValid)
	assert.Equal(t, 10.0, ok.DiscountPercent)

	bad, _ := m.Validate(context.Background(), "NOPE")
	assert.False(t, bad.IsValid)
	assert.NotEmpty(t, bad.Error)
}

func TestMockLinkDispatcher(t *testing.T) {
	m := NewMockLinkDispatcher()
	require.NoError(t, m.Dispatch(context.Background(), interfaces.LinkDispatchRequest{QuoteID: "q-1", ContactNumber: "36000000"}))
	assert.Error(t, m.Dispatch(context.Background(), interfaces.LinkDispatchRequest{ContactNumber: "00000000"}))
	assert.Len(t, m.Sent(), 1)
}

func TestMockApprovalService_DeliversDecision(t *testing.T) {
	m := NewMockApprovalService(10*time.Millisecond, "rejected")
	defer m.Close()

	var (
		wg  sync.WaitGroup
		got interfaces.ApprovalDecision
	)
	wg.Add(1)
	m.SetResolver(func(_ context.Context, d interfaces.ApprovalDecision) error {
		got = d
		wg.Done()
		return nil
	})

	ticket, err := m.Submit(context.Background(), interfaces.ApprovalRequest{QuoteID: "q-1"})
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, ticket, got.TicketID)
	assert.Equal(t, "q-1", got.QuoteID)
	assert.False(t, got.Granted)
	assert.NotEmpty(t, got.Reason)
}

func TestMockApprovalService_CloseStopsPending(t *testing.T) {
	m := NewMockApprovalService(time.Hour, "granted")
	_, err := m.Submit(context.Background(), interfaces.ApprovalRequest{QuoteID: "q-1"})
	require.NoError(t, err)
	m.Close()

	m.mu.Lock()
	pending := len(m.timers)
	m.mu.Unlock()
	assert.Zero(t, pending)

	_, err = m.Submit(context.Background(), interfaces.ApprovalRequest{QuoteID: "q-2"})
	assert.Error(t, err)
}

type fakeCounter struct{ n map[string]int64 }

func (f *fakeCounter) Incr(_ context.Context, key string) (int64, error) {
	f.n[key]++
	return f.n[key], nil
}

func (f *fakeCounter) ReferenceKey(scope string) string { return "tkf:reference:" + scope }

func TestReferenceIssuer(t *testing.T) {
	counter := &fakeCounter{n: map[string]int64{}}
	issuer := NewReferenceIssuer(counter)

	first, err := issuer.NextReference(context.Background(), entities.InsuranceTypeMotor)
	require.NoError(t, err)
	second, _ := issuer.NextReference(context.Background(), entities.InsuranceTypeMotor)
	travel, _ := issuer.NextReference(context.Background(), entities.InsuranceTypeTravel)
	assert.Equal(t, "TKF-MOT-000001", first)
	assert.Equal(t, "TKF-MOT-000002", second)
	assert.Equal(t, "TKF-TRV-000001", travel)

	random, err := NewReferenceIssuer(nil).NextReference(context.Background(), entities.InsuranceTypeTravel)
	require.NoError(t, err)
	assert.Regexp(t, `^TKF-TRV-[0-9A-F]{8}$`, random)
}
