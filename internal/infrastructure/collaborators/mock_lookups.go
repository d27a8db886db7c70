package collaborators

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"
)

// Mock collaborators answer deterministically from their inputs so the flow
// can run without the collaborator gateway (COLLABORATORS_MOCK).

type MockCustomerDirectory struct {
	mu        sync.RWMutex
	customers map[string]entities.Customer
}

var _ interfaces.ICustomerLookup = (*MockCustomerDirectory)(nil)

func NewMockCustomerDirectory(seed ...entities.Customer) *MockCustomerDirectory {
	d := &MockCustomerDirectory{customers: make(map[string]entities.Customer)}
	for _, c := range seed {
		d.customers[c.CPR] = c
	}
	return d
}

func (d *MockCustomerDirectory) FindByCPR(_ context.Context, cpr string) (entities.Customer, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.customers[cpr]
	return c, ok, nil
}

var mockMakes = []struct {
	make   string
	models []string
}{
	{"TOYOTA", []string{"CAMRY", "LAND CRUISER", "COROLLA"}},
	{"NISSAN", []string{"PATROL", "SUNNY", "ALTIMA"}},
	{"LEXUS", []string{"LX600", "ES350"}},
	{"HYUNDAI", []string{"ELANTRA", "TUCSON"}},
}

type MockVehicleLookup struct {
	now func() time.Time
}

var _ interfaces.IVehicleLookup = (*MockVehicleLookup)(nil)

func NewMockVehicleLookup() *MockVehicleLookup {
	return &MockVehicleLookup{now: func() time.Time { return time.Now().UTC() }}
}

// LookupMotor reports plates ending in 0 as unknown.
func (m *MockVehicleLookup) LookupMotor(_ context.Context, plateNumber string) (interfaces.MotorLookupResult, error) {
	plate := entities.NormalizePlate(plateNumber)
	if plate == "" || strings.HasSuffix(plate, "0") {
		return interfaces.MotorLookupResult{Success: false, Error: "vehicle not found"}, nil
	}
	h := hashOf(plate)
	brand := mockMakes[h%uint32(len(mockMakes))]
	model := brand.models[(h/7)%uint32(len(brand.models))]
	year := m.now().Year() - int(h%8)
	return interfaces.MotorLookupResult{
		Success: true,
		Data: interfaces.MotorData{
			Make:              brand.make,
			Model:             model,
			Year:              year,
			ChassisNumber:     "JT" + strings.ToUpper(plate) + "X" + strconv.Itoa(int(h%100000)),
			BodyType:          []string{"SEDAN", "SUV", "PICKUP"}[h%3],
			EngineSize:        []string{"1.6L", "2.5L", "3.5L", "5.7L"}[h%4],
			RegistrationMonth: time.Month(1 + h%12).String(),
		},
	}, nil
}

type MockRegistryLookup struct {
	now func() time.Time
}

var _ interfaces.IRegistryLookup = (*MockRegistryLookup)(nil)

func NewMockRegistryLookup() *MockRegistryLookup {
	return &MockRegistryLookup{now: func() time.Time { return time.Now().UTC() }}
}

// LookupPolicy reports plates ending in 9 as having no registry record.
func (m *MockRegistryLookup) LookupPolicy(_ context.Context, plateNumber, _ string) (interfaces.RegistryLookupResult, error) {
	plate := entities.NormalizePlate(plateNumber)
	if plate == "" || strings.HasSuffix(plate, "9") {
		return interfaces.RegistryLookupResult{Success: false, Error: "no policy on record"}, nil
	}
	h := hashOf(plate)
	start := m.now().AddDate(0, 0, 1)
	end := start.AddDate(1, 0, -1)
	return interfaces.RegistryLookupResult{
		Success: true,
		Data: interfaces.RegistryData{
			PolicyStartDate: start.Format(entities.DateLayout),
			PolicyEndDate:   end.Format(entities.DateLayout),
			VehicleValue:    float64(4000 + (h%20)*500),
		},
	}, nil
}

type MockEligibilityChecker struct{}

var _ interfaces.IEligibilityChecker = MockEligibilityChecker{}

// Check derives the outcome from the identifier: an even last digit is
// eligible, a last digit of 0 also reports a possible in-flight draft.
func (MockEligibilityChecker) Check(_ context.Context, subscriberID string, contact interfaces.ContactInfo) (interfaces.EligibilityCheckResult, error) {
	id := strings.TrimSpace(subscriberID)
	if id == "" {
		return interfaces.EligibilityCheckResult{Success: false, Message: "subscriber not found"}, nil
	}
	last := id[len(id)-1]
	eligible := (last-'0')%2 == 0
	h := hashOf(id)
	score := 550 + int(h%300)
	res := interfaces.EligibilityCheckResult{
		Success:     true,
		IsEligible:  eligible,
		Plan:        []string{"Zain Basic", "Zain Plus", "Zain Max"}[h%3],
		CreditScore: score,
	}
	if contact.Mobile != "" {
		res.ActiveLines = []string{contact.Mobile}
	}
	installments := eligible && score >= 650
	res.InstallmentEligible = &installments
	if last == '0' {
		res.Message = "An existing draft may exist for this subscriber"
	}
	return res, nil
}

type MockDiscountAuthority struct {
	codes map[string]interfaces.DiscountValidationResult
}

var _ interfaces.IDiscountAuthority = (*MockDiscountAuthority)(nil)

func NewMockDiscountAuthority() *MockDiscountAuthority {
	return &MockDiscountAuthority{codes: map[string]interfaces.DiscountValidationResult{
		"TAKAFUL10": {IsValid: true, DiscountPercent: 10, OwnerLabel: "Marketing"},
		"AGENT5":    {IsValid: true, DiscountPercent: 5, OwnerLabel: "Agent Portal"},
		"STAFF20":   {IsValid: true, DiscountPercent: 20, OwnerLabel: "Staff"},
	}}
}

func (m *MockDiscountAuthority) Validate(_ context.Context, code string) (interfaces.DiscountValidationResult, error) {
	if res, ok := m.codes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return res, nil
	}
	return interfaces.DiscountValidationResult{IsValid: false, Error: "Invalid discount code"}, nil
}

var errUnreachableContact = errors.New("contact number unreachable")

// MockLinkDispatcher logs instead of sending. 00000000 is an unreachable number.
type MockLinkDispatcher struct {
	mu   sync.Mutex
	sent []interfaces.LinkDispatchRequest
}

var _ interfaces.ILinkDispatcher = (*MockLinkDispatcher)(nil)

func NewMockLinkDispatcher() *MockLinkDispatcher {
	return &MockLinkDispatcher{}
}

func (m *MockLinkDispatcher) Dispatch(_ context.Context, req interfaces.LinkDispatchRequest) error {
	if req.ContactNumber == "00000000" {
		return errUnreachableContact
	}
	m.mu.Lock()
	m.sent = append(m.sent, req)
	m.mu.Unlock()
	logger.For("link", "collaborator").Info().
		Str("quote_id", req.QuoteID).
		Str("mode", string(req.Mode)).
		Str("contact", req.ContactNumber).
		Msg("mock payment link dispatched")
	return nil
}

// Sent returns a copy of every dispatched request.
func (m *MockLinkDispatcher) Sent() []interfaces.LinkDispatchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]interfaces.LinkDispatchRequest(nil), m.sent...)
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
