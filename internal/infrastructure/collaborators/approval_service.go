package collaborators

import (
	"context"
	"strings"
	"sync"
	"time"

	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"

	"github.com/google/uuid"
)

// DecisionResolver receives the outcome of a submitted exception.
type DecisionResolver func(ctx context.Context, decision interfaces.ApprovalDecision) error

// MockApprovalService adjudicates every exception after a fixed delay. The
// decision is delivered through the resolver, the same path an external
// adjudicator uses via the approvals endpoint.
type MockApprovalService struct {
	delay   time.Duration
	granted bool

	mu       sync.Mutex
	resolver DecisionResolver
	timers   map[string]*time.Timer
	closed   bool
}

var _ interfaces.IApprovalService = (*MockApprovalService)(nil)

func NewMockApprovalService(delay time.Duration, outcome string) *MockApprovalService {
	return &MockApprovalService{
		delay:   delay,
		granted: !strings.EqualFold(strings.TrimSpace(outcome), "rejected"),
		timers:  make(map[string]*time.Timer),
	}
}

// SetResolver wires the decision sink. Decisions made before a resolver is
// set are dropped.
func (m *MockApprovalService) SetResolver(r DecisionResolver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolver = r
}

func (m *MockApprovalService) Submit(_ context.Context, req interfaces.ApprovalRequest) (string, error) {
	ticket := "APR-" + strings.ToUpper(uuid.NewString()[:8])
	decision := interfaces.ApprovalDecision{TicketID: ticket, QuoteID: req.QuoteID, Granted: m.granted}
	if !m.granted {
		decision.Reason = "Installment exception declined by underwriting"
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", context.Canceled
	}
	m.timers[ticket] = time.AfterFunc(m.delay, func() { m.deliver(decision) })
	logger.For("approval", "collaborator").Info().
		Str("ticket_id", ticket).
		Str("quote_id", req.QuoteID).
		Dur("delay", m.delay).
		Msg("mock exception submitted")
	return ticket, nil
}

func (m *MockApprovalService) deliver(decision interfaces.ApprovalDecision) {
	m.mu.Lock()
	delete(m.timers, decision.TicketID)
	resolver := m.resolver
	m.mu.Unlock()

	log := logger.For("approval", "collaborator")
	if resolver == nil {
		log.Warn().Str("ticket_id", decision.TicketID).Msg("no resolver; decision dropped")
		return
	}
	if err := resolver(context.Background(), decision); err != nil {
		log.Error().Err(err).Str("ticket_id", decision.TicketID).Msg("decision delivery failed")
		return
	}
	log.Info().Str("ticket_id", decision.TicketID).Bool("granted", decision.Granted).Msg("mock decision delivered")
}

// Close stops pending decisions.
func (m *MockApprovalService) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for id, t := range m.timers {
		t.Stop()
		delete(m.timers, id)
	}
}
