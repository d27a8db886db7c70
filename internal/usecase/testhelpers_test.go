package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/pkg/logger"
)

func init() {
	logger.Disable()
}

var fixedNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// memoryQuoteRepo is a small in-test durable store.
type memoryQuoteRepo struct {
	mu      sync.Mutex
	quotes  map[string]entities.QuoteRequest
	saves   int
	saveErr error
}

func newMemoryQuoteRepo() *memoryQuoteRepo {
	return &memoryQuoteRepo{quotes: map[string]entities.QuoteRequest{}}
}

func (r *memoryQuoteRepo) Save(_ context.Context, q entities.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.quotes[q.ID] = q.Clone()
	return nil
}

func (r *memoryQuoteRepo) GetByID(_ context.Context, id string) (entities.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quotes[id].Clone(), nil
}

func (r *memoryQuoteRepo) GetByReference(_ context.Context, ref string) (entities.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.quotes {
		if q.QuoteReference == ref {
			return q.Clone(), nil
		}
	}
	return entities.QuoteRequest{}, nil
}

func (r *memoryQuoteRepo) FindLatestDraftByCPR(_ context.Context, cpr, excludeID string) (entities.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest entities.QuoteRequest
	for _, q := range r.quotes {
		if q.Customer.CPR == cpr && q.Status == entities.QuoteStatusDraft && q.ID != excludeID && q.HasRiskDetails() {
			if latest.ID == "" || q.CreatedAt.After(latest.CreatedAt) {
				latest = q
			}
		}
	}
	return latest.Clone(), nil
}

func (r *memoryQuoteRepo) failSaves(err error) {
	r.mu.Lock()
	r.saveErr = err
	r.mu.Unlock()
}

func (r *memoryQuoteRepo) stored(id string) entities.QuoteRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quotes[id].Clone()
}

// memorySessionStore stands in for the Redis session draft store.
type memorySessionStore struct {
	mu     sync.Mutex
	quotes map[string]entities.QuoteRequest
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{quotes: map[string]entities.QuoteRequest{}}
}

func (m *memorySessionStore) Put(_ context.Context, q entities.QuoteRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[q.ID] = q.Clone()
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, id string) (entities.QuoteRequest, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[id]
	return q.Clone(), ok, nil
}

func (m *memorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.quotes, id)
	return nil
}

type sequentialReferences struct {
	mu sync.Mutex
	n  int
}

func (s *sequentialReferences) NextReference(_ context.Context, _ entities.InsuranceType) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("TKF-MOT-%06d", s.n), nil
}

type failingReferences struct{}

func (failingReferences) NextReference(context.Context, entities.InsuranceType) (string, error) {
	return "", errors.New("counter unavailable")
}

type recordingMetrics struct {
	mu          sync.Mutex
	persist     map[string]int
	calls       map[string]int
	transitions []string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{persist: map[string]int{}, calls: map[string]int{}}
}

func (m *recordingMetrics) PersistResult(result string) {
	m.mu.Lock()
	m.persist[result]++
	m.mu.Unlock()
}

func (m *recordingMetrics) CollaboratorCall(collaborator, result string) {
	m.mu.Lock()
	m.calls[collaborator+":"+result]++
	m.mu.Unlock()
}

func (m *recordingMetrics) StatusTransition(status string) {
	m.mu.Lock()
	m.transitions = append(m.transitions, status)
	m.mu.Unlock()
}

func newTestDraftUseCase(repo *memoryQuoteRepo) *DraftUseCase {
	uc := NewDraftUseCase(repo, nil, &sequentialReferences{}, nil).WithClock(fixedClock)
	return uc
}
