package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
)

// QuoteMemoryRepository backs STORAGE_DRIVER=memory. It keeps the same
// lookup semantics as the DynamoDB repository.
type QuoteMemoryRepository struct {
	mu     sync.RWMutex
	quotes map[string]entities.QuoteRequest
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{quotes: make(map[string]entities.QuoteRequest)}
}

func (r *QuoteMemoryRepository) Save(_ context.Context, q entities.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.quotes[q.ID]; ok && prev.QuoteReference != "" && prev.QuoteReference != q.QuoteReference {
		return fmt.Errorf("put quote %s: quote reference is immutable", q.ID)
	}
	r.quotes[q.ID] = q.Clone()
	return nil
}

func (r *QuoteMemoryRepository) GetByID(_ context.Context, id string) (entities.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quotes[id]
	if !ok {
		return entities.QuoteRequest{}, nil
	}
	return q.Clone(), nil
}

func (r *QuoteMemoryRepository) GetByReference(_ context.Context, reference string) (entities.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.quotes {
		if q.QuoteReference == reference {
			return q.Clone(), nil
		}
	}
	return entities.QuoteRequest{}, nil
}

func (r *QuoteMemoryRepository) FindLatestDraftByCPR(_ context.Context, cpr, excludeID string) (entities.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest entities.QuoteRequest
	for _, q := range r.quotes {
		if q.Customer.CPR != cpr || q.Status != entities.QuoteStatusDraft || q.ID == excludeID || !q.HasRiskDetails() {
			continue
		}
		if latest.ID == "" || q.CreatedAt.After(latest.CreatedAt) {
			latest = q
		}
	}
	if latest.ID == "" {
		return entities.QuoteRequest{}, nil
	}
	return latest.Clone(), nil
}

// QuotePaymentMemoryRepository backs STORAGE_DRIVER=memory.
type QuotePaymentMemoryRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.QuotePayment
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentMemoryRepository)(nil)

func NewQuotePaymentMemoryRepository() *QuotePaymentMemoryRepository {
	return &QuotePaymentMemoryRepository{payments: make(map[string]entities.QuotePayment)}
}

func (r *QuotePaymentMemoryRepository) Create(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.payments[p.ID]; exists {
		return entities.QuotePayment{}, fmt.Errorf("payment %s already exists", p.ID)
	}
	r.payments[p.ID] = p
	return p, nil
}

func (r *QuotePaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.QuotePayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

func (r *QuotePaymentMemoryRepository) ListByQuoteID(_ context.Context, quoteID string) ([]entities.QuotePayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.QuotePayment, 0)
	for _, p := range r.payments {
		if p.QuoteID == quoteID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
