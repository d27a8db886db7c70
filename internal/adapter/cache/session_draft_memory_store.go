package cache

import (
	"context"
	"sync"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
)

// SessionDraftMemoryStore is used when REDIS_URL is not set.
type SessionDraftMemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]entities.QuoteRequest
}

var _ interfaces.ISessionDraftStore = (*SessionDraftMemoryStore)(nil)

func NewSessionDraftMemoryStore() *SessionDraftMemoryStore {
	return &SessionDraftMemoryStore{drafts: make(map[string]entities.QuoteRequest)}
}

func (s *SessionDraftMemoryStore) Put(_ context.Context, q entities.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[q.ID] = q.Clone()
	return nil
}

func (s *SessionDraftMemoryStore) Get(_ context.Context, id string) (entities.QuoteRequest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.drafts[id]
	if !ok {
		return entities.QuoteRequest{}, false, nil
	}
	return q.Clone(), true, nil
}

func (s *SessionDraftMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}
