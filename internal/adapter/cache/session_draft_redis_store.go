// Package cache holds the session-local copies of in-progress quotes.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
)

type keyValueStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	DraftKey(quoteID string) string
}

// SessionDraftRedisStore keeps the session copy of each quote as JSON under
// tkf:draft:<id>, refreshed with a sliding TTL on every write.
type SessionDraftRedisStore struct {
	kv     keyValueStore
	ttl    time.Duration
	isMiss func(error) bool
}

var _ interfaces.ISessionDraftStore = (*SessionDraftRedisStore)(nil)

func NewSessionDraftRedisStore(kv keyValueStore, ttl time.Duration, isMiss func(error) bool) *SessionDraftRedisStore {
	return &SessionDraftRedisStore{kv: kv, ttl: ttl, isMiss: isMiss}
}

func (s *SessionDraftRedisStore) Put(ctx context.Context, q entities.QuoteRequest) error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("session draft: missing quote id")
	}
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("session draft: encode %s: %w", q.ID, err)
	}
	return s.kv.Set(ctx, s.kv.DraftKey(q.ID), string(raw), s.ttl)
}

func (s *SessionDraftRedisStore) Get(ctx context.Context, id string) (entities.QuoteRequest, bool, error) {
	raw, err := s.kv.Get(ctx, s.kv.DraftKey(id))
	if err != nil {
		if s.isMiss != nil && s.isMiss(err) {
			return entities.QuoteRequest{}, false, nil
		}
		return entities.QuoteRequest{}, false, err
	}
	var q entities.QuoteRequest
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return entities.QuoteRequest{}, false, fmt.Errorf("session draft: decode %s: %w", id, err)
	}
	return q, true, nil
}

func (s *SessionDraftRedisStore) Delete(ctx context.Context, id string) error {
	return s.kv.Del(ctx, s.kv.DraftKey(id))
}
