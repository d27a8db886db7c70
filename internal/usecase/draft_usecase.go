package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Actor identifies the agent on whose behalf a write happens.
type Actor struct {
	AgentID   string
	AgentName string
}

// QuoteListener is notified after every successful persist.
type QuoteListener func(q entities.QuoteRequest)

// IDraftUseCase is the persistence gateway for the QuoteRequest aggregate.
//
// Persist is an idempotent upsert keyed by the aggregate id: patches are merged
// field by field into the stored document, and id/reference/createdAt/agent/
// source/status are assigned only when absent. Writes for the same id are
// serialized; concurrent callers queue.
type IDraftUseCase interface {
	Persist(ctx context.Context, base entities.QuoteRequest, actor Actor, patches ...entities.QuotePatch) (entities.QuoteRequest, error)
	Load(ctx context.Context, id string) (entities.QuoteRequest, error)
	LoadByReference(ctx context.Context, reference string) (entities.QuoteRequest, error)
	FindInFlightDraft(ctx context.Context, cpr, excludeID string) (entities.QuoteRequest, bool, error)
	Subscribe(listener QuoteListener)
}

type DraftUseCase struct {
	repo       interfaces.IQuoteRepository
	sessions   interfaces.ISessionDraftStore
	references interfaces.IReferenceIssuer
	metrics    Metrics

	locks *keyedMutex
	now   func() time.Time
	newID func() string

	listenersMu sync.RWMutex
	listeners   []QuoteListener
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IQuoteRepository, sessions interfaces.ISessionDraftStore, references interfaces.IReferenceIssuer, metrics Metrics) *DraftUseCase {
	return &DraftUseCase{
		repo:       repo,
		sessions:   sessions,
		references: references,
		metrics:    metricsOrNoop(metrics),
		locks:      newKeyedMutex(),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// WithClock overrides the time source. Used by tests.
func (u *DraftUseCase) WithClock(now func() time.Time) *DraftUseCase {
	u.now = now
	return u
}

func (u *DraftUseCase) Subscribe(listener QuoteListener) {
	if listener == nil {
		return
	}
	u.listenersMu.Lock()
	defer u.listenersMu.Unlock()
	u.listeners = append(u.listeners, listener)
}

// Persist merges patches, in order, into the current aggregate and writes it.
//
// The current aggregate is the stored one when base.ID is known to either
// store, otherwise base itself. On ErrPersistenceFailure the merged aggregate
// is still returned so the caller can keep it locally; persisting the same
// patches again is safe.
func (u *DraftUseCase) Persist(ctx context.Context, base entities.QuoteRequest, actor Actor, patches ...entities.QuotePatch) (entities.QuoteRequest, error) {
	log := logger.For("draft", "usecase")

	if base.ReadOnly() {
		return base, ErrQuoteReadOnly
	}

	id := strings.TrimSpace(base.ID)
	if id == "" {
		id = u.newID()
	}
	unlock := u.locks.Lock(id)
	defer unlock()

	current := base.Clone()
	current.ID = id
	if strings.TrimSpace(base.ID) != "" {
		stored, found, err := u.loadLocked(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("quote_id", id).Msg("could not read stored aggregate; merging onto caller copy")
		} else if found {
			current = stored
		}
	}
	if current.ReadOnly() {
		return current, ErrQuoteReadOnly
	}

	for _, p := range patches {
		if p.Status != nil && *p.Status != current.Status && !current.Status.CanTransitionTo(*p.Status) {
			return current, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, statusOrDraft(current.Status), *p.Status)
		}
		p.Apply(&current)
	}
	if current.Vehicle != nil && current.TravelCriteria != nil {
		return current, NewValidationError("insurance_type", "must select MOTOR or TRAVEL before entering risk details")
	}

	if err := u.assignProvenance(ctx, &current, actor); err != nil {
		u.metrics.PersistResult("failure")
		return current, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	var sessionErr, durableErr error
	if u.sessions != nil {
		sessionErr = u.sessions.Put(ctx, current)
	}
	durableErr = u.repo.Save(ctx, current)
	if err := multierr.Combine(sessionErr, durableErr); err != nil {
		if durableErr != nil {
			log.Error().Err(err).Str("quote_id", current.ID).Msg("persist failed")
			u.metrics.PersistResult("failure")
			return current, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
		}
		log.Warn().Err(err).Str("quote_id", current.ID).Msg("session draft store write failed; durable copy saved")
	}

	u.metrics.PersistResult("ok")
	u.metrics.StatusTransition(string(current.Status))
	log.Debug().Str("quote_id", current.ID).Str("status", string(current.Status)).Int("patches", len(patches)).Msg("persisted")

	u.notify(current.Clone())
	return current, nil
}

func (u *DraftUseCase) assignProvenance(ctx context.Context, q *entities.QuoteRequest, actor Actor) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = u.now()
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}
	if q.Source == "" {
		q.Source = entities.SourceAgentPortal
	}
	if q.AgentID == "" {
		q.AgentID = actor.AgentID
	}
	if q.AgentName == "" {
		q.AgentName = actor.AgentName
	}
	if q.QuoteReference == "" {
		ref, err := u.references.NextReference(ctx, q.InsuranceType)
		if err != nil {
			return fmt.Errorf("issue quote reference: %w", err)
		}
		q.QuoteReference = ref
	}
	return nil
}

func (u *DraftUseCase) notify(q entities.QuoteRequest) {
	u.listenersMu.RLock()
	listeners := append([]QuoteListener(nil), u.listeners...)
	u.listenersMu.RUnlock()
	for _, l := range listeners {
		l(q.Clone())
	}
}

func (u *DraftUseCase) loadLocked(ctx context.Context, id string) (entities.QuoteRequest, bool, error) {
	if u.sessions != nil {
		q, ok, err := u.sessions.Get(ctx, id)
		if err == nil && ok {
			return q, true, nil
		}
		if err != nil {
			logger.For("draft", "usecase").Warn().Err(err).Str("quote_id", id).Msg("session draft store read failed")
		}
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, false, err
	}
	return q, q.ID != "", nil
}

func (u *DraftUseCase) Load(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}
	q, found, err := u.loadLocked(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if !found {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *DraftUseCase) LoadByReference(ctx context.Context, reference string) (entities.QuoteRequest, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if reference == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return q, nil
}

// FindInFlightDraft returns the newest DRAFT for the customer other than excludeID.
func (u *DraftUseCase) FindInFlightDraft(ctx context.Context, cpr, excludeID string) (entities.QuoteRequest, bool, error) {
	cpr = strings.TrimSpace(cpr)
	if cpr == "" {
		return entities.QuoteRequest{}, false, nil
	}
	q, err := u.repo.FindLatestDraftByCPR(ctx, cpr, excludeID)
	if err != nil {
		return entities.QuoteRequest{}, false, err
	}
	if q.ID == "" || q.ID == excludeID {
		return entities.QuoteRequest{}, false, nil
	}
	return q, true, nil
}

func statusOrDraft(s entities.QuoteStatus) entities.QuoteStatus {
	if s == "" {
		return entities.QuoteStatusDraft
	}
	return s
}
