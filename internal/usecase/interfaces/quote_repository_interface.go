package interfaces

import (
	"context"

	"takaful_quote/internal/domain/entities"
)

// IQuoteRepository abstracts durable persistence for the QuoteRequest aggregate.
//
// One document per id, also reachable by quote_reference. Lookups return a
// zero aggregate (empty ID) when nothing matches.
type IQuoteRepository interface {
	Save(ctx context.Context, q entities.QuoteRequest) error
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	GetByReference(ctx context.Context, reference string) (entities.QuoteRequest, error)
	// FindLatestDraftByCPR returns the newest DRAFT for the customer, skipping excludeID.
	FindLatestDraftByCPR(ctx context.Context, cpr, excludeID string) (entities.QuoteRequest, error)
}

// ISessionDraftStore is the session-local copy of in-progress aggregates.
type ISessionDraftStore interface {
	Put(ctx context.Context, q entities.QuoteRequest) error
	Get(ctx context.Context, id string) (entities.QuoteRequest, bool, error)
	Delete(ctx context.Context, id string) error
}

// IReferenceIssuer hands out human-readable quote references.
type IReferenceIssuer interface {
	NextReference(ctx context.Context, insuranceType entities.InsuranceType) (string, error)
}
