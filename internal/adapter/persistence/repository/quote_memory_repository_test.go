package repository

import (
	"context"
	"testing"
	"time"

	"takaful_quote/internal/domain/entities"
)

func TestQuoteMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteMemoryRepository()

	q := fullQuote()
	q.Status = entities.QuoteStatusDraft
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("save: %v", err)
	}

	changed := q
	changed.QuoteReference = "TKF-MOT-999999"
	if err := repo.Save(ctx, changed); err == nil {
		t.Fatalf("expected reference to be immutable")
	}

	got, _ := repo.GetByReference(ctx, "TKF-MOT-000042")
	if got.ID != "q-1" {
		t.Fatalf("lookup by reference failed: %+v", got)
	}

	other := fullQuote()
	other.ID, other.QuoteReference, other.Status = "q-2", "TKF-MOT-000043", entities.QuoteStatusDraft
	other.CreatedAt = q.CreatedAt.Add(time.Hour)
	_ = repo.Save(ctx, other)

	stub := fullQuote()
	stub.ID, stub.QuoteReference, stub.Status = "q-stub", "TKF-MOT-000044", entities.QuoteStatusDraft
	stub.Vehicle, stub.TravelCriteria = nil, nil
	stub.CreatedAt = q.CreatedAt.Add(2 * time.Hour)
	_ = repo.Save(ctx, stub)

	latest, _ := repo.FindLatestDraftByCPR(ctx, q.Customer.CPR, "")
	if latest.ID != "q-2" {
		t.Fatalf("expected newest draft q-2, got %s", latest.ID)
	}
	latest, _ = repo.FindLatestDraftByCPR(ctx, q.Customer.CPR, "q-2")
	if latest.ID != "q-1" {
		t.Fatalf("expected q-1 when excluding q-2, got %s", latest.ID)
	}
	none, _ := repo.FindLatestDraftByCPR(ctx, "000000000", "")
	if none.ID != "" {
		t.Fatalf("expected no draft")
	}
}

func TestQuotePaymentMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuotePaymentMemoryRepository()

	if _, err := repo.Create(ctx, samplePayment("p-2", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, samplePayment("p-1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, samplePayment("p-1", time.Now())); err == nil {
		t.Fatalf("expected duplicate error")
	}

	list, _ := repo.ListByQuoteID(ctx, "q-1")
	if len(list) != 2 || list[0].ID != "p-1" {
		t.Fatalf("unexpected list %+v", list)
	}
	missing, _ := repo.GetByID(ctx, "nope")
	if missing.ID != "" {
		t.Fatalf("expected zero payment")
	}
}
