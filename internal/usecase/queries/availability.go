package queries

import (
	"context"

	"github.com/google/uuid"
)

type SlotView struct {
	ID          uuid.UUID `json:"id"`
	Weekday     string    `json:"weekday"`
	TimeBucket  string    `json:"time_bucket"`
	PriceSatang int64     `json:"price_satang"`
}

type AvailabilityReadStore interface {
	FindByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]*SlotView, error)
}

// AvailabilityQueries is the public read surface for a photographer's
// weekly catalog; no caller restriction, customers browse it freely.
type AvailabilityQueries interface {
	ListByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]*SlotView, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityReadStore
}

func NewAvailabilityQueries(repo AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) ListByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]*SlotView, error) {
	return q.repo.FindByPhotographer(ctx, photographerID)
}
