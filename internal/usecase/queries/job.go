package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shutterbook/internal/infra"
	"shutterbook/internal/pkg/errs"
)

var (
	ErrJobNotFound = errs.New("job not found")
	ErrJobAccess   = errs.New("job access denied")
)

// Read models (DTO for read side)
type JobView struct {
	ID                 uuid.UUID         `json:"id"`
	CustomerID         uuid.UUID         `json:"customer_id"`
	PhotographerID     uuid.UUID         `json:"photographer_id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Style              string            `json:"style"`
	Location           string            `json:"location"`
	SpecialRequirement string            `json:"special_requirement"`
	Status             string            `json:"status"`
	DeliveryURL        *string           `json:"delivery_url,omitempty"`
	ExpectedCompletion time.Time         `json:"expected_completion"`
	TotalPriceSatang   int64             `json:"total_price_satang"`
	Reservations       []ReservationView `json:"reservations"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	TimeBucket  string    `json:"time_bucket"`
	SlotID      uuid.UUID `json:"slot_id"`
	PriceSatang int64     `json:"price_satang"`
}

type JobListItem struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	PhotographerID   uuid.UUID `json:"photographer_id"`
	Title            string    `json:"title"`
	Style            string    `json:"style"`
	Status           string    `json:"status"`
	TotalPriceSatang int64     `json:"total_price_satang"`
	CreatedAt        time.Time `json:"created_at"`
}

type JobReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	FindByParticipantFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*JobListItem, error)
	FindByParticipantKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*JobListItem, error)
}

type JobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*JobView, error)
	// ListMine pages through jobs the caller participates in, newest
	// first.
	ListMine(ctx context.Context, actorID uuid.UUID, cursor *Cursor, limit int) ([]*JobListItem, *Cursor, error)
}

type jobQueriesImpl struct {
	repo JobReadStore
}

func NewJobQueries(repo JobReadStore) JobQueries {
	return &jobQueriesImpl{repo: repo}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*JobView, error) {
	jv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if actorRole != RoleAdmin && jv.CustomerID != actorID && jv.PhotographerID != actorID {
		return nil, ErrJobAccess
	}
	return jv, nil
}

func (q *jobQueriesImpl) ListMine(ctx context.Context, actorID uuid.UUID, cursor *Cursor, limit int) ([]*JobListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*JobListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByParticipantFirstPage(ctx, actorID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByParticipantKeyset(ctx, actorID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
