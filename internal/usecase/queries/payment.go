package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PaymentView struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	PhotographerID uuid.UUID `json:"photographer_id"`
	Stage          string    `json:"stage"`
	AmountSatang   int64     `json:"amount_satang"`
	ChargeID       string    `json:"charge_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type PaymentReadStore interface {
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error)
	FindByJob(ctx context.Context, jobID uuid.UUID) ([]*PaymentView, error)
}

type PaymentQueries interface {
	ListMine(ctx context.Context, actorID uuid.UUID) ([]*PaymentView, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, actorID uuid.UUID, actorRole string) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentReadStore
	jobs JobReadStore
}

func NewPaymentQueries(repo PaymentReadStore, jobs JobReadStore) PaymentQueries {
	return &paymentQueriesImpl{repo: repo, jobs: jobs}
}

func (q *paymentQueriesImpl) ListMine(ctx context.Context, actorID uuid.UUID) ([]*PaymentView, error) {
	return q.repo.FindByParticipant(ctx, actorID)
}

func (q *paymentQueriesImpl) ListByJob(ctx context.Context, jobID uuid.UUID, actorID uuid.UUID, actorRole string) ([]*PaymentView, error) {
	jv, err := q.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if actorRole != RoleAdmin && jv.CustomerID != actorID && jv.PhotographerID != actorID {
		return nil, ErrJobAccess
	}
	return q.repo.FindByJob(ctx, jobID)
}
