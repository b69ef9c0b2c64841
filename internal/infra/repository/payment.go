package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/domain/payment"
	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/shared"
)

type PaymentRepository struct {
	logger *slog.Logger
}

func NewPaymentRepository(logger *slog.Logger) shared.PaymentRepository {
	return &PaymentRepository{logger: logger}
}

const createPaymentSQL = `
INSERT INTO payments (id, job_id, customer_id, photographer_id, stage, amount_satang, charge_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createPaymentSQL,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.JobID()),
		pgconv.UUIDToPgtype(p.CustomerID()),
		pgconv.UUIDToPgtype(p.PhotographerID()),
		p.Stage().String(),
		p.AmountSatang(),
		p.ChargeID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr(r.logger, "failed to create payment", err)
	}
	return uuid.UUID(id.Bytes), nil
}
