package readstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/queries"
)

type PaymentReadStore struct {
	logger *slog.Logger
	dbtx   db.DBTX
}

func NewPaymentReadStore(logger *slog.Logger, dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{logger: logger, dbtx: dbtx}
}

const listPaymentsByParticipantSQL = `
SELECT id, job_id, customer_id, photographer_id, stage, amount_satang, charge_id, created_at
FROM payments
WHERE customer_id = $1 OR photographer_id = $1
ORDER BY created_at DESC, id DESC`

func (s *PaymentReadStore) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := s.dbtx.Query(ctx, listPaymentsByParticipantSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list payments", err)
	}
	defer rows.Close()
	return scanPaymentViews(s.logger, rows)
}

const listPaymentsByJobSQL = `
SELECT id, job_id, customer_id, photographer_id, stage, amount_satang, charge_id, created_at
FROM payments
WHERE job_id = $1
ORDER BY created_at`

func (s *PaymentReadStore) FindByJob(ctx context.Context, jobID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := s.dbtx.Query(ctx, listPaymentsByJobSQL, pgconv.UUIDToPgtype(jobID))
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list job payments", err)
	}
	defer rows.Close()
	return scanPaymentViews(s.logger, rows)
}

func scanPaymentViews(logger *slog.Logger, rows pgx.Rows) ([]*queries.PaymentView, error) {
	var views []*queries.PaymentView
	for rows.Next() {
		var (
			id, jobID, customerID, photographerID pgtype.UUID
			stage, chargeID                       string
			amountSatang                          int64
			createdAt                             pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &jobID, &customerID, &photographerID, &stage, &amountSatang, &chargeID, &createdAt); err != nil {
			return nil, wrapPgErr(logger, "failed to scan payment", err)
		}
		views = append(views, &queries.PaymentView{
			ID:             uuid.UUID(id.Bytes),
			JobID:          uuid.UUID(jobID.Bytes),
			CustomerID:     uuid.UUID(customerID.Bytes),
			PhotographerID: uuid.UUID(photographerID.Bytes),
			Stage:          stage,
			AmountSatang:   amountSatang,
			ChargeID:       chargeID,
			CreatedAt:      pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(logger, "failed to read payments", err)
	}
	return views, nil
}
