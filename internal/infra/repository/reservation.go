package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/domain/job"
	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/shared"
)

type ReservationRepository struct {
	logger *slog.Logger
}

func NewReservationRepository(logger *slog.Logger) shared.ReservationRepository {
	return &ReservationRepository{logger: logger}
}

// hashtextextended gives a stable 64-bit key per photographer; the lock
// releases with the transaction.
const lockPhotographerSQL = `
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

func (r *ReservationRepository) LockPhotographer(ctx context.Context, tx db.DBTX, photographerID uuid.UUID) error {
	if _, err := tx.Exec(ctx, lockPhotographerSQL, photographerID.String()); err != nil {
		return wrapPgErr(r.logger, "failed to lock photographer bookings", err)
	}
	return nil
}

const listBookedSQL = `
SELECT r.shoot_date, r.time_bucket
FROM reservations r
JOIN job_reservations jr ON jr.reservation_id = r.id
JOIN jobs j ON j.id = jr.job_id
WHERE r.photographer_id = $1
  AND j.status = ANY($2)`

func (r *ReservationRepository) ListBooked(ctx context.Context, tx db.DBTX, photographerID uuid.UUID) ([]job.BookedSlot, error) {
	holding := make([]string, 0, len(job.SlotHoldingStatuses))
	for _, s := range job.SlotHoldingStatuses {
		holding = append(holding, s.String())
	}

	rows, err := tx.Query(ctx, listBookedSQL, pgconv.UUIDToPgtype(photographerID), holding)
	if err != nil {
		return nil, wrapPgErr(r.logger, "failed to list booked slots", err)
	}
	defer rows.Close()

	var booked []job.BookedSlot
	for rows.Next() {
		var (
			shootDate pgtype.Date
			bucket    string
		)
		if err := rows.Scan(&shootDate, &bucket); err != nil {
			return nil, wrapPgErr(r.logger, "failed to scan booked slot", err)
		}
		booked = append(booked, job.BookedSlot{
			Date:   pgconv.DateFromPgtype(shootDate),
			Bucket: availability.TimeBucket(bucket),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(r.logger, "failed to read booked slots", err)
	}
	return booked, nil
}

// The no-op update lets RETURNING yield the existing row id on conflict,
// which is how planning reuses an identical reservation instead of
// duplicating it.
const getOrCreateReservationSQL = `
INSERT INTO reservations (id, photographer_id, shoot_date, time_bucket, slot_id, price_satang)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (photographer_id, shoot_date, time_bucket, slot_id)
DO UPDATE SET price_satang = reservations.price_satang
RETURNING id`

func (r *ReservationRepository) GetOrCreate(ctx context.Context, tx db.DBTX, photographerID uuid.UUID, planned job.PlannedReservation) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, getOrCreateReservationSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(photographerID),
		pgconv.DateToPgtype(planned.Date),
		planned.Bucket.String(),
		pgconv.UUIDToPgtype(planned.SlotID),
		planned.PriceSatang,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr(r.logger, "failed to get or create reservation", err)
	}
	return uuid.UUID(id.Bytes), nil
}

const linkReservationSQL = `
INSERT INTO job_reservations (job_id, reservation_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (r *ReservationRepository) LinkToJob(ctx context.Context, tx db.DBTX, jobID, reservationID uuid.UUID) error {
	if _, err := tx.Exec(ctx, linkReservationSQL, pgconv.UUIDToPgtype(jobID), pgconv.UUIDToPgtype(reservationID)); err != nil {
		return wrapPgErr(r.logger, "failed to link reservation to job", err)
	}
	return nil
}
