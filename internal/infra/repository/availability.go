package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/shared"
)

type AvailabilityRepository struct {
	logger *slog.Logger
}

func NewAvailabilityRepository(logger *slog.Logger) shared.AvailabilityRepository {
	return &AvailabilityRepository{logger: logger}
}

const deleteUnreservedSlotsSQL = `
DELETE FROM availability_slots a
WHERE a.photographer_id = $1
  AND NOT EXISTS (SELECT 1 FROM reservations r WHERE r.slot_id = a.id)`

const detachReservedSlotsSQL = `
UPDATE availability_slots SET photographer_id = NULL WHERE photographer_id = $1`

const reattachSlotSQL = `
UPDATE availability_slots
SET photographer_id = $1
WHERE id = (
    SELECT id FROM availability_slots
    WHERE photographer_id IS NULL AND weekday = $2 AND time_bucket = $3 AND price_satang = $4
    LIMIT 1
)
AND NOT EXISTS (
    SELECT 1 FROM availability_slots s
    WHERE s.photographer_id = $1 AND s.weekday = $2 AND s.time_bucket = $3 AND s.price_satang = $4
)`

const insertSlotSQL = `
INSERT INTO availability_slots (id, photographer_id, weekday, time_bucket, price_satang)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (photographer_id, weekday, time_bucket, price_satang) DO NOTHING`

// Replace swaps the catalog without breaking reservation FKs: rows still
// referenced by a reservation are detached (photographer_id nulled) rather
// than deleted, and re-adding an identical tuple reattaches such a row
// instead of inserting a duplicate.
func (r *AvailabilityRepository) Replace(ctx context.Context, tx db.DBTX, photographerID uuid.UUID, slots []*availability.Slot) error {
	if _, err := tx.Exec(ctx, deleteUnreservedSlotsSQL, pgconv.UUIDToPgtype(photographerID)); err != nil {
		return wrapPgErr(r.logger, "failed to clear availability slots", err)
	}
	if _, err := tx.Exec(ctx, detachReservedSlotsSQL, pgconv.UUIDToPgtype(photographerID)); err != nil {
		return wrapPgErr(r.logger, "failed to detach reserved slots", err)
	}
	for _, s := range slots {
		tag, err := tx.Exec(ctx, reattachSlotSQL,
			pgconv.UUIDToPgtype(photographerID),
			s.Weekday().String(),
			s.Bucket().String(),
			s.PriceSatang(),
		)
		if err != nil {
			return wrapPgErr(r.logger, "failed to reattach availability slot", err)
		}
		if tag.RowsAffected() > 0 {
			continue
		}
		_, err = tx.Exec(ctx, insertSlotSQL,
			pgconv.UUIDToPgtype(s.ID()),
			pgconv.UUIDToPgtype(photographerID),
			s.Weekday().String(),
			s.Bucket().String(),
			s.PriceSatang(),
		)
		if err != nil {
			return wrapPgErr(r.logger, "failed to insert availability slot", err)
		}
	}
	return nil
}

const listSlotsSQL = `
SELECT id, weekday, time_bucket, price_satang
FROM availability_slots
WHERE photographer_id = $1`

func (r *AvailabilityRepository) ListByPhotographer(ctx context.Context, tx db.DBTX, photographerID uuid.UUID) ([]*availability.Slot, error) {
	rows, err := tx.Query(ctx, listSlotsSQL, pgconv.UUIDToPgtype(photographerID))
	if err != nil {
		return nil, wrapPgErr(r.logger, "failed to list availability slots", err)
	}
	defer rows.Close()

	var slots []*availability.Slot
	for rows.Next() {
		var (
			id              pgtype.UUID
			weekday, bucket string
			priceSatang     int64
		)
		if err := rows.Scan(&id, &weekday, &bucket, &priceSatang); err != nil {
			return nil, wrapPgErr(r.logger, "failed to scan availability slot", err)
		}
		slots = append(slots, availability.ReconstructSlot(
			uuid.UUID(id.Bytes),
			photographerID,
			availability.Weekday(weekday),
			availability.TimeBucket(bucket),
			priceSatang,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(r.logger, "failed to read availability slots", err)
	}
	return slots, nil
}
