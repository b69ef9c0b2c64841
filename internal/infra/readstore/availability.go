package readstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/queries"
)

type AvailabilityReadStore struct {
	logger *slog.Logger
	dbtx   db.DBTX
}

func NewAvailabilityReadStore(logger *slog.Logger, dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{logger: logger, dbtx: dbtx}
}

const listSlotViewsSQL = `
SELECT id, weekday, time_bucket, price_satang
FROM availability_slots
WHERE photographer_id = $1
ORDER BY weekday, time_bucket`

func (s *AvailabilityReadStore) FindByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := s.dbtx.Query(ctx, listSlotViewsSQL, pgconv.UUIDToPgtype(photographerID))
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list availability slots", err)
	}
	defer rows.Close()

	var views []*queries.SlotView
	for rows.Next() {
		var (
			id              pgtype.UUID
			weekday, bucket string
			priceSatang     int64
		)
		if err := rows.Scan(&id, &weekday, &bucket, &priceSatang); err != nil {
			return nil, wrapPgErr(s.logger, "failed to scan availability slot", err)
		}
		views = append(views, &queries.SlotView{
			ID:          uuid.UUID(id.Bytes),
			Weekday:     weekday,
			TimeBucket:  bucket,
			PriceSatang: priceSatang,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(s.logger, "failed to read availability slots", err)
	}
	return views, nil
}
