package readstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/domain/job"
	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/queries"
	"shutterbook/internal/usecase/shared"
)

// JobReadStore serves the query side. Total price is always derived from
// the linked reservations, never stored on the job row.
type JobReadStore struct {
	logger *slog.Logger
	dbtx   db.DBTX
}

func NewJobReadStore(logger *slog.Logger, dbtx db.DBTX) *JobReadStore {
	return &JobReadStore{logger: logger, dbtx: dbtx}
}

const findJobViewSQL = `
SELECT j.id, j.customer_id, j.photographer_id, j.title, j.description,
       j.style, j.location, j.special_requirement, j.status,
       j.delivery_url, j.expected_completion, j.created_at, j.updated_at,
       COALESCE((
           SELECT SUM(r.price_satang)
           FROM reservations r
           JOIN job_reservations jr ON jr.reservation_id = r.id
           WHERE jr.job_id = j.id
       ), 0) AS total_price_satang
FROM jobs j
WHERE j.id = $1`

const findJobViewReservationsSQL = `
SELECT r.id, r.shoot_date, r.time_bucket, r.slot_id, r.price_satang
FROM reservations r
JOIN job_reservations jr ON jr.reservation_id = r.id
WHERE jr.job_id = $1
ORDER BY r.shoot_date, r.time_bucket`

func (s *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	var (
		jobID, customerID, photographerID pgtype.UUID
		title, description, style        string
		location, specialRequirement     string
		status                           string
		deliveryURL                      pgtype.Text
		expectedCompletion               pgtype.Date
		createdAt, updatedAt             pgtype.Timestamptz
		totalPriceSatang                 int64
	)
	err := s.dbtx.QueryRow(ctx, findJobViewSQL, pgconv.UUIDToPgtype(id)).Scan(
		&jobID, &customerID, &photographerID, &title, &description,
		&style, &location, &specialRequirement, &status,
		&deliveryURL, &expectedCompletion, &createdAt, &updatedAt,
		&totalPriceSatang,
	)
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to find job", err)
	}

	rows, err := s.dbtx.Query(ctx, findJobViewReservationsSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list job reservations", err)
	}
	defer rows.Close()

	reservations := make([]queries.ReservationView, 0, 4)
	for rows.Next() {
		var (
			resID, slotID pgtype.UUID
			shootDate     pgtype.Date
			bucket        string
			priceSatang   int64
		)
		if err := rows.Scan(&resID, &shootDate, &bucket, &slotID, &priceSatang); err != nil {
			return nil, wrapPgErr(s.logger, "failed to scan job reservation", err)
		}
		reservations = append(reservations, queries.ReservationView{
			ID:          uuid.UUID(resID.Bytes),
			Date:        pgconv.DateFromPgtype(shootDate),
			TimeBucket:  bucket,
			SlotID:      uuid.UUID(slotID.Bytes),
			PriceSatang: priceSatang,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(s.logger, "failed to read job reservations", err)
	}

	return &queries.JobView{
		ID:                 uuid.UUID(jobID.Bytes),
		CustomerID:         uuid.UUID(customerID.Bytes),
		PhotographerID:     uuid.UUID(photographerID.Bytes),
		Title:              title,
		Description:        description,
		Style:              style,
		Location:           location,
		SpecialRequirement: specialRequirement,
		Status:             status,
		DeliveryURL:        pgconv.StringPtrFromPgtype(deliveryURL),
		ExpectedCompletion: pgconv.DateFromPgtype(expectedCompletion),
		TotalPriceSatang:   totalPriceSatang,
		Reservations:       reservations,
		CreatedAt:          pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:          pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

// Snapshot is the command-side read: enough to authorize, stage and price
// a charge without loading the whole view.
const jobSnapshotSQL = `
SELECT j.id, j.customer_id, j.photographer_id, j.status, j.created_at,
       COALESCE((
           SELECT SUM(r.price_satang)
           FROM reservations r
           JOIN job_reservations jr ON jr.reservation_id = r.id
           WHERE jr.job_id = j.id
       ), 0) AS total_price_satang
FROM jobs j
WHERE j.id = $1`

func (s *JobReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.JobSnapshot, error) {
	var (
		jobID, customerID, photographerID pgtype.UUID
		status                            string
		createdAt                         pgtype.Timestamptz
		totalPriceSatang                  int64
	)
	err := s.dbtx.QueryRow(ctx, jobSnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&jobID, &customerID, &photographerID, &status, &createdAt, &totalPriceSatang,
	)
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to snapshot job", err)
	}
	return &shared.JobSnapshot{
		ID:               uuid.UUID(jobID.Bytes),
		CustomerID:       uuid.UUID(customerID.Bytes),
		PhotographerID:   uuid.UUID(photographerID.Bytes),
		Status:           job.Status(status),
		TotalPriceSatang: totalPriceSatang,
		CreatedAt:        pgconv.TimeFromPgtype(createdAt),
	}, nil
}

const listJobsFirstPageSQL = `
SELECT j.id, j.customer_id, j.photographer_id, j.title, j.style, j.status, j.created_at,
       COALESCE((
           SELECT SUM(r.price_satang)
           FROM reservations r
           JOIN job_reservations jr ON jr.reservation_id = r.id
           WHERE jr.job_id = j.id
       ), 0) AS total_price_satang
FROM jobs j
WHERE j.customer_id = $1 OR j.photographer_id = $1
ORDER BY j.created_at DESC, j.id DESC
LIMIT $2`

const listJobsKeysetSQL = `
SELECT j.id, j.customer_id, j.photographer_id, j.title, j.style, j.status, j.created_at,
       COALESCE((
           SELECT SUM(r.price_satang)
           FROM reservations r
           JOIN job_reservations jr ON jr.reservation_id = r.id
           WHERE jr.job_id = j.id
       ), 0) AS total_price_satang
FROM jobs j
WHERE (j.customer_id = $1 OR j.photographer_id = $1)
  AND (j.created_at, j.id) < ($2, $3)
ORDER BY j.created_at DESC, j.id DESC
LIMIT $4`

func (s *JobReadStore) FindByParticipantFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.JobListItem, error) {
	rows, err := s.dbtx.Query(ctx, listJobsFirstPageSQL, pgconv.UUIDToPgtype(userID), limit)
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list jobs", err)
	}
	defer rows.Close()
	return scanJobListItems(s.logger, rows)
}

func (s *JobReadStore) FindByParticipantKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.JobListItem, error) {
	rows, err := s.dbtx.Query(ctx, listJobsKeysetSQL,
		pgconv.UUIDToPgtype(userID),
		pgconv.TimeToPgtype(lastCreatedAt),
		pgconv.UUIDToPgtype(lastID),
		limit,
	)
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list jobs", err)
	}
	defer rows.Close()
	return scanJobListItems(s.logger, rows)
}

func scanJobListItems(logger *slog.Logger, rows pgx.Rows) ([]*queries.JobListItem, error) {
	var items []*queries.JobListItem
	for rows.Next() {
		var (
			id, customerID, photographerID pgtype.UUID
			title, style, status           string
			createdAt                      pgtype.Timestamptz
			totalPriceSatang               int64
		)
		if err := rows.Scan(&id, &customerID, &photographerID, &title, &style, &status, &createdAt, &totalPriceSatang); err != nil {
			return nil, wrapPgErr(logger, "failed to scan job list item", err)
		}
		items = append(items, &queries.JobListItem{
			ID:               uuid.UUID(id.Bytes),
			CustomerID:       uuid.UUID(customerID.Bytes),
			PhotographerID:   uuid.UUID(photographerID.Bytes),
			Title:            title,
			Style:            style,
			Status:           status,
			TotalPriceSatang: totalPriceSatang,
			CreatedAt:        pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(logger, "failed to read job list", err)
	}
	return items, nil
}
