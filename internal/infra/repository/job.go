package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/domain/job"
	"shutterbook/internal/infra"
	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/shared"
)

type JobRepository struct {
	logger *slog.Logger
}

func NewJobRepository(logger *slog.Logger) shared.JobRepository {
	return &JobRepository{logger: logger}
}

const createJobSQL = `
INSERT INTO jobs (
    id, customer_id, photographer_id, title, description, style,
    location, special_requirement, status, expected_completion
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *JobRepository) Create(ctx context.Context, tx db.DBTX, j *job.Job) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createJobSQL,
		pgconv.UUIDToPgtype(j.ID()),
		pgconv.UUIDToPgtype(j.CustomerID()),
		pgconv.UUIDToPgtype(j.PhotographerID()),
		j.Title(),
		j.Description(),
		j.Style().String(),
		j.Location(),
		j.SpecialRequirement(),
		j.Status().String(),
		pgconv.DateToPgtype(j.ExpectedCompletion()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr(r.logger, "failed to create job", err)
	}
	return uuid.UUID(id.Bytes), nil
}

const findJobForUpdateSQL = `
SELECT id, customer_id, photographer_id, title, description, style,
       location, special_requirement, status, expected_completion,
       delivery_url, created_at, updated_at
FROM jobs
WHERE id = $1
FOR UPDATE`

const listJobReservationsSQL = `
SELECT r.id, r.shoot_date, r.time_bucket, r.slot_id, r.price_satang
FROM reservations r
JOIN job_reservations jr ON jr.reservation_id = r.id
WHERE jr.job_id = $1
ORDER BY r.shoot_date, r.time_bucket`

func (r *JobRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*job.Job, error) {
	var (
		jobID, customerID, photographerID pgtype.UUID
		title, description, style         string
		location, specialRequirement      string
		status                            string
		expectedCompletion                pgtype.Date
		deliveryURL                       pgtype.Text
		createdAt, updatedAt              pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, findJobForUpdateSQL, pgconv.UUIDToPgtype(id)).Scan(
		&jobID, &customerID, &photographerID, &title, &description, &style,
		&location, &specialRequirement, &status, &expectedCompletion,
		&deliveryURL, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapPgErr(r.logger, "failed to find job for update", err)
	}

	rows, err := tx.Query(ctx, listJobReservationsSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapPgErr(r.logger, "failed to list job reservations", err)
	}
	defer rows.Close()

	var reservations []job.Reservation
	for rows.Next() {
		var (
			resID, slotID pgtype.UUID
			shootDate     pgtype.Date
			bucket        string
			priceSatang   int64
		)
		if err := rows.Scan(&resID, &shootDate, &bucket, &slotID, &priceSatang); err != nil {
			return nil, wrapPgErr(r.logger, "failed to scan job reservation", err)
		}
		reservations = append(reservations, job.ReconstructReservation(
			uuid.UUID(resID.Bytes),
			pgconv.DateFromPgtype(shootDate),
			availability.TimeBucket(bucket),
			uuid.UUID(slotID.Bytes),
			priceSatang,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(r.logger, "failed to read job reservations", err)
	}

	return job.ReconstructJob(
		uuid.UUID(jobID.Bytes),
		title, description,
		uuid.UUID(customerID.Bytes), uuid.UUID(photographerID.Bytes),
		job.Status(status),
		job.Style(style),
		location,
		pgconv.DateFromPgtype(expectedCompletion),
		specialRequirement,
		pgconv.StringPtrFromPgtype(deliveryURL),
		reservations,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateJobStatusSQL = `
UPDATE jobs SET status = $2, updated_at = now() WHERE id = $1`

func (r *JobRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status job.Status) error {
	tag, err := tx.Exec(ctx, updateJobStatusSQL, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return wrapPgErr(r.logger, "failed to update job status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "job not found for status update", nil)
	}
	return nil
}

const setJobDeliveryURLSQL = `
UPDATE jobs SET delivery_url = $2, updated_at = now() WHERE id = $1`

func (r *JobRepository) SetDeliveryURL(ctx context.Context, tx db.DBTX, id uuid.UUID, url string) error {
	tag, err := tx.Exec(ctx, setJobDeliveryURLSQL, pgconv.UUIDToPgtype(id), url)
	if err != nil {
		return wrapPgErr(r.logger, "failed to set delivery url", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "job not found for delivery url", nil)
	}
	return nil
}
