package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/domain/notification"
	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/shared"
)

type NotificationRepository struct {
	logger *slog.Logger
}

func NewNotificationRepository(logger *slog.Logger) shared.NotificationRepository {
	return &NotificationRepository{logger: logger}
}

const createNotificationSQL = `
INSERT INTO notifications (id, job_id, actor_id, receiver_id, action, job_status, read_state)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createNotificationSQL,
		pgconv.UUIDToPgtype(n.ID()),
		pgconv.UUIDToPgtype(n.JobID()),
		pgconv.UUIDToPgtype(n.ActorID()),
		pgconv.UUIDToPgtype(n.ReceiverID()),
		n.Action().String(),
		n.JobStatus().String(),
		n.ReadState().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr(r.logger, "failed to create notification", err)
	}
	return uuid.UUID(id.Bytes), nil
}

const markAllReadSQL = `
UPDATE notifications
SET read_state = 'READ'
WHERE receiver_id = $1 AND read_state = 'UNREAD'`

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx db.DBTX, receiverID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markAllReadSQL, pgconv.UUIDToPgtype(receiverID))
	if err != nil {
		return 0, wrapPgErr(r.logger, "failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
