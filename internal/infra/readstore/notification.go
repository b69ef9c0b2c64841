package readstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"shutterbook/internal/infra/db"
	"shutterbook/internal/pkg/pgconv"
	"shutterbook/internal/usecase/queries"
)

type NotificationReadStore struct {
	logger *slog.Logger
	dbtx   db.DBTX
}

func NewNotificationReadStore(logger *slog.Logger, dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{logger: logger, dbtx: dbtx}
}

const listNotificationsFirstPageSQL = `
SELECT id, job_id, actor_id, receiver_id, action, job_status, read_state, created_at
FROM notifications
WHERE receiver_id = $1
  AND ($2::boolean = false OR read_state = 'UNREAD')
ORDER BY created_at DESC, id DESC
LIMIT $3`

const listNotificationsKeysetSQL = `
SELECT id, job_id, actor_id, receiver_id, action, job_status, read_state, created_at
FROM notifications
WHERE receiver_id = $1
  AND ($2::boolean = false OR read_state = 'UNREAD')
  AND (created_at, id) < ($3, $4)
ORDER BY created_at DESC, id DESC
LIMIT $5`

func (s *NotificationReadStore) FindByReceiverFirstPage(ctx context.Context, receiverID uuid.UUID, limit int32, unreadOnly bool) ([]*queries.NotificationView, error) {
	rows, err := s.dbtx.Query(ctx, listNotificationsFirstPageSQL, pgconv.UUIDToPgtype(receiverID), unreadOnly, limit)
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list notifications", err)
	}
	defer rows.Close()
	return scanNotificationViews(s.logger, rows)
}

func (s *NotificationReadStore) FindByReceiverKeyset(ctx context.Context, receiverID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, unreadOnly bool) ([]*queries.NotificationView, error) {
	rows, err := s.dbtx.Query(ctx, listNotificationsKeysetSQL,
		pgconv.UUIDToPgtype(receiverID),
		unreadOnly,
		pgconv.TimeToPgtype(lastCreatedAt),
		pgconv.UUIDToPgtype(lastID),
		limit,
	)
	if err != nil {
		return nil, wrapPgErr(s.logger, "failed to list notifications", err)
	}
	defer rows.Close()
	return scanNotificationViews(s.logger, rows)
}

const countUnreadSQL = `
SELECT COUNT(*) FROM notifications WHERE receiver_id = $1 AND read_state = 'UNREAD'`

func (s *NotificationReadStore) CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	var count int64
	if err := s.dbtx.QueryRow(ctx, countUnreadSQL, pgconv.UUIDToPgtype(receiverID)).Scan(&count); err != nil {
		return 0, wrapPgErr(s.logger, "failed to count unread notifications", err)
	}
	return count, nil
}

func scanNotificationViews(logger *slog.Logger, rows pgx.Rows) ([]*queries.NotificationView, error) {
	var views []*queries.NotificationView
	for rows.Next() {
		var (
			id, jobID, actorID, receiverID pgtype.UUID
			action, jobStatus, readState   string
			createdAt                      pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &jobID, &actorID, &receiverID, &action, &jobStatus, &readState, &createdAt); err != nil {
			return nil, wrapPgErr(logger, "failed to scan notification", err)
		}
		views = append(views, &queries.NotificationView{
			ID:         uuid.UUID(id.Bytes),
			JobID:      uuid.UUID(jobID.Bytes),
			ActorID:    uuid.UUID(actorID.Bytes),
			ReceiverID: uuid.UUID(receiverID.Bytes),
			Action:     action,
			JobStatus:  jobStatus,
			ReadState:  readState,
			CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(logger, "failed to read notifications", err)
	}
	return views, nil
}
