package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Action     string    `json:"action"`
	JobStatus  string    `json:"job_status"`
	ReadState  string    `json:"read_state"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotificationReadStore interface {
	FindByReceiverFirstPage(ctx context.Context, receiverID uuid.UUID, limit int32, unreadOnly bool) ([]*NotificationView, error)
	FindByReceiverKeyset(ctx context.Context, receiverID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, unreadOnly bool) ([]*NotificationView, error)
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error)
}

type NotificationFilters struct {
	UnreadOnly bool
}

type NotificationQueries interface {
	ListByReceiver(ctx context.Context, receiverID uuid.UUID, filters NotificationFilters, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	repo NotificationReadStore
}

func NewNotificationQueries(repo NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) ListByReceiver(ctx context.Context, receiverID uuid.UUID, filters NotificationFilters, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*NotificationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByReceiverFirstPage(ctx, receiverID, int32(limit+1), filters.UnreadOnly)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByReceiverKeyset(ctx, receiverID, lastCreatedAt, lastID, int32(limit+1), filters.UnreadOnly)
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *notificationQueriesImpl) CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	return q.repo.CountUnread(ctx, receiverID)
}
