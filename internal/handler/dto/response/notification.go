package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"shutterbook/internal/usecase/queries"
)

type NotificationResponse struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"jobId"`
	ActorID    uuid.UUID `json:"actorId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Action     string    `json:"action"`
	JobStatus  string    `json:"jobStatus"`
	ReadState  string    `json:"readState"`
	CreatedAt  time.Time `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
	NextCursor    string                  `json:"nextCursor,omitempty"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

func FromNotificationViews(views []*queries.NotificationView, unread int64, next *queries.Cursor) (*NotificationListResponse, error) {
	notifications := make([]*NotificationResponse, 0, len(views))
	if err := copier.Copy(&notifications, &views); err != nil {
		return nil, err
	}
	resp := &NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}
