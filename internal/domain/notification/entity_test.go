//go:build unit

package notification_test

import (
	"testing"
	"time"

	"shutterbook/internal/domain/job"
	"shutterbook/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotification(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		notification.ActionUpdate, job.StatusMatched, time.Now(),
	)
	require.NoError(t, err)
	return n
}

func TestNewNotification(t *testing.T) {
	n := newTestNotification(t)
	assert.Equal(t, notification.ReadStateUnread, n.ReadState())

	_, err := notification.NewNotification(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		notification.Action("DELETE"), job.StatusMatched, time.Now(),
	)
	assert.ErrorIs(t, err, notification.ErrInvalidAction)
}

func TestMarkRead(t *testing.T) {
	n := newTestNotification(t)

	require.NoError(t, n.MarkRead())
	assert.Equal(t, notification.ReadStateRead, n.ReadState())

	assert.ErrorIs(t, n.MarkRead(), notification.ErrAlreadyRead)
}
