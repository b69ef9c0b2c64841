package commands

import (
	"context"

	"github.com/google/uuid"

	"shutterbook/internal/usecase/shared"
)

type MarkNotificationsReadResult struct {
	Updated int64
}

type NotificationCommands interface {
	// MarkAllRead flips every notification addressed to the caller to
	// READ. Repeating the call is a no-op.
	MarkAllRead(ctx context.Context, receiverID uuid.UUID) (*MarkNotificationsReadResult, error)
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, receiverID uuid.UUID) (*MarkNotificationsReadResult, error) {
	var updated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().MarkAllRead(ctx, tx.DB(), receiverID)
		if err != nil {
			return err
		}
		updated = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &MarkNotificationsReadResult{Updated: updated}, nil
}
