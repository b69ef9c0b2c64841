package commands

import (
	"context"

	"github.com/google/uuid"

	"shutterbook/internal/domain/job"
	"shutterbook/internal/domain/notification"
	"shutterbook/internal/infra"
	"shutterbook/internal/pkg/clock"
	"shutterbook/internal/pkg/errs"
	"shutterbook/internal/usecase/shared"
)

var (
	ErrJobNotFound      = errs.New("job not found")
	ErrJobNotOwned      = errs.New("job does not involve this user")
	ErrStatusReserved   = errs.New("status is only reachable through payment")
	ErrInvalidNewStatus = errs.New("unknown job status")
)

type UpdateStatusRequest struct {
	NewStatus   string
	DeliveryURL *string
}

type UpdateStatusResult struct {
	JobID  uuid.UUID
	Status job.Status
}

type LifecycleCommands interface {
	UpdateStatus(ctx context.Context, jobID uuid.UUID, req UpdateStatusRequest, actorID uuid.UUID) (*UpdateStatusResult, error)
}

type lifecycleUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLifecycleUseCase(uow shared.UnitOfWork, clk clock.Clock) LifecycleCommands {
	return &lifecycleUseCaseImpl{uow: uow, clock: clk}
}

func (uc *lifecycleUseCaseImpl) UpdateStatus(ctx context.Context, jobID uuid.UUID, req UpdateStatusRequest, actorID uuid.UUID) (*UpdateStatusResult, error) {
	next := job.Status(req.NewStatus)
	if !next.IsValid() {
		return nil, ErrInvalidNewStatus
	}
	// PAID and CLOSED only happen when a charge settles.
	if next == job.StatusPaid || next == job.StatusClosed {
		return nil, ErrStatusReserved
	}

	var result UpdateStatusResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		j, err := tx.Jobs().FindForUpdate(ctx, tx.DB(), jobID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrJobNotFound
			}
			return err
		}
		if j.CustomerID() != actorID && j.PhotographerID() != actorID {
			return ErrJobNotOwned
		}

		// Accepting a job starts holding its positions, so re-check them:
		// a rival job may have reached MATCHED since this one was booked.
		if next == job.StatusMatched {
			if err := tx.Reservations().LockPhotographer(ctx, tx.DB(), j.PhotographerID()); err != nil {
				return err
			}
			taken, err := tx.Reservations().ListBooked(ctx, tx.DB(), j.PhotographerID())
			if err != nil {
				return err
			}
			if job.AnyPositionHeld(taken, j.Reservations()) {
				return job.ErrSlotTaken
			}
		}

		if err := AdvanceJob(ctx, tx, j, next, uc.clock); err != nil {
			return err
		}

		if req.DeliveryURL != nil {
			if err := j.AttachDeliveryURL(*req.DeliveryURL); err != nil {
				return err
			}
			if err := tx.Jobs().SetDeliveryURL(ctx, tx.DB(), j.ID(), *req.DeliveryURL); err != nil {
				return err
			}
		}

		result = UpdateStatusResult{JobID: j.ID(), Status: j.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AdvanceJob applies one transition on a job already locked by the caller's
// transaction, persists the new status and emits the single notification
// every successful transition carries. The payment orchestrator reuses it
// so PAID and CLOSED follow the same path.
func AdvanceJob(ctx context.Context, tx shared.Tx, j *job.Job, next job.Status, clk clock.Clock) error {
	if err := j.Transition(next); err != nil {
		return err
	}
	if err := tx.Jobs().UpdateStatus(ctx, tx.DB(), j.ID(), next); err != nil {
		return err
	}

	route := notification.RouteFor(next)
	n, err := notification.NewNotification(
		uuid.New(),
		j.ID(),
		partyUserID(route.Actor, j.CustomerID(), j.PhotographerID()),
		partyUserID(route.Receiver, j.CustomerID(), j.PhotographerID()),
		notification.ActionFor(next),
		next,
		clk.Now(),
	)
	if err != nil {
		return err
	}
	_, err = tx.Notifications().Create(ctx, tx.DB(), n)
	return err
}
