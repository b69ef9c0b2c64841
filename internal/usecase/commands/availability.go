package commands

import (
	"context"

	"github.com/google/uuid"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/pkg/errs"
	"shutterbook/internal/usecase/shared"
)

var ErrNotSlotOwner = errs.New("only the photographer may edit their slots")

type SlotInput struct {
	Weekday     string
	Bucket      string
	PriceSatang int64
}

type ReplaceSlotsRequest struct {
	Slots []SlotInput
}

type ReplaceSlotsResult struct {
	SlotIDs []uuid.UUID
}

type AvailabilityCommands interface {
	// ReplaceSlots swaps a photographer's whole weekly catalog in one
	// transaction. Existing reservations keep referencing the slot rows
	// they were booked against.
	ReplaceSlots(ctx context.Context, photographerID uuid.UUID, req ReplaceSlotsRequest, actorID uuid.UUID) (*ReplaceSlotsResult, error)
}

type availabilityUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityUseCase(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow}
}

func (uc *availabilityUseCaseImpl) ReplaceSlots(ctx context.Context, photographerID uuid.UUID, req ReplaceSlotsRequest, actorID uuid.UUID) (*ReplaceSlotsResult, error) {
	if actorID != photographerID {
		return nil, ErrNotSlotOwner
	}

	slots := make([]*availability.Slot, 0, len(req.Slots))
	for _, in := range req.Slots {
		slot, err := availability.NewSlot(
			photographerID,
			availability.Weekday(in.Weekday),
			availability.TimeBucket(in.Bucket),
			in.PriceSatang,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		slots = append(slots, slot)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availability().Replace(ctx, tx.DB(), photographerID, slots)
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID())
	}
	return &ReplaceSlotsResult{SlotIDs: ids}, nil
}
