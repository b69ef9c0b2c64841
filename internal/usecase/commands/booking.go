package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/domain/job"
	"shutterbook/internal/domain/notification"
	"shutterbook/internal/domain/user"
	"shutterbook/internal/infra"
	"shutterbook/internal/pkg/clock"
	"shutterbook/internal/pkg/errs"
	"shutterbook/internal/usecase/shared"
)

var (
	ErrPhotographerNotFound = errs.New("photographer not found")
	ErrNotAPhotographer     = errs.New("target user is not a photographer")
	ErrBookingConflict      = errs.New("booking conflict")
	ErrDomainValidation     = errs.New("domain validation error")
)

type ReservationInput struct {
	Date   time.Time
	Bucket string
}

type CreateJobRequest struct {
	PhotographerID     uuid.UUID
	Title              string
	Description        string
	Style              string
	Location           string
	SpecialRequirement string
	ExpectedCompletion time.Time
	Reservations       []ReservationInput
}

type CreateJobResult struct {
	JobID            uuid.UUID
	TotalPriceSatang int64
}

type BookingCommands interface {
	CreateJob(ctx context.Context, req CreateJobRequest, customerID uuid.UUID) (*CreateJobResult, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateJob(ctx context.Context, req CreateJobRequest, customerID uuid.UUID) (*CreateJobResult, error) {
	if err := uc.validatePhotographer(ctx, req.PhotographerID); err != nil {
		return nil, err
	}

	requests := make([]job.ReservationRequest, 0, len(req.Reservations))
	for _, r := range req.Reservations {
		requests = append(requests, job.ReservationRequest{
			Date:   r.Date,
			Bucket: availability.TimeBucket(r.Bucket),
		})
	}
	today := clock.Today(uc.clock, time.UTC)

	var result CreateJobResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// All slot reads below happen under this lock so two bookings
		// for the same photographer serialize instead of racing.
		if err := tx.Reservations().LockPhotographer(ctx, tx.DB(), req.PhotographerID); err != nil {
			return err
		}

		slots, err := tx.Availability().ListByPhotographer(ctx, tx.DB(), req.PhotographerID)
		if err != nil {
			return err
		}
		taken, err := tx.Reservations().ListBooked(ctx, tx.DB(), req.PhotographerID)
		if err != nil {
			return err
		}

		planned, total, err := job.PlanReservations(today, req.ExpectedCompletion, slots, taken, requests)
		if err != nil {
			return err
		}

		reservations := make([]job.Reservation, 0, len(planned))
		for _, p := range planned {
			reservations = append(reservations, job.ReconstructReservation(uuid.Nil, p.Date, p.Bucket, p.SlotID, p.PriceSatang))
		}

		j, err := job.NewJob(
			req.Title,
			req.Description,
			customerID,
			req.PhotographerID,
			job.Style(req.Style),
			req.Location,
			req.ExpectedCompletion,
			req.SpecialRequirement,
			reservations,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		jobID, err := tx.Jobs().Create(ctx, tx.DB(), j)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrBookingConflict)
			}
			return err
		}

		for _, p := range planned {
			resID, err := tx.Reservations().GetOrCreate(ctx, tx.DB(), req.PhotographerID, p)
			if err != nil {
				return err
			}
			if err := tx.Reservations().LinkToJob(ctx, tx.DB(), jobID, resID); err != nil {
				return err
			}
		}

		route := notification.CreationRoute()
		n, err := notification.NewNotification(
			uuid.New(),
			jobID,
			partyUserID(route.Actor, customerID, req.PhotographerID),
			partyUserID(route.Receiver, customerID, req.PhotographerID),
			notification.ActionCreate,
			job.StatusPending,
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		if _, err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
			return err
		}

		result = CreateJobResult{JobID: jobID, TotalPriceSatang: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *bookingUseCaseImpl) validatePhotographer(ctx context.Context, photographerID uuid.UUID) error {
	snap, err := uc.uow.CommandReads().UserByID(ctx, photographerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPhotographerNotFound
		}
		return errs.Mark(err, ErrPhotographerNotFound)
	}
	if snap.Role != user.RolePhotographer.String() {
		return ErrNotAPhotographer
	}
	return nil
}

func partyUserID(p notification.Party, customerID, photographerID uuid.UUID) uuid.UUID {
	if p == notification.PartyCustomer {
		return customerID
	}
	return photographerID
}
