package commands

import (
	"context"

	"github.com/google/uuid"

	"shutterbook/internal/domain/payment"
	"shutterbook/internal/infra"
	"shutterbook/internal/pkg/clock"
	"shutterbook/internal/pkg/errs"
	"shutterbook/internal/usecase/shared"
)

var (
	ErrGatewayRejected      = errs.New("charge gateway rejected or failed")
	ErrStalePaymentState    = errs.New("job status changed while charging")
	ErrDuplicatePayment     = errs.New("payment already recorded for this stage")
	ErrEmptyCardToken       = errs.New("card token is required")
)

// ChargeGateway is the external payment collaborator. Amounts are minor
// units; the idempotency key guards against double-billing on retry.
type ChargeGateway interface {
	Charge(ctx context.Context, amountSatang int64, currency, cardToken, idempotencyKey string) (string, error)
}

type InitiateChargeResult struct {
	PaymentID    uuid.UUID
	JobID        uuid.UUID
	Stage        payment.Stage
	AmountSatang int64
}

type PaymentCommands interface {
	InitiateCharge(ctx context.Context, jobID uuid.UUID, cardToken string, actorID uuid.UUID) (*InitiateChargeResult, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  ChargeGateway
	currency string
	clock    clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, gateway ChargeGateway, currency string, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, gateway: gateway, currency: currency, clock: clk}
}

func (uc *paymentUseCaseImpl) InitiateCharge(ctx context.Context, jobID uuid.UUID, cardToken string, actorID uuid.UUID) (*InitiateChargeResult, error) {
	if cardToken == "" {
		return nil, ErrEmptyCardToken
	}

	snap, err := uc.uow.CommandReads().JobByID(ctx, jobID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, errs.Mark(err, ErrJobNotFound)
	}
	if snap.CustomerID != actorID && snap.PhotographerID != actorID {
		return nil, ErrJobNotOwned
	}

	stage, err := payment.StageForStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	due, err := stage.AmountDue(snap.TotalPriceSatang)
	if err != nil {
		return nil, err
	}

	// The gateway call stays outside the transaction; no job or
	// reservation lock is held while waiting on it.
	chargeID, err := uc.gateway.Charge(ctx, due, uc.currency, cardToken, payment.IdempotencyKey(jobID, stage))
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayRejected)
	}

	next, err := stage.NextStatus()
	if err != nil {
		return nil, err
	}

	var result InitiateChargeResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		j, err := tx.Jobs().FindForUpdate(ctx, tx.DB(), jobID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrJobNotFound
			}
			return err
		}

		// Someone may have moved the job while the charge was in
		// flight. The status advance and the payment row commit
		// together or not at all.
		currentStage, err := payment.StageForStatus(j.Status())
		if err != nil || currentStage != stage {
			return ErrStalePaymentState
		}

		if err := AdvanceJob(ctx, tx, j, next, uc.clock); err != nil {
			return err
		}

		p, err := payment.NewPayment(
			uuid.New(),
			j.ID(),
			j.CustomerID(),
			j.PhotographerID(),
			stage,
			due,
			chargeID,
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		paymentID, err := tx.Payments().Create(ctx, tx.DB(), p)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicatePayment)
			}
			return err
		}

		result = InitiateChargeResult{
			PaymentID:    paymentID,
			JobID:        j.ID(),
			Stage:        stage,
			AmountSatang: due,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
