package payment

import (
	"time"

	"github.com/google/uuid"

	"shutterbook/internal/pkg/errs"
)

var ErrNonPositiveAmount = errs.New("payment amount must be positive")

// Payment records one settled gateway charge. At most one per job/stage
// pair; the unique index in the store enforces it.
type Payment struct {
	id             uuid.UUID
	jobID          uuid.UUID
	customerID     uuid.UUID
	photographerID uuid.UUID
	stage          Stage
	amountSatang   int64
	chargeID       string
	createdAt      time.Time
}

func NewPayment(
	id uuid.UUID,
	jobID uuid.UUID,
	customerID uuid.UUID,
	photographerID uuid.UUID,
	stage Stage,
	amountSatang int64,
	chargeID string,
	createdAt time.Time,
) (*Payment, error) {
	if !stage.IsValid() {
		return nil, ErrInvalidStage
	}
	if amountSatang <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return &Payment{
		id:             id,
		jobID:          jobID,
		customerID:     customerID,
		photographerID: photographerID,
		stage:          stage,
		amountSatang:   amountSatang,
		chargeID:       chargeID,
		createdAt:      createdAt,
	}, nil
}

func ReconstructPayment(
	id uuid.UUID,
	jobID uuid.UUID,
	customerID uuid.UUID,
	photographerID uuid.UUID,
	stage Stage,
	amountSatang int64,
	chargeID string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:             id,
		jobID:          jobID,
		customerID:     customerID,
		photographerID: photographerID,
		stage:          stage,
		amountSatang:   amountSatang,
		chargeID:       chargeID,
		createdAt:      createdAt,
	}
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) JobID() uuid.UUID          { return p.jobID }
func (p *Payment) CustomerID() uuid.UUID     { return p.customerID }
func (p *Payment) PhotographerID() uuid.UUID { return p.photographerID }
func (p *Payment) Stage() Stage              { return p.stage }
func (p *Payment) AmountSatang() int64       { return p.amountSatang }
func (p *Payment) ChargeID() string          { return p.chargeID }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }
