package payment

import (
	"fmt"

	"github.com/google/uuid"

	"shutterbook/internal/domain/job"
	"shutterbook/internal/pkg/errs"
)

var (
	ErrInvalidStage         = errs.New("invalid payment stage")
	ErrInvalidStageForState = errs.New("job status does not accept a payment")
)

// Stage names which of the two charges a payment settles. The deposit is
// 30% of the job total, the remaining charge the other 70%.
type Stage string

const (
	StageDeposit   Stage = "DEPOSIT"
	StageRemaining Stage = "REMAINING"
)

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	return s == StageDeposit || s == StageRemaining
}

// percent rates are fixed by the product; amounts stay in satang so the
// split never sees floating point.
const (
	depositRatePercent   = 30
	remainingRatePercent = 70
)

// StageForStatus maps the job status a payment arrives in to the stage it
// must settle. Only MATCHED (deposit) and COMPLETED (remaining) accept
// charges.
func StageForStatus(status job.Status) (Stage, error) {
	switch status {
	case job.StatusMatched:
		return StageDeposit, nil
	case job.StatusCompleted:
		return StageRemaining, nil
	}
	return "", ErrInvalidStageForState
}

// NextStatus is the status the job advances to once the stage settles.
func (s Stage) NextStatus() (job.Status, error) {
	switch s {
	case StageDeposit:
		return job.StatusPaid, nil
	case StageRemaining:
		return job.StatusClosed, nil
	}
	return "", ErrInvalidStage
}

// AmountDue computes the satang owed for this stage, rounding the
// percentage half-up.
func (s Stage) AmountDue(totalSatang int64) (int64, error) {
	switch s {
	case StageDeposit:
		return roundedShare(totalSatang, depositRatePercent), nil
	case StageRemaining:
		return roundedShare(totalSatang, remainingRatePercent), nil
	}
	return 0, ErrInvalidStage
}

func roundedShare(totalSatang int64, ratePercent int64) int64 {
	return (totalSatang*ratePercent + 50) / 100
}

// IdempotencyKey derives the gateway idempotency key for one job/stage
// pair, so a retried charge for the same stage can never double-bill.
func IdempotencyKey(jobID uuid.UUID, stage Stage) string {
	return fmt.Sprintf("%s:%s", jobID, stage)
}
