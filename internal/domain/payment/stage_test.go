//go:build unit

package payment_test

import (
	"testing"

	"shutterbook/internal/domain/job"
	"shutterbook/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageForStatus(t *testing.T) {
	stage, err := payment.StageForStatus(job.StatusMatched)
	require.NoError(t, err)
	assert.Equal(t, payment.StageDeposit, stage)

	stage, err = payment.StageForStatus(job.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, payment.StageRemaining, stage)

	for _, s := range []job.Status{
		job.StatusPending, job.StatusDeclined, job.StatusPaid, job.StatusProcessing,
		job.StatusClosed, job.StatusReviewed,
		job.StatusCancelledByCustomer, job.StatusCancelledByPhotographer,
	} {
		_, err := payment.StageForStatus(s)
		assert.ErrorIs(t, err, payment.ErrInvalidStageForState, "status %s", s)
	}
}

func TestStageNextStatus(t *testing.T) {
	next, err := payment.StageDeposit.NextStatus()
	require.NoError(t, err)
	assert.Equal(t, job.StatusPaid, next)

	next, err = payment.StageRemaining.NextStatus()
	require.NoError(t, err)
	assert.Equal(t, job.StatusClosed, next)

	_, err = payment.Stage("REFUND").NextStatus()
	assert.ErrorIs(t, err, payment.ErrInvalidStage)
}

func TestStageAmountDue(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		deposit   int64
		remaining int64
	}{
		{name: "clean split", total: 150000, deposit: 45000, remaining: 105000},
		{name: "rounds half up", total: 105, deposit: 32, remaining: 74},
		{name: "small total", total: 10, deposit: 3, remaining: 7},
		{name: "zero total", total: 0, deposit: 0, remaining: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := payment.StageDeposit.AmountDue(tc.total)
			require.NoError(t, err)
			assert.Equal(t, tc.deposit, got, "deposit of %d", tc.total)

			got, err = payment.StageRemaining.AmountDue(tc.total)
			require.NoError(t, err)
			assert.Equal(t, tc.remaining, got, "remaining of %d", tc.total)
		})
	}

	_, err := payment.Stage("REFUND").AmountDue(100)
	assert.ErrorIs(t, err, payment.ErrInvalidStage)
}

func TestIdempotencyKey(t *testing.T) {
	jobID := uuid.New()
	key := payment.IdempotencyKey(jobID, payment.StageDeposit)
	assert.Equal(t, jobID.String()+":DEPOSIT", key)

	// Same job, different stage must never collide.
	assert.NotEqual(t, key, payment.IdempotencyKey(jobID, payment.StageRemaining))
}
