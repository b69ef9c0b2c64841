//go:build unit

package job_test

import (
	"testing"

	"shutterbook/internal/domain/job"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	allowed := map[job.Status][]job.Status{
		job.StatusPending:    {job.StatusDeclined, job.StatusMatched, job.StatusCancelledByCustomer},
		job.StatusMatched:    {job.StatusPaid, job.StatusCancelledByPhotographer, job.StatusCancelledByCustomer},
		job.StatusPaid:       {job.StatusProcessing, job.StatusCancelledByPhotographer, job.StatusCancelledByCustomer},
		job.StatusProcessing: {job.StatusCompleted},
		job.StatusCompleted:  {job.StatusClosed},
		job.StatusClosed:     {job.StatusReviewed},
	}

	all := []job.Status{
		job.StatusPending, job.StatusDeclined, job.StatusMatched, job.StatusPaid,
		job.StatusCancelledByPhotographer, job.StatusCancelledByCustomer,
		job.StatusProcessing, job.StatusCompleted, job.StatusClosed, job.StatusReviewed,
	}

	terminal := map[job.Status]error{
		job.StatusDeclined:                job.ErrAlreadyTerminated,
		job.StatusCancelledByCustomer:     job.ErrAlreadyTerminated,
		job.StatusCancelledByPhotographer: job.ErrAlreadyTerminated,
		job.StatusReviewed:                job.ErrAlreadyReviewed,
	}

	isAllowed := func(from, to job.Status) bool {
		for _, n := range allowed[from] {
			if n == to {
				return true
			}
		}
		return false
	}

	// Exhaustive from x to grid so any table drift surfaces immediately.
	for _, from := range all {
		for _, to := range all {
			err := from.CanTransition(to)
			switch {
			case isAllowed(from, to):
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
			case terminal[from] != nil:
				assert.ErrorIs(t, err, terminal[from], "%s -> %s", from, to)
			default:
				assert.ErrorIs(t, err, job.ErrIllegalTransition, "%s -> %s", from, to)
			}
		}
	}
}

func TestStatusCanTransitionInvalidTarget(t *testing.T) {
	err := job.StatusPending.CanTransition(job.Status("NOT_A_STATUS"))
	assert.ErrorIs(t, err, job.ErrInvalidStatus)
}

func TestStatusHoldsSlot(t *testing.T) {
	holding := map[job.Status]bool{
		job.StatusMatched:    true,
		job.StatusPaid:       true,
		job.StatusProcessing: true,
		job.StatusCompleted:  true,
	}
	for _, s := range []job.Status{
		job.StatusPending, job.StatusDeclined, job.StatusMatched, job.StatusPaid,
		job.StatusCancelledByPhotographer, job.StatusCancelledByCustomer,
		job.StatusProcessing, job.StatusCompleted, job.StatusClosed, job.StatusReviewed,
	} {
		assert.Equal(t, holding[s], s.HoldsSlot(), "HoldsSlot(%s)", s)
	}

	assert.Len(t, job.SlotHoldingStatuses, 4)
	for _, s := range job.SlotHoldingStatuses {
		assert.True(t, s.HoldsSlot())
	}
}

func TestStatusIsCancellation(t *testing.T) {
	assert.True(t, job.StatusCancelledByCustomer.IsCancellation())
	assert.True(t, job.StatusCancelledByPhotographer.IsCancellation())
	assert.False(t, job.StatusDeclined.IsCancellation())
	assert.False(t, job.StatusClosed.IsCancellation())
}

func TestStyleIsValid(t *testing.T) {
	assert.True(t, job.StyleWedding.IsValid())
	assert.True(t, job.StyleNone.IsValid())
	assert.False(t, job.Style("SELFIE").IsValid())
}
