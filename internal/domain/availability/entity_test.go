//go:build unit

package availability_test

import (
	"testing"
	"time"

	"shutterbook/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	photographerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		s, err := availability.NewSlot(photographerID, availability.Saturday, availability.FullDay, 150000)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, photographerID, s.PhotographerID())
		assert.Equal(t, int64(150000), s.PriceSatang())
	})

	t.Run("zero price is legal", func(t *testing.T) {
		_, err := availability.NewSlot(photographerID, availability.Monday, availability.Night, 0)
		assert.NoError(t, err)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		_, err := availability.NewSlot(photographerID, "FUNDAY", availability.FullDay, 100)
		assert.ErrorIs(t, err, availability.ErrInvalidWeekday)
	})

	t.Run("invalid bucket", func(t *testing.T) {
		_, err := availability.NewSlot(photographerID, availability.Monday, "LUNCH", 100)
		assert.ErrorIs(t, err, availability.ErrInvalidBucket)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := availability.NewSlot(photographerID, availability.Monday, availability.FullDay, -1)
		assert.ErrorIs(t, err, availability.ErrNegativePrice)
	})
}

func TestSlotCovers(t *testing.T) {
	s, err := availability.NewSlot(uuid.New(), availability.Saturday, availability.FullDay, 100)
	require.NoError(t, err)

	assert.True(t, s.Covers(availability.Saturday, availability.FullDay))
	assert.False(t, s.Covers(availability.Sunday, availability.FullDay))
	// Buckets are atomic: FULL_DAY never covers a half day.
	assert.False(t, s.Covers(availability.Saturday, availability.HalfDayMorning))
}

func TestWeekdayOf(t *testing.T) {
	// 2026-09-05 is a Saturday.
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, availability.Saturday, availability.WeekdayOf(saturday))
	assert.Equal(t, availability.Sunday, availability.WeekdayOf(saturday.AddDate(0, 0, 1)))
}
