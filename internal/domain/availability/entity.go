package availability

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrInvalidBucket  = errors.New("invalid time bucket")
	ErrNegativePrice  = errors.New("price cannot be negative")
)

// Slot is one recurring availability unit a photographer publishes:
// a weekday, a time bucket and a price in satang (THB minor units).
// Duplicate (weekday, bucket) slots with different prices are legal.
type Slot struct {
	id             uuid.UUID
	photographerID uuid.UUID
	weekday        Weekday
	bucket         TimeBucket
	priceSatang    int64
}

func NewSlot(photographerID uuid.UUID, weekday Weekday, bucket TimeBucket, priceSatang int64) (*Slot, error) {
	if !weekday.IsValid() {
		return nil, ErrInvalidWeekday
	}
	if !bucket.IsValid() {
		return nil, ErrInvalidBucket
	}
	if priceSatang < 0 {
		return nil, ErrNegativePrice
	}

	return &Slot{
		id:             uuid.New(),
		photographerID: photographerID,
		weekday:        weekday,
		bucket:         bucket,
		priceSatang:    priceSatang,
	}, nil
}

func ReconstructSlot(id, photographerID uuid.UUID, weekday Weekday, bucket TimeBucket, priceSatang int64) *Slot {
	return &Slot{
		id:             id,
		photographerID: photographerID,
		weekday:        weekday,
		bucket:         bucket,
		priceSatang:    priceSatang,
	}
}

func (s *Slot) ID() uuid.UUID             { return s.id }
func (s *Slot) PhotographerID() uuid.UUID { return s.photographerID }
func (s *Slot) Weekday() Weekday          { return s.weekday }
func (s *Slot) Bucket() TimeBucket        { return s.bucket }
func (s *Slot) PriceSatang() int64        { return s.priceSatang }

// Covers reports whether the slot makes the photographer available for the
// given weekday and bucket.
func (s *Slot) Covers(weekday Weekday, bucket TimeBucket) bool {
	return s.weekday == weekday && s.bucket == bucket
}
