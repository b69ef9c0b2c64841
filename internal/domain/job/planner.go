package job

import (
	"errors"
	"time"

	"shutterbook/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate    = errors.New("photoshoot date is invalid")
	ErrNoAvailability = errors.New("photographer has no availability for the requested time")
	ErrSlotTaken      = errors.New("photographer already booked for the requested time")
)

// ReservationRequest is one requested (date, bucket) pair of a booking.
type ReservationRequest struct {
	Date   time.Time
	Bucket availability.TimeBucket
}

// BookedSlot is an occupied (date, bucket) position of the photographer,
// taken from jobs whose status holds the slot.
type BookedSlot struct {
	Date   time.Time
	Bucket availability.TimeBucket
}

// PlannedReservation is the planner's output for one request: the slot that
// covers it and that slot's price.
type PlannedReservation struct {
	Date        time.Time
	Bucket      availability.TimeBucket
	SlotID      uuid.UUID
	PriceSatang int64
}

// PlanReservations validates every requested (date, bucket) pair against the
// photographer's slot catalog and the currently held positions, returning the
// planned reservations and their total price. The result is all-or-nothing:
// any failing pair fails the whole plan and nothing may be committed.
//
// When several slots cover the same (weekday, bucket) with different prices,
// the cheapest one wins.
func PlanReservations(
	today time.Time,
	expectedCompletion time.Time,
	slots []*availability.Slot,
	taken []BookedSlot,
	requests []ReservationRequest,
) ([]PlannedReservation, int64, error) {
	if len(requests) == 0 {
		return nil, 0, ErrNoReservations
	}

	held := make(map[BookedSlot]struct{}, len(taken))
	for _, t := range taken {
		held[BookedSlot{Date: dateOnly(t.Date), Bucket: t.Bucket}] = struct{}{}
	}

	planned := make([]PlannedReservation, 0, len(requests))
	var total int64

	for _, req := range requests {
		date := dateOnly(req.Date)
		if date.Before(dateOnly(today)) {
			return nil, 0, ErrInvalidDate
		}
		if dateOnly(expectedCompletion).Before(date) {
			return nil, 0, ErrInvalidDate
		}

		slot := cheapestCovering(slots, availability.WeekdayOf(date), req.Bucket)
		if slot == nil {
			return nil, 0, ErrNoAvailability
		}

		if _, occupied := held[BookedSlot{Date: date, Bucket: req.Bucket}]; occupied {
			return nil, 0, ErrSlotTaken
		}

		planned = append(planned, PlannedReservation{
			Date:        date,
			Bucket:      req.Bucket,
			SlotID:      slot.ID(),
			PriceSatang: slot.PriceSatang(),
		})
		total += slot.PriceSatang()
	}

	return planned, total, nil
}

// AnyPositionHeld reports whether any of the reservations collides with a
// currently held (date, bucket) position. Used when a job is accepted:
// between booking and MATCHED a rival job may have claimed the position.
func AnyPositionHeld(taken []BookedSlot, reservations []Reservation) bool {
	held := make(map[BookedSlot]struct{}, len(taken))
	for _, t := range taken {
		held[BookedSlot{Date: dateOnly(t.Date), Bucket: t.Bucket}] = struct{}{}
	}
	for _, r := range reservations {
		if _, occupied := held[BookedSlot{Date: dateOnly(r.Date()), Bucket: r.Bucket()}]; occupied {
			return true
		}
	}
	return false
}

func cheapestCovering(slots []*availability.Slot, weekday availability.Weekday, bucket availability.TimeBucket) *availability.Slot {
	var best *availability.Slot
	for _, s := range slots {
		if !s.Covers(weekday, bucket) {
			continue
		}
		if best == nil || s.PriceSatang() < best.PriceSatang() {
			best = s
		}
	}
	return best
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
