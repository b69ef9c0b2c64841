package job

import (
	"errors"
	"time"

	"shutterbook/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("job title is required")
	ErrInvalidStyle    = errors.New("invalid job style")
	ErrNoReservations  = errors.New("job needs at least one reservation")
	ErrInvalidDelivery = errors.New("delivery url cannot be empty")
)

// Reservation is one committed occupation of a photographer's slot on a
// specific calendar date. Reservations are created only through the planner
// and are immutable afterwards.
type Reservation struct {
	id          uuid.UUID
	date        time.Time
	bucket      availability.TimeBucket
	slotID      uuid.UUID
	priceSatang int64
}

func ReconstructReservation(id uuid.UUID, date time.Time, bucket availability.TimeBucket, slotID uuid.UUID, priceSatang int64) Reservation {
	return Reservation{
		id:          id,
		date:        date,
		bucket:      bucket,
		slotID:      slotID,
		priceSatang: priceSatang,
	}
}

func (r Reservation) ID() uuid.UUID                   { return r.id }
func (r Reservation) Date() time.Time                 { return r.date }
func (r Reservation) Bucket() availability.TimeBucket { return r.bucket }
func (r Reservation) SlotID() uuid.UUID               { return r.slotID }
func (r Reservation) PriceSatang() int64              { return r.priceSatang }

// Job is the aggregate for one engagement between a customer and a
// photographer. Status is never client-supplied at creation and mutates only
// through Transition.
type Job struct {
	id                 uuid.UUID
	title              string
	description        string
	customerID         uuid.UUID
	photographerID     uuid.UUID
	status             Status
	style              Style
	location           string
	expectedCompletion time.Time
	specialRequirement string
	deliveryURL        *string
	reservations       []Reservation
	createdAt          time.Time
	updatedAt          time.Time
}

func NewJob(
	title, description string,
	customerID, photographerID uuid.UUID,
	style Style,
	location string,
	expectedCompletion time.Time,
	specialRequirement string,
	reservations []Reservation,
) (*Job, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !style.IsValid() {
		return nil, ErrInvalidStyle
	}
	if len(reservations) == 0 {
		return nil, ErrNoReservations
	}

	return &Job{
		id:                 uuid.New(),
		title:              title,
		description:        description,
		customerID:         customerID,
		photographerID:     photographerID,
		status:             StatusPending,
		style:              style,
		location:           location,
		expectedCompletion: expectedCompletion,
		specialRequirement: specialRequirement,
		reservations:       reservations,
	}, nil
}

func ReconstructJob(
	id uuid.UUID,
	title, description string,
	customerID, photographerID uuid.UUID,
	status Status,
	style Style,
	location string,
	expectedCompletion time.Time,
	specialRequirement string,
	deliveryURL *string,
	reservations []Reservation,
	createdAt, updatedAt time.Time,
) *Job {
	return &Job{
		id:                 id,
		title:              title,
		description:        description,
		customerID:         customerID,
		photographerID:     photographerID,
		status:             status,
		style:              style,
		location:           location,
		expectedCompletion: expectedCompletion,
		specialRequirement: specialRequirement,
		deliveryURL:        deliveryURL,
		reservations:       reservations,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Transition moves the job to next after validating the lifecycle table.
func (j *Job) Transition(next Status) error {
	if err := j.status.CanTransition(next); err != nil {
		return err
	}
	j.status = next
	return nil
}

// AttachDeliveryURL stores the delivered-photos link. Attaching a URL is not
// a status transition.
func (j *Job) AttachDeliveryURL(url string) error {
	if url == "" {
		return ErrInvalidDelivery
	}
	j.deliveryURL = &url
	return nil
}

// TotalPriceSatang is the derived job price: the sum of the committed
// reservations' slot prices. It is never stored.
func (j *Job) TotalPriceSatang() int64 {
	var total int64
	for _, r := range j.reservations {
		total += r.priceSatang
	}
	return total
}

func (j *Job) ID() uuid.UUID                 { return j.id }
func (j *Job) Title() string                 { return j.title }
func (j *Job) Description() string           { return j.description }
func (j *Job) CustomerID() uuid.UUID         { return j.customerID }
func (j *Job) PhotographerID() uuid.UUID     { return j.photographerID }
func (j *Job) Status() Status                { return j.status }
func (j *Job) Style() Style                  { return j.style }
func (j *Job) Location() string              { return j.location }
func (j *Job) ExpectedCompletion() time.Time { return j.expectedCompletion }
func (j *Job) SpecialRequirement() string    { return j.specialRequirement }
func (j *Job) DeliveryURL() *string          { return j.deliveryURL }
func (j *Job) Reservations() []Reservation   { return j.reservations }
func (j *Job) CreatedAt() time.Time          { return j.createdAt }
func (j *Job) UpdatedAt() time.Time          { return j.updatedAt }
