package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/domain/job"
	"shutterbook/internal/domain/notification"
	"shutterbook/internal/domain/payment"
	"shutterbook/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Jobs() JobRepository
	Reservations() ReservationRepository
	Availability() AvailabilityRepository
	Payments() PaymentRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	JobByID(ctx context.Context, id uuid.UUID) (*JobSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type JobRepository interface {
	Create(ctx context.Context, tx db.DBTX, j *job.Job) (uuid.UUID, error)
	// FindForUpdate locks the job row until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*job.Job, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status job.Status) error
	SetDeliveryURL(ctx context.Context, tx db.DBTX, id uuid.UUID, url string) error
}

type ReservationRepository interface {
	// LockPhotographer serializes bookings per photographer for the
	// lifetime of the surrounding transaction.
	LockPhotographer(ctx context.Context, tx db.DBTX, photographerID uuid.UUID) error
	ListBooked(ctx context.Context, tx db.DBTX, photographerID uuid.UUID) ([]job.BookedSlot, error)
	GetOrCreate(ctx context.Context, tx db.DBTX, photographerID uuid.UUID, planned job.PlannedReservation) (uuid.UUID, error)
	LinkToJob(ctx context.Context, tx db.DBTX, jobID, reservationID uuid.UUID) error
}

type AvailabilityRepository interface {
	Replace(ctx context.Context, tx db.DBTX, photographerID uuid.UUID, slots []*availability.Slot) error
	ListByPhotographer(ctx context.Context, tx db.DBTX, photographerID uuid.UUID) ([]*availability.Slot, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (uuid.UUID, error)
	// MarkAllRead flips every notification addressed to receiverID to READ
	// and reports how many rows changed. Safe to repeat.
	MarkAllRead(ctx context.Context, tx db.DBTX, receiverID uuid.UUID) (int64, error)
}

// Minimal snapshots for command read operations.

type JobSnapshot struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	PhotographerID   uuid.UUID
	Status           job.Status
	TotalPriceSatang int64
	CreatedAt        time.Time
}

type UserSnapshot struct {
	ID   uuid.UUID
	Role string
}
