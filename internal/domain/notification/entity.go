package notification

import (
	"time"

	"github.com/google/uuid"

	"shutterbook/internal/domain/job"
	"shutterbook/internal/pkg/errs"
)

var (
	ErrInvalidAction = errs.New("invalid notification action")
	ErrAlreadyRead   = errs.New("notification already read")
)

// Notification records a job event addressed to one user. Immutable except
// for the read state.
type Notification struct {
	id         uuid.UUID
	jobID      uuid.UUID
	actorID    uuid.UUID
	receiverID uuid.UUID
	action     Action
	jobStatus  job.Status
	readState  ReadState
	createdAt  time.Time
}

func NewNotification(
	id uuid.UUID,
	jobID uuid.UUID,
	actorID uuid.UUID,
	receiverID uuid.UUID,
	action Action,
	jobStatus job.Status,
	createdAt time.Time,
) (*Notification, error) {
	if !action.IsValid() {
		return nil, ErrInvalidAction
	}
	return &Notification{
		id:         id,
		jobID:      jobID,
		actorID:    actorID,
		receiverID: receiverID,
		action:     action,
		jobStatus:  jobStatus,
		readState:  ReadStateUnread,
		createdAt:  createdAt,
	}, nil
}

func ReconstructNotification(
	id uuid.UUID,
	jobID uuid.UUID,
	actorID uuid.UUID,
	receiverID uuid.UUID,
	action Action,
	jobStatus job.Status,
	readState ReadState,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:         id,
		jobID:      jobID,
		actorID:    actorID,
		receiverID: receiverID,
		action:     action,
		jobStatus:  jobStatus,
		readState:  readState,
		createdAt:  createdAt,
	}
}

func (n *Notification) ID() uuid.UUID         { return n.id }
func (n *Notification) JobID() uuid.UUID      { return n.jobID }
func (n *Notification) ActorID() uuid.UUID    { return n.actorID }
func (n *Notification) ReceiverID() uuid.UUID { return n.receiverID }
func (n *Notification) Action() Action        { return n.action }
func (n *Notification) JobStatus() job.Status { return n.jobStatus }
func (n *Notification) ReadState() ReadState  { return n.readState }
func (n *Notification) CreatedAt() time.Time  { return n.createdAt }

// MarkRead flips the notification to READ. Marking twice is rejected so
// callers can distinguish a no-op.
func (n *Notification) MarkRead() error {
	if n.readState == ReadStateRead {
		return ErrAlreadyRead
	}
	n.readState = ReadStateRead
	return nil
}
