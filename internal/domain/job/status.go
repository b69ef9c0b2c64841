package job

import "errors"

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAlreadyTerminated = errors.New("job already cancelled or declined")
	ErrAlreadyReviewed   = errors.New("job already reviewed")
	ErrInvalidStatus     = errors.New("invalid job status")
)

type Status string

const (
	StatusPending                 Status = "PENDING"
	StatusDeclined                Status = "DECLINED"
	StatusMatched                 Status = "MATCHED"
	StatusPaid                    Status = "PAID"
	StatusCancelledByPhotographer Status = "CANCELLED_BY_PHOTOGRAPHER"
	StatusCancelledByCustomer     Status = "CANCELLED_BY_CUSTOMER"
	StatusProcessing              Status = "PROCESSING"
	StatusCompleted               Status = "COMPLETED"
	StatusClosed                  Status = "CLOSED"
	StatusReviewed                Status = "REVIEWED"
)

// allowedNext is the full lifecycle table. Statuses absent from the map are
// terminal.
var allowedNext = map[Status][]Status{
	StatusPending:    {StatusDeclined, StatusMatched, StatusCancelledByCustomer},
	StatusMatched:    {StatusPaid, StatusCancelledByPhotographer, StatusCancelledByCustomer},
	StatusPaid:       {StatusProcessing, StatusCancelledByPhotographer, StatusCancelledByCustomer},
	StatusProcessing: {StatusCompleted},
	StatusCompleted:  {StatusClosed},
	StatusClosed:     {StatusReviewed},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDeclined, StatusMatched, StatusPaid,
		StatusCancelledByPhotographer, StatusCancelledByCustomer,
		StatusProcessing, StatusCompleted, StatusClosed, StatusReviewed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	_, ok := allowedNext[s]
	return !ok
}

func (s Status) IsCancellation() bool {
	return s == StatusCancelledByCustomer || s == StatusCancelledByPhotographer
}

// HoldsSlot reports whether a job in this status still occupies its
// reservations' (date, bucket) positions for collision purposes. PENDING
// requests do not block rival bookings; a booking only hardens into a hold
// once the photographer matches it.
func (s Status) HoldsSlot() bool {
	switch s {
	case StatusMatched, StatusPaid, StatusProcessing, StatusCompleted:
		return true
	default:
		return false
	}
}

// SlotHoldingStatuses enumerates the statuses for which HoldsSlot is true,
// for queries filtering on them.
var SlotHoldingStatuses = []Status{StatusMatched, StatusPaid, StatusProcessing, StatusCompleted}

// CanTransition validates s -> next against the lifecycle table.
func (s Status) CanTransition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if s == StatusReviewed {
		return ErrAlreadyReviewed
	}
	nexts, ok := allowedNext[s]
	if !ok {
		return ErrAlreadyTerminated
	}
	for _, n := range nexts {
		if n == next {
			return nil
		}
	}
	return ErrIllegalTransition
}

type Style string

const (
	StyleGraduation Style = "GRADUATION"
	StyleLandscape  Style = "LANDSCAPE"
	StylePortrait   Style = "PORTRAIT"
	StyleProduct    Style = "PRODUCT"
	StyleFashion    Style = "FASHION"
	StyleEvent      Style = "EVENT"
	StyleWedding    Style = "WEDDING"
	StyleNone       Style = "NONE"
)

func (s Style) String() string {
	return string(s)
}

func (s Style) IsValid() bool {
	switch s {
	case StyleGraduation, StyleLandscape, StylePortrait, StyleProduct,
		StyleFashion, StyleEvent, StyleWedding, StyleNone:
		return true
	default:
		return false
	}
}
