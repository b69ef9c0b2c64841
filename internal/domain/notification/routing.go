package notification

import "shutterbook/internal/domain/job"

// Party identifies which side of the job acts in, or receives, a
// notification.
type Party string

const (
	PartyCustomer     Party = "CUSTOMER"
	PartyPhotographer Party = "PHOTOGRAPHER"
)

// Route is the actor/receiver pair for one notification.
type Route struct {
	Actor    Party
	Receiver Party
}

// customerReceives lists the resulting statuses whose transition
// notification flows photographer -> customer. Every other transition
// notifies the photographer.
var customerReceives = map[job.Status]struct{}{
	job.StatusCancelledByCustomer: {},
	job.StatusPaid:                {},
	job.StatusClosed:              {},
	job.StatusReviewed:            {},
}

// RouteFor returns the notification direction for a completed transition
// into status.
func RouteFor(status job.Status) Route {
	if _, ok := customerReceives[status]; ok {
		return Route{Actor: PartyPhotographer, Receiver: PartyCustomer}
	}
	return Route{Actor: PartyCustomer, Receiver: PartyPhotographer}
}

// CreationRoute is the direction for the notification emitted when a job is
// first created: the customer acts and the photographer is notified.
func CreationRoute() Route {
	return Route{Actor: PartyCustomer, Receiver: PartyPhotographer}
}

// ActionFor tags a completed transition: CANCEL for either cancellation
// status, UPDATE otherwise. ActionCreate is reserved for job creation.
func ActionFor(status job.Status) Action {
	if status.IsCancellation() {
		return ActionCancel
	}
	return ActionUpdate
}
