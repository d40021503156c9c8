package delivery

import (
	"fmt"

	"deliveryhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct marketplace workflow.
//
// State transitions:
//
//	AVAILABLE ──> ACCEPTED ──> PICKED_UP ──> COMPLETED
//	    │             │             │
//	    │             ├──> ISSUE <──┘
//	    └────────┬────┘
//	             v
//	         CANCELED
//
// ACCEPTED may also revert to AVAILABLE when the pickup deadline lapses
// (system revert clears the courier). CANCELED never follows PICKED_UP:
// an administrative cancel of an in-transit delivery is reclassified as
// ISSUE instead.
//
// Status values are persisted as-is and form the durable contract read by
// reporting and analytics tooling.
type Status string

const (
	// Available is the initial status: the delivery is offered to couriers
	// and has no courier assigned.
	Available Status = "AVAILABLE"

	// Accepted indicates a courier has claimed the delivery and must pick
	// it up before the acceptance deadline.
	Accepted Status = "ACCEPTED"

	// PickedUp indicates the courier has collected the package and is in transit.
	PickedUp Status = "PICKED_UP"

	// Completed indicates the delivery was dropped off. Final state.
	Completed Status = "COMPLETED"

	// Canceled indicates the delivery was withdrawn by the courier, the
	// merchant, or the system before pickup. Final state.
	Canceled Status = "CANCELED"

	// Issue indicates the delivery needs human intervention (courier-reported
	// problem, stale in-transit, or admin cancel while in transit).
	// No automatic transition leads out of it.
	Issue Status = "ISSUE"
)

// getValidStatuses returns the set of valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Available: {},
		Accepted:  {},
		PickedUp:  {},
		Completed: {},
		Canceled:  {},
		Issue:     {},
	}
}

// StatusFromString converts a persisted string into a Status.
// Returns an error for values outside the durable contract.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the durable string form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the courier-interaction lifecycle has ended.
// Completed and Canceled are final; Issue is semi-terminal (it signals human
// intervention and defines no automatic way out).
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled || s == Issue
}

// CanAccept reports whether a courier may claim a delivery in this status.
func (s Status) CanAccept() bool {
	return s == Available
}

// CanPickUp reports whether the assigned courier may mark the package collected.
func (s Status) CanPickUp() bool {
	return s == Accepted
}

// CanComplete reports whether the assigned courier may mark the delivery done.
func (s Status) CanComplete() bool {
	return s == PickedUp
}

// CanCancelByCourier reports whether the assigned courier may back out.
// Couriers can only cancel before pickup.
func (s Status) CanCancelByCourier() bool {
	return s == Accepted
}

// CanCancelByMerchant reports whether the owning merchant may withdraw the
// delivery. Merchants can cancel until the package is in transit.
func (s Status) CanCancelByMerchant() bool {
	return s == Available || s == Accepted
}

// CanCancelByAdmin reports whether an administrator may cancel the delivery.
// Completed and already-canceled deliveries are protected; an admin cancel of
// a PICKED_UP delivery lands in Issue rather than Canceled.
func (s Status) CanCancelByAdmin() bool {
	return s != Completed && s != Canceled
}

// CanReportIssue reports whether the assigned courier may flag a problem.
func (s Status) CanReportIssue() bool {
	return s == Accepted || s == PickedUp
}

// RequiresCourier reports whether a delivery in this status must have a
// courier assigned. Available deliveries must not; deliveries that progressed
// past Available must. Canceled and Issue rows may carry either (the system
// revert clears the courier, a courier cancel keeps it for the record).
func (s Status) RequiresCourier() (required, forbidden bool) {
	switch s {
	case Accepted, PickedUp, Completed:
		return true, false
	case Available:
		return false, true
	default:
		return false, false
	}
}
