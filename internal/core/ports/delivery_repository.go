// Package ports defines the contracts between the delivery core and the
// infrastructure adapters: repositories with conditional-update semantics,
// the unit of work, and the notifier.
package ports

import (
	"context"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
)

// AdminCancelOutcome reports which branch an administrative cancel took.
type AdminCancelOutcome int

const (
	// AdminCancelNoMatch means neither conditional update matched: the
	// delivery is missing or already COMPLETED. The caller classifies.
	AdminCancelNoMatch AdminCancelOutcome = iota

	// AdminCancelCanceled means the delivery moved to CANCELED.
	AdminCancelCanceled

	// AdminCancelFlaggedIssue means the delivery was in transit and moved to
	// ISSUE instead of CANCELED.
	AdminCancelFlaggedIssue
)

// DeliveryRepository is the persistence contract for delivery aggregates.
//
// Every state transition is a single conditional update: one UPDATE statement
// whose WHERE clause encodes the expected prior state (id, status, actor).
// The boolean result reports whether the row matched; false means the
// precondition did not hold at the instant the statement ran, and the caller
// re-reads to classify the failure. None of the transition methods ever
// performs a read-then-write.
type DeliveryRepository interface {
	// Add persists a freshly created delivery offer.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Accept atomically claims an AVAILABLE, unclaimed delivery for the
	// courier. The update only matches when no priority window is reserving
	// the offer for someone else, so of N racing couriers exactly one wins.
	Accept(ctx context.Context, id, courierID kernel.UUID, now, acceptBy time.Time) (bool, error)

	// MarkPickedUp moves ACCEPTED to PICKED_UP for the assigned courier.
	MarkPickedUp(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error)

	// MarkCompleted moves PICKED_UP to COMPLETED for the assigned courier.
	MarkCompleted(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error)

	// CancelByCourier moves ACCEPTED to CANCELED for the assigned courier.
	CancelByCourier(ctx context.Context, id, courierID kernel.UUID, now time.Time) (bool, error)

	// CancelByMerchant moves AVAILABLE or ACCEPTED to CANCELED for the
	// owning merchant, recording the given reason.
	CancelByMerchant(ctx context.Context, id, merchantID kernel.UUID, reason string, now time.Time) (bool, error)

	// CancelByAdmin cancels any non-COMPLETED delivery. A delivery already in
	// transit is reclassified to ISSUE rather than CANCELED, preserving the
	// rule that CANCELED never follows PICKED_UP.
	CancelByAdmin(ctx context.Context, id kernel.UUID, now time.Time) (AdminCancelOutcome, error)

	// ReportIssue moves ACCEPTED or PICKED_UP to ISSUE for the assigned
	// courier, recording the reason.
	ReportIssue(ctx context.Context, id, courierID kernel.UUID, reason string, now time.Time) (bool, error)

	// ExpireAvailable bulk-cancels AVAILABLE deliveries whose expiry deadline
	// passed. Returns the number of affected rows. Idempotent.
	ExpireAvailable(ctx context.Context, now time.Time) (int64, error)

	// RevertAbandoned bulk-reverts ACCEPTED deliveries whose pickup deadline
	// passed back to AVAILABLE, clearing the courier and acceptance fields.
	// The original expiry deadline is left untouched. Returns the number of
	// affected rows. Idempotent.
	RevertAbandoned(ctx context.Context, now time.Time) (int64, error)

	// FlagStaleInTransit bulk-flags PICKED_UP deliveries collected before the
	// given threshold as ISSUE. Returns the number of affected rows.
	// Idempotent.
	FlagStaleInTransit(ctx context.Context, olderThan, now time.Time) (int64, error)
}
