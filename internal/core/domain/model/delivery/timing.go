package delivery

import (
	"time"

	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

// ErrTimingIsNotConstructed is returned when a Timing instance was not created
// through the NewTiming factory method.
var ErrTimingIsNotConstructed = errs.NewValueIsRequiredError("Timing must be created via NewTiming constructor")

// Timing bundles the externally configurable lifecycle windows consumed by the
// engine and the cleanup scheduler. It is injected at construction rather than
// read from ambient globals so tests can use arbitrary windows.
type Timing struct {
	expiryWindow   time.Duration
	offerWindow    time.Duration
	pickupTimeout  time.Duration
	staleThreshold time.Duration

	guard guard.ConstructorGuard
}

// NewTiming creates a Timing value object.
//
//   - expiryWindow: how long an AVAILABLE delivery waits for a courier before
//     the scheduler cancels it.
//   - offerWindow: how long a delivery with a preferred courier stays hidden
//     from everyone else.
//   - pickupTimeout: how long an ACCEPTED delivery waits for pickup before the
//     scheduler reverts it to AVAILABLE.
//   - staleThreshold: how long a PICKED_UP delivery may stay in transit before
//     the scheduler flags it as ISSUE.
//
// All windows must be positive.
func NewTiming(expiryWindow, offerWindow, pickupTimeout, staleThreshold time.Duration) (Timing, error) {
	for _, w := range []struct {
		name  string
		value time.Duration
	}{
		{"expiryWindow", expiryWindow},
		{"offerWindow", offerWindow},
		{"pickupTimeout", pickupTimeout},
		{"staleThreshold", staleThreshold},
	} {
		if w.value <= 0 {
			return Timing{}, errs.NewValueIsInvalidError(w.name)
		}
	}

	return Timing{
		expiryWindow:   expiryWindow,
		offerWindow:    offerWindow,
		pickupTimeout:  pickupTimeout,
		staleThreshold: staleThreshold,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Timing was created through the constructor.
func (t Timing) Validate() error {
	return t.guard.Validate(ErrTimingIsNotConstructed)
}

// ExpiryWindow returns the acceptance-offer expiry window.
func (t Timing) ExpiryWindow() time.Duration {
	return t.expiryWindow
}

// OfferWindow returns the preferred-courier priority window.
func (t Timing) OfferWindow() time.Duration {
	return t.offerWindow
}

// PickupTimeout returns the deadline window between accept and pickup.
func (t Timing) PickupTimeout() time.Duration {
	return t.pickupTimeout
}

// StaleThreshold returns the maximum in-transit duration before a delivery is
// flagged as stuck.
func (t Timing) StaleThreshold() time.Duration {
	return t.staleThreshold
}
