package delivery

import (
	"fmt"

	"deliveryhub/internal/pkg/errs"
)

// CanceledBy identifies the actor that canceled a delivery.
// Persisted alongside the CANCELED status as part of the durable contract.
type CanceledBy string

const (
	// CanceledByCourier marks a cancellation by the assigned courier before pickup.
	CanceledByCourier CanceledBy = "COURIER"

	// CanceledByMerchant marks a cancellation by the owning merchant.
	CanceledByMerchant CanceledBy = "MERCHANT"

	// CanceledBySystem marks an automatic cancellation by the cleanup scheduler
	// (expired offers) or an administrative cancel.
	CanceledBySystem CanceledBy = "SYSTEM"
)

// CanceledByFromString converts a persisted string into a CanceledBy value.
func CanceledByFromString(s string) (CanceledBy, error) {
	c := CanceledBy(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks if the value is one of the defined actors.
func (c CanceledBy) Validate() error {
	switch c {
	case CanceledByCourier, CanceledByMerchant, CanceledBySystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("canceledBy", fmt.Errorf("%q is not a valid actor", string(c)))
	}
}

// String returns the durable string form of the actor.
func (c CanceledBy) String() string {
	return string(c)
}
