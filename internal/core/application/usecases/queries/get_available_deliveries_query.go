// Package queries contains the read side of the delivery marketplace: listing
// and detail views built directly on SQL, bypassing the aggregates. Queries
// enforce the same visibility rules as the lifecycle engine: priority-offer
// windows hide reserved deliveries and contact phone numbers stay hidden until
// a courier has accepted.
package queries

import (
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
		"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
	)
)

// GetAvailableDeliveriesQuery lists the open delivery offers a courier may
// claim. Offers inside another courier's priority window are excluded, as are
// offers past their acceptance deadline that the cleanup sweep has not
// canceled yet.
type GetAvailableDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates a query for the given courier.
func NewGetAvailableDeliveriesQuery(courierID kernel.UUID) (GetAvailableDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAvailableDeliveriesQuery{}, err
	}

	return GetAvailableDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier browsing the offers.
func (q GetAvailableDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetAvailableDeliveriesQueryResponse is one open offer as shown to a
// browsing courier. It deliberately carries no phone numbers: contact details
// become visible only after the courier accepts.
type GetAvailableDeliveriesQueryResponse struct {
	ID             kernel.UUID
	BusinessName   string
	PickupAddress  string
	DropoffAddress string
	Price          decimal.Decimal
	Notes          string
	CreatedAt      time.Time
	ExpiresAt      time.Time
}
