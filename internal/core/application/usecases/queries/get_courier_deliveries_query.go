package queries

import (
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
		"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
	)
)

// GetCourierDeliveriesQuery lists the deliveries a courier currently has in
// progress: claimed but not picked up, or in transit.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a query for the given courier.
func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, err
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose workload is listed.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierDeliveriesQueryResponse is one in-progress delivery as shown to
// its assigned courier. The courier has accepted, so business and merchant
// contact details are included.
type GetCourierDeliveriesQueryResponse struct {
	ID             kernel.UUID
	Status         delivery.Status
	BusinessName   string
	BusinessPhone  string
	MerchantName   string
	MerchantPhone  string
	PickupAddress  string
	DropoffAddress string
	Price          decimal.Decimal
	Notes          string
	AcceptedAt     *time.Time
	AcceptBy       *time.Time
	PickedUpAt     *time.Time
}
