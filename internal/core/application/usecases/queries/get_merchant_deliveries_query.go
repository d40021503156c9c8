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
	ErrGetMerchantDeliveriesQueryIsNotConstructed = errors.New(
		"GetMerchantDeliveriesQuery must be created via NewGetMerchantDeliveriesQuery constructor",
	)
)

// GetMerchantDeliveriesQuery lists every delivery a merchant has created,
// terminal states included, optionally filtered by status.
type GetMerchantDeliveriesQuery struct {
	merchantID kernel.UUID
	status     *delivery.Status

	guard guard.ConstructorGuard
}

// NewGetMerchantDeliveriesQuery creates a query for the given merchant.
// status may be nil to list all deliveries.
func NewGetMerchantDeliveriesQuery(merchantID kernel.UUID, status *delivery.Status) (GetMerchantDeliveriesQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetMerchantDeliveriesQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetMerchantDeliveriesQuery{}, err
		}
	}

	return GetMerchantDeliveriesQuery{
		merchantID: merchantID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantDeliveriesQueryIsNotConstructed)
}

// MerchantID returns the merchant whose deliveries are listed.
func (q GetMerchantDeliveriesQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// Status returns the optional status filter.
func (q GetMerchantDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

// GetMerchantDeliveriesQueryResponse is one delivery as shown to its owning
// merchant. Courier name and phone are present once a courier has claimed the
// delivery; merchants always see the courier handling their package.
type GetMerchantDeliveriesQueryResponse struct {
	ID             kernel.UUID
	Status         delivery.Status
	BusinessName   string
	CourierName    *string
	CourierPhone   *string
	PickupAddress  string
	DropoffAddress string
	Price          decimal.Decimal
	Notes          string
	CancelReason   string
	IssueReason    string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	CompletedAt    *time.Time
}
