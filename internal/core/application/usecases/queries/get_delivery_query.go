package queries

import (
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
)

// GetDeliveryQuery retrieves a single delivery on behalf of a viewer. What the
// viewer sees depends on their role:
//
//   - admins see everything;
//   - merchants see their own deliveries, courier contact included;
//   - the assigned courier sees the delivery with full contact details;
//   - any other courier sees an AVAILABLE offer without phone numbers, and
//     only while no priority window reserves it for someone else.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID
	viewerID   kernel.UUID
	viewerRole user.Role

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for the given viewer.
func NewGetDeliveryQuery(deliveryID, viewerID kernel.UUID, viewerRole user.Role) (GetDeliveryQuery, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		viewerID.Validate(),
		viewerRole.Validate(),
	); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		viewerID:   viewerID,
		viewerRole: viewerRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// ViewerID returns the requesting user.
func (q GetDeliveryQuery) ViewerID() kernel.UUID {
	return q.viewerID
}

// ViewerRole returns the requesting user's role.
func (q GetDeliveryQuery) ViewerRole() user.Role {
	return q.viewerRole
}

// GetDeliveryQueryResponse is the role-gated detail view of one delivery.
// Contact pointer fields are nil when the viewer is not entitled to them.
type GetDeliveryQueryResponse struct {
	ID             kernel.UUID
	Status         delivery.Status
	BusinessName   string
	BusinessPhone  *string
	MerchantName   string
	MerchantPhone  *string
	CourierName    *string
	CourierPhone   *string
	PickupAddress  string
	DropoffAddress string
	Price          decimal.Decimal
	Notes          string
	CanceledBy     *delivery.CanceledBy
	CancelReason   string
	IssueReason    string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
	AcceptBy       *time.Time
	PickedUpAt     *time.Time
	CompletedAt    *time.Time
	CanceledAt     *time.Time
	IssueAt        *time.Time
}
