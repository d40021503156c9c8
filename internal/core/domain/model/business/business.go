// Package business contains the Business entity. A business is owned by
// exactly one merchant and must be active before it may originate deliveries.
package business

import (
	"errors"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
)

// ErrBusinessIsNotConstructed is returned when a Business instance was not
// created through NewBusiness or RestoreBusiness.
var ErrBusinessIsNotConstructed = errors.New("Business must be created via NewBusiness or RestoreBusiness")

// Status is the lifecycle state of a business. Only active businesses may
// originate deliveries.
type Status string

const (
	// Pending marks a freshly registered business awaiting review.
	Pending Status = "PENDING"

	// Active marks an approved business allowed to create deliveries.
	Active Status = "ACTIVE"

	// Suspended marks a business barred from creating deliveries.
	Suspended Status = "SUSPENDED"
)

// StatusFromString converts a persisted string into a Status.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	switch s {
	case Pending, Active, Suspended:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid business status", string(s)))
	}
}

// String returns the durable string form of the status.
func (s Status) String() string {
	return string(s)
}

// Business represents a merchant-owned storefront that originates deliveries.
type Business struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	name      string
	phone     string
	address   string
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewBusiness registers a business in Pending status.
func NewBusiness(id, ownerID kernel.UUID, name, phone, address string, now time.Time) (*Business, error) {
	return RestoreBusiness(id, ownerID, name, phone, address, Pending, now)
}

// RestoreBusiness reconstructs a business entity from persistence.
func RestoreBusiness(id, ownerID kernel.UUID, name, phone, address string, status Status, createdAt time.Time) (*Business, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Business{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		phone:         phone,
		address:       address,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Business instance was properly constructed.
func (b *Business) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBusinessIsNotConstructed
	}
	return nil
}

// ID returns the business's unique identifier.
func (b *Business) ID() kernel.UUID {
	return b.id
}

// OwnerID returns the owning merchant's user ID.
func (b *Business) OwnerID() kernel.UUID {
	return b.ownerID
}

// Name returns the business display name.
func (b *Business) Name() string {
	return b.name
}

// Phone returns the business contact phone in E.164 form.
func (b *Business) Phone() string {
	return b.phone
}

// Address returns the business street address.
func (b *Business) Address() string {
	return b.address
}

// Status returns the lifecycle status.
func (b *Business) Status() Status {
	return b.status
}

// CreatedAt returns the registration timestamp.
func (b *Business) CreatedAt() time.Time {
	return b.createdAt
}

// IsOwnedBy reports whether the given merchant owns this business.
func (b *Business) IsOwnedBy(merchantID kernel.UUID) bool {
	return b.ownerID.IsEqual(merchantID)
}

// CanOriginateDeliveries reports whether the business may create deliveries.
func (b *Business) CanOriginateDeliveries() bool {
	return b.status == Active
}
