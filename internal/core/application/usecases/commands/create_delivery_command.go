package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a merchant's request to offer a new
// delivery job from one of their businesses.
type CreateDeliveryCommand struct {
	deliveryID         kernel.UUID
	merchantID         kernel.UUID
	businessID         kernel.UUID
	pickupAddress      string
	dropoffAddress     string
	price              decimal.Decimal
	notes              string
	preferredCourierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a validated delivery creation command.
// The price must be strictly positive and both addresses are required.
// preferredCourierID may be nil; when set, the offer is reserved for that
// courier for the configured offer window.
func NewCreateDeliveryCommand(
	deliveryID, merchantID, businessID kernel.UUID,
	pickupAddress, dropoffAddress string,
	price decimal.Decimal,
	notes string,
	preferredCourierID *kernel.UUID,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		merchantID.Validate(),
		businessID.Validate(),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	if pickupAddress == "" {
		return CreateDeliveryCommand{}, errs.NewValueIsRequiredError("pickupAddress")
	}
	if dropoffAddress == "" {
		return CreateDeliveryCommand{}, errs.NewValueIsRequiredError("dropoffAddress")
	}
	if !price.IsPositive() {
		return CreateDeliveryCommand{}, errs.NewValueIsInvalidError("price")
	}
	if preferredCourierID != nil {
		if err := preferredCourierID.Validate(); err != nil {
			return CreateDeliveryCommand{}, err
		}
	}

	return CreateDeliveryCommand{
		deliveryID:         deliveryID,
		merchantID:         merchantID,
		businessID:         businessID,
		pickupAddress:      pickupAddress,
		dropoffAddress:     dropoffAddress,
		price:              price,
		notes:              notes,
		preferredCourierID: preferredCourierID,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier assigned to the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// MerchantID returns the calling merchant.
func (c CreateDeliveryCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// BusinessID returns the originating business.
func (c CreateDeliveryCommand) BusinessID() kernel.UUID {
	return c.businessID
}

// PickupAddress returns the pickup address.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns the dropoff address.
func (c CreateDeliveryCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// Price returns the delivery price.
func (c CreateDeliveryCommand) Price() decimal.Decimal {
	return c.price
}

// Notes returns the optional merchant notes.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

// PreferredCourierID returns the courier the offer is reserved for, if any.
func (c CreateDeliveryCommand) PreferredCourierID() *kernel.UUID {
	return c.preferredCourierID
}
