package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrPickUpDeliveryCommandIsNotConstructed = errors.New(
		"PickUpDeliveryCommand must be created via NewPickUpDeliveryCommand constructor",
	)
)

// PickUpDeliveryCommand represents the assigned courier confirming they
// collected the package.
type PickUpDeliveryCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpDeliveryCommand creates a validated pickup command.
func NewPickUpDeliveryCommand(deliveryID, courierID kernel.UUID) (PickUpDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		courierID.Validate(),
	); err != nil {
		return PickUpDeliveryCommand{}, err
	}

	return PickUpDeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickUpDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being picked up.
func (c PickUpDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier collecting the package.
func (c PickUpDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}
