package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand represents the assigned courier confirming the
// package was handed over at the dropoff address.
type CompleteDeliveryCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a validated completion command.
func NewCompleteDeliveryCommand(deliveryID, courierID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		courierID.Validate(),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being completed.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier finishing the delivery.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}
