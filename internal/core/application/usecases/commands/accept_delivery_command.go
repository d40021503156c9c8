package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
		"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
	)
)

// AcceptDeliveryCommand represents a courier's attempt to claim an available
// delivery. Of N couriers racing for the same offer, exactly one succeeds.
type AcceptDeliveryCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a validated accept command.
func NewAcceptDeliveryCommand(deliveryID, courierID kernel.UUID) (AcceptDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		courierID.Validate(),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return AcceptDeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being claimed.
func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the claiming courier.
func (c AcceptDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}
