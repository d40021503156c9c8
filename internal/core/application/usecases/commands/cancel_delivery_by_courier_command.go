package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrCancelDeliveryByCourierCommandIsNotConstructed = errors.New(
		"CancelDeliveryByCourierCommand must be created via NewCancelDeliveryByCourierCommand constructor",
	)
)

// CancelDeliveryByCourierCommand represents the assigned courier backing out
// of a claimed delivery before pickup. After pickup a courier can no longer
// cancel; they report an issue instead.
type CancelDeliveryByCourierCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryByCourierCommand creates a validated courier cancel command.
func NewCancelDeliveryByCourierCommand(deliveryID, courierID kernel.UUID) (CancelDeliveryByCourierCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		courierID.Validate(),
	); err != nil {
		return CancelDeliveryByCourierCommand{}, err
	}

	return CancelDeliveryByCourierCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryByCourierCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryByCourierCommandIsNotConstructed)
}

// DeliveryID returns the delivery being canceled.
func (c CancelDeliveryByCourierCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the canceling courier.
func (c CancelDeliveryByCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
