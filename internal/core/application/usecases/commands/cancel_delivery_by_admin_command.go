package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrCancelDeliveryByAdminCommandIsNotConstructed = errors.New(
		"CancelDeliveryByAdminCommand must be created via NewCancelDeliveryByAdminCommand constructor",
	)
)

// CancelDeliveryByAdminCommand represents an administrative cancellation.
// Admins may cancel any delivery that has not completed; the caller's admin
// role is enforced at the transport layer.
type CancelDeliveryByAdminCommand struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryByAdminCommand creates a validated admin cancel command.
func NewCancelDeliveryByAdminCommand(deliveryID kernel.UUID) (CancelDeliveryByAdminCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CancelDeliveryByAdminCommand{}, err
	}

	return CancelDeliveryByAdminCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryByAdminCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryByAdminCommandIsNotConstructed)
}

// DeliveryID returns the delivery being canceled.
func (c CancelDeliveryByAdminCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
