package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrCancelDeliveryByMerchantCommandIsNotConstructed = errors.New(
		"CancelDeliveryByMerchantCommand must be created via NewCancelDeliveryByMerchantCommand constructor",
	)
)

// CancelDeliveryByMerchantCommand represents the owning merchant withdrawing a
// delivery that has not been picked up yet. Once the package is in transit the
// merchant can no longer cancel.
type CancelDeliveryByMerchantCommand struct {
	deliveryID kernel.UUID
	merchantID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryByMerchantCommand creates a validated merchant cancel
// command. The reason is optional.
func NewCancelDeliveryByMerchantCommand(deliveryID, merchantID kernel.UUID, reason string) (CancelDeliveryByMerchantCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		merchantID.Validate(),
	); err != nil {
		return CancelDeliveryByMerchantCommand{}, err
	}

	return CancelDeliveryByMerchantCommand{
		deliveryID: deliveryID,
		merchantID: merchantID,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryByMerchantCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryByMerchantCommandIsNotConstructed)
}

// DeliveryID returns the delivery being canceled.
func (c CancelDeliveryByMerchantCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// MerchantID returns the canceling merchant.
func (c CancelDeliveryByMerchantCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Reason returns the optional cancellation reason.
func (c CancelDeliveryByMerchantCommand) Reason() string {
	return c.reason
}
