package commands

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
)

// CancelDeliveryByCourierCommandHandler moves an ACCEPTED delivery to CANCELED
// on behalf of its assigned courier, recording COURIER as the canceling actor.
// The merchant is notified after commit so they can repost the offer.
type CancelDeliveryByCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewCancelDeliveryByCourierCommandHandler creates a handler for courier cancellation.
func NewCancelDeliveryByCourierCommandHandler(uowFactory DeliveryUoWFactory, notifier ports.Notifier) CancelDeliveryByCourierCommandHandler {
	return CancelDeliveryByCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the courier cancel command.
func (h *CancelDeliveryByCourierCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryByCourierCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	matched, err := repo.CancelByCourier(ctx, cmd.DeliveryID(), cmd.CourierID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if !matched {
		courierID := cmd.CourierID()
		return nil, classifyTransitionFailure(ctx, repo, cmd.DeliveryID(),
			delivery.Status.CanCancelByCourier, &courierID)
	}

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, d.MerchantID(),
		fmt.Sprintf("Your delivery %s was cancelled by the courier.", d.ID().Short()))

	return d, nil
}
