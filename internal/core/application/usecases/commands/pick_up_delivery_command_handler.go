package commands

import (
	"context"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
)

// PickUpDeliveryCommandHandler moves a delivery from ACCEPTED to PICKED_UP.
// Only the assigned courier may confirm pickup.
type PickUpDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewPickUpDeliveryCommandHandler creates a handler for pickup confirmation.
func NewPickUpDeliveryCommandHandler(uowFactory DeliveryUoWFactory) PickUpDeliveryCommandHandler {
	return PickUpDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the pickup command.
func (h *PickUpDeliveryCommandHandler) Handle(ctx context.Context, cmd PickUpDeliveryCommand) (*delivery.Delivery, error) {
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

	matched, err := repo.MarkPickedUp(ctx, cmd.DeliveryID(), cmd.CourierID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if !matched {
		courierID := cmd.CourierID()
		return nil, classifyTransitionFailure(ctx, repo, cmd.DeliveryID(),
			delivery.Status.CanPickUp, &courierID)
	}

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
