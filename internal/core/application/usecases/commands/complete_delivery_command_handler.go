package commands

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
)

// CompleteDeliveryCommandHandler moves a delivery from PICKED_UP to COMPLETED,
// its happy-path terminal state. The merchant is notified after commit.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory, notifier ports.Notifier) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*delivery.Delivery, error) {
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

	matched, err := repo.MarkCompleted(ctx, cmd.DeliveryID(), cmd.CourierID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if !matched {
		courierID := cmd.CourierID()
		return nil, classifyTransitionFailure(ctx, repo, cmd.DeliveryID(),
			delivery.Status.CanComplete, &courierID)
	}

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, d.MerchantID(),
		fmt.Sprintf("Your delivery %s has been completed!", d.ID().Short()))

	return d, nil
}
