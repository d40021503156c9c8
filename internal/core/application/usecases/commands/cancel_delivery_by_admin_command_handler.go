package commands

import (
	"context"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
)

// CancelDeliveryByAdminCommandHandler cancels a delivery on behalf of an
// administrator. A delivery that is already in transit cannot become CANCELED;
// it is flagged as ISSUE instead so the package's whereabouts stay accounted
// for.
type CancelDeliveryByAdminCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryByAdminCommandHandler creates a handler for administrative cancellation.
func NewCancelDeliveryByAdminCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryByAdminCommandHandler {
	return CancelDeliveryByAdminCommandHandler{uowFactory: uowFactory}
}

// Handle processes the admin cancel command.
func (h *CancelDeliveryByAdminCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryByAdminCommand) (*delivery.Delivery, error) {
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

	outcome, err := repo.CancelByAdmin(ctx, cmd.DeliveryID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if outcome == ports.AdminCancelNoMatch {
		return nil, classifyTransitionFailure(ctx, repo, cmd.DeliveryID(),
			delivery.Status.CanCancelByAdmin, nil)
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
