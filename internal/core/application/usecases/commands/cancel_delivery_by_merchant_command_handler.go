package commands

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"
)

// CancelDeliveryByMerchantCommandHandler moves an AVAILABLE or ACCEPTED
// delivery to CANCELED on behalf of its owning merchant, recording MERCHANT as
// the canceling actor and the optional reason. A courier who had already
// claimed the delivery is notified after commit.
type CancelDeliveryByMerchantCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewCancelDeliveryByMerchantCommandHandler creates a handler for merchant cancellation.
func NewCancelDeliveryByMerchantCommandHandler(uowFactory DeliveryUoWFactory, notifier ports.Notifier) CancelDeliveryByMerchantCommandHandler {
	return CancelDeliveryByMerchantCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the merchant cancel command.
func (h *CancelDeliveryByMerchantCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryByMerchantCommand) (*delivery.Delivery, error) {
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

	matched, err := repo.CancelByMerchant(ctx, cmd.DeliveryID(), cmd.MerchantID(), cmd.Reason(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if !matched {
		return nil, h.classifyCancelFailure(ctx, repo, cmd)
	}

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if courier := d.Courier(); courier != nil {
		h.notifier.Notify(ctx, *courier,
			fmt.Sprintf("Delivery %s was cancelled by the merchant.", d.ID().Short()))
	}

	return d, nil
}

// classifyCancelFailure distinguishes a foreign delivery from one that moved
// past the cancelable states. Ownership is checked after status so a merchant
// probing another merchant's COMPLETED delivery still sees a conflict, not a
// hint that the delivery exists in a cancelable state.
func (h *CancelDeliveryByMerchantCommandHandler) classifyCancelFailure(
	ctx context.Context,
	repo ports.DeliveryRepository,
	cmd CancelDeliveryByMerchantCommand,
) error {
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !d.Status().CanCancelByMerchant() {
		return errs.NewConflictError("delivery", cmd.DeliveryID().String(),
			fmt.Sprintf("is in status %s", d.Status()))
	}

	if !d.MerchantID().IsEqual(cmd.MerchantID()) {
		return errs.NewForbiddenError("not your delivery")
	}

	return errs.NewConflictError("delivery", cmd.DeliveryID().String(), "state changed concurrently")
}
