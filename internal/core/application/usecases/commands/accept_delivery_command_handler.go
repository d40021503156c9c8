package commands

import (
	"context"
	"fmt"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"
)

// AcceptDeliveryCommandHandler handles the courier claiming race.
// The claim is a single conditional update keyed on the delivery still being
// AVAILABLE and unclaimed, so concurrent couriers are serialized at the row
// level and exactly one wins.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
	timing     delivery.Timing
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.Notifier,
	timing delivery.Timing,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		timing:     timing,
	}
}

// Handle processes the accept command. On success the delivery is ACCEPTED
// with a pickup deadline, and the merchant is notified after commit.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (*delivery.Delivery, error) {
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
	now := time.Now().UTC()

	matched, err := repo.Accept(ctx, cmd.DeliveryID(), cmd.CourierID(), now, now.Add(h.timing.PickupTimeout()))
	if err != nil {
		return nil, err
	}

	if !matched {
		return nil, h.classifyAcceptFailure(ctx, repo, cmd, now)
	}

	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, d.MerchantID(),
		fmt.Sprintf("Your delivery %s was accepted by a courier.", d.ID().Short()))

	return d, nil
}

// classifyAcceptFailure re-reads the delivery to phrase the error after a lost
// race. A reserved offer reads as a conflict too: couriers outside the
// priority window are not told whom the offer is held for.
func (h *AcceptDeliveryCommandHandler) classifyAcceptFailure(
	ctx context.Context,
	repo ports.DeliveryRepository,
	cmd AcceptDeliveryCommand,
	now time.Time,
) error {
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !d.Status().CanAccept() || d.Courier() != nil {
		return errs.NewConflictError("delivery", cmd.DeliveryID().String(),
			fmt.Sprintf("is in status %s", d.Status()))
	}

	if !d.CanBeAcceptedBy(cmd.CourierID(), now) {
		return errs.NewConflictError("delivery", cmd.DeliveryID().String(),
			"is reserved for another courier")
	}

	return errs.NewConflictError("delivery", cmd.DeliveryID().String(), "state changed concurrently")
}
