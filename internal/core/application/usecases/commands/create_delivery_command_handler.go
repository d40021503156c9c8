package commands

import (
	"context"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles delivery creation.
// Verifies business ownership and lifecycle status before inserting the offer
// in AVAILABLE status with its expiry deadline.
type CreateDeliveryCommandHandler struct {
	uowFactory CreateDeliveryUoWFactory
	timing     delivery.Timing
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory CreateDeliveryUoWFactory, timing delivery.Timing) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		timing:     timing,
	}
}

// Handle processes the creation command.
// Fails with NotFound when the business does not exist, Forbidden when the
// caller does not own it, and Conflict when the business is not active.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
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

	biz, err := uow.BusinessRepository().Get(ctx, cmd.BusinessID())
	if err != nil {
		return nil, err
	}

	if !biz.IsOwnedBy(cmd.MerchantID()) {
		return nil, errs.NewForbiddenError("you do not own this business")
	}

	if !biz.CanOriginateDeliveries() {
		return nil, errs.NewConflictError("business", biz.ID().String(), "is not active")
	}

	if preferred := cmd.PreferredCourierID(); preferred != nil {
		courier, courierErr := uow.UserRepository().Get(ctx, *preferred)
		if courierErr != nil {
			return nil, courierErr
		}
		if courier.Role() != user.Courier || !courier.IsActive() {
			return nil, errs.NewValueIsInvalidError("preferredCourierId")
		}
	}

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.MerchantID(),
		cmd.BusinessID(),
		cmd.PickupAddress(),
		cmd.DropoffAddress(),
		cmd.Price(),
		cmd.Notes(),
		cmd.PreferredCourierID(),
		time.Now().UTC(),
		h.timing,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
