package commands

import (
	"context"
	"fmt"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"
)

// classifyTransitionFailure turns a zero-row conditional update into a precise
// error. The re-read never decides a write; it only shapes the message.
// Precedence: NotFound (row missing) before Conflict (wrong status) before
// Forbidden (wrong actor). A courier of nil skips the actor check.
func classifyTransitionFailure(
	ctx context.Context,
	repo ports.DeliveryRepository,
	id kernel.UUID,
	allowed func(delivery.Status) bool,
	courierID *kernel.UUID,
) error {
	d, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !allowed(d.Status()) {
		return errs.NewConflictError("delivery", id.String(),
			fmt.Sprintf("is in status %s", d.Status()))
	}

	if courierID != nil && !d.IsAssignedTo(*courierID) {
		return errs.NewForbiddenError("not your delivery")
	}

	// The row matched the precondition by the time we re-read it: the state
	// changed between the update and the read. Report a conflict so the
	// caller retries rather than assuming success.
	return errs.NewConflictError("delivery", id.String(), "state changed concurrently")
}
