package commands

import (
	"context"
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/ports"
)

// CleanupResult reports how many rows each maintenance sweep touched.
type CleanupResult struct {
	Expired  int64
	Reverted int64
	Flagged  int64
}

// CleanupDeliveriesCommandHandler runs the three maintenance sweeps:
//
//   - expire AVAILABLE deliveries past their acceptance deadline
//   - revert ACCEPTED deliveries whose courier missed the pickup deadline
//     back to AVAILABLE, clearing the courier
//   - flag PICKED_UP deliveries in transit for too long as ISSUE
//
// Each sweep is a single bulk conditional update in its own transaction, so a
// failing sweep never rolls back the ones that already ran. Sweeps are
// idempotent and safe to run concurrently with couriers: a row that
// transitions between the deadline check and the update simply stops matching.
type CleanupDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	timing     delivery.Timing
}

// NewCleanupDeliveriesCommandHandler creates a handler for the cleanup sweeps.
func NewCleanupDeliveriesCommandHandler(uowFactory DeliveryUoWFactory, timing delivery.Timing) CleanupDeliveriesCommandHandler {
	return CleanupDeliveriesCommandHandler{
		uowFactory: uowFactory,
		timing:     timing,
	}
}

// Handle runs all sweeps and returns the per-sweep row counts. The first
// failing sweep aborts the run; counts for completed sweeps are still
// reported.
func (h *CleanupDeliveriesCommandHandler) Handle(ctx context.Context, cmd CleanupDeliveriesCommand) (CleanupResult, error) {
	var result CleanupResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	now := time.Now().UTC()

	expired, err := h.runSweep(ctx, func(ctx context.Context, repo ports.DeliveryRepository) (int64, error) {
		return repo.ExpireAvailable(ctx, now)
	})
	if err != nil {
		return result, err
	}
	result.Expired = expired

	reverted, err := h.runSweep(ctx, func(ctx context.Context, repo ports.DeliveryRepository) (int64, error) {
		return repo.RevertAbandoned(ctx, now)
	})
	if err != nil {
		return result, err
	}
	result.Reverted = reverted

	flagged, err := h.runSweep(ctx, func(ctx context.Context, repo ports.DeliveryRepository) (int64, error) {
		return repo.FlagStaleInTransit(ctx, now.Add(-h.timing.StaleThreshold()), now)
	})
	if err != nil {
		return result, err
	}
	result.Flagged = flagged

	return result, nil
}

func (h *CleanupDeliveriesCommandHandler) runSweep(
	ctx context.Context,
	sweep func(ctx context.Context, repo ports.DeliveryRepository) (int64, error),
) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := sweep(ctx, uow.DeliveryRepository())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
