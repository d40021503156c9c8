package jobs

import (
	"context"
	"log/slog"

	"deliveryhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCleanupJob runs the periodic maintenance sweeps over stuck
// deliveries: expiring unclaimed offers, reverting abandoned claims, and
// flagging stale in-transit packages.
type DeliveryCleanupJob struct {
	handler commands.CleanupDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCleanupJob creates a job that sweeps once a minute.
func NewDeliveryCleanupJob(handler commands.CleanupDeliveriesCommandHandler, logger *slog.Logger) *DeliveryCleanupJob {
	return &DeliveryCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_cleanup_job"),
	}
}

// Start schedules the cleanup to run at the top of every minute.
func (j *DeliveryCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupDeliveriesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery cleanup command construction failed", "error", cmdErr)
			return
		}

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery cleanup job failed", "error", handleErr)
		}

		if result.Expired > 0 || result.Reverted > 0 || result.Flagged > 0 {
			j.logger.InfoContext(ctx, "Delivery cleanup sweep finished",
				"expired", result.Expired,
				"reverted", result.Reverted,
				"flagged_stale", result.Flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *DeliveryCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery cleanup job stopped")
}
