package jobs

import (
	"fmt"
	"log/slog"

	"deliveryhub/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryCleanupJob *DeliveryCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	cleanupHandler commands.CleanupDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryCleanupJob: NewDeliveryCleanupJob(cleanupHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryCleanupJob.Stop()
}
