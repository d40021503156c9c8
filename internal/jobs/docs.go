// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance the marketplace needs.
//
// # Available Jobs
//
// 1. DeliveryCleanupJob - Runs every minute to expire unclaimed offers,
// revert claims whose pickup deadline passed, and flag stale in-transit
// deliveries for review.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cleanupHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Each job owns its cron scheduler, logs through a component-tagged slog
// logger, and swallows per-run errors so one failed sweep never stops the
// schedule.
package jobs
