// Package jobs provides scheduled background tasks for the delivery tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. DelayScanJob - Periodically scans the order batch for deliveries past
// the store's expected delivery window and updates the delayed-orders gauge
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(shop, schedule, dashboardHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The delay scan uses a six-field cron expression with seconds, configured
// through the application config. The default runs every five minutes: the
// scan reads the upstream feed, so the frequency trades freshness against
// feed quota.
//
// # Error Handling
//
// - Scan failures are logged and skipped; the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
