// Package jobs provides scheduled background tasks for the luggage marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping that no API request triggers on its own.
//
// # Available Jobs
//
// 1. ListingExpiryJob - Runs every minute to deactivate traveler listings whose departure time has passed
//
// Matching itself is not scheduled: it runs when a listing is created.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireListingsHandler, logger)
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
// ListingExpiryJob uses the cron expression "0 * * * * *" (seconds field
// enabled), so it fires at the start of every minute. A listing stays
// searchable for at most a minute after departure.
//
// # Error Handling
//
// - A failed run is logged and the next tick tries again
// - Stop waits for a run in progress to finish
// - Failed job starts will stop any already running jobs
package jobs
