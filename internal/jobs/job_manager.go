package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops all scheduled jobs.
type JobManager struct {
	listingExpiryJob *ListingExpiryJob
}

func NewJobManager(expireListings ListingExpiryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		listingExpiryJob: NewListingExpiryJob(expireListings, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.listingExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start listing expiry job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.listingExpiryJob.Stop()
}
