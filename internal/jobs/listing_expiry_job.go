package jobs

import (
	"context"
	"log/slog"

	"luggage/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ListingExpirySchedule fires at the start of every minute.
const ListingExpirySchedule = "0 * * * * *"

// ListingExpiryHandler is implemented by commands.ExpireListingsCommandHandler.
type ListingExpiryHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireListingsCommand) (int64, error)
}

type ListingExpiryJob struct {
	handler ListingExpiryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewListingExpiryJob(handler ListingExpiryHandler, logger *slog.Logger) *ListingExpiryJob {
	return &ListingExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "listing_expiry_job"),
	}
}

func (j *ListingExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(ListingExpirySchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Listing expiry job started", "schedule", ListingExpirySchedule)
	return nil
}

// Run performs a single pass.
func (j *ListingExpiryJob) Run(ctx context.Context) {
	n, err := j.handler.Handle(ctx, commands.NewExpireListingsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Listing expiry job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Deactivated departed traveler listings", "count", n)
	}
}

// Stop waits for a running pass to finish.
func (j *ListingExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Listing expiry job stopped")
}
