package commands

import (
	"context"
	"log/slog"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/services"
	"luggage/internal/core/ports"
)

// MatchFromSenderListingCommandHandler pairs a sender listing with every
// compatible traveler listing departing at least 24 hours from now.
//
// Pairs that already have a match are skipped by the store, so running the
// handler again for the same listing creates nothing new. Notifications go
// out after commit and only for matches this run created.
type MatchFromSenderListingCommandHandler struct {
	uowFactory MatchingUoWFactory
	matchmaker services.Matchmaker
	notifier   matchNotifier
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewMatchFromSenderListingCommandHandler(
	uowFactory MatchingUoWFactory,
	queue ports.NotificationQueue,
	clock kernel.Clock,
	logger *slog.Logger,
) MatchFromSenderListingCommandHandler {
	logger = logger.With("component", "MatchFromSenderListingCommandHandler")
	return MatchFromSenderListingCommandHandler{
		uowFactory: uowFactory,
		matchmaker: services.NewMatchmaker(),
		notifier:   matchNotifier{queue: queue, logger: logger},
		clock:      clock,
		logger:     logger,
	}
}

// Handle returns how many matches were created.
func (h MatchFromSenderListingCommandHandler) Handle(ctx context.Context, cmd MatchFromSenderListingCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sender, err := uow.SenderListingRepository().Get(ctx, cmd.SenderListingID())
	if err != nil {
		return 0, err
	}

	candidates, err := uow.TravelerListingRepository().FindCandidates(ctx, ports.TravelerCandidates{
		Route:         sender.Route(),
		MinWeight:     sender.PackageWeight(),
		ExcludeUserID: sender.UserID(),
		DepartsFrom:   now.Add(listing.MinimumLeadTime),
	})
	if err != nil {
		return 0, err
	}

	matches, err := h.matchmaker.ForSenderListing(sender, candidates, kernel.NewUUID, now)
	if err != nil {
		return 0, err
	}

	inserted, err := addNewMatches(ctx, uow.MatchRepository(), matches)
	if err != nil {
		return 0, err
	}

	notifications := h.notifier.prepare(ctx, uow.UserRepository(), inserted, sender.Route())

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notifier.dispatch(ctx, notifications)
	return len(inserted), nil
}
