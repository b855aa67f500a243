package commands

import (
	"context"
	"errors"
	"log/slog"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/services"
	"luggage/internal/core/ports"
)

// MatchFromTravelerListingCommandHandler pairs a traveler listing with every
// compatible sender listing created at least 24 hours before the departure.
// Sender listings without a receiver are logged and skipped.
type MatchFromTravelerListingCommandHandler struct {
	uowFactory MatchingUoWFactory
	matchmaker services.Matchmaker
	notifier   matchNotifier
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewMatchFromTravelerListingCommandHandler(
	uowFactory MatchingUoWFactory,
	queue ports.NotificationQueue,
	clock kernel.Clock,
	logger *slog.Logger,
) MatchFromTravelerListingCommandHandler {
	logger = logger.With("component", "MatchFromTravelerListingCommandHandler")
	return MatchFromTravelerListingCommandHandler{
		uowFactory: uowFactory,
		matchmaker: services.NewMatchmaker(),
		notifier:   matchNotifier{queue: queue, logger: logger},
		clock:      clock,
		logger:     logger,
	}
}

// Handle returns how many matches were created.
func (h MatchFromTravelerListingCommandHandler) Handle(ctx context.Context, cmd MatchFromTravelerListingCommand) (int, error) {
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

	traveler, err := uow.TravelerListingRepository().Get(ctx, cmd.TravelerListingID())
	if err != nil {
		return 0, err
	}

	candidates, err := uow.SenderListingRepository().FindCandidates(ctx, ports.SenderCandidates{
		Route:         traveler.Route(),
		MaxWeight:     traveler.AvailableWeight(),
		ExcludeUserID: traveler.UserID(),
		CreatedUntil:  traveler.DepartureTime().Add(-listing.MinimumLeadTime),
	})
	if err != nil {
		return 0, err
	}

	matches, err := h.matchmaker.ForTravelerListing(traveler, candidates, kernel.NewUUID, now)
	if err != nil && !errors.Is(err, services.ErrReceiverIsMissing) {
		return 0, err
	}
	if err != nil {
		h.logger.WarnContext(ctx, "sender listings skipped",
			"listing_id", traveler.ID().String(), "error", err)
	}

	inserted, err := addNewMatches(ctx, uow.MatchRepository(), matches)
	if err != nil {
		return 0, err
	}

	notifications := h.notifier.prepare(ctx, uow.UserRepository(), inserted, traveler.Route())

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notifier.dispatch(ctx, notifications)
	return len(inserted), nil
}
