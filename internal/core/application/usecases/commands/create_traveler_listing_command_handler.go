package commands

import (
	"context"
	"log/slog"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
)

// TravelerListingMatcher runs the matching engine for a stored traveler listing.
type TravelerListingMatcher interface {
	Handle(ctx context.Context, cmd MatchFromTravelerListingCommand) (int, error)
}

// CreateTravelerListingCommandHandler stores a traveler listing and then runs
// matching for it. Matching failures are logged; the listing stays created.
type CreateTravelerListingCommandHandler struct {
	uowFactory ListingUoWFactory
	matcher    TravelerListingMatcher
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCreateTravelerListingCommandHandler(
	uowFactory ListingUoWFactory,
	matcher TravelerListingMatcher,
	clock kernel.Clock,
	logger *slog.Logger,
) CreateTravelerListingCommandHandler {
	return CreateTravelerListingCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		clock:      clock,
		logger:     logger.With("component", "CreateTravelerListingCommandHandler"),
	}
}

func (h CreateTravelerListingCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTravelerListingCommand,
) (*listing.TravelerListing, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := listing.NewTravelerListing(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.Route(),
		cmd.FlightNumber(),
		cmd.DepartureTime(),
		cmd.ArrivalTime(),
		cmd.AvailableWeight(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.store(ctx, created); err != nil {
		return nil, err
	}

	h.match(ctx, created)
	return created, nil
}

func (h CreateTravelerListingCommandHandler) store(ctx context.Context, l *listing.TravelerListing) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TravelerListingRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateTravelerListingCommandHandler) match(ctx context.Context, l *listing.TravelerListing) {
	cmd, err := NewMatchFromTravelerListingCommand(l.ID())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build matching command", "listing_id", l.ID().String(), "error", err)
		return
	}

	created, err := h.matcher.Handle(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "matching failed", "listing_id", l.ID().String(), "error", err)
		return
	}

	h.logger.InfoContext(ctx, "traveler listing matched", "listing_id", l.ID().String(), "matches", created)
}
