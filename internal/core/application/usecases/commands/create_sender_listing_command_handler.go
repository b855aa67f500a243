package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/pkg/errs"
)

// SenderListingMatcher runs the matching engine for a stored sender listing.
type SenderListingMatcher interface {
	Handle(ctx context.Context, cmd MatchFromSenderListingCommand) (int, error)
}

// CreateSenderListingCommandHandler resolves the receiver by e-mail, stores the
// listing and runs matching for it. An unknown receiver rejects the listing
// before anything is written.
type CreateSenderListingCommandHandler struct {
	uowFactory ListingUoWFactory
	matcher    SenderListingMatcher
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCreateSenderListingCommandHandler(
	uowFactory ListingUoWFactory,
	matcher SenderListingMatcher,
	clock kernel.Clock,
	logger *slog.Logger,
) CreateSenderListingCommandHandler {
	return CreateSenderListingCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		clock:      clock,
		logger:     logger.With("component", "CreateSenderListingCommandHandler"),
	}
}

func (h CreateSenderListingCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSenderListingCommand,
) (*listing.SenderListing, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.store(ctx, cmd)
	if err != nil {
		return nil, err
	}

	h.match(ctx, created)
	return created, nil
}

func (h CreateSenderListingCommandHandler) store(
	ctx context.Context,
	cmd CreateSenderListingCommand,
) (*listing.SenderListing, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	receiver, err := uow.UserRepository().GetByEmail(ctx, cmd.ReceiverEmail())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"receiverEmail",
			fmt.Errorf("no user is registered with %s, the receiver must sign up first", cmd.ReceiverEmail()),
		)
	}
	if err != nil {
		return nil, err
	}

	created, err := listing.NewSenderListing(
		kernel.NewUUID(),
		cmd.UserID(),
		receiver.ID(),
		receiver.Email(),
		cmd.Route(),
		cmd.PackageWeight(),
		cmd.PackageType(),
		cmd.Description(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.SenderListingRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (h CreateSenderListingCommandHandler) match(ctx context.Context, l *listing.SenderListing) {
	cmd, err := NewMatchFromSenderListingCommand(l.ID())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build matching command", "listing_id", l.ID().String(), "error", err)
		return
	}

	created, err := h.matcher.Handle(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "matching failed", "listing_id", l.ID().String(), "error", err)
		return
	}

	h.logger.InfoContext(ctx, "sender listing matched", "listing_id", l.ID().String(), "matches", created)
}
