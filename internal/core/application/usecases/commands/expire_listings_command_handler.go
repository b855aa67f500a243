package commands

import (
	"context"

	"luggage/internal/core/domain/model/kernel"
)

type ExpireListingsCommandHandler struct {
	uowFactory ListingUoWFactory
	clock      kernel.Clock
}

func NewExpireListingsCommandHandler(uowFactory ListingUoWFactory, clock kernel.Clock) ExpireListingsCommandHandler {
	return ExpireListingsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns how many listings were deactivated.
func (h ExpireListingsCommandHandler) Handle(ctx context.Context, cmd ExpireListingsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.TravelerListingRepository().DeactivateDeparted(ctx, h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return n, nil
}
