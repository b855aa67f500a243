package commands

import (
	"context"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
)

// TransitionMatchCommandHandler loads a match, applies one action and saves
// it with a version check, so two concurrent requests cannot both advance the
// same checkpoint.
type TransitionMatchCommandHandler struct {
	uowFactory MatchUoWFactory
	clock      kernel.Clock
}

func NewTransitionMatchCommandHandler(uowFactory MatchUoWFactory, clock kernel.Clock) TransitionMatchCommandHandler {
	return TransitionMatchCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h TransitionMatchCommandHandler) Handle(ctx context.Context, cmd TransitionMatchCommand) (*match.Match, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MatchRepository()

	m, err := repo.Get(ctx, cmd.MatchID())
	if err != nil {
		return nil, err
	}

	req := match.Request{
		Actor:  cmd.Actor(),
		Action: cmd.Action(),
		Now:    h.clock.Now(),
	}

	// the drop-off deadline comes from the flight; only the sender needs it
	if cmd.Action() == match.CompleteDropOff && cmd.Actor().IsEqual(m.SenderID()) {
		flight, getErr := uow.TravelerListingRepository().Get(ctx, m.TravelerListingID())
		if getErr != nil {
			return nil, getErr
		}
		req.DropOffDeadline = flight.DropOffDeadline()
	}

	if err = m.Apply(req); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
