package commands

import (
	"context"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
)

type UpdateMatchStatusCommandHandler struct {
	uowFactory MatchUoWFactory
	clock      kernel.Clock
}

func NewUpdateMatchStatusCommandHandler(uowFactory MatchUoWFactory, clock kernel.Clock) UpdateMatchStatusCommandHandler {
	return UpdateMatchStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateMatchStatusCommandHandler) Handle(ctx context.Context, cmd UpdateMatchStatusCommand) (*match.Match, error) {
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

	before := m.Status()
	if err = m.UpdateStatus(cmd.Actor(), cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if m.Status() != before {
		if err = repo.Update(ctx, m); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
