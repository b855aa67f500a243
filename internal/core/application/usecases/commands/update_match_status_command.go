package commands

import (
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/pkg/guard"
)

var ErrUpdateMatchStatusCommandIsNotConstructed = errors.New(
	"UpdateMatchStatusCommand must be created via NewUpdateMatchStatusCommand constructor",
)

// UpdateMatchStatusCommand is the coarse "set status" request.
type UpdateMatchStatusCommand struct {
	matchID kernel.UUID
	actor   kernel.UUID
	status  match.Status

	guard guard.ConstructorGuard
}

// NewUpdateMatchStatusCommand accepts the API spelling of the target status.
func NewUpdateMatchStatusCommand(matchID, actor kernel.UUID, status string) (UpdateMatchStatusCommand, error) {
	target, statusErr := match.ParseStatus(status)
	if err := errors.Join(matchID.Validate(), actor.Validate(), statusErr); err != nil {
		return UpdateMatchStatusCommand{}, err
	}

	return UpdateMatchStatusCommand{
		matchID: matchID,
		actor:   actor,
		status:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMatchStatusCommandIsNotConstructed)
}

func (c UpdateMatchStatusCommand) MatchID() kernel.UUID { return c.matchID }
func (c UpdateMatchStatusCommand) Actor() kernel.UUID   { return c.actor }
func (c UpdateMatchStatusCommand) Status() match.Status { return c.status }
