package commands

import (
	"errors"
	"fmt"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrTransitionMatchCommandIsNotConstructed = errors.New(
	"TransitionMatchCommand must be created via NewTransitionMatchCommand constructor",
)

// TransitionMatchCommand asks the state machine to perform one action on a
// match on behalf of actor.
type TransitionMatchCommand struct {
	matchID kernel.UUID
	actor   kernel.UUID
	action  match.Action

	guard guard.ConstructorGuard
}

func NewTransitionMatchCommand(matchID, actor kernel.UUID, action match.Action) (TransitionMatchCommand, error) {
	var actionErr error
	if action.Role() == match.NoRole {
		actionErr = errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", action))
	}
	if err := errors.Join(matchID.Validate(), actor.Validate(), actionErr); err != nil {
		return TransitionMatchCommand{}, err
	}

	return TransitionMatchCommand{
		matchID: matchID,
		actor:   actor,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionMatchCommand) Validate() error {
	return c.guard.Validate(ErrTransitionMatchCommandIsNotConstructed)
}

func (c TransitionMatchCommand) MatchID() kernel.UUID { return c.matchID }
func (c TransitionMatchCommand) Actor() kernel.UUID   { return c.actor }
func (c TransitionMatchCommand) Action() match.Action { return c.action }
