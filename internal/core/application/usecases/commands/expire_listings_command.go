package commands

import (
	"errors"

	"luggage/internal/pkg/guard"
)

var ErrExpireListingsCommandIsNotConstructed = errors.New(
	"ExpireListingsCommand must be created via NewExpireListingsCommand constructor",
)

// ExpireListingsCommand switches off traveler listings whose flight has left.
type ExpireListingsCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireListingsCommand() ExpireListingsCommand {
	return ExpireListingsCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpireListingsCommand) Validate() error {
	return c.guard.Validate(ErrExpireListingsCommandIsNotConstructed)
}
