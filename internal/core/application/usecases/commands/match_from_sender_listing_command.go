package commands

import (
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/guard"
)

var ErrMatchFromSenderListingCommandIsNotConstructed = errors.New(
	"MatchFromSenderListingCommand must be created via NewMatchFromSenderListingCommand constructor",
)

// MatchFromSenderListingCommand searches traveler listings for a stored sender listing.
type MatchFromSenderListingCommand struct {
	senderListingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMatchFromSenderListingCommand(senderListingID kernel.UUID) (MatchFromSenderListingCommand, error) {
	if err := senderListingID.Validate(); err != nil {
		return MatchFromSenderListingCommand{}, err
	}
	return MatchFromSenderListingCommand{
		senderListingID: senderListingID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c MatchFromSenderListingCommand) Validate() error {
	return c.guard.Validate(ErrMatchFromSenderListingCommandIsNotConstructed)
}

func (c MatchFromSenderListingCommand) SenderListingID() kernel.UUID {
	return c.senderListingID
}
