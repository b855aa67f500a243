package commands

import (
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/guard"
)

var ErrMatchFromTravelerListingCommandIsNotConstructed = errors.New(
	"MatchFromTravelerListingCommand must be created via NewMatchFromTravelerListingCommand constructor",
)

// MatchFromTravelerListingCommand searches sender listings for a stored traveler listing.
type MatchFromTravelerListingCommand struct {
	travelerListingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMatchFromTravelerListingCommand(travelerListingID kernel.UUID) (MatchFromTravelerListingCommand, error) {
	if err := travelerListingID.Validate(); err != nil {
		return MatchFromTravelerListingCommand{}, err
	}
	return MatchFromTravelerListingCommand{
		travelerListingID: travelerListingID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c MatchFromTravelerListingCommand) Validate() error {
	return c.guard.Validate(ErrMatchFromTravelerListingCommandIsNotConstructed)
}

func (c MatchFromTravelerListingCommand) TravelerListingID() kernel.UUID {
	return c.travelerListingID
}
