package commands

import (
	"errors"
	"strings"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrCreateSenderListingCommandIsNotConstructed = errors.New(
	"CreateSenderListingCommand must be created via NewCreateSenderListingCommand constructor",
)

// CreateSenderListingCommand posts a package that needs a traveler.
type CreateSenderListingCommand struct {
	userID        kernel.UUID
	receiverEmail string
	route         kernel.Route
	packageWeight kernel.Weight
	packageType   listing.PackageType
	description   string

	guard guard.ConstructorGuard
}

func NewCreateSenderListingCommand(
	userID kernel.UUID,
	receiverEmail, originAirport, destinationAirport string,
	packageWeight float64,
	packageType, description string,
) (CreateSenderListingCommand, error) {
	route, routeErr := kernel.NewRoute(originAirport, destinationAirport)
	weight, weightErr := kernel.NewWeight("packageWeight", packageWeight)
	pkgType, typeErr := listing.ParsePackageType(packageType)

	var descErr error
	if strings.TrimSpace(description) == "" {
		descErr = errs.NewValueIsRequiredError("description")
	}

	if err := errors.Join(
		userID.Validate(),
		user.ValidateEmail("receiverEmail", receiverEmail),
		routeErr,
		weightErr,
		typeErr,
		descErr,
	); err != nil {
		return CreateSenderListingCommand{}, err
	}

	return CreateSenderListingCommand{
		userID:        userID,
		receiverEmail: user.NormalizeEmail(receiverEmail),
		route:         route,
		packageWeight: weight,
		packageType:   pkgType,
		description:   strings.TrimSpace(description),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSenderListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateSenderListingCommandIsNotConstructed)
}

func (c CreateSenderListingCommand) UserID() kernel.UUID              { return c.userID }
func (c CreateSenderListingCommand) ReceiverEmail() string            { return c.receiverEmail }
func (c CreateSenderListingCommand) Route() kernel.Route              { return c.route }
func (c CreateSenderListingCommand) PackageWeight() kernel.Weight     { return c.packageWeight }
func (c CreateSenderListingCommand) PackageType() listing.PackageType { return c.packageType }
func (c CreateSenderListingCommand) Description() string              { return c.description }
