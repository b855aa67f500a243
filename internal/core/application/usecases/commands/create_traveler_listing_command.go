package commands

import (
	"errors"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrCreateTravelerListingCommandIsNotConstructed = errors.New(
	"CreateTravelerListingCommand must be created via NewCreateTravelerListingCommand constructor",
)

// CreateTravelerListingCommand offers luggage space on a flight.
//
// Example:
//
//	cmd, err := NewCreateTravelerListingCommand(userID, "JFK", "LHR", "BA117", dep, arr, 10)
//	if err != nil {
//	    return err
//	}
//	listing, err := handler.Handle(ctx, cmd)
type CreateTravelerListingCommand struct {
	userID          kernel.UUID
	route           kernel.Route
	flightNumber    string
	departureTime   time.Time
	arrivalTime     time.Time
	availableWeight kernel.Weight

	guard guard.ConstructorGuard
}

// NewCreateTravelerListingCommand checks the input shape. The 24 hour lead
// rule depends on the clock and is applied by the handler.
func NewCreateTravelerListingCommand(
	userID kernel.UUID,
	originAirport, destinationAirport, flightNumber string,
	departureTime, arrivalTime time.Time,
	availableWeight float64,
) (CreateTravelerListingCommand, error) {
	route, routeErr := kernel.NewRoute(originAirport, destinationAirport)
	weight, weightErr := kernel.NewWeight("availableWeight", availableWeight)

	var depErr, arrErr error
	if departureTime.IsZero() {
		depErr = errs.NewValueIsRequiredError("departureTime")
	}
	if arrivalTime.IsZero() {
		arrErr = errs.NewValueIsRequiredError("arrivalTime")
	}

	if err := errors.Join(userID.Validate(), routeErr, weightErr, depErr, arrErr); err != nil {
		return CreateTravelerListingCommand{}, err
	}

	return CreateTravelerListingCommand{
		userID:          userID,
		route:           route,
		flightNumber:    flightNumber,
		departureTime:   departureTime,
		arrivalTime:     arrivalTime,
		availableWeight: weight,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTravelerListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateTravelerListingCommandIsNotConstructed)
}

func (c CreateTravelerListingCommand) UserID() kernel.UUID            { return c.userID }
func (c CreateTravelerListingCommand) Route() kernel.Route            { return c.route }
func (c CreateTravelerListingCommand) FlightNumber() string           { return c.flightNumber }
func (c CreateTravelerListingCommand) DepartureTime() time.Time       { return c.departureTime }
func (c CreateTravelerListingCommand) ArrivalTime() time.Time         { return c.arrivalTime }
func (c CreateTravelerListingCommand) AvailableWeight() kernel.Weight { return c.availableWeight }
