package queries

import (
	"errors"
	"strings"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrLookupFlightQueryIsNotConstructed = errors.New(
	"LookupFlightQuery must be created via NewLookupFlightQuery constructor",
)

// LookupFlightQuery asks for the estimated schedule of a flight on a route.
type LookupFlightQuery struct {
	flightNumber string
	route        kernel.Route
	departure    time.Time

	guard guard.ConstructorGuard
}

// NewLookupFlightQuery requires a flight number and both airports. A zero
// departure means "now" and is resolved by the handler.
func NewLookupFlightQuery(flightNumber, origin, destination string, departure time.Time) (LookupFlightQuery, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))

	var flightErr error
	if flightNumber == "" {
		flightErr = errs.NewValueIsRequiredError("flightNumber")
	}
	route, routeErr := kernel.NewRoute(origin, destination)
	if err := errors.Join(flightErr, routeErr); err != nil {
		return LookupFlightQuery{}, err
	}

	return LookupFlightQuery{
		flightNumber: flightNumber,
		route:        route,
		departure:    departure,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q LookupFlightQuery) Validate() error {
	return q.guard.Validate(ErrLookupFlightQueryIsNotConstructed)
}

func (q LookupFlightQuery) FlightNumber() string { return q.flightNumber }
func (q LookupFlightQuery) Route() kernel.Route  { return q.route }
func (q LookupFlightQuery) Departure() time.Time { return q.departure }
