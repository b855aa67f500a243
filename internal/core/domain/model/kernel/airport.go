package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ErrAirportCodeIsNotConstructed is returned when a zero AirportCode is used.
var ErrAirportCodeIsNotConstructed = errs.NewValueIsRequiredError("airport code must be created via NewAirportCode")

// AirportCode is a three-letter uppercase IATA code. Input is trimmed and
// uppercased before validation, so "jfk " becomes "JFK".
type AirportCode struct {
	code  string
	guard guard.ConstructorGuard
}

// NewAirportCode normalises and validates an IATA code. paramName is used in
// the returned error so callers can tell origin and destination apart.
func NewAirportCode(paramName, raw string) (AirportCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return AirportCode{}, errs.NewValueIsRequiredError(paramName)
	}
	if !iataPattern.MatchString(code) {
		return AirportCode{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%q must be a valid 3-letter IATA code", raw),
		)
	}
	return AirportCode{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (a AirportCode) String() string {
	return a.code
}

func (a AirportCode) IsEqual(other AirportCode) bool {
	return a.code == other.code
}

func (a AirportCode) Validate() error {
	return a.guard.Validate(ErrAirportCodeIsNotConstructed)
}

// ErrRouteIsNotConstructed is returned when a zero Route is used.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute")

// Route is an origin/destination pair. Matching compares routes by exact code
// equality in both positions; a route is directional.
type Route struct {
	origin      AirportCode
	destination AirportCode
	guard       guard.ConstructorGuard
}

// NewRoute parses both airport codes. Origin and destination may not coincide.
func NewRoute(origin, destination string) (Route, error) {
	o, oErr := NewAirportCode("originAirport", origin)
	d, dErr := NewAirportCode("destinationAirport", destination)
	if err := errors.Join(oErr, dErr); err != nil {
		return Route{}, err
	}
	if o.IsEqual(d) {
		return Route{}, errs.NewValueIsInvalidErrorWithCause(
			"destinationAirport",
			fmt.Errorf("%s is the same as the origin", d),
		)
	}
	return Route{origin: o, destination: d, guard: guard.NewConstructorGuard()}, nil
}

func (r Route) Origin() AirportCode {
	return r.origin
}

func (r Route) Destination() AirportCode {
	return r.destination
}

func (r Route) IsEqual(other Route) bool {
	return r.origin.IsEqual(other.origin) && r.destination.IsEqual(other.destination)
}

func (r Route) String() string {
	return r.origin.String() + "-" + r.destination.String()
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}
