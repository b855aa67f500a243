// Package kernel provides core domain primitives for the luggage marketplace.
// It implements the value objects every aggregate (users, listings, matches)
// is built from.
//
// The package includes:
//   - UUID: A value object for identifiers of users, listings, matches and issue reports
//   - AirportCode: A three-letter IATA code, trimmed and uppercased before validation
//   - Route: An ordered origin/destination pair of AirportCodes; matching requires equal routes
//   - Weight: A strictly positive weight in kilograms, used for capacity and packages
//   - Clock: The time source injected into handlers; SystemClock reads UTC, FixedClock pins tests
//
// Value objects embed guard.ConstructorGuard, so a zero value fails Validate
// instead of silently acting as "no airport" or "0 kg". They are immutable
// and safe to share between goroutines.
//
// Example:
//
//	route, err := kernel.NewRoute("jfk", "LHR")
//	if err != nil {
//	    return err // ValueIsRequired / ValueIsInvalid from internal/pkg/errs
//	}
//	route.String() // "JFK-LHR"
//
//	capacity, err := kernel.NewWeight("availableWeight", 10)
//	if err != nil {
//	    return err
//	}
//	capacity.Fits(packageWeight)
package kernel
