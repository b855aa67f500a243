package queries

import (
	"context"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/services"
)

type LookupFlightQueryHandler struct {
	estimator services.FlightEstimator
	clock     kernel.Clock
}

func NewLookupFlightQueryHandler(clock kernel.Clock) LookupFlightQueryHandler {
	return LookupFlightQueryHandler{estimator: services.NewFlightEstimator(), clock: clock}
}

func (h LookupFlightQueryHandler) Handle(_ context.Context, query LookupFlightQuery) (services.FlightEstimate, error) {
	if err := query.Validate(); err != nil {
		return services.FlightEstimate{}, err
	}

	departure := query.Departure()
	if departure.IsZero() {
		departure = h.clock.Now()
	}

	return h.estimator.Estimate(query.FlightNumber(), query.Route(), departure), nil
}
