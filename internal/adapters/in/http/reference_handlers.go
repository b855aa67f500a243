package http

import (
	"net/http"
	"time"

	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// SearchAirports handles GET /api/airports/search.
func (s *Server) SearchAirports(ctx echo.Context, params servers.SearchAirportsParams) error {
	var text string
	if params.Q != nil {
		text = *params.Q
	}

	airports, err := s.h.SearchAirports.Handle(ctx.Request().Context(), queries.NewSearchAirportsQuery(text))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.AirportsResponse{Airports: make([]servers.Airport, len(airports))}
	for i, a := range airports {
		response.Airports[i] = servers.Airport{Code: a.Code, Name: a.Name, City: a.City, Country: a.Country}
	}
	return ctx.JSON(http.StatusOK, response)
}

// LookupFlight handles GET /api/flights/lookup.
func (s *Server) LookupFlight(ctx echo.Context, params servers.LookupFlightParams) error {
	var departure time.Time
	if params.DepartureDate != nil {
		departure = *params.DepartureDate
	}

	query, err := queries.NewLookupFlightQuery(params.FlightNumber, params.OriginAirport, params.DestinationAirport, departure)
	if err != nil {
		return s.fail(ctx, err)
	}

	estimate, err := s.h.LookupFlight.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.FlightLookupResponse{
		FlightNumber:       estimate.FlightNumber,
		OriginAirport:      estimate.Route.Origin().String(),
		DestinationAirport: estimate.Route.Destination().String(),
		DepartureTime:      estimate.Departure.UTC(),
		ArrivalTime:        estimate.Arrival.UTC(),
		Duration:           estimate.Duration.Hours(),
		Status:             "scheduled",
	})
}
