package http

import (
	"net/http"

	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateTravelerListing handles POST /api/travelers.
func (s *Server) CreateTravelerListing(ctx echo.Context) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateTravelerListingJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	var flightNumber string
	if body.FlightNumber != nil {
		flightNumber = *body.FlightNumber
	}

	cmd, err := commands.NewCreateTravelerListingCommand(
		principal.UserID,
		body.OriginAirport,
		body.DestinationAirport,
		flightNumber,
		body.DepartureTime,
		body.ArrivalTime,
		body.AvailableWeight,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateTravelerListing.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.TravelerListingResponse{Listing: fromTravelerListing(created)})
}

// GetMyTravelerListings handles GET /api/travelers/my-listings.
func (s *Server) GetMyTravelerListings(ctx echo.Context) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetMyTravelerListingsQuery(principal.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.GetMyTravelerListings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.TravelerListingsResponse{Listings: make([]servers.TravelerListing, len(views))}
	for i, v := range views {
		response.Listings[i] = fromTravelerView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateSenderListing handles POST /api/senders.
func (s *Server) CreateSenderListing(ctx echo.Context) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateSenderListingJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewCreateSenderListingCommand(
		principal.UserID,
		body.ReceiverEmail,
		body.OriginAirport,
		body.DestinationAirport,
		body.PackageWeight,
		string(body.PackageType),
		body.Description,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateSenderListing.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.SenderListingResponse{Listing: fromSenderListing(created)})
}

// GetMySenderListings handles GET /api/senders/my-listings.
func (s *Server) GetMySenderListings(ctx echo.Context) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetMySenderListingsQuery(principal.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.GetMySenderListings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.SenderListingsResponse{Listings: make([]servers.SenderListing, len(views))}
	for i, v := range views {
		response.Listings[i] = fromSenderView(v, true)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SearchListings handles GET /api/search/listings. The credential is optional
// here: a valid one hides the caller's own listings, anything else is ignored.
func (s *Server) SearchListings(ctx echo.Context, params servers.SearchListingsParams) error {
	kind, err := queries.ParseListingKind(string(params.Type))
	if err != nil {
		return s.fail(ctx, err)
	}

	var viewer *kernel.UUID
	if principal, ok := PrincipalFrom(ctx); ok {
		viewer = &principal.UserID
	}

	query, err := queries.NewSearchListingsQuery(
		kind,
		firstOf(params.OriginAirport, params.Origin),
		firstOf(params.DestinationAirport, params.Destination),
		viewer,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.SearchListings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	if result.Kind == queries.SenderListings {
		response := servers.SenderSearchResponse{Listings: make([]servers.SenderSearchResult, len(result.Senders))}
		for i, r := range result.Senders {
			response.Listings[i] = fromSenderSearchResult(r)
		}
		return ctx.JSON(http.StatusOK, response)
	}

	response := servers.TravelerSearchResponse{Listings: make([]servers.TravelerSearchResult, len(result.Travelers))}
	for i, r := range result.Travelers {
		response.Listings[i] = fromTravelerSearchResult(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// firstOf prefers the current parameter name over its legacy alias.
func firstOf(current, legacy *string) string {
	if current != nil && *current != "" {
		return *current
	}
	if legacy != nil {
		return *legacy
	}
	return ""
}
