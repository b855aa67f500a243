package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/auth/register)
	RegisterUser(ctx echo.Context) error
	// (POST /api/auth/login)
	LoginUser(ctx echo.Context) error
	// (GET /api/auth/me)
	GetCurrentUser(ctx echo.Context) error
	// (POST /api/travelers)
	CreateTravelerListing(ctx echo.Context) error
	// (GET /api/travelers/my-listings)
	GetMyTravelerListings(ctx echo.Context) error
	// (POST /api/senders)
	CreateSenderListing(ctx echo.Context) error
	// (GET /api/senders/my-listings)
	GetMySenderListings(ctx echo.Context) error
	// (GET /api/search/listings)
	SearchListings(ctx echo.Context, params SearchListingsParams) error
	// (GET /api/matches)
	GetMatches(ctx echo.Context, params GetMatchesParams) error
	// (POST /api/matches/{id}/accept)
	AcceptMatch(ctx echo.Context, id MatchID) error
	// (POST /api/matches/{id}/reject)
	RejectMatch(ctx echo.Context, id MatchID) error
	// (PATCH /api/matches/{id}/dropoff-complete)
	CompleteDropOff(ctx echo.Context, id MatchID) error
	// (PATCH /api/matches/{id}/pickup-complete)
	CompletePickUp(ctx echo.Context, id MatchID) error
	// (PATCH /api/matches/{id}/destination-dropoff-complete)
	CompleteDestinationDropOff(ctx echo.Context, id MatchID) error
	// (PATCH /api/matches/{id}/destination-pickup-complete)
	CompleteDestinationPickUp(ctx echo.Context, id MatchID) error
	// (PATCH /api/matches/{id}/update)
	UpdateMatchStatus(ctx echo.Context, id MatchID) error
	// (POST /api/matches/{id}/report-issue)
	ReportMatchIssue(ctx echo.Context, id MatchID) error
	// (GET /api/airports/search)
	SearchAirports(ctx echo.Context, params SearchAirportsParams) error
	// (GET /api/flights/lookup)
	LookupFlight(ctx echo.Context, params LookupFlightParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterUser converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterUser(ctx)
	return err
}

// LoginUser converts echo context to params.
func (w *ServerInterfaceWrapper) LoginUser(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.LoginUser(ctx)
	return err
}

// GetCurrentUser converts echo context to params.
func (w *ServerInterfaceWrapper) GetCurrentUser(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCurrentUser(ctx)
	return err
}

// CreateTravelerListing converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTravelerListing(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateTravelerListing(ctx)
	return err
}

// GetMyTravelerListings converts echo context to params.
func (w *ServerInterfaceWrapper) GetMyTravelerListings(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMyTravelerListings(ctx)
	return err
}

// CreateSenderListing converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSenderListing(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateSenderListing(ctx)
	return err
}

// GetMySenderListings converts echo context to params.
func (w *ServerInterfaceWrapper) GetMySenderListings(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMySenderListings(ctx)
	return err
}

// SearchListings converts echo context to params.
func (w *ServerInterfaceWrapper) SearchListings(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params SearchListingsParams
	// ------------- Required query parameter "type" -------------

	err = runtime.BindQueryParameter("form", true, true, "type", ctx.QueryParams(), &params.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}

	// ------------- Optional query parameter "originAirport" -------------

	err = runtime.BindQueryParameter("form", true, false, "originAirport", ctx.QueryParams(), &params.OriginAirport)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter originAirport: %s", err))
	}

	// ------------- Optional query parameter "destinationAirport" -------------

	err = runtime.BindQueryParameter("form", true, false, "destinationAirport", ctx.QueryParams(), &params.DestinationAirport)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter destinationAirport: %s", err))
	}

	// ------------- Optional query parameter "origin" -------------

	err = runtime.BindQueryParameter("form", true, false, "origin", ctx.QueryParams(), &params.Origin)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter origin: %s", err))
	}

	// ------------- Optional query parameter "destination" -------------

	err = runtime.BindQueryParameter("form", true, false, "destination", ctx.QueryParams(), &params.Destination)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter destination: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SearchListings(ctx, params)
	return err
}

// GetMatches converts echo context to params.
func (w *ServerInterfaceWrapper) GetMatches(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetMatchesParams
	// ------------- Optional query parameter "type" -------------

	err = runtime.BindQueryParameter("form", true, false, "type", ctx.QueryParams(), &params.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMatches(ctx, params)
	return err
}

// AcceptMatch converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptMatch(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AcceptMatch(ctx, id)
	return err
}

// RejectMatch converts echo context to params.
func (w *ServerInterfaceWrapper) RejectMatch(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RejectMatch(ctx, id)
	return err
}

// CompleteDropOff converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteDropOff(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompleteDropOff(ctx, id)
	return err
}

// CompletePickUp converts echo context to params.
func (w *ServerInterfaceWrapper) CompletePickUp(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompletePickUp(ctx, id)
	return err
}

// CompleteDestinationDropOff converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteDestinationDropOff(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompleteDestinationDropOff(ctx, id)
	return err
}

// CompleteDestinationPickUp converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteDestinationPickUp(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompleteDestinationPickUp(ctx, id)
	return err
}

// UpdateMatchStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateMatchStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateMatchStatus(ctx, id)
	return err
}

// ReportMatchIssue converts echo context to params.
func (w *ServerInterfaceWrapper) ReportMatchIssue(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id MatchID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReportMatchIssue(ctx, id)
	return err
}

// SearchAirports converts echo context to params.
func (w *ServerInterfaceWrapper) SearchAirports(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params SearchAirportsParams
	// ------------- Optional query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SearchAirports(ctx, params)
	return err
}

// LookupFlight converts echo context to params.
func (w *ServerInterfaceWrapper) LookupFlight(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params LookupFlightParams
	// ------------- Required query parameter "flightNumber" -------------

	err = runtime.BindQueryParameter("form", true, true, "flightNumber", ctx.QueryParams(), &params.FlightNumber)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter flightNumber: %s", err))
	}

	// ------------- Required query parameter "originAirport" -------------

	err = runtime.BindQueryParameter("form", true, true, "originAirport", ctx.QueryParams(), &params.OriginAirport)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter originAirport: %s", err))
	}

	// ------------- Required query parameter "destinationAirport" -------------

	err = runtime.BindQueryParameter("form", true, true, "destinationAirport", ctx.QueryParams(), &params.DestinationAirport)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter destinationAirport: %s", err))
	}

	// ------------- Optional query parameter "departureDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "departureDate", ctx.QueryParams(), &params.DepartureDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter departureDate: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.LookupFlight(ctx, params)
	return err
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/auth/register", wrapper.RegisterUser)
	router.POST(baseURL+"/api/auth/login", wrapper.LoginUser)
	router.GET(baseURL+"/api/auth/me", wrapper.GetCurrentUser)
	router.POST(baseURL+"/api/travelers", wrapper.CreateTravelerListing)
	router.GET(baseURL+"/api/travelers/my-listings", wrapper.GetMyTravelerListings)
	router.POST(baseURL+"/api/senders", wrapper.CreateSenderListing)
	router.GET(baseURL+"/api/senders/my-listings", wrapper.GetMySenderListings)
	router.GET(baseURL+"/api/search/listings", wrapper.SearchListings)
	router.GET(baseURL+"/api/matches", wrapper.GetMatches)
	router.POST(baseURL+"/api/matches/:id/accept", wrapper.AcceptMatch)
	router.POST(baseURL+"/api/matches/:id/reject", wrapper.RejectMatch)
	router.PATCH(baseURL+"/api/matches/:id/dropoff-complete", wrapper.CompleteDropOff)
	router.PATCH(baseURL+"/api/matches/:id/pickup-complete", wrapper.CompletePickUp)
	router.PATCH(baseURL+"/api/matches/:id/destination-dropoff-complete", wrapper.CompleteDestinationDropOff)
	router.PATCH(baseURL+"/api/matches/:id/destination-pickup-complete", wrapper.CompleteDestinationPickUp)
	router.PATCH(baseURL+"/api/matches/:id/update", wrapper.UpdateMatchStatus)
	router.POST(baseURL+"/api/matches/:id/report-issue", wrapper.ReportMatchIssue)
	router.GET(baseURL+"/api/airports/search", wrapper.SearchAirports)
	router.GET(baseURL+"/api/flights/lookup", wrapper.LookupFlight)
}
