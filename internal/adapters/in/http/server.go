// Package http is the inbound REST adapter. Server implements
// servers.ServerInterface on top of the command and query handlers.
package http

import (
	"context"
	"log/slog"

	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/core/domain/services"
	"luggage/internal/core/ports"
	"luggage/internal/generated/servers"
)

// Handler is the shape shared by every command and query handler.
type Handler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	// Command handlers
	RegisterUser          Handler[commands.RegisterUserCommand, commands.AuthResult]
	Login                 Handler[commands.LoginCommand, commands.AuthResult]
	CreateTravelerListing Handler[commands.CreateTravelerListingCommand, *listing.TravelerListing]
	CreateSenderListing   Handler[commands.CreateSenderListingCommand, *listing.SenderListing]
	TransitionMatch       Handler[commands.TransitionMatchCommand, *match.Match]
	UpdateMatchStatus     Handler[commands.UpdateMatchStatusCommand, *match.Match]
	ReportIssue           Handler[commands.ReportIssueCommand, *match.IssueReport]

	// Query handlers
	GetUser               Handler[queries.GetUserQuery, queries.GetUserQueryResponse]
	GetMyTravelerListings Handler[queries.GetMyTravelerListingsQuery, []queries.TravelerListingView]
	GetMySenderListings   Handler[queries.GetMySenderListingsQuery, []queries.SenderListingView]
	SearchListings        Handler[queries.SearchListingsQuery, queries.SearchListingsQueryResponse]
	GetMatches            Handler[queries.GetMatchesQuery, []queries.GetMatchesQueryResponse]
	SearchAirports        Handler[queries.SearchAirportsQuery, []ports.Airport]
	LookupFlight          Handler[queries.LookupFlightQuery, services.FlightEstimate]
}

// Server implements servers.ServerInterface.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}
