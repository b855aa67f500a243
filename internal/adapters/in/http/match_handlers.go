package http

import (
	"net/http"

	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetMatches handles GET /api/matches.
func (s *Server) GetMatches(ctx echo.Context, params servers.GetMatchesParams) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var filter string
	if params.Type != nil {
		filter = string(*params.Type)
	}

	query, err := queries.NewGetMatchesQuery(principal.UserID, filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.GetMatches.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.MatchesResponse{Matches: make([]servers.MatchView, len(views))}
	for i, v := range views {
		response.Matches[i] = fromMatchView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptMatch handles POST /api/matches/{id}/accept.
func (s *Server) AcceptMatch(ctx echo.Context, id servers.MatchID) error {
	return s.transition(ctx, id, match.Accept)
}

// RejectMatch handles POST /api/matches/{id}/reject.
func (s *Server) RejectMatch(ctx echo.Context, id servers.MatchID) error {
	return s.transition(ctx, id, match.Reject)
}

// CompleteDropOff handles PATCH /api/matches/{id}/dropoff-complete.
func (s *Server) CompleteDropOff(ctx echo.Context, id servers.MatchID) error {
	return s.transition(ctx, id, match.CompleteDropOff)
}

// CompletePickUp handles PATCH /api/matches/{id}/pickup-complete.
func (s *Server) CompletePickUp(ctx echo.Context, id servers.MatchID) error {
	return s.transition(ctx, id, match.CompletePickUp)
}

// CompleteDestinationDropOff handles PATCH /api/matches/{id}/destination-dropoff-complete.
func (s *Server) CompleteDestinationDropOff(ctx echo.Context, id servers.MatchID) error {
	return s.transition(ctx, id, match.CompleteDestinationDropOff)
}

// CompleteDestinationPickUp handles PATCH /api/matches/{id}/destination-pickup-complete.
func (s *Server) CompleteDestinationPickUp(ctx echo.Context, id servers.MatchID) error {
	return s.transition(ctx, id, match.CompleteDestinationPickUp)
}

func (s *Server) transition(ctx echo.Context, id servers.MatchID, action match.Action) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	matchID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionMatchCommand(matchID, principal.UserID, action)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.TransitionMatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.MatchResponse{Match: fromMatch(updated)})
}

// UpdateMatchStatus handles PATCH /api/matches/{id}/update.
func (s *Server) UpdateMatchStatus(ctx echo.Context, id servers.MatchID) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateMatchStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	matchID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateMatchStatusCommand(matchID, principal.UserID, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.h.UpdateMatchStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.MatchResponse{Match: fromMatch(updated)})
}

// ReportMatchIssue handles POST /api/matches/{id}/report-issue.
func (s *Server) ReportMatchIssue(ctx echo.Context, id servers.MatchID) error {
	principal, err := RequirePrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ReportMatchIssueJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx)
	}

	matchID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReportIssueCommand(matchID, principal.UserID, body.Description)
	if err != nil {
		return s.fail(ctx, err)
	}

	report, err := s.h.ReportIssue.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.IssueReportResponse{IssueReport: servers.IssueReport{
		Id:           report.ID().Bytes(),
		MatchId:      report.MatchID().Bytes(),
		ReportedById: report.ReportedByID().Bytes(),
		Description:  report.Description(),
		CreatedAt:    report.CreatedAt(),
	}})
}
