package commands

import (
	"context"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
)

// ReportIssueCommandHandler appends an issue report. Only the traveler of the
// match may report.
type ReportIssueCommandHandler struct {
	uowFactory MatchUoWFactory
	clock      kernel.Clock
}

func NewReportIssueCommandHandler(uowFactory MatchUoWFactory, clock kernel.Clock) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) (*match.IssueReport, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := uow.MatchRepository().Get(ctx, cmd.MatchID())
	if err != nil {
		return nil, err
	}

	report, err := m.ReportIssue(kernel.NewUUID(), cmd.Reporter(), cmd.Description(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.IssueReportRepository().Add(ctx, report); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return report, nil
}
