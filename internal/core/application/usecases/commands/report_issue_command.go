package commands

import (
	"errors"
	"strings"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

type ReportIssueCommand struct {
	matchID     kernel.UUID
	reporter    kernel.UUID
	description string

	guard guard.ConstructorGuard
}

func NewReportIssueCommand(matchID, reporter kernel.UUID, description string) (ReportIssueCommand, error) {
	description = strings.TrimSpace(description)

	var descErr error
	if description == "" {
		descErr = errs.NewValueIsRequiredError("description")
	}
	if err := errors.Join(matchID.Validate(), reporter.Validate(), descErr); err != nil {
		return ReportIssueCommand{}, err
	}

	return ReportIssueCommand{
		matchID:     matchID,
		reporter:    reporter,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

func (c ReportIssueCommand) MatchID() kernel.UUID  { return c.matchID }
func (c ReportIssueCommand) Reporter() kernel.UUID { return c.reporter }
func (c ReportIssueCommand) Description() string   { return c.description }
