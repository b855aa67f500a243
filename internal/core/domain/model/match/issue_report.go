package match

import (
	"errors"
	"strings"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
)

// IssueReport is an append-only note attached to a match.
type IssueReport struct {
	id           kernel.UUID
	matchID      kernel.UUID
	reportedByID kernel.UUID
	description  string
	createdAt    time.Time
}

func NewIssueReport(id, matchID, reportedByID kernel.UUID, description string, now time.Time) (*IssueReport, error) {
	description = strings.TrimSpace(description)

	var descErr error
	if description == "" {
		descErr = errs.NewValueIsRequiredError("description")
	}
	if err := errors.Join(id.Validate(), matchID.Validate(), reportedByID.Validate(), descErr); err != nil {
		return nil, err
	}

	return &IssueReport{
		id:           id,
		matchID:      matchID,
		reportedByID: reportedByID,
		description:  description,
		createdAt:    now,
	}, nil
}

func (r *IssueReport) ID() kernel.UUID           { return r.id }
func (r *IssueReport) MatchID() kernel.UUID      { return r.matchID }
func (r *IssueReport) ReportedByID() kernel.UUID { return r.reportedByID }
func (r *IssueReport) Description() string       { return r.description }
func (r *IssueReport) CreatedAt() time.Time      { return r.createdAt }
