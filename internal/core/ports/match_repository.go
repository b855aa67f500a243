package ports

import (
	"context"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
)

type MatchRepository interface {
	// AddIfAbsent inserts the match unless one already exists for its
	// (traveler listing, sender listing) pair. It reports whether a row was
	// written; an existing pair is not an error.
	AddIfAbsent(ctx context.Context, aggregate *match.Match) (bool, error)

	Get(ctx context.Context, id kernel.UUID) (*match.Match, error)

	// Update writes the match only if the stored version still equals
	// aggregate.Version(). A concurrent change yields errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *match.Match) error
}

type IssueReportRepository interface {
	Add(ctx context.Context, report *match.IssueReport) error
}
