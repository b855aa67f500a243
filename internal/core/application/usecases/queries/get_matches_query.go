package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/core/domain/services"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrGetMatchesQueryIsNotConstructed = errors.New(
	"GetMatchesQuery must be created via NewGetMatchesQuery constructor",
)

// GetMatchesQuery lists the viewer's open matches. Role narrows the list to
// matches where the viewer plays that role; match.NoRole means all of them.
//
//	query, err := NewGetMatchesQuery(principal.UserID, c.QueryParam("type"))
//	if err != nil {
//	    return err // unknown type
//	}
//	matches, err := handler.Handle(ctx, query)
type GetMatchesQuery struct {
	viewer kernel.UUID
	role   match.Role

	guard guard.ConstructorGuard
}

// NewGetMatchesQuery accepts "traveler", "sender", "receiver", "all" or an
// empty filter.
func NewGetMatchesQuery(viewer kernel.UUID, filter string) (GetMatchesQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetMatchesQuery{}, err
	}

	role, err := parseRoleFilter(filter)
	if err != nil {
		return GetMatchesQuery{}, err
	}

	return GetMatchesQuery{
		viewer: viewer,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetMatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetMatchesQueryIsNotConstructed)
}

func (q GetMatchesQuery) Viewer() kernel.UUID { return q.viewer }
func (q GetMatchesQuery) Role() match.Role    { return q.role }

func parseRoleFilter(filter string) (match.Role, error) {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", "all":
		return match.NoRole, nil
	case "traveler":
		return match.TravelerRole, nil
	case "sender":
		return match.SenderRole, nil
	case "receiver":
		return match.ReceiverRole, nil
	default:
		return match.NoRole, errs.NewValueIsInvalidErrorWithCause(
			"type",
			fmt.Errorf("%q must be traveler, sender, receiver or all", filter),
		)
	}
}

// GetMatchesQueryResponse is one match as the viewer may see it. Traveler is
// already anonymized for senders and receivers.
type GetMatchesQueryResponse struct {
	ID          kernel.UUID
	Status      match.Status
	Checkpoints match.Checkpoints
	CreatedAt   time.Time
	UpdatedAt   time.Time

	TravelerListing TravelerListingView
	SenderListing   SenderListingView

	Traveler services.Contact
	Sender   services.Contact
	Receiver services.Contact
}
