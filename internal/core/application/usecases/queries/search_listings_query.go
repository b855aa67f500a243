package queries

import (
	"errors"
	"fmt"
	"strings"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

var ErrSearchListingsQueryIsNotConstructed = errors.New(
	"SearchListingsQuery must be created via NewSearchListingsQuery constructor",
)

// ListingKind selects which side of the marketplace a search covers.
type ListingKind int

const (
	UnknownListingKind ListingKind = iota
	TravelerListings
	SenderListings
)

func ParseListingKind(s string) (ListingKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "traveler":
		return TravelerListings, nil
	case "sender":
		return SenderListings, nil
	case "":
		return UnknownListingKind, errs.NewValueIsRequiredError("type")
	default:
		return UnknownListingKind, errs.NewValueIsInvalidErrorWithCause(
			"type", fmt.Errorf("%q must be traveler or sender", s))
	}
}

// SearchListingsQuery browses active listings. Origin and destination are
// optional exact airport filters. When viewer is set, the viewer's own
// listings are left out.
type SearchListingsQuery struct {
	kind        ListingKind
	origin      string
	destination string
	viewer      *kernel.UUID

	guard guard.ConstructorGuard
}

func NewSearchListingsQuery(kind ListingKind, origin, destination string, viewer *kernel.UUID) (SearchListingsQuery, error) {
	if kind != TravelerListings && kind != SenderListings {
		return SearchListingsQuery{}, errs.NewValueIsInvalidError("type")
	}

	q := SearchListingsQuery{
		kind:        kind,
		origin:      strings.ToUpper(strings.TrimSpace(origin)),
		destination: strings.ToUpper(strings.TrimSpace(destination)),
		guard:       guard.NewConstructorGuard(),
	}
	if viewer != nil {
		if err := viewer.Validate(); err != nil {
			return SearchListingsQuery{}, err
		}
		v := *viewer
		q.viewer = &v
	}

	return q, nil
}

func (q SearchListingsQuery) Validate() error {
	return q.guard.Validate(ErrSearchListingsQueryIsNotConstructed)
}

func (q SearchListingsQuery) Kind() ListingKind   { return q.kind }
func (q SearchListingsQuery) Origin() string      { return q.origin }
func (q SearchListingsQuery) Destination() string { return q.destination }

func (q SearchListingsQuery) Viewer() (kernel.UUID, bool) {
	if q.viewer == nil {
		return kernel.UUID{}, false
	}
	return *q.viewer, true
}

type TravelerSearchResult struct {
	Listing TravelerListingView
	Owner   ListingOwner
}

type SenderSearchResult struct {
	Listing SenderListingView
	Owner   ListingOwner
}

// SearchListingsQueryResponse carries the results for the requested kind only.
type SearchListingsQueryResponse struct {
	Kind      ListingKind
	Travelers []TravelerSearchResult
	Senders   []SenderSearchResult
}
