package queries

import (
	"errors"
	"strings"

	"luggage/internal/pkg/guard"
)

// MaxAirportResults caps every airport search.
const MaxAirportResults = 20

var ErrSearchAirportsQueryIsNotConstructed = errors.New(
	"SearchAirportsQuery must be created via NewSearchAirportsQuery constructor",
)

type SearchAirportsQuery struct {
	text  string
	guard guard.ConstructorGuard
}

func NewSearchAirportsQuery(text string) SearchAirportsQuery {
	return SearchAirportsQuery{text: strings.TrimSpace(text), guard: guard.NewConstructorGuard()}
}

func (q SearchAirportsQuery) Validate() error {
	return q.guard.Validate(ErrSearchAirportsQueryIsNotConstructed)
}

func (q SearchAirportsQuery) Text() string { return q.text }
