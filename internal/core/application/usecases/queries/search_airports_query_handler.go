package queries

import (
	"context"

	"luggage/internal/core/ports"
)

type SearchAirportsQueryHandler struct {
	catalog ports.AirportCatalog
}

func NewSearchAirportsQueryHandler(catalog ports.AirportCatalog) SearchAirportsQueryHandler {
	return SearchAirportsQueryHandler{catalog: catalog}
}

func (h SearchAirportsQueryHandler) Handle(_ context.Context, query SearchAirportsQuery) ([]ports.Airport, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.catalog.Search(query.Text(), MaxAirportResults), nil
}
