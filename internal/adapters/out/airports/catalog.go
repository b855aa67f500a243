// Package airports serves the static airport catalog used by the airport
// picker.
package airports

import (
	"strings"

	"luggage/internal/core/ports"
)

var catalog = []ports.Airport{
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA"},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "USA"},
	{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Country: "USA"},
	{Code: "DEN", Name: "Denver International", City: "Denver", Country: "USA"},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "USA"},
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Country: "USA"},
	{Code: "MIA", Name: "Miami International", City: "Miami", Country: "USA"},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta", Country: "USA"},
	{Code: "BOS", Name: "Logan International", City: "Boston", Country: "USA"},
	{Code: "LAS", Name: "McCarran International", City: "Las Vegas", Country: "USA"},
	{Code: "PHX", Name: "Sky Harbor International", City: "Phoenix", Country: "USA"},
	{Code: "IAH", Name: "George Bush Intercontinental", City: "Houston", Country: "USA"},
	{Code: "MSP", Name: "Minneapolis-Saint Paul International", City: "Minneapolis", Country: "USA"},
	{Code: "DTW", Name: "Detroit Metropolitan", City: "Detroit", Country: "USA"},
	{Code: "PHL", Name: "Philadelphia International", City: "Philadelphia", Country: "USA"},
	{Code: "LGA", Name: "LaGuardia", City: "New York", Country: "USA"},
	{Code: "BWI", Name: "Baltimore/Washington International", City: "Baltimore", Country: "USA"},
	{Code: "SLC", Name: "Salt Lake City International", City: "Salt Lake City", Country: "USA"},
	{Code: "DCA", Name: "Ronald Reagan Washington National", City: "Washington", Country: "USA"},
	{Code: "LHR", Name: "Heathrow", City: "London", Country: "UK"},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	{Code: "FRA", Name: "Frankfurt am Main", City: "Frankfurt", Country: "Germany"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas", City: "Madrid", Country: "Spain"},
	{Code: "FCO", Name: "Leonardo da Vinci–Fiumicino", City: "Rome", Country: "Italy"},
	{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE"},
	{Code: "DOH", Name: "Hamad International", City: "Doha", Country: "Qatar"},
	{Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "Singapore"},
	{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "China"},
	{Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "Japan"},
	{Code: "ICN", Name: "Incheon International", City: "Seoul", Country: "South Korea"},
	{Code: "SYD", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia"},
	{Code: "YYZ", Name: "Toronto Pearson International", City: "Toronto", Country: "Canada"},
	{Code: "YVR", Name: "Vancouver International", City: "Vancouver", Country: "Canada"},
	{Code: "MEX", Name: "Benito Juárez International", City: "Mexico City", Country: "Mexico"},
	{Code: "GRU", Name: "São Paulo/Guarulhos International", City: "São Paulo", Country: "Brazil"},
	{Code: "EZE", Name: "Ministro Pistarini International", City: "Buenos Aires", Country: "Argentina"},
}

// StaticCatalog implements ports.AirportCatalog over a fixed list.
type StaticCatalog struct {
	airports []ports.Airport
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{airports: catalog}
}

func (c *StaticCatalog) Search(q string, limit int) []ports.Airport {
	q = strings.ToLower(strings.TrimSpace(q))

	result := make([]ports.Airport, 0, limit)
	for _, a := range c.airports {
		if len(result) == limit {
			break
		}
		if q == "" ||
			strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.City), q) {
			result = append(result, a)
		}
	}
	return result
}
