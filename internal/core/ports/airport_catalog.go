package ports

// Airport is one entry of the airport catalog.
type Airport struct {
	Code    string
	Name    string
	City    string
	Country string
}

type AirportCatalog interface {
	// Search matches q case-insensitively against code, name and city and
	// returns at most limit airports. An empty q returns the first limit.
	Search(q string, limit int) []Airport
}
