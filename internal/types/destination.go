package types

// Destination describes a searchable travel destination. Instances come
// either from the city-search provider or from the static seed list and are
// never mutated after creation.
type Destination struct {
	ID          string   `json:"id"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Image       string   `json:"image"`
	Attractions []string `json:"attractions"`
	Description string   `json:"description"`
	// CityCode is the provider IATA code when known. Optional; the location
	// resolver falls back to a derived code when it is empty.
	CityCode string `json:"cityCode,omitempty"`
}
