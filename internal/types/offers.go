package types

// FlightOffer is a normalized flight search result. Prices are whole USD.
type FlightOffer struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	Price         int    `json:"price"`
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	Duration      string `json:"duration"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
}

// HotelOffer is a normalized hotel search result for a 1-night stay.
// Rating is always populated after normalization (provider omissions are
// replaced with 4.0 at the gateway boundary).
type HotelOffer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int     `json:"price"`
	Rating   float64 `json:"rating"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
}
