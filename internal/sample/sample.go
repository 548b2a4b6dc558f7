// Package sample produces the deterministic records served whenever live
// data is empty or unavailable. Records are schema-identical to normalized
// provider output and parameterized by the requested destination so the
// fallback still looks destination-specific. Nothing in this package can
// fail.
package sample

import "github.com/voyago/voyago/internal/types"

// Destinations is the static seed list served when city search yields
// nothing. The returned slice is freshly allocated on every call.
func Destinations() []types.Destination {
	return []types.Destination{
		{
			ID:          "seed-1",
			City:        "Paris",
			Country:     "France",
			CityCode:    "PAR",
			Image:       "https://source.unsplash.com/800x600/?Paris,city",
			Attractions: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame"},
			Description: "The City of Light",
		},
		{
			ID:          "seed-2",
			City:        "Kyoto",
			Country:     "Japan",
			CityCode:    "OSA",
			Image:       "https://source.unsplash.com/800x600/?Kyoto,city",
			Attractions: []string{"Fushimi Inari Shrine", "Kiyomizu Temple", "Arashiyama"},
			Description: "Ancient temples and gardens",
		},
		{
			ID:          "seed-3",
			City:        "New York",
			Country:     "USA",
			CityCode:    "NYC",
			Image:       "https://source.unsplash.com/800x600/?New+York,city",
			Attractions: []string{"Statue of Liberty", "Central Park", "Times Square"},
			Description: "The city that never sleeps",
		},
	}
}

// Flights returns two sample offers on the LHR route to the resolved
// destination code.
func Flights(destCode string) []types.FlightOffer {
	return []types.FlightOffer{
		{
			ID:            "example-1",
			Airline:       "British Airways",
			Price:         350,
			Departure:     "LHR",
			Arrival:       destCode,
			Duration:      "2h 15m",
			DepartureTime: "09:30 AM",
			ArrivalTime:   "12:45 PM",
		},
		{
			ID:            "example-2",
			Airline:       "Air France",
			Price:         420,
			Departure:     "LHR",
			Arrival:       destCode,
			Duration:      "2h 30m",
			DepartureTime: "11:00 AM",
			ArrivalTime:   "02:30 PM",
		},
	}
}

// Hotels returns three sample hotels named after the city, using the same
// stay window the live path would have requested.
func Hotels(city, checkIn, checkOut string) []types.HotelOffer {
	return []types.HotelOffer{
		{ID: "example-hotel-1", Name: "Hotel Le " + city, Price: 120, Rating: 4.5, CheckIn: checkIn, CheckOut: checkOut},
		{ID: "example-hotel-2", Name: "Grand " + city + " Hotel", Price: 175, Rating: 4.8, CheckIn: checkIn, CheckOut: checkOut},
		{ID: "example-hotel-3", Name: city + " Plaza", Price: 95, Rating: 4.2, CheckIn: checkIn, CheckOut: checkOut},
	}
}

// Weather returns the default current-conditions record shown when the
// weather provider is unreachable.
func Weather() types.WeatherSnapshot {
	return types.WeatherSnapshot{
		Temp:        23,
		Condition:   "Partly Cloudy",
		Description: "Unable to fetch weather",
		Humidity:    65,
		WindSpeed:   12,
	}
}

// Forecast returns the default 5-day forecast.
func Forecast() []types.ForecastDay {
	return []types.ForecastDay{
		{Day: "Mon", High: 25, Low: 18, Condition: "☀️"},
		{Day: "Tue", High: 24, Low: 16, Condition: "⛅"},
		{Day: "Wed", High: 22, Low: 15, Condition: "🌧️"},
		{Day: "Thu", High: 23, Low: 17, Condition: "⛅"},
		{Day: "Fri", High: 26, Low: 19, Condition: "☀️"},
	}
}
