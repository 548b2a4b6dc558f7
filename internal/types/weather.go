package types

// WeatherSnapshot is the current-conditions view for a city, metric units.
type WeatherSnapshot struct {
	Temp        int    `json:"temp"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Icon        string `json:"icon,omitempty"`
}

// ForecastDay is one representative entry per calendar day, taken from the
// provider's 3-hourly list around local noon.
type ForecastDay struct {
	Day       string `json:"day"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
	Condition string `json:"condition"`
}

// WeatherReport pairs the two weather calls the UI issues together.
type WeatherReport struct {
	Current  WeatherSnapshot `json:"current"`
	Forecast []ForecastDay   `json:"forecast"`
}

// ConditionGlyph maps a provider condition taxonomy key to the glyph shown
// on forecast cards.
func ConditionGlyph(condition string) string {
	glyphs := map[string]string{
		"Clear":        "☀️",
		"Clouds":       "☁️",
		"Rain":         "🌧️",
		"Drizzle":      "🌦️",
		"Thunderstorm": "⛈️",
		"Snow":         "🌨️",
		"Mist":         "🌫️",
		"Fog":          "🌫️",
		"Haze":         "🌫️",
	}
	if g, ok := glyphs[condition]; ok {
		return g
	}
	return "⛅"
}
