package amadeus

import "strings"

// CodeKind distinguishes the two provider code vocabularies: flight search
// takes airport codes, hotel search takes city codes.
type CodeKind int

const (
	CodeAirport CodeKind = iota
	CodeCity
)

// airportCodes maps city names to the airport used for flight search.
var airportCodes = map[string]string{
	"Paris":     "CDG",
	"Kyoto":     "KIX",
	"New York":  "JFK",
	"London":    "LHR",
	"Tokyo":     "NRT",
	"Dubai":     "DXB",
	"Singapore": "SIN",
}

// cityCodes maps city names to the city code used for hotel search.
var cityCodes = map[string]string{
	"Paris":       "PAR",
	"Kyoto":       "OSA",
	"New York":    "NYC",
	"London":      "LON",
	"Tokyo":       "TYO",
	"Dubai":       "DXB",
	"Singapore":   "SIN",
	"Los Angeles": "LAX",
	"Madrid":      "MAD",
	"Barcelona":   "BCN",
	"Rome":        "ROM",
	"Amsterdam":   "AMS",
}

// ResolveCode maps a city name to a provider code of the given kind.
// Lookup order: static table, then the destination's own cityCode, then the
// upper-cased first three characters of the name. The derived form is a
// best-effort heuristic, not a real code; downstream searches using it may
// legitimately return empty.
func ResolveCode(city string, kind CodeKind, cityCode string) string {
	table := airportCodes
	if kind == CodeCity {
		table = cityCodes
	}
	if code, ok := table[city]; ok {
		return code
	}
	if cityCode != "" {
		return cityCode
	}
	runes := []rune(city)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}
