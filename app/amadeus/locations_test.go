package amadeus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCode(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		kind     CodeKind
		cityCode string
		want     string
	}{
		{"airport table entry", "Paris", CodeAirport, "", "CDG"},
		{"city table entry", "Paris", CodeCity, "", "PAR"},
		{"kyoto uses osaka for hotels", "Kyoto", CodeCity, "", "OSA"},
		{"table wins over provided code", "London", CodeAirport, "ZZZ", "LHR"},
		{"provider code wins over derivation", "Reykjavik", CodeCity, "REK", "REK"},
		{"derived fallback", "Casablanca", CodeAirport, "", "CAS"},
		{"derived fallback uppercases", "oslo", CodeCity, "", "OSL"},
		{"short name", "Ur", CodeAirport, "", "UR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveCode(tc.city, tc.kind, tc.cityCode))
		})
	}
}
