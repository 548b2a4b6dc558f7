package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago/internal/types"
)

func TestDestinationsSeedList(t *testing.T) {
	seeds := Destinations()
	require.Len(t, seeds, 3)

	assert.Equal(t, "Paris", seeds[0].City)
	assert.Equal(t, "France", seeds[0].Country)

	for _, d := range seeds {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.CityCode)
		assert.NotEmpty(t, d.Attractions)
		assert.NotEmpty(t, d.Description)
	}

	// Callers may mutate their copy without affecting later calls
	seeds[0].City = "Mutated"
	assert.Equal(t, "Paris", Destinations()[0].City)
}

func TestFlightsParameterizedByCode(t *testing.T) {
	flights := Flights("KIX")
	require.Len(t, flights, 2)

	for _, f := range flights {
		assert.NotEmpty(t, f.ID)
		assert.Greater(t, f.Price, 0)
		assert.Equal(t, "LHR", f.Departure)
		assert.Equal(t, "KIX", f.Arrival)
	}
	assert.Equal(t, 350+420, flights[0].Price+flights[1].Price)
}

func TestHotelsParameterizedByCity(t *testing.T) {
	hotels := Hotels("Kyoto", "2026-03-08", "2026-03-09")
	require.Len(t, hotels, 3)

	assert.Equal(t, "Hotel Le Kyoto", hotels[0].Name)
	for _, h := range hotels {
		assert.NotEmpty(t, h.ID)
		assert.Greater(t, h.Price, 0)
		assert.Greater(t, h.Rating, 0.0)
		assert.Equal(t, "2026-03-08", h.CheckIn)
		assert.Equal(t, "2026-03-09", h.CheckOut)
	}
}

func TestWeatherDefaults(t *testing.T) {
	snapshot := Weather()
	assert.Equal(t, 23, snapshot.Temp)
	assert.NotEmpty(t, snapshot.Condition)

	forecast := Forecast()
	require.Len(t, forecast, 5)
	for _, day := range forecast {
		assert.GreaterOrEqual(t, day.High, day.Low)
		assert.NotEmpty(t, day.Day)
		assert.NotEmpty(t, day.Condition)
	}
}

func TestConditionGlyphTaxonomy(t *testing.T) {
	assert.Equal(t, "☀️", types.ConditionGlyph("Clear"))
	assert.Equal(t, "🌧️", types.ConditionGlyph("Rain"))
	assert.Equal(t, "⛅", types.ConditionGlyph("Sandstorm"))
}
