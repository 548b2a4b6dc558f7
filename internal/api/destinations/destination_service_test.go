package destinations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago/internal/types"
)

// MockGateway is a mock implementation of Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SearchCities(ctx context.Context, keyword string) ([]types.Destination, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Destination), args.Error(1)
}

func TestSearchLiveResults(t *testing.T) {
	mockGateway := new(MockGateway)
	service := NewService(mockGateway, slog.Default())

	live := []types.Destination{
		{ID: "CBER", City: "Berlin", Country: "Germany", CityCode: "BER", Attractions: []string{}},
	}
	mockGateway.On("SearchCities", mock.Anything, "Ber").Return(live, nil)

	result := service.Search(context.Background(), "Ber")

	assert.Equal(t, types.StatusLive, result.Status)
	assert.False(t, result.IsFallback)
	assert.Equal(t, live, result.Data)
	mockGateway.AssertExpectations(t)
}

func TestSearchNoConnectivityFallsBackToSeeds(t *testing.T) {
	mockGateway := new(MockGateway)
	service := NewService(mockGateway, slog.Default())

	mockGateway.On("SearchCities", mock.Anything, "Paris").
		Return(nil, errors.New("connection refused"))

	result := service.Search(context.Background(), "Paris")

	require.Equal(t, types.StatusFallback, result.Status)
	assert.True(t, result.IsFallback)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Paris", result.Data[0].City)
	assert.Equal(t, "France", result.Data[0].Country)
}

func TestSearchAuthFailureStillServesSeeds(t *testing.T) {
	mockGateway := new(MockGateway)
	service := NewService(mockGateway, slog.Default())

	mockGateway.On("SearchCities", mock.Anything, "Paris").
		Return(nil, fmt.Errorf("%w: exchange failed", types.ErrAuth))

	result := service.Search(context.Background(), "Paris")

	// Destination search always has the seed list to serve
	require.Equal(t, types.StatusFallback, result.Status)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Paris", result.Data[0].City)
}

func TestSearchEmptyLiveFiltersSeeds(t *testing.T) {
	mockGateway := new(MockGateway)
	service := NewService(mockGateway, slog.Default())

	mockGateway.On("SearchCities", mock.Anything, mock.Anything).Return([]types.Destination{}, nil)

	tests := []struct {
		query      string
		wantCities []string
	}{
		{"paris", []string{"Paris"}},
		{"Japan", []string{"Kyoto"}},
		{"new", []string{"New York"}},
		{"zanzibar", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			result := service.Search(context.Background(), tc.query)
			require.Equal(t, types.StatusFallback, result.Status)
			cities := make([]string, 0, len(result.Data))
			for _, d := range result.Data {
				cities = append(cities, d.City)
			}
			assert.Equal(t, tc.wantCities, cities)
		})
	}
}

func TestSearchEmptyQueryServesFullSeedList(t *testing.T) {
	service := NewService(new(MockGateway), slog.Default())

	result := service.Search(context.Background(), "   ")

	require.Equal(t, types.StatusFallback, result.Status)
	assert.Len(t, result.Data, 3)
}

func TestLookupSeedEntry(t *testing.T) {
	service := NewService(new(MockGateway), slog.Default())

	dest := service.Lookup(context.Background(), "kyoto")
	assert.Equal(t, "Kyoto", dest.City)
	assert.Equal(t, "Japan", dest.Country)
	assert.Equal(t, "OSA", dest.CityCode)
	assert.NotEmpty(t, dest.Attractions)
}

func TestLookupUnknownCitySynthesized(t *testing.T) {
	service := NewService(new(MockGateway), slog.Default())

	dest := service.Lookup(context.Background(), "Buenos Aires")
	assert.Equal(t, "Buenos Aires", dest.City)
	assert.Equal(t, "dest-buenos-aires", dest.ID)
	assert.Empty(t, dest.CityCode)
	assert.NotEmpty(t, dest.Description)
}
