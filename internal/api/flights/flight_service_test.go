package flights

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago/internal/api/fetch"
	"github.com/voyago/voyago/internal/sample"
	"github.com/voyago/voyago/internal/types"
)

// MockGateway is a mock implementation of Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SearchFlights(ctx context.Context, origin, destination, departureDate string, adults int) ([]types.FlightOffer, error) {
	args := m.Called(ctx, origin, destination, departureDate, adults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.FlightOffer), args.Error(1)
}

func newService(gateway Gateway) *ServiceImpl {
	service := NewService(gateway, fetch.NewCoordinator(15*time.Second, 90*time.Second), slog.Default())
	service.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return service
}

func TestSearchLiveResults(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	live := []types.FlightOffer{
		{ID: "flight-1-0", Airline: "BA", Price: 350, Departure: "LHR", Arrival: "CDG", Duration: "2h15m"},
		{ID: "flight-2-1", Airline: "AF", Price: 420, Departure: "LHR", Arrival: "CDG", Duration: "2h30m"},
	}
	mockGateway.On("SearchFlights", mock.Anything, "LHR", "CDG", "2026-03-08", 1).Return(live, nil)

	result := service.Search(context.Background(), types.Destination{City: "Paris"})

	assert.Equal(t, types.StatusLive, result.Status)
	assert.False(t, result.IsFallback)
	// Live records pass through unmodified
	assert.Equal(t, live, result.Data)
	mockGateway.AssertExpectations(t)
}

func TestSearchEmptyFallsBack(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	mockGateway.On("SearchFlights", mock.Anything, "LHR", "CDG", "2026-03-08", 1).Return([]types.FlightOffer{}, nil)

	result := service.Search(context.Background(), types.Destination{City: "Paris"})

	assert.Equal(t, types.StatusFallback, result.Status)
	assert.True(t, result.IsFallback)
	assert.Equal(t, sample.Flights("CDG"), result.Data)
}

func TestSearchAuthFailureIsErrorState(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	mockGateway.On("SearchFlights", mock.Anything, "LHR", "CDG", "2026-03-08", 1).
		Return(nil, fmt.Errorf("%w: token endpoint returned 401", types.ErrAuth))

	result := service.Search(context.Background(), types.Destination{City: "Paris"})

	assert.Equal(t, types.StatusError, result.Status)
	assert.False(t, result.IsFallback)
	assert.Empty(t, result.Data)
	assert.NotEmpty(t, result.Error)
}

func TestSearchUsesDerivedCode(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	mockGateway.On("SearchFlights", mock.Anything, "LHR", "CAS", "2026-03-08", 1).Return([]types.FlightOffer{}, nil)

	result := service.Search(context.Background(), types.Destination{City: "Casablanca"})

	require.Equal(t, types.StatusFallback, result.Status)
	// Sample flights arrive at the derived code
	assert.Equal(t, "CAS", result.Data[0].Arrival)
}

func TestSearchResultIsCached(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	mockGateway.On("SearchFlights", mock.Anything, "LHR", "CDG", "2026-03-08", 1).Return([]types.FlightOffer{}, nil)

	first := service.Search(context.Background(), types.Destination{City: "Paris"})
	second := service.Search(context.Background(), types.Destination{City: "Paris"})

	assert.Equal(t, first, second)
	mockGateway.AssertNumberOfCalls(t, "SearchFlights", 1)
}

func TestSearchErrorStateIsNotCached(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	mockGateway.On("SearchFlights", mock.Anything, "LHR", "CDG", "2026-03-08", 1).
		Return(nil, fmt.Errorf("%w: exchange failed", types.ErrAuth))

	// A new user action restarts the machine from idle, so both calls must
	// reach the gateway.
	service.Search(context.Background(), types.Destination{City: "Paris"})
	service.Search(context.Background(), types.Destination{City: "Paris"})

	mockGateway.AssertNumberOfCalls(t, "SearchFlights", 2)
}
