package hotels

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
	"github.com/voyago/voyago/internal/types"
)

// MockGateway is a mock implementation of Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SearchHotels(ctx context.Context, cityCode, checkIn, checkOut string) ([]types.HotelOffer, error) {
	args := m.Called(ctx, cityCode, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.HotelOffer), args.Error(1)
}

func newService(gateway Gateway) *ServiceImpl {
	service := NewService(gateway, fetch.NewCoordinator(15*time.Second, 90*time.Second), slog.Default())
	service.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return service
}

func TestSearchLiveResults(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	live := []types.HotelOffer{
		{ID: "hotel-H1-0", Name: "Hotel du Louvre", Price: 219, Rating: 4.5, CheckIn: "2026-03-08", CheckOut: "2026-03-09"},
	}
	// Kyoto resolves to the OSA city code for hotel search
	mockGateway.On("SearchHotels", mock.Anything, "OSA", "2026-03-08", "2026-03-09").Return(live, nil)

	result := service.Search(context.Background(), types.Destination{City: "Kyoto"})

	assert.Equal(t, types.StatusLive, result.Status)
	assert.False(t, result.IsFallback)
	assert.Equal(t, live, result.Data)
	mockGateway.AssertExpectations(t)
}

func TestSearchEmptyFallsBackWithStayWindow(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	mockGateway.On("SearchHotels", mock.Anything, "PAR", "2026-03-08", "2026-03-09").Return([]types.HotelOffer{}, nil)

	result := service.Search(context.Background(), types.Destination{City: "Paris"})

	require.Equal(t, types.StatusFallback, result.Status)
	require.Len(t, result.Data, 3)

	// Sample hotels are named after the city and carry the live stay window
	assert.Equal(t, "Hotel Le Paris", result.Data[0].Name)
	assert.Equal(t, "Grand Paris Hotel", result.Data[1].Name)
	assert.Equal(t, "Paris Plaza", result.Data[2].Name)
	for _, hotel := range result.Data {
		assert.Equal(t, "2026-03-08", hotel.CheckIn)
		assert.Equal(t, "2026-03-09", hotel.CheckOut)
		assert.Greater(t, hotel.Rating, 0.0)
		assert.NotEmpty(t, hotel.ID)
	}
}

func TestSearchAuthFailureIsErrorState(t *testing.T) {
	mockGateway := new(MockGateway)
	service := newService(mockGateway)

	mockGateway.On("SearchHotels", mock.Anything, "PAR", "2026-03-08", "2026-03-09").
		Return(nil, fmt.Errorf("%w: exchange failed", types.ErrAuth))

	result := service.Search(context.Background(), types.Destination{City: "Paris"})

	assert.Equal(t, types.StatusError, result.Status)
	assert.Empty(t, result.Data)
	assert.NotEmpty(t, result.Error)
}

func TestStayWindow(t *testing.T) {
	service := newService(new(MockGateway))
	checkIn, checkOut := service.stayWindow()
	assert.Equal(t, "2026-03-08", checkIn)
	assert.Equal(t, "2026-03-09", checkOut)
}
