package itinerary

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago/internal/types"
)

const session = "test-session"

func flightItem() types.TripItem {
	return types.TripItem{
		ID:    "flight-1",
		Type:  types.TripItemFlight,
		Name:  "BA - LHR to CDG",
		Price: 350,
	}
}

func hotelItem() types.TripItem {
	return types.TripItem{
		ID:    "hotel-1",
		Type:  types.TripItemHotel,
		Name:  "Hotel Le Paris",
		Price: 120,
	}
}

func TestAddAndTotal(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, session, flightItem()))
	require.NoError(t, service.Add(ctx, session, hotelItem()))

	itinerary := service.Get(ctx, session)
	assert.Equal(t, 2, itinerary.Count)
	assert.Equal(t, 470, itinerary.Total)
	// Insertion order is preserved
	assert.Equal(t, "flight-1", itinerary.Items[0].ID)
	assert.Equal(t, "hotel-1", itinerary.Items[1].ID)
}

func TestAddDuplicateRejected(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, session, flightItem()))

	err := service.Add(ctx, session, flightItem())
	assert.ErrorIs(t, err, types.ErrDuplicateItem)
	assert.Equal(t, 1, service.Get(ctx, session).Count)
}

func TestAddSameIDDifferentTypeAllowed(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	// Identity is the (id, type) pair, so the same id under another type is
	// a distinct trip entry.
	a := flightItem()
	b := flightItem()
	b.Type = types.TripItemActivity

	require.NoError(t, service.Add(ctx, session, a))
	require.NoError(t, service.Add(ctx, session, b))
	assert.Equal(t, 2, service.Get(ctx, session).Count)
}

func TestAddValidation(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	tests := []struct {
		name string
		item types.TripItem
	}{
		{"missing id", types.TripItem{Type: types.TripItemFlight, Price: 100}},
		{"unknown type", types.TripItem{ID: "x", Type: "cruise", Price: 100}},
		{"negative price", types.TripItem{ID: "x", Type: types.TripItemHotel, Price: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, service.Add(ctx, session, tc.item), types.ErrInvalidItem)
		})
	}
	assert.Equal(t, 0, service.Get(ctx, session).Count)
}

func TestRemoveByID(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, session, flightItem()))
	require.NoError(t, service.Add(ctx, session, hotelItem()))

	// Same id under two types: id-only removal drops both
	activity := flightItem()
	activity.Type = types.TripItemActivity
	require.NoError(t, service.Add(ctx, session, activity))

	removed := service.Remove(ctx, session, "flight-1", "")
	assert.Equal(t, 2, removed)

	itinerary := service.Get(ctx, session)
	assert.Equal(t, 1, itinerary.Count)
	assert.Equal(t, 120, itinerary.Total)
}

func TestRemoveTypeScoped(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, session, flightItem()))
	activity := flightItem()
	activity.Type = types.TripItemActivity
	require.NoError(t, service.Add(ctx, session, activity))

	removed := service.Remove(ctx, session, "flight-1", types.TripItemActivity)
	assert.Equal(t, 1, removed)

	itinerary := service.Get(ctx, session)
	require.Equal(t, 1, itinerary.Count)
	assert.Equal(t, types.TripItemFlight, itinerary.Items[0].Type)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, session, flightItem()))

	assert.Equal(t, 0, service.Remove(ctx, session, "nope", ""))
	assert.Equal(t, 1, service.Get(ctx, session).Count)
}

func TestSessionsAreIsolated(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, "session-a", flightItem()))
	require.NoError(t, service.Add(ctx, "session-b", hotelItem()))

	assert.Equal(t, 350, service.Get(ctx, "session-a").Total)
	assert.Equal(t, 120, service.Get(ctx, "session-b").Total)
}

func TestTotalRecomputedAfterMutations(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, session, flightItem()))
	require.NoError(t, service.Add(ctx, session, hotelItem()))
	service.Remove(ctx, session, "flight-1", "")

	assert.Equal(t, 120, service.Get(ctx, session).Total)
}
