package hotels

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/voyago/voyago/app/amadeus"
	"github.com/voyago/voyago/internal/api/fetch"
	"github.com/voyago/voyago/internal/sample"
	"github.com/voyago/voyago/internal/types"
)

// checkInLeadDays is how far out the 1-night stay window starts.
const checkInLeadDays = 7

// Gateway is the hotel-search side of the travel provider.
type Gateway interface {
	SearchHotels(ctx context.Context, cityCode, checkIn, checkOut string) ([]types.HotelOffer, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the hotels tab surface.
type Service interface {
	Search(ctx context.Context, dest types.Destination) types.TabResult[[]types.HotelOffer]
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger      *slog.Logger
	gateway     Gateway
	coordinator *fetch.Coordinator
	now         func() time.Time
}

// NewService creates a new hotel service instance.
func NewService(gateway Gateway, coordinator *fetch.Coordinator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		gateway:     gateway,
		coordinator: coordinator,
		now:         time.Now,
	}
}

// Search runs the hotels tab state machine for a destination. The fallback
// path uses the same stay window the live path would have requested, so
// sample hotels carry real dates.
func (s *ServiceImpl) Search(ctx context.Context, dest types.Destination) types.TabResult[[]types.HotelOffer] {
	ctx, span := otel.Tracer("HotelService").Start(ctx, "Search")
	defer span.End()

	code := amadeus.ResolveCode(dest.City, amadeus.CodeCity, dest.CityCode)
	span.SetAttributes(attribute.String("city", dest.City), attribute.String("code", code))

	l := s.logger.With(slog.String("method", "Search"), slog.String("city", dest.City), slog.String("code", code))

	return fetch.Tab(ctx, s.coordinator, fetch.Key(dest.City, "hotels"), func(ctx context.Context) types.TabResult[[]types.HotelOffer] {
		checkIn, checkOut := s.stayWindow()

		hotels, err := s.gateway.SearchHotels(ctx, code, checkIn, checkOut)
		if err != nil {
			l.ErrorContext(ctx, "Hotel search failed", slog.Any("error", err))
			return types.Failed[[]types.HotelOffer]("Unable to load hotel data")
		}
		if len(hotels) == 0 {
			l.InfoContext(ctx, "No live hotels, serving sample data")
			return types.Fallback(sample.Hotels(dest.City, checkIn, checkOut))
		}

		l.InfoContext(ctx, "Serving live hotels", slog.Int("count", len(hotels)))
		return types.Live(hotels)
	})
}

// stayWindow returns the fixed 1-night window starting checkInLeadDays out.
func (s *ServiceImpl) stayWindow() (string, string) {
	now := s.now()
	return now.AddDate(0, 0, checkInLeadDays).Format("2006-01-02"),
		now.AddDate(0, 0, checkInLeadDays+1).Format("2006-01-02")
}
