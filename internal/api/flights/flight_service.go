package flights

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

// defaultOrigin is the fixed departure airport for flight search.
const defaultOrigin = "LHR"

// departureLeadDays is how far out the searched departure date lies.
const departureLeadDays = 7

// Gateway is the flight-offer side of the travel provider.
type Gateway interface {
	SearchFlights(ctx context.Context, origin, destination, departureDate string, adults int) ([]types.FlightOffer, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the flights tab surface.
type Service interface {
	Search(ctx context.Context, dest types.Destination) types.TabResult[[]types.FlightOffer]
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger      *slog.Logger
	gateway     Gateway
	coordinator *fetch.Coordinator
	now         func() time.Time
}

// NewService creates a new flight service instance.
func NewService(gateway Gateway, coordinator *fetch.Coordinator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		gateway:     gateway,
		coordinator: coordinator,
		now:         time.Now,
	}
}

// Search runs the flights tab state machine for a destination: resolve the
// airport code, query the provider, serve live offers when any exist, sample
// offers when the result is empty, and the error state when authentication
// fails.
func (s *ServiceImpl) Search(ctx context.Context, dest types.Destination) types.TabResult[[]types.FlightOffer] {
	ctx, span := otel.Tracer("FlightService").Start(ctx, "Search")
	defer span.End()

	code := amadeus.ResolveCode(dest.City, amadeus.CodeAirport, dest.CityCode)
	span.SetAttributes(attribute.String("city", dest.City), attribute.String("code", code))

	l := s.logger.With(slog.String("method", "Search"), slog.String("city", dest.City), slog.String("code", code))

	return fetch.Tab(ctx, s.coordinator, fetch.Key(dest.City, "flights"), func(ctx context.Context) types.TabResult[[]types.FlightOffer] {
		departureDate := s.now().AddDate(0, 0, departureLeadDays).Format("2006-01-02")

		offers, err := s.gateway.SearchFlights(ctx, defaultOrigin, code, departureDate, 1)
		if err != nil {
			l.ErrorContext(ctx, "Flight search failed", slog.Any("error", err))
			return types.Failed[[]types.FlightOffer]("Unable to load flights")
		}
		if len(offers) == 0 {
			l.InfoContext(ctx, "No live flights, serving sample data")
			return types.Fallback(sample.Flights(code))
		}

		l.InfoContext(ctx, "Serving live flights", slog.Int("count", len(offers)))
		return types.Live(offers)
	})
}
