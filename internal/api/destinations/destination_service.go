package destinations

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/voyago/voyago/internal/sample"
	"github.com/voyago/voyago/internal/types"
)

// Gateway is the city-search side of the travel provider.
type Gateway interface {
	SearchCities(ctx context.Context, keyword string) ([]types.Destination, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the destination search surface consumed by the UI.
type Service interface {
	Search(ctx context.Context, query string) types.TabResult[[]types.Destination]
	Lookup(ctx context.Context, city string) types.Destination
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger  *slog.Logger
	gateway Gateway
}

// NewService creates a new destination service instance.
func NewService(gateway Gateway, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		gateway: gateway,
	}
}

// Search returns live city-search results when the provider has any, and
// otherwise filters the static seed list by the query. Destination search
// always has something to serve, so even a failed credential exchange
// degrades to the seed list here instead of an error state.
func (s *ServiceImpl) Search(ctx context.Context, query string) types.TabResult[[]types.Destination] {
	ctx, span := otel.Tracer("DestinationService").Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	l := s.logger.With(slog.String("method", "Search"), slog.String("query", query))

	query = strings.TrimSpace(query)
	if query == "" {
		l.DebugContext(ctx, "Empty query, serving seed list")
		return types.Fallback(sample.Destinations())
	}

	live, err := s.gateway.SearchCities(ctx, query)
	if err != nil {
		l.WarnContext(ctx, "City search unavailable, serving seed list", slog.Any("error", err))
	} else if len(live) > 0 {
		l.InfoContext(ctx, "Serving live city results", slog.Int("count", len(live)))
		return types.Live(live)
	}

	filtered := filterSeeds(query)
	l.InfoContext(ctx, "Serving seed city results", slog.Int("count", len(filtered)))
	return types.Fallback(filtered)
}

// Lookup resolves a city name to its Destination. Seed entries win; unknown
// cities get a synthesized Destination so tab endpoints work for any live
// search result the client selected.
func (s *ServiceImpl) Lookup(ctx context.Context, city string) types.Destination {
	_, span := otel.Tracer("DestinationService").Start(ctx, "Lookup")
	defer span.End()

	for _, d := range sample.Destinations() {
		if strings.EqualFold(d.City, city) {
			return d
		}
	}
	return types.Destination{
		ID:          "dest-" + strings.ToLower(strings.ReplaceAll(city, " ", "-")),
		City:        city,
		Image:       fmt.Sprintf("https://source.unsplash.com/800x600/?%s,city", url.QueryEscape(city)),
		Attractions: []string{},
		Description: fmt.Sprintf("Explore %s", city),
	}
}

func filterSeeds(query string) []types.Destination {
	q := strings.ToLower(query)
	filtered := make([]types.Destination, 0)
	for _, d := range sample.Destinations() {
		if strings.Contains(strings.ToLower(d.City), q) || strings.Contains(strings.ToLower(d.Country), q) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
