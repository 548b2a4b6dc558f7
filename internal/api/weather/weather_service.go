package weather

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/voyago/voyago/internal/api/fetch"
	"github.com/voyago/voyago/internal/sample"
	"github.com/voyago/voyago/internal/types"
)

// Gateway is the weather provider surface.
type Gateway interface {
	CurrentWeather(ctx context.Context, city string) (types.WeatherSnapshot, error)
	Forecast(ctx context.Context, city string) ([]types.ForecastDay, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the weather tab surface.
type Service interface {
	Report(ctx context.Context, city string) types.TabResult[types.WeatherReport]
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger      *slog.Logger
	gateway     Gateway
	coordinator *fetch.Coordinator
}

// NewService creates a new weather service instance.
func NewService(gateway Gateway, coordinator *fetch.Coordinator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		gateway:     gateway,
		coordinator: coordinator,
	}
}

// Report issues the current-conditions and forecast calls concurrently and
// waits for both before building the tab result. The weather tab is expected
// to always show something, so each half degrades independently to its
// default record; the result is live only when both halves are.
func (s *ServiceImpl) Report(ctx context.Context, city string) types.TabResult[types.WeatherReport] {
	ctx, span := otel.Tracer("WeatherService").Start(ctx, "Report")
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	l := s.logger.With(slog.String("method", "Report"), slog.String("city", city))

	return fetch.Tab(ctx, s.coordinator, fetch.Key(city, "weather"), func(ctx context.Context) types.TabResult[types.WeatherReport] {
		var (
			current     types.WeatherSnapshot
			forecast    []types.ForecastDay
			currentErr  error
			forecastErr error
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			current, currentErr = s.gateway.CurrentWeather(gctx, city)
			return nil
		})
		g.Go(func() error {
			forecast, forecastErr = s.gateway.Forecast(gctx, city)
			return nil
		})
		_ = g.Wait()

		degraded := false
		if currentErr != nil {
			l.WarnContext(ctx, "Current weather unavailable, serving default record", slog.Any("error", currentErr))
			current = sample.Weather()
			degraded = true
		}
		if forecastErr != nil || len(forecast) == 0 {
			if forecastErr != nil {
				l.WarnContext(ctx, "Forecast unavailable, serving default forecast", slog.Any("error", forecastErr))
			}
			forecast = sample.Forecast()
			degraded = true
		}

		report := types.WeatherReport{Current: current, Forecast: forecast}
		if degraded {
			return types.Fallback(report)
		}
		l.InfoContext(ctx, "Serving live weather", slog.Int("forecast_days", len(forecast)))
		return types.Live(report)
	})
}
