package metrics

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	GatewayCallsTotal       metric.Int64Counter
	GatewayDurationSeconds  metric.Float64Histogram
	FallbackServingsTotal   metric.Int64Counter
	TokenExchangesTotal     metric.Int64Counter
	ItineraryMutationsTotal metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("VoyagoAPI")
		var err error
		m := &AppMetrics{}

		m.GatewayCallsTotal, err = meter.Int64Counter(
			"gateway_calls_total",
			metric.WithDescription("Total number of outbound provider calls, by provider and outcome"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create gateway_calls_total: %v", err)
		}

		m.GatewayDurationSeconds, err = meter.Float64Histogram(
			"gateway_duration_seconds",
			metric.WithDescription("Duration of outbound provider calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create gateway_duration_seconds: %v", err)
		}

		m.FallbackServingsTotal, err = meter.Int64Counter(
			"fallback_servings_total",
			metric.WithDescription("Total number of tab results served from sample data"),
			metric.WithUnit("{result}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create fallback_servings_total: %v", err)
		}

		m.TokenExchangesTotal, err = meter.Int64Counter(
			"token_exchanges_total",
			metric.WithDescription("Total number of credential exchange calls against the travel provider"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create token_exchanges_total: %v", err)
		}

		m.ItineraryMutationsTotal, err = meter.Int64Counter(
			"itinerary_mutations_total",
			metric.WithDescription("Total number of itinerary add/remove operations"),
			metric.WithUnit("{operation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_mutations_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics.Get called before InitAppMetrics")
	}
	return appMetrics
}

// ObserveGatewayCall records one outbound provider call: the call counter and
// the duration histogram, both tagged with provider and outcome.
func ObserveGatewayCall(ctx context.Context, provider string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("outcome", outcome),
	)
	m := Get()
	m.GatewayCallsTotal.Add(ctx, 1, attrs)
	m.GatewayDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
}
