package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/voyago/voyago/app/amadeus"
	appLogger "github.com/voyago/voyago/app/logger"
	"github.com/voyago/voyago/app/observability/metrics"
	"github.com/voyago/voyago/app/openweather"
	"github.com/voyago/voyago/app/tracer"
	"github.com/voyago/voyago/config"
	"github.com/voyago/voyago/internal/api/destinations"
	"github.com/voyago/voyago/internal/api/fetch"
	"github.com/voyago/voyago/internal/api/flights"
	"github.com/voyago/voyago/internal/api/hotels"
	"github.com/voyago/voyago/internal/api/itinerary"
	"github.com/voyago/voyago/internal/api/weather"
	api "github.com/voyago/voyago/internal/router"
)

func main() {
	// --- Initial Loading ---
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	// --- Logger Setup ---
	logger := setupLogger()
	slog.SetDefault(logger)

	// --- Observability ---
	tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port)
	metrics.InitAppMetrics()

	// --- Application Context & Shutdown ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Provider Clients ---
	amadeusClient := amadeus.New(
		cfg.Providers.Amadeus.BaseURL,
		cfg.Providers.Amadeus.ClientID,
		cfg.Providers.Amadeus.ClientSecret,
		cfg.Providers.Amadeus.Timeout,
		logger,
	)
	weatherClient := openweather.New(
		cfg.Providers.OpenWeather.BaseURL,
		cfg.Providers.OpenWeather.APIKey,
		cfg.Providers.OpenWeather.Timeout,
		logger,
	)
	if cfg.Providers.OpenWeather.APIKey == "" {
		logger.Warn("OpenWeather API key not configured, weather will serve sample data")
	}

	// --- Dependency Injection ---
	coordinator := fetch.NewCoordinator(cfg.Aggregation.FetchTimeout, cfg.Aggregation.ResultTTL)

	destinationService := destinations.NewService(amadeusClient, logger)
	destinationHandler := destinations.NewHandler(destinationService, logger)

	flightService := flights.NewService(amadeusClient, coordinator, logger)
	flightHandler := flights.NewHandler(flightService, destinationService, logger)

	hotelService := hotels.NewService(amadeusClient, coordinator, logger)
	hotelHandler := hotels.NewHandler(hotelService, destinationService, logger)

	weatherService := weather.NewService(weatherClient, coordinator, logger)
	weatherHandler := weather.NewHandler(weatherService, logger)

	itineraryService := itinerary.NewService(logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)

	// --- Router Setup ---
	mainRouter := api.SetupRouter(&api.Config{
		DestinationHandler: destinationHandler,
		FlightHandler:      flightHandler,
		HotelHandler:       hotelHandler,
		WeatherHandler:     weatherHandler,
		ItineraryHandler:   itineraryHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// --- Start Server Goroutine ---
	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	// --- Wait for Shutdown Signal ---
	<-ctx.Done()

	// --- Graceful Shutdown ---
	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug, // More verbose in dev
			TimeFormat: time.Kitchen,
			AddSource:  true, // Show file:line
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
