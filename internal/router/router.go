package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/voyago/voyago/internal/api/destinations"
	"github.com/voyago/voyago/internal/api/flights"
	"github.com/voyago/voyago/internal/api/hotels"
	"github.com/voyago/voyago/internal/api/itinerary"
	"github.com/voyago/voyago/internal/api/weather"
)

// Config contains dependencies needed for the router setup
type Config struct {
	DestinationHandler *destinations.Handler
	FlightHandler      *flights.Handler
	HotelHandler       *hotels.Handler
	WeatherHandler     *weather.Handler
	ItineraryHandler   *itinerary.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session-ID"},
		ExposedHeaders:   []string{"X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Heartbeat/Health check endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/destinations", cfg.DestinationHandler.Search)
		r.Route("/destinations/{city}", func(r chi.Router) {
			r.Get("/", cfg.DestinationHandler.Get)
			r.Get("/flights", cfg.FlightHandler.Search)
			r.Get("/hotels", cfg.HotelHandler.Search)
			r.Get("/weather", cfg.WeatherHandler.Report)
		})

		r.Route("/itinerary", func(r chi.Router) {
			r.Get("/", cfg.ItineraryHandler.Get)
			r.Post("/items", cfg.ItineraryHandler.Add)
			r.Delete("/items/{id}", cfg.ItineraryHandler.Remove)
		})
	})

	return r
}
