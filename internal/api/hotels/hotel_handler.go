package hotels

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/voyago/voyago/app/observability/metrics"
	"github.com/voyago/voyago/internal/api"
	"github.com/voyago/voyago/internal/api/destinations"
	"github.com/voyago/voyago/internal/types"
)

type Handler struct {
	logger       *slog.Logger
	service      Service
	destinations destinations.Service
}

func NewHandler(service Service, destinationService destinations.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		destinations: destinationService,
	}
}

// Search handles GET /destinations/{city}/hotels.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("HotelHandler").Start(r.Context(), "Search")
	defer span.End()

	city := chi.URLParam(r, "city")
	if city == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "city is required")
		return
	}

	dest := h.destinations.Lookup(ctx, city)
	if code := r.URL.Query().Get("cityCode"); code != "" {
		dest.CityCode = code
	}

	result := h.service.Search(ctx, dest)
	if result.IsFallback {
		metrics.Get().FallbackServingsTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("tab", "hotels")))
	}
	if result.Status == types.StatusError {
		h.logger.WarnContext(ctx, "Hotels tab in error state", slog.String("city", city))
	}
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
