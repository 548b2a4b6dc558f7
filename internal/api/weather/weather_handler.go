package weather

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/voyago/voyago/app/observability/metrics"
	"github.com/voyago/voyago/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Report handles GET /destinations/{city}/weather and returns the combined
// current-conditions and forecast payload.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WeatherHandler").Start(r.Context(), "Report")
	defer span.End()

	city := chi.URLParam(r, "city")
	if city == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "city is required")
		return
	}

	result := h.service.Report(ctx, city)
	if result.IsFallback {
		metrics.Get().FallbackServingsTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("tab", "weather")))
	}
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
