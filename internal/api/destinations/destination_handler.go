package destinations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

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

// Search handles GET /destinations?q=... and returns the provenance-tagged
// destination list.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationHandler").Start(r.Context(), "Search")
	defer span.End()

	l := h.logger.With(slog.String("method", "Search"))

	query := r.URL.Query().Get("q")
	l.InfoContext(ctx, "Searching destinations", slog.String("query", query))

	result := h.service.Search(ctx, query)
	span.SetStatus(codes.Ok, "Destinations returned")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// Get handles GET /destinations/{city} and returns the selected destination.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationHandler").Start(r.Context(), "Get")
	defer span.End()

	city := chi.URLParam(r, "city")
	if city == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "city is required")
		return
	}

	destination := h.service.Lookup(ctx, city)
	api.WriteJSONResponse(w, r, http.StatusOK, destination)
}
