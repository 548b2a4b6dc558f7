package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/voyago/voyago/app/observability/metrics"
	"github.com/voyago/voyago/internal/api"
	"github.com/voyago/voyago/internal/types"
)

// sessionHeader carries the opaque session id owning the itinerary. A fresh
// id is issued when the client does not send one.
const sessionHeader = "X-Session-ID"

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

// Add handles POST /itinerary/items.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Add")
	defer span.End()

	l := h.logger.With(slog.String("method", "Add"))

	var item types.TripItem
	if err := api.DecodeJSONBody(w, r, &item); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := h.session(w, r)
	err := h.service.Add(ctx, sessionID, item)
	switch {
	case errors.Is(err, types.ErrDuplicateItem):
		// A duplicate is a user notice, not a failure
		api.ErrorResponse(w, r, http.StatusConflict, "This item is already in your itinerary")
		return
	case errors.Is(err, types.ErrInvalidItem):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		l.ErrorContext(ctx, "Failed to add trip item", slog.Any("error", err))
		span.SetStatus(codes.Error, "Add failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add item")
		return
	}

	metrics.Get().ItineraryMutationsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("op", "add")))
	api.WriteJSONResponse(w, r, http.StatusCreated, h.service.Get(ctx, sessionID))
}

// Remove handles DELETE /itinerary/items/{id}. The optional type query
// parameter narrows removal to one variant; by default removal matches by
// id alone.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Remove")
	defer span.End()

	id := chi.URLParam(r, "id")
	if id == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "id is required")
		return
	}

	itemType := types.TripItemType(r.URL.Query().Get("type"))
	if itemType != "" && !itemType.Valid() {
		api.ErrorResponse(w, r, http.StatusBadRequest, "unknown item type")
		return
	}

	sessionID := h.session(w, r)
	removed := h.service.Remove(ctx, sessionID, id, itemType)

	metrics.Get().ItineraryMutationsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("op", "remove")))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"removed":   removed,
		"itinerary": h.service.Get(ctx, sessionID),
	})
}

// Get handles GET /itinerary.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Get")
	defer span.End()

	sessionID := h.session(w, r)
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Get(ctx, sessionID))
}

// session returns the request's session id, issuing and echoing a fresh one
// when the header is absent.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		w.Header().Set(sessionHeader, id)
		return id
	}
	id := uuid.NewString()
	w.Header().Set(sessionHeader, id)
	return id
}
