package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/voyago/voyago/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the itinerary operations. Itineraries live in memory for
// the lifetime of the process, keyed by session id; there is no persistence.
type Service interface {
	Add(ctx context.Context, sessionID string, item types.TripItem) error
	Remove(ctx context.Context, sessionID, id string, itemType types.TripItemType) int
	Get(ctx context.Context, sessionID string) types.Itinerary
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string][]types.TripItem
}

// NewService creates a new itinerary service instance.
func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		sessions: make(map[string][]types.TripItem),
	}
}

// Add appends an item to the session's itinerary, preserving insertion
// order. An item whose (id, type) key is already present returns
// types.ErrDuplicateItem and leaves the sequence unchanged. Items failing
// validation return types.ErrInvalidItem.
func (s *ServiceImpl) Add(ctx context.Context, sessionID string, item types.TripItem) error {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Add")
	defer span.End()
	span.SetAttributes(attribute.String("item.id", item.ID), attribute.String("item.type", string(item.Type)))

	l := s.logger.With(slog.String("method", "Add"), slog.String("item_id", item.ID))

	if err := validate(item); err != nil {
		l.WarnContext(ctx, "Rejected invalid trip item", slog.Any("error", err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.sessions[sessionID] {
		if existing.Key() == item.Key() {
			l.InfoContext(ctx, "Duplicate trip item", slog.String("type", string(item.Type)))
			return types.ErrDuplicateItem
		}
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], item)

	l.InfoContext(ctx, "Trip item added", slog.Int("count", len(s.sessions[sessionID])))
	return nil
}

// Remove drops items matching id from the session's itinerary and returns
// how many were removed. Matching is by id alone unless itemType is
// non-empty, in which case it narrows to that variant. Removing an unknown
// id is a no-op.
func (s *ServiceImpl) Remove(ctx context.Context, sessionID, id string, itemType types.TripItemType) int {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Remove")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	kept := items[:0:0]
	for _, item := range items {
		if item.ID == id && (itemType == "" || item.Type == itemType) {
			continue
		}
		kept = append(kept, item)
	}
	removed := len(items) - len(kept)
	s.sessions[sessionID] = kept

	s.logger.InfoContext(ctx, "Trip items removed",
		slog.String("method", "Remove"), slog.String("item_id", id), slog.Int("removed", removed))
	return removed
}

// Get returns the session's itinerary with the total recomputed from the
// current sequence.
func (s *ServiceImpl) Get(ctx context.Context, sessionID string) types.Itinerary {
	_, span := otel.Tracer("ItineraryService").Start(ctx, "Get")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]types.TripItem, len(s.sessions[sessionID]))
	copy(items, s.sessions[sessionID])

	total := 0
	for _, item := range items {
		total += item.Price
	}
	return types.Itinerary{Items: items, Total: total, Count: len(items)}
}

func validate(item types.TripItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: missing id", types.ErrInvalidItem)
	}
	if !item.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", types.ErrInvalidItem, item.Type)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: negative price", types.ErrInvalidItem)
	}
	return nil
}
