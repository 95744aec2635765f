// Package cart owns the authoritative cart list. All mutations go
// through Store; nothing else may touch the backing slice.
package cart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/notify"
	"goflare.io/storefront/storage"
)

// ErrInvalidItem rejects an add with a blank name or a negative or
// NaN price. The cart is left untouched and nothing is persisted.
var ErrInvalidItem = errors.New("cart: invalid item")

// Store is the cart state manager. Insertion order is preserved.
type Store interface {
	// AddItem merges by exact name match: an existing line gains
	// quantity 1 with its price pinned to the first insertion, a new
	// name is appended with quantity 1. The cart is persisted
	// afterward regardless of the save outcome, and an item_added
	// event is published on success.
	AddItem(ctx context.Context, name string, price float64) error

	// RemoveItem drops the line matching name. Absent names are a
	// no-op, not an error. The cart is persisted afterward.
	RemoveItem(ctx context.Context, name string)

	// Clear empties the cart and persists the empty list. Used by the
	// checkout-completion flow.
	Clear(ctx context.Context)

	// Snapshot returns a caller-owned copy of the cart. The internal
	// list is never exposed.
	Snapshot() []models.LineItem
}

var _ Store = (*store)(nil)

type store struct {
	mu      sync.Mutex
	items   []models.LineItem
	backend storage.Store
	events  notify.Publisher
	logger  *zap.Logger
}

// NewStore restores the cart from the persistence backend. A backend
// that cannot produce a readable cart yields an empty one.
func NewStore(ctx context.Context, backend storage.Store, events notify.Publisher, logger *zap.Logger) Store {
	return &store{
		items:   backend.LoadCart(ctx),
		backend: backend,
		events:  events,
		logger:  logger,
	}
}

func (s *store) AddItem(ctx context.Context, name string, price float64) error {
	if name == "" {
		return fmt.Errorf("%w: blank name", ErrInvalidItem)
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: bad price %v for %q", ErrInvalidItem, price, name)
	}

	s.mu.Lock()
	existing := models.FindItem(s.items, name)
	if existing != nil {
		// Price stays pinned to the first insertion.
		existing.Quantity++
	} else {
		s.items = append(s.items, *models.NewLineItem(name, price))
	}
	added := *models.FindItem(s.items, name)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.events.Publish(ctx, enum.CartEventTypeItemAdded, &added)
	return nil
}

func (s *store) RemoveItem(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistLocked(ctx)
}

func (s *store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.events.Publish(ctx, enum.CartEventTypeCartCleared, nil)
}

func (s *store) Snapshot() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneItems(s.items)
}

// persistLocked writes the cart through the backend. A failed save is
// diagnostic only; the in-memory cart stays authoritative for the
// session.
func (s *store) persistLocked(ctx context.Context) {
	if err := s.backend.SaveCart(ctx, s.items); err != nil {
		s.logger.Warn("cart save failed, in-memory state remains authoritative", zap.Error(err))
	}
}
