// Package storage is the serialization boundary for the persisted
// storefront state: the cart slot and the selected-item handoff slot.
// Both are single full-overwrite records, not append logs; the last
// writer wins across sessions.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

// ErrPersistence marks a storage backend read/write failure. The
// failure is diagnostic only; callers keep their in-memory state
// authoritative for the session.
var ErrPersistence = errors.New("storage: persistence failure")

// Store owns the persisted slots. Load never fails past this
// boundary: missing or corrupt data comes back as an empty cart.
type Store interface {
	// LoadCart reads the persisted cart. Missing, corrupt, or
	// unreadable data yields an empty cart.
	LoadCart(ctx context.Context) []models.LineItem

	// SaveCart overwrites the cart slot. On failure the previously
	// persisted state is left untouched.
	SaveCart(ctx context.Context, items []models.LineItem) error

	// SaveSelectedItem writes the detail-page handoff slot.
	SaveSelectedItem(ctx context.Context, item *models.SelectedItem) error

	// TakeSelectedItem consumes the handoff slot. An absent or
	// unreadable slot returns (nil, nil).
	TakeSelectedItem(ctx context.Context) (*models.SelectedItem, error)
}

// persistedItem mirrors the stored cart record shape. Pointer fields
// distinguish absent required fields from zero values; unknown fields
// are ignored by the decoder.
type persistedItem struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *float64 `json:"quantity"`
}

// decodeCart decodes a persisted cart payload. A wholly unparsable
// payload discards the list; an entry missing a required field or
// carrying an out-of-range value is discarded individually, keeping
// the rest.
func decodeCart(data []byte, logger *zap.Logger) []models.LineItem {
	var raw []persistedItem
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("discarding undecodable cart payload", zap.Error(err))
		return nil
	}

	items := make([]models.LineItem, 0, len(raw))
	for _, e := range raw {
		if e.Name == "" || e.Price == nil || *e.Price < 0 ||
			e.Quantity == nil || *e.Quantity < 1 || math.Trunc(*e.Quantity) != *e.Quantity {
			logger.Warn("discarding malformed cart entry", zap.String("name", e.Name))
			continue
		}
		items = append(items, models.LineItem{
			Name:     e.Name,
			Price:    *e.Price,
			Quantity: uint64(*e.Quantity),
		})
	}
	return items
}

func encodeCart(items []models.LineItem) ([]byte, error) {
	if items == nil {
		items = []models.LineItem{}
	}
	return json.Marshal(items)
}
