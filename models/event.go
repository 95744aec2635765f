package models

import (
	"time"

	"goflare.io/storefront/models/enum"
)

// CartEvent is published after a successful cart mutation. Delivery is
// fire-and-forget; the cart itself never depends on the outcome.
type CartEvent struct {
	ID         string             `json:"id"`
	Type       enum.CartEventType `json:"type"`
	Item       *LineItem          `json:"item,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}
