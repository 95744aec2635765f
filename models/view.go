package models

import "goflare.io/storefront/models/enum"

// CartRow is one painted row of the cart table.
type CartRow struct {
	Name      string  `json:"name"`
	Quantity  uint64  `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// CartView is everything the cart page needs to paint.
type CartView struct {
	Rows  []CartRow `json:"rows"`
	Total float64   `json:"total"`
}

// SummaryRow is one labeled amount on the checkout summary.
type SummaryRow struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// OrderSummary is the derived checkout view. It is recomputed from
// the cart on every render and never persisted.
type OrderSummary struct {
	Rows        []SummaryRow        `json:"rows"`
	Option      enum.DeliveryOption `json:"option"`
	Subtotal    float64             `json:"subtotal"`
	DeliveryFee float64             `json:"delivery_fee"`
	Total       float64             `json:"total"`
}
