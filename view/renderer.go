// Package view derives the paintable cart and checkout views from a
// cart snapshot. Everything here is pure: no state, no storage.
package view

import (
	"fmt"
	"math"

	"goflare.io/storefront/config"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Renderer computes derived views. It holds only the fixed delivery
// fee table; methods are referentially transparent given their inputs.
type Renderer struct {
	fees config.DeliveryConfig
}

func NewRenderer(fees config.DeliveryConfig) *Renderer {
	return &Renderer{fees: fees}
}

// CartView builds the cart table. Line totals are rounded per row for
// display; the grand total is rounded once over the unrounded sum so
// rounding error never compounds across lines.
func (r *Renderer) CartView(items []models.LineItem) models.CartView {
	rows := make([]models.CartRow, 0, len(items))
	var total float64
	for _, item := range items {
		line := item.Price * float64(item.Quantity)
		rows = append(rows, models.CartRow{
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: round2(line),
		})
		total += line
	}
	return models.CartView{Rows: rows, Total: round2(total)}
}

// OrderSummary builds the checkout summary for a delivery selection.
// Unknown options are charged the standard fee, never an error.
func (r *Renderer) OrderSummary(items []models.LineItem, option enum.DeliveryOption) models.OrderSummary {
	rows := make([]models.SummaryRow, 0, len(items))
	var subtotal float64
	for _, item := range items {
		line := item.Price * float64(item.Quantity)
		rows = append(rows, models.SummaryRow{
			Label:  fmt.Sprintf("%s (x%d)", item.Name, item.Quantity),
			Amount: round2(line),
		})
		subtotal += line
	}

	fee := r.fees.Fee(option)
	return models.OrderSummary{
		Rows:        rows,
		Option:      option,
		Subtotal:    round2(subtotal),
		DeliveryFee: fee,
		Total:       round2(subtotal + fee),
	}
}

// round2 rounds half-up to two decimals, the monetary display policy.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
