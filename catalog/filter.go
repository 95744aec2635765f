package catalog

import (
	"sort"
	"strings"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// FilterAll matches every category or restaurant.
const FilterAll = "All"

// Filter narrows the visible item cards. Zero values behave like
// FilterAll / an empty search.
type Filter struct {
	Category   string
	Restaurant string
	Query      string
}

// Matches reports whether a card passes every predicate. Category and
// restaurant are exact matches; the query is a case-insensitive
// substring over name and description.
func (f Filter) Matches(card *models.ItemCard) bool {
	if f.Category != "" && f.Category != FilterAll && card.Category != f.Category {
		return false
	}
	if f.Restaurant != "" && f.Restaurant != FilterAll && card.Restaurant != f.Restaurant {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(card.Name), q) ||
		strings.Contains(strings.ToLower(card.Description), q)
}

// Apply returns the cards passing the filter, in their original order.
func Apply(cards []*models.ItemCard, f Filter) []*models.ItemCard {
	out := make([]*models.ItemCard, 0, len(cards))
	for _, card := range cards {
		if f.Matches(card) {
			out = append(out, card)
		}
	}
	return out
}

// SortByPrice returns a new slice ordered by price. Recommended keeps
// the incoming order; the sort is stable so equal prices keep their
// relative positions.
func SortByPrice(cards []*models.ItemCard, order enum.SortOrder) []*models.ItemCard {
	out := make([]*models.ItemCard, len(cards))
	copy(out, cards)

	switch order {
	case enum.SortOrderLowToHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case enum.SortOrderHighToLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}
