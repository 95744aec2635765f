package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

func menu() []*models.ItemCard {
	return []*models.ItemCard{
		{Name: "Burger", Price: 5.00, Description: "Char-grilled beef", Category: "Mains", Restaurant: "Grill House"},
		{Name: "Fries", Price: 2.50, Description: "Crispy potato fries", Category: "Sides", Restaurant: "Grill House"},
		{Name: "Sushi Set", Price: 12.00, Description: "Assorted nigiri", Category: "Mains", Restaurant: "Tokyo Bay"},
		{Name: "Miso Soup", Price: 2.50, Description: "Classic starter", Category: "Sides", Restaurant: "Tokyo Bay"},
	}
}

func names(cards []*models.ItemCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name
	}
	return out
}

func TestApply_AllMatchesEverything(t *testing.T) {
	got := Apply(menu(), Filter{Category: FilterAll, Restaurant: FilterAll})
	assert.Len(t, got, 4)

	// Zero values behave the same as the All sentinel.
	got = Apply(menu(), Filter{})
	assert.Len(t, got, 4)
}

func TestApply_CategoryAndRestaurantAreExact(t *testing.T) {
	got := Apply(menu(), Filter{Category: "Mains", Restaurant: "Tokyo Bay"})
	assert.Equal(t, []string{"Sushi Set"}, names(got))

	got = Apply(menu(), Filter{Category: "mains"})
	assert.Empty(t, got, "category matching is case-sensitive")
}

func TestApply_QuerySearchesNameAndDescription(t *testing.T) {
	got := Apply(menu(), Filter{Query: "FRIES"})
	assert.Equal(t, []string{"Fries"}, names(got))

	got = Apply(menu(), Filter{Query: "classic"})
	assert.Equal(t, []string{"Miso Soup"}, names(got))

	got = Apply(menu(), Filter{Query: "tofu"})
	assert.Empty(t, got)
}

func TestApply_PreservesOriginalOrder(t *testing.T) {
	got := Apply(menu(), Filter{Restaurant: "Grill House"})
	assert.Equal(t, []string{"Burger", "Fries"}, names(got))
}

func TestSortByPrice(t *testing.T) {
	low := SortByPrice(menu(), enum.SortOrderLowToHigh)
	require.Len(t, low, 4)
	// Stable: Fries and Miso Soup share a price and keep their order.
	assert.Equal(t, []string{"Fries", "Miso Soup", "Burger", "Sushi Set"}, names(low))

	high := SortByPrice(menu(), enum.SortOrderHighToLow)
	assert.Equal(t, []string{"Sushi Set", "Burger", "Fries", "Miso Soup"}, names(high))
}

func TestSortByPrice_RecommendedKeepsOrderAndCopies(t *testing.T) {
	original := menu()
	got := SortByPrice(original, enum.SortOrderRecommended)

	assert.Equal(t, names(original), names(got))

	// The input slice is never reordered in place.
	_ = SortByPrice(original, enum.SortOrderLowToHigh)
	assert.Equal(t, []string{"Burger", "Fries", "Sushi Set", "Miso Soup"}, names(original))
}
