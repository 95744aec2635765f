package models

// SelectedItem is the catalog-to-detail-page handoff record. It is
// written when the shopper opens a detail view and consumed once on
// the detail page load.
type SelectedItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// UnknownSelectedItem is the fallback detail state rendered when the
// handoff slot is empty or unreadable.
func UnknownSelectedItem() *SelectedItem {
	return &SelectedItem{
		Name:        "Unknown Item",
		Description: "No description available",
	}
}
