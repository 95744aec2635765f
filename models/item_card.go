package models

// ItemCard is one entry on the menu page.
type ItemCard struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Restaurant  string  `json:"restaurant"`
}

func (c *ItemCard) Selected() *SelectedItem {
	return &SelectedItem{
		Name:        c.Name,
		Price:       c.Price,
		Description: c.Description,
		Image:       c.Image,
	}
}
