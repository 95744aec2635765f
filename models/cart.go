package models

// LineItem is one named item in the cart. Name is the unique key
// within a cart; Price is pinned at first insertion.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity uint64  `json:"quantity"`
}

func NewLineItem(name string, price float64) *LineItem {
	return &LineItem{Name: name, Price: price, Quantity: 1}
}

// CloneItems deep-copies a cart so callers can never alias the
// owner's backing slice.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// FindItem returns a pointer into items for the line matching name,
// exact match, or nil. No case or whitespace normalization.
func FindItem(items []LineItem, name string) *LineItem {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}
	return nil
}
