package enum

// SortOrder is a catalog price ordering.
type SortOrder string

const (
	SortOrderRecommended SortOrder = "recommended"
	SortOrderLowToHigh   SortOrder = "low-to-high"
	SortOrderHighToLow   SortOrder = "high-to-low"
)
