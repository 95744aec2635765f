package enum

// DeliveryOption is a named shipping tier.
type DeliveryOption string

const (
	DeliveryOptionStandard DeliveryOption = "standard"
	DeliveryOptionExpress  DeliveryOption = "express"
	DeliveryOptionEco      DeliveryOption = "eco"
)

// ParseDeliveryOption maps a raw selection to a known tier. Anything
// unrecognized, including the empty string, falls back to standard.
func ParseDeliveryOption(raw string) DeliveryOption {
	switch DeliveryOption(raw) {
	case DeliveryOptionStandard, DeliveryOptionExpress, DeliveryOptionEco:
		return DeliveryOption(raw)
	default:
		return DeliveryOptionStandard
	}
}
