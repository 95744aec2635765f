package enum

// CartEventType identifies a cart lifecycle event.
type CartEventType string

const (
	CartEventTypeItemAdded   CartEventType = "item_added"
	CartEventTypeCartCleared CartEventType = "cart_cleared"
	CartEventTypeOrderPlaced CartEventType = "order_placed"
)
