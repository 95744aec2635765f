package storefront

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/notify"
)

func (s *service) registerEventHandlers() {
	eventHandlers := map[enum.CartEventType]notify.Handler{
		enum.CartEventTypeItemAdded:   s.handleItemAdded,
		enum.CartEventTypeCartCleared: s.handleCartCleared,
		enum.CartEventTypeOrderPlaced: s.handleOrderPlaced,
	}

	for eventType, handler := range eventHandlers {
		s.eventManager.RegisterHandler(eventType, handler)
	}
}

// handleItemAdded surfaces the lightweight add-to-cart confirmation.
func (s *service) handleItemAdded(_ context.Context, event *models.CartEvent) error {
	if event.Item == nil {
		return fmt.Errorf("item_added event without item")
	}

	s.logger.Info(fmt.Sprintf("%s added to cart!", event.Item.Name),
		zap.String("event_id", event.ID),
		zap.Uint64("quantity", event.Item.Quantity))
	return nil
}

func (s *service) handleCartCleared(_ context.Context, event *models.CartEvent) error {
	s.logger.Info("Cart cleared", zap.String("event_id", event.ID))
	return nil
}

func (s *service) handleOrderPlaced(_ context.Context, event *models.CartEvent) error {
	s.logger.Info("Order placed successfully!", zap.String("event_id", event.ID))
	return nil
}

// ProcessEvent routes a delivered cart event to its handler. Events
// the service has no handler for are an error so the worker pool logs
// them.
func (s *service) ProcessEvent(ctx context.Context, event *models.CartEvent) error {
	handler, exists := s.eventManager.GetHandler(event.Type)
	if !exists {
		return fmt.Errorf("no handler registered for event type: %s", event.Type)
	}

	if err := handler(ctx, event); err != nil {
		s.logger.Error("Failed to handle cart event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return err
	}

	return nil
}
