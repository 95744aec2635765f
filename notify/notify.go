// Package notify carries cart lifecycle events from the store to
// whoever surfaces them. Delivery is fire-and-forget: the cart never
// waits on, or fails because of, a notification.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nuid"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

const subjectPrefix = "storefront.cart.event"

// Handler processes one delivered cart event.
type Handler func(context.Context, *models.CartEvent) error

// Publisher is the side the cart store sees.
type Publisher interface {
	Publish(ctx context.Context, eventType enum.CartEventType, item *models.LineItem)
}

var _ Publisher = (*EventManager)(nil)

// EventManager publishes cart events over NATS and dispatches
// deliveries to registered handlers.
type EventManager struct {
	natsConn *nats.Conn
	handlers map[enum.CartEventType]Handler
	logger   *zap.Logger
}

func NewEventManager(natsConn *nats.Conn, logger *zap.Logger) *EventManager {
	return &EventManager{
		natsConn: natsConn,
		handlers: make(map[enum.CartEventType]Handler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType enum.CartEventType, handler Handler) {
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType enum.CartEventType) (Handler, bool) {
	handler, exists := em.handlers[eventType]
	return handler, exists
}

// Publish sends a cart event. Failures are logged and swallowed.
func (em *EventManager) Publish(_ context.Context, eventType enum.CartEventType, item *models.LineItem) {
	event := &models.CartEvent{
		ID:         nuid.Next(),
		Type:       eventType,
		Item:       item,
		OccurredAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		em.logger.Error("Failed to marshal cart event", zap.Error(err))
		return
	}

	subject := fmt.Sprintf("%s.%s", subjectPrefix, eventType)
	if err := em.natsConn.Publish(subject, data); err != nil {
		em.logger.Error("Failed to publish cart event",
			zap.String("subject", subject),
			zap.Error(err))
	}
}

// SubscribeToEvents feeds every cart event delivery into the worker
// pool for processing.
func (em *EventManager) SubscribeToEvents(wp *WorkerPool) error {
	_, err := em.natsConn.Subscribe(subjectPrefix+".>", func(msg *nats.Msg) {
		var event models.CartEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			em.logger.Error("Failed to unmarshal cart event", zap.Error(err))
			return
		}

		wp.Submit(context.Background(), &event)
	})

	return err
}
