package notify

import (
	"context"
	"sync"
	"time"

	"github.com/nats-io/nuid"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

var _ Publisher = (*Recorder)(nil)

// Recorder is an in-process Publisher for tests and NATS-less runs.
// It keeps every published event in order.
type Recorder struct {
	mu     sync.Mutex
	events []models.CartEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, eventType enum.CartEventType, item *models.LineItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, models.CartEvent{
		ID:         nuid.Next(),
		Type:       eventType,
		Item:       item,
		OccurredAt: time.Now(),
	})
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []models.CartEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.CartEvent, len(r.events))
	copy(out, r.events)
	return out
}
