package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

type countingProcessor struct {
	mu     sync.Mutex
	events []*models.CartEvent
	done   chan struct{}
}

func (p *countingProcessor) ProcessEvent(_ context.Context, event *models.CartEvent) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	p.done <- struct{}{}
	return nil
}

func TestWorkerPool_ProcessesSubmittedEvents(t *testing.T) {
	processor := &countingProcessor{done: make(chan struct{}, 3)}
	wp := NewWorkerPool(2, processor, zap.NewNop())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		wp.Submit(ctx, &models.CartEvent{ID: "evt", Type: enum.CartEventTypeItemAdded})
	}

	for i := 0; i < 3; i++ {
		select {
		case <-processor.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for event processing")
		}
	}

	processor.mu.Lock()
	defer processor.mu.Unlock()
	assert.Len(t, processor.events, 3)
}

func TestWorkerPool_ShutdownReturnsAfterDrainingTasks(t *testing.T) {
	processor := &countingProcessor{done: make(chan struct{}, 2)}
	wp := NewWorkerPool(2, processor, zap.NewNop())

	ctx := context.Background()
	wp.Submit(ctx, &models.CartEvent{ID: "evt-1", Type: enum.CartEventTypeItemAdded})
	wp.Submit(ctx, &models.CartEvent{ID: "evt-2", Type: enum.CartEventTypeCartCleared})

	stopped := make(chan struct{})
	go func() {
		wp.Shutdown()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return after the task queue drained")
	}

	// Everything submitted before Shutdown was still processed.
	processor.mu.Lock()
	defer processor.mu.Unlock()
	assert.Len(t, processor.events, 2)
}

func TestWorkerPool_ShutdownWithEmptyQueue(t *testing.T) {
	wp := NewWorkerPool(3, &countingProcessor{done: make(chan struct{}, 1)}, zap.NewNop())

	stopped := make(chan struct{})
	go func() {
		wp.Shutdown()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return for an idle pool")
	}
}

func TestRecorder_KeepsPublishOrder(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	r.Publish(ctx, enum.CartEventTypeItemAdded, &models.LineItem{Name: "Burger", Price: 5.00, Quantity: 1})
	r.Publish(ctx, enum.CartEventTypeCartCleared, nil)

	events := r.Events()
	require.Len(t, events, 2)
	assert.Equal(t, enum.CartEventTypeItemAdded, events[0].Type)
	assert.Equal(t, enum.CartEventTypeCartCleared, events[1].Type)
	assert.NotEmpty(t, events[0].ID)
	assert.NotEqual(t, events[0].ID, events[1].ID)
}
