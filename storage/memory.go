package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

var _ Store = (*memoryStore)(nil)

// memoryStore keeps the slots in process memory. It runs the same
// codec as the Redis store so round-trip behavior matches, and it is
// the substitute backend for tests.
type memoryStore struct {
	mu       sync.Mutex
	cart     []byte
	selected []byte
	logger   *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) Store {
	return &memoryStore{logger: logger}
}

func (s *memoryStore) LoadCart(_ context.Context) []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil
	}
	return decodeCart(s.cart, s.logger)
}

func (s *memoryStore) SaveCart(_ context.Context, items []models.LineItem) error {
	data, err := encodeCart(items)
	if err != nil {
		return fmt.Errorf("%w: encode cart: %v", ErrPersistence, err)
	}
	s.mu.Lock()
	s.cart = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) SaveSelectedItem(_ context.Context, item *models.SelectedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%w: encode selected item: %v", ErrPersistence, err)
	}
	s.mu.Lock()
	s.selected = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) TakeSelectedItem(_ context.Context) (*models.SelectedItem, error) {
	s.mu.Lock()
	data := s.selected
	s.selected = nil
	s.mu.Unlock()

	if data == nil {
		return nil, nil
	}
	var item models.SelectedItem
	if err := json.Unmarshal(data, &item); err != nil {
		s.logger.Warn("discarding undecodable selected item", zap.Error(err))
		return nil, nil
	}
	return &item, nil
}
