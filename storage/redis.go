package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goflare.io/storefront/models"
)

var _ Store = (*redisStore)(nil)

type redisStore struct {
	client          *redis.Client
	cartKey         string
	selectedItemKey string
	logger          *zap.Logger
}

// NewRedisStore returns a Store backed by two Redis keys.
func NewRedisStore(client *redis.Client, cartKey, selectedItemKey string, logger *zap.Logger) Store {
	return &redisStore{
		client:          client,
		cartKey:         cartKey,
		selectedItemKey: selectedItemKey,
		logger:          logger,
	}
}

func (s *redisStore) LoadCart(ctx context.Context) []models.LineItem {
	data, err := s.client.Get(ctx, s.cartKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		s.logger.Warn("failed to read cart slot, starting empty", zap.Error(err))
		return nil
	}
	return decodeCart(data, s.logger)
}

func (s *redisStore) SaveCart(ctx context.Context, items []models.LineItem) error {
	data, err := encodeCart(items)
	if err != nil {
		return fmt.Errorf("%w: encode cart: %v", ErrPersistence, err)
	}
	if err := s.client.Set(ctx, s.cartKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: write cart slot: %v", ErrPersistence, err)
	}
	return nil
}

func (s *redisStore) SaveSelectedItem(ctx context.Context, item *models.SelectedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%w: encode selected item: %v", ErrPersistence, err)
	}
	if err := s.client.Set(ctx, s.selectedItemKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: write selected item slot: %v", ErrPersistence, err)
	}
	return nil
}

func (s *redisStore) TakeSelectedItem(ctx context.Context) (*models.SelectedItem, error) {
	data, err := s.client.GetDel(ctx, s.selectedItemKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read selected item slot: %v", ErrPersistence, err)
	}

	var item models.SelectedItem
	if err := json.Unmarshal(data, &item); err != nil {
		s.logger.Warn("discarding undecodable selected item", zap.Error(err))
		return nil, nil
	}
	return &item, nil
}
