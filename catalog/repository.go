// Package catalog holds the menu of item cards and the browse logic
// over them. The cart never reads from here; catalog code hands item
// identity and price to the cart API.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"goflare.io/ember"

	"goflare.io/storefront/driver"
	"goflare.io/storefront/models"
)

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, tx pgx.Tx, card *models.ItemCard) error
	GetByName(ctx context.Context, name string) (*models.ItemCard, error)
	List(ctx context.Context) ([]*models.ItemCard, error)
}

type repository struct {
	conn   driver.PostgresPool
	cache  *ember.Ember
	logger *zap.Logger
}

func NewRepository(conn driver.PostgresPool, cache *ember.Ember, logger *zap.Logger) Repository {
	return &repository{
		conn:   conn,
		cache:  cache,
		logger: logger,
	}
}

func (r *repository) Create(ctx context.Context, tx pgx.Tx, card *models.ItemCard) error {
	err := tx.QueryRow(ctx,
		`INSERT INTO item_cards (name, price, description, image, category, restaurant)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		card.Name, card.Price, card.Description, card.Image, card.Category, card.Restaurant,
	).Scan(&card.ID)
	if err != nil {
		r.logger.Error("Failed to create item card", zap.Error(err))
		return err
	}

	cacheKey := fmt.Sprintf("item_card:%s", card.Name)
	if err := r.cache.Set(ctx, cacheKey, card, 30*time.Minute); err != nil {
		r.logger.Warn("Failed to cache item card", zap.Error(err))
	}
	r.invalidateListCache(ctx)

	return nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*models.ItemCard, error) {
	cacheKey := fmt.Sprintf("item_card:%s", name)
	var card models.ItemCard

	found, err := r.cache.Get(ctx, cacheKey, &card)
	if err != nil {
		r.logger.Warn("Failed to get item card from cache", zap.Error(err))
	}
	if found {
		return &card, nil
	}

	err = r.conn.QueryRow(ctx,
		`SELECT id, name, price, description, image, category, restaurant
		 FROM item_cards WHERE name = $1`,
		name,
	).Scan(&card.ID, &card.Name, &card.Price, &card.Description, &card.Image, &card.Category, &card.Restaurant)
	if err != nil {
		r.logger.Error("Failed to get item card", zap.Error(err))
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, card, 30*time.Minute); err != nil {
		r.logger.Warn("Failed to cache item card", zap.Error(err))
	}

	return &card, nil
}

func (r *repository) List(ctx context.Context) ([]*models.ItemCard, error) {
	cacheKey := "item_cards"
	var cards []*models.ItemCard

	found, err := r.cache.Get(ctx, cacheKey, &cards)
	if err != nil {
		r.logger.Warn("Failed to get item cards from cache", zap.Error(err))
	}
	if found {
		return cards, nil
	}

	rows, err := r.conn.Query(ctx,
		`SELECT id, name, price, description, image, category, restaurant
		 FROM item_cards ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list item cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var card models.ItemCard
		if err := rows.Scan(&card.ID, &card.Name, &card.Price, &card.Description, &card.Image, &card.Category, &card.Restaurant); err != nil {
			r.logger.Error("Failed to scan item card", zap.Error(err))
			return nil, err
		}
		cards = append(cards, &card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, cards, 30*time.Minute); err != nil {
		r.logger.Warn("Failed to cache item cards", zap.Error(err))
	}

	return cards, nil
}

func (r *repository) invalidateListCache(ctx context.Context) {
	if err := r.cache.Delete(ctx, "item_cards"); err != nil {
		r.logger.Warn("Failed to invalidate item cards cache", zap.Error(err))
	}
}
