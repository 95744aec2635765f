// Package storefront ties the cart, views, catalog, and event
// plumbing together behind one Service.
package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goflare.io/storefront/cart"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/config"
	"goflare.io/storefront/driver"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/notify"
	"goflare.io/storefront/storage"
	"goflare.io/storefront/view"
)

type Service interface {
	AddItemToCart(ctx context.Context, name string, price float64) error
	RemoveItemFromCart(ctx context.Context, name string)
	ClearCart(ctx context.Context)
	CartSnapshot() []models.LineItem

	CartView() models.CartView
	OrderSummary(option enum.DeliveryOption) models.OrderSummary

	PlaceOrder(ctx context.Context) error

	SelectItem(ctx context.Context, card *models.ItemCard) error
	SelectedItem(ctx context.Context) *models.SelectedItem

	ListMenu(ctx context.Context, filter catalog.Filter, order enum.SortOrder) ([]*models.ItemCard, error)
	AddMenuItem(ctx context.Context, card *models.ItemCard) error

	// Close stops the event worker pool after draining queued
	// deliveries. The cart and views stay usable afterward.
	Close() error
}

type service struct {
	cart     cart.Store
	renderer *view.Renderer
	catalog  catalog.Repository
	backend  storage.Store
	events   notify.Publisher

	transactionManager *driver.TransactionManager
	eventManager       *notify.EventManager
	workerPool         *notify.WorkerPool

	logger *zap.Logger
}

// NewService wires the storefront. eventManager may be nil when no
// NATS connection is available; cart events then go to an in-process
// recorder and nothing subscribes. catalogRepo and tm may be nil for
// a cart-only storefront; the menu operations then return an error.
func NewService(
	ctx context.Context, cfg *config.Config,
	catalogRepo catalog.Repository, tm *driver.TransactionManager,
	backend storage.Store, eventManager *notify.EventManager,
	logger *zap.Logger) Service {

	var events notify.Publisher
	if eventManager != nil {
		events = eventManager
	} else {
		events = notify.NewRecorder()
	}

	s := &service{
		renderer:           view.NewRenderer(cfg.Delivery),
		catalog:            catalogRepo,
		backend:            backend,
		events:             events,
		transactionManager: tm,
		eventManager:       eventManager,
		logger:             logger,
	}
	s.cart = cart.NewStore(ctx, backend, events, logger)

	if eventManager != nil {
		s.workerPool = notify.NewWorkerPool(4, s, logger)
		s.registerEventHandlers()

		if err := eventManager.SubscribeToEvents(s.workerPool); err != nil {
			logger.Error("Failed to subscribe to cart events", zap.Error(err))
		}
	}

	return s
}

func (s *service) AddItemToCart(ctx context.Context, name string, price float64) error {
	return s.cart.AddItem(ctx, name, price)
}

func (s *service) RemoveItemFromCart(ctx context.Context, name string) {
	s.cart.RemoveItem(ctx, name)
}

func (s *service) ClearCart(ctx context.Context) {
	s.cart.Clear(ctx)
}

func (s *service) CartSnapshot() []models.LineItem {
	return s.cart.Snapshot()
}

func (s *service) CartView() models.CartView {
	return s.renderer.CartView(s.cart.Snapshot())
}

func (s *service) OrderSummary(option enum.DeliveryOption) models.OrderSummary {
	return s.renderer.OrderSummary(s.cart.Snapshot(), option)
}

// PlaceOrder completes checkout: the cart is emptied, the empty list
// persisted, and an order_placed event published. The order itself is
// not persisted anywhere.
func (s *service) PlaceOrder(ctx context.Context) error {
	if len(s.cart.Snapshot()) == 0 {
		return fmt.Errorf("cart is empty")
	}

	s.cart.Clear(ctx)
	s.events.Publish(ctx, enum.CartEventTypeOrderPlaced, nil)
	return nil
}

// SelectItem writes the catalog-to-detail handoff slot.
func (s *service) SelectItem(ctx context.Context, card *models.ItemCard) error {
	if err := s.backend.SaveSelectedItem(ctx, card.Selected()); err != nil {
		s.logger.Warn("failed to save selected item", zap.Error(err))
		return err
	}
	return nil
}

// SelectedItem consumes the handoff slot. An empty or unreadable slot
// renders the unknown-item fallback.
func (s *service) SelectedItem(ctx context.Context) *models.SelectedItem {
	item, err := s.backend.TakeSelectedItem(ctx)
	if err != nil {
		s.logger.Warn("failed to read selected item", zap.Error(err))
	}
	if item == nil {
		return models.UnknownSelectedItem()
	}
	return item
}

// ErrNoCatalog rejects menu operations on a cart-only storefront
// constructed without a catalog repository.
var ErrNoCatalog = errors.New("storefront: no catalog configured")

func (s *service) ListMenu(ctx context.Context, filter catalog.Filter, order enum.SortOrder) ([]*models.ItemCard, error) {
	if s.catalog == nil {
		return nil, ErrNoCatalog
	}
	cards, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list item cards: %w", err)
	}
	return catalog.SortByPrice(catalog.Apply(cards, filter), order), nil
}

func (s *service) AddMenuItem(ctx context.Context, card *models.ItemCard) error {
	if s.catalog == nil || s.transactionManager == nil {
		return ErrNoCatalog
	}
	return s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.catalog.Create(ctx, tx, card)
	})
}

func (s *service) Close() error {
	if s.workerPool != nil {
		s.workerPool.Shutdown()
		s.workerPool = nil
	}
	return nil
}
