// Package controller is the boundary the page glue talks to: a small
// table of named operations over the storefront core. It keeps the
// core free of any rendering-target concerns; callers read item
// identity and price out of their UI and pass them in here.
package controller

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Operation names one page action the glue layer may invoke.
type Operation string

const (
	OpAddToCart      Operation = "add_to_cart"
	OpRemoveFromCart Operation = "remove_from_cart"
	OpShowCart       Operation = "show_cart"
	OpOrderSummary   Operation = "order_summary"
	OpViewDetails    Operation = "view_details"
	OpProductDetails Operation = "product_details"
	OpPlaceOrder     Operation = "place_order"
)

// ErrUnknownOperation rejects an operation name outside the table.
var ErrUnknownOperation = errors.New("controller: unknown operation")

// Request carries the operation inputs the page read from its
// elements. Only the fields the operation needs are consulted.
type Request struct {
	Name           string
	Price          float64
	DeliveryOption string
	Card           *models.ItemCard
	Form           *CheckoutForm
}

// Response is what the page paints or acts on afterward.
type Response struct {
	// Message is a user-visible confirmation, when the operation has one.
	Message string
	// Navigate names the page to move to, empty when staying put.
	Navigate string

	CartView *models.CartView
	Summary  *models.OrderSummary
	Item     *models.SelectedItem
}

// CheckoutForm is the checkout page input.
type CheckoutForm struct {
	Name           string
	Email          string
	Address        string
	DeliveryOption string
}

// Validate is the client-side validation gate: every contact field is
// required before an order may be placed.
func (f *CheckoutForm) Validate() error {
	if f == nil {
		return fmt.Errorf("checkout form is required")
	}
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if f.Email == "" {
		return fmt.Errorf("email is required")
	}
	if f.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

type handlerFunc func(ctx context.Context, req Request) (Response, error)

// Controller dispatches named operations into the storefront service.
type Controller struct {
	svc      storefront.Service
	handlers map[Operation]handlerFunc
	logger   *zap.Logger
}

func New(svc storefront.Service, logger *zap.Logger) *Controller {
	c := &Controller{
		svc:    svc,
		logger: logger,
	}
	c.handlers = map[Operation]handlerFunc{
		OpAddToCart:      c.addToCart,
		OpRemoveFromCart: c.removeFromCart,
		OpShowCart:       c.showCart,
		OpOrderSummary:   c.orderSummary,
		OpViewDetails:    c.viewDetails,
		OpProductDetails: c.productDetails,
		OpPlaceOrder:     c.placeOrder,
	}
	return c
}

// Invoke runs one named operation.
func (c *Controller) Invoke(ctx context.Context, op Operation, req Request) (Response, error) {
	handler, ok := c.handlers[op]
	if !ok {
		c.logger.Warn("rejected unknown operation", zap.String("operation", string(op)))
		return Response{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return handler(ctx, req)
}

func (c *Controller) addToCart(ctx context.Context, req Request) (Response, error) {
	if err := c.svc.AddItemToCart(ctx, req.Name, req.Price); err != nil {
		return Response{}, err
	}
	return Response{Message: fmt.Sprintf("%s added to cart!", req.Name)}, nil
}

func (c *Controller) removeFromCart(ctx context.Context, req Request) (Response, error) {
	c.svc.RemoveItemFromCart(ctx, req.Name)
	// The cart page repaints after a removal.
	v := c.svc.CartView()
	return Response{CartView: &v}, nil
}

func (c *Controller) showCart(_ context.Context, _ Request) (Response, error) {
	v := c.svc.CartView()
	return Response{CartView: &v}, nil
}

func (c *Controller) orderSummary(_ context.Context, req Request) (Response, error) {
	summary := c.svc.OrderSummary(enum.ParseDeliveryOption(req.DeliveryOption))
	return Response{Summary: &summary}, nil
}

func (c *Controller) viewDetails(ctx context.Context, req Request) (Response, error) {
	if req.Card == nil {
		return Response{}, fmt.Errorf("view_details requires an item card")
	}
	if err := c.svc.SelectItem(ctx, req.Card); err != nil {
		return Response{}, err
	}
	return Response{Navigate: "product_details"}, nil
}

func (c *Controller) productDetails(ctx context.Context, _ Request) (Response, error) {
	return Response{Item: c.svc.SelectedItem(ctx)}, nil
}

func (c *Controller) placeOrder(ctx context.Context, req Request) (Response, error) {
	if err := req.Form.Validate(); err != nil {
		return Response{}, err
	}
	if err := c.svc.PlaceOrder(ctx); err != nil {
		return Response{}, err
	}
	return Response{
		Message:  "Order placed successfully!",
		Navigate: "index",
	}, nil
}
