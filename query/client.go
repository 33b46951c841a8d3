package query

import (
	"context"

	"github.com/caffeinepub/glass-bottle-water/backend"
	"github.com/caffeinepub/glass-bottle-water/models"
)

// Client is the catalog query layer: every read goes through the cache and
// every successful mutation invalidates the keys it makes stale. Placing an
// order invalidates both products and orders, because the remote side
// decrements stock as a side effect of order placement.
type Client struct {
	actor backend.Actor
	cache *Cache
}

// NewClient wraps an actor handle. A nil actor is permitted; every call then
// fails fast with backend.ErrNotReady until the handle is ready.
func NewClient(actor backend.Actor) *Client {
	return &Client{actor: actor, cache: NewCache()}
}

// Cached reports whether a fresh snapshot exists for key; false means a read
// would fetch, which callers surface as a loading state.
func (c *Client) Cached(key Key) bool { return c.cache.Peek(key) }

// Products returns the product catalog, served from cache when fresh.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	if c.actor == nil {
		return nil, backend.ErrNotReady
	}
	snapshot, err := c.cache.Get(ctx, KeyProducts, func(ctx context.Context) (any, error) {
		return c.actor.ListProducts(ctx)
	})
	if err != nil {
		return nil, err
	}
	return snapshot.([]models.Product), nil
}

// Orders returns all orders, served from cache when fresh.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	if c.actor == nil {
		return nil, backend.ErrNotReady
	}
	snapshot, err := c.cache.Get(ctx, KeyOrders, func(ctx context.Context) (any, error) {
		return c.actor.ListOrders(ctx)
	})
	if err != nil {
		return nil, err
	}
	return snapshot.([]models.Order), nil
}

// AddProduct creates a product and invalidates the product cache on success.
func (c *Client) AddProduct(ctx context.Context, d models.ProductDraft) error {
	if c.actor == nil {
		return backend.ErrNotReady
	}
	d = d.Trimmed()
	err := c.actor.AddProduct(ctx, d.ID, d.Name, d.Description, d.Volume, d.PricePerUnit, d.StockQuantity, d.IsAvailable)
	if err != nil {
		return err
	}
	c.cache.Invalidate(KeyProducts)
	return nil
}

// UpdateProduct updates a product and invalidates the product cache on
// success. The draft ID must be the product's original identifier.
func (c *Client) UpdateProduct(ctx context.Context, d models.ProductDraft) error {
	if c.actor == nil {
		return backend.ErrNotReady
	}
	d = d.Trimmed()
	err := c.actor.UpdateProduct(ctx, d.ID, d.Name, d.Description, d.Volume, d.PricePerUnit, d.StockQuantity, d.IsAvailable)
	if err != nil {
		return err
	}
	c.cache.Invalidate(KeyProducts)
	return nil
}

// DeleteProduct removes a product. The cache stays valid when the remote
// call fails, so the product remains visible in the list.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if c.actor == nil {
		return backend.ErrNotReady
	}
	if err := c.actor.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.cache.Invalidate(KeyProducts)
	return nil
}

// PlaceOrder submits an order and on success invalidates both products and
// orders.
func (c *Client) PlaceOrder(ctx context.Context, orderID, customerName, customerContact string, items []models.OrderItem) error {
	if c.actor == nil {
		return backend.ErrNotReady
	}
	if err := c.actor.PlaceOrder(ctx, orderID, customerName, customerContact, items); err != nil {
		return err
	}
	c.cache.Invalidate(KeyOrders, KeyProducts)
	return nil
}

// UpdateOrderStatus changes an order's status and invalidates the order
// cache on success.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if c.actor == nil {
		return backend.ErrNotReady
	}
	if err := c.actor.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}
	c.cache.Invalidate(KeyOrders)
	return nil
}
