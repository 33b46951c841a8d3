package backend

import (
	"context"
	"errors"

	"github.com/caffeinepub/glass-bottle-water/models"
)

// ErrNotReady is returned synchronously when the remote actor handle has not
// been configured. Callers must fail fast on it rather than hang.
var ErrNotReady = errors.New("actor not ready")

// Actor is the opaque boundary to the remote system of record. Persistence,
// stock accounting, and conflict resolution all live on the far side; this
// interface is the complete surface the storefront may touch.
type Actor interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error
	UpdateProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error
	DeleteProduct(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]models.Order, error)
	PlaceOrder(ctx context.Context, orderID, customerName, customerContact string, items []models.OrderItem) error
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}
