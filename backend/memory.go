package backend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/caffeinepub/glass-bottle-water/models"
)

// MemoryActor is an in-process actor used for demo mode and as a test
// double. It applies the same rules the remote system of record is known to
// enforce: unique product IDs, stock decrement on order placement, and
// rejection of orders against unavailable or under-stocked products.
type MemoryActor struct {
	mu       sync.Mutex
	products map[string]models.Product
	orders   map[string]models.Order
}

// NewMemoryActor returns an empty in-memory actor.
func NewMemoryActor() *MemoryActor {
	return &MemoryActor{
		products: make(map[string]models.Product),
		orders:   make(map[string]models.Order),
	}
}

// Seed inserts products directly, bypassing validation. Demo wiring only.
func (m *MemoryActor) Seed(products ...models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range products {
		m.products[p.ID] = p
	}
}

// ListProducts returns all products sorted by ID.
func (m *MemoryActor) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// AddProduct creates a product; the identifier must be unused.
func (m *MemoryActor) AddProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[id]; exists {
		return fmt.Errorf("product already exists: %s", id)
	}
	m.products[id] = models.Product{
		ID:            id,
		Name:          name,
		Description:   description,
		Volume:        volume,
		PricePerUnit:  pricePerUnit,
		StockQuantity: stockQuantity,
		IsAvailable:   isAvailable,
	}
	return nil
}

// UpdateProduct replaces an existing product.
func (m *MemoryActor) UpdateProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[id]; !exists {
		return fmt.Errorf("product not found: %s", id)
	}
	m.products[id] = models.Product{
		ID:            id,
		Name:          name,
		Description:   description,
		Volume:        volume,
		PricePerUnit:  pricePerUnit,
		StockQuantity: stockQuantity,
		IsAvailable:   isAvailable,
	}
	return nil
}

// DeleteProduct removes an existing product.
func (m *MemoryActor) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[id]; !exists {
		return fmt.Errorf("product not found: %s", id)
	}
	delete(m.products, id)
	return nil
}

// ListOrders returns all orders, newest first.
func (m *MemoryActor) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt > orders[j].CreatedAt })
	return orders, nil
}

// PlaceOrder validates stock and availability, decrements stock, and records
// the order with status pending.
func (m *MemoryActor) PlaceOrder(ctx context.Context, orderID, customerName, customerContact string, items []models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.orders[orderID]; exists {
		return fmt.Errorf("order already exists: %s", orderID)
	}
	if len(items) == 0 {
		return fmt.Errorf("order has no items")
	}

	var total int64
	for _, item := range items {
		product, exists := m.products[item.ProductID]
		if !exists {
			return fmt.Errorf("product not found: %s", item.ProductID)
		}
		if !product.IsAvailable {
			return fmt.Errorf("product not available: %s", item.ProductID)
		}
		if product.StockQuantity < item.Quantity {
			return fmt.Errorf("insufficient stock for product: %s", item.ProductID)
		}
		total += product.PricePerUnit * item.Quantity
	}

	for _, item := range items {
		product := m.products[item.ProductID]
		product.StockQuantity -= item.Quantity
		m.products[item.ProductID] = product
	}

	m.orders[orderID] = models.Order{
		OrderID:         orderID,
		CustomerName:    customerName,
		CustomerContact: customerContact,
		CreatedAt:       time.Now().UnixNano(),
		Items:           append([]models.OrderItem(nil), items...),
		TotalPrice:      total,
		Status:          models.OrderStatusPending,
	}
	return nil
}

// UpdateOrderStatus sets the status of an existing order. Any status may be
// set from any other; the transition space is not constrained here.
func (m *MemoryActor) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, exists := m.orders[orderID]
	if !exists {
		return fmt.Errorf("order not found: %s", orderID)
	}
	order.Status = status
	m.orders[orderID] = order
	return nil
}
