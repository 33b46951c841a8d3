// Package cart holds the client-side shopping cart: line items aggregated
// per product with exact integer price math. The cart never touches the
// network and is owned by one browsing session.
package cart

import (
	"sync"

	"github.com/caffeinepub/glass-bottle-water/models"
)

// Cart aggregates selected products into at most one line per product ID.
// Totals are derived on every read rather than cached. AddItem does not
// check remaining stock against the quantity already queued; the remote
// actor is the stock authority at order time (product decision, see
// DESIGN.md).
type Cart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the product: a new line with quantity 1, or an
// increment of the existing line.
func (c *Cart) AddItem(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, line := range c.lines {
		if line.Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{Product: p, Quantity: 1})
}

// RemoveItem deletes the line for productID entirely, whatever its quantity.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// UpdateQuantity sets the line for productID to exactly quantity. A quantity
// of zero or less removes the line; a zero-quantity line never exists.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. Called once, after a successful order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a snapshot copy of the cart lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartLine(nil), c.lines...)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the cart total in cents, computed with integer
// arithmetic so large quantities never drift the way floating point would.
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, line := range c.lines {
		total += line.Product.PricePerUnit * int64(line.Quantity)
	}
	return total
}
