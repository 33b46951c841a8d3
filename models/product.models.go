package models

// Product represents a catalog entry as held by the remote system of record.
// Prices are minor currency units (cents) and Volume is milliliters; the
// client only ever sees read-only snapshots of these.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Volume        int64  `json:"volume"`
	PricePerUnit  int64  `json:"pricePerUnit"`
	StockQuantity int64  `json:"stockQuantity"`
	IsAvailable   bool   `json:"isAvailable"`
}

// Purchasable reports whether the product can currently be added to an order.
func (p Product) Purchasable() bool {
	return p.IsAvailable && p.StockQuantity > 0
}
