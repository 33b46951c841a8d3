package models

// CartLine is one product in the cart together with the quantity selected.
// The Product is a snapshot taken at add time; quantity is always >= 1, a
// line that would drop to zero is removed instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the price of this line in cents.
func (l CartLine) LineTotal() int64 {
	return l.Product.PricePerUnit * int64(l.Quantity)
}
