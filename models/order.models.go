package models

// OrderItem is a productId/quantity pair inside an order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// Order represents a placed order as reported by the remote system of record.
// CreatedAt is nanoseconds since epoch; TotalPrice is cents.
type Order struct {
	OrderID         string      `json:"orderId"`
	CustomerName    string      `json:"customerName"`
	CustomerContact string      `json:"customerContact"`
	CreatedAt       int64       `json:"createdAt"`
	Items           []OrderItem `json:"items"`
	TotalPrice      int64       `json:"totalPrice"`
	Status          OrderStatus `json:"status"`
}

// OrderStatus is the order lifecycle enum.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a member of the enum. Transition legality is
// deliberately not checked here: the admin dashboard may move an order from
// any status to any other, and the remote actor is the authority on whether
// that sticks.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
