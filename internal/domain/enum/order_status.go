package enum

// OrderStatus represents the kitchen-side state of an order. Only cancelled
// orders are excluded from billing; every other status remains billable.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusInKitchen OrderStatus = "in_kitchen"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid reports whether the value is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusInKitchen, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Billable reports whether the order's items count toward the invoice
func (s OrderStatus) Billable() bool {
	return s != OrderStatusCancelled
}
