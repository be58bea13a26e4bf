package domain

import "time"

// Order statuses managed by the admin back office.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// CanTransition reports whether an admin may move an order from one status to
// another. Delivered and cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusProcessing || to == OrderStatusCancelled
	case OrderStatusProcessing:
		return to == OrderStatusShipped || to == OrderStatusCancelled
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	default:
		return false
	}
}

// Customer holds the checkout contact details captured with an order.
type Customer struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone,omitempty"`
	Address        string `json:"address,omitempty"`
}

// Totals is the pricing breakdown frozen into an order. All fields are ≥ 0
// and Total = max(0, Subtotal + Delivery + Tax - WalletDiscount).
type Totals struct {
	Subtotal       int64 `json:"subtotal"`
	Delivery       int64 `json:"delivery"`
	Tax            int64 `json:"tax"`
	WalletDiscount int64 `json:"walletDiscount"`
	Total          int64 `json:"total"`
}

// Order is created once at checkout and never mutated afterwards; only its
// status advances through the admin backend.
type Order struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Items         []LineItem `json:"items"`
	Customer      Customer   `json:"customer"`
	Totals        Totals     `json:"totals"`
	PaymentMethod string     `json:"paymentMethod"`
	DeliveryType  string     `json:"deliveryType"`
	Status        string     `json:"status"`
	PointsEarned  int64      `json:"pointsEarned"`
	CreatedAt     time.Time  `json:"createdAt"`
}
