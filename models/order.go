package models

import "time"

// Order statuses. Orders are the terminus for carts; there is no order
// workflow in this service, only the record shape.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Items         []OrderItem `json:"items"`
	AddressID     string      `json:"address_id"`
	OrderStatus   string      `json:"order_status"`
	PaymentStatus string      `json:"payment_status"`
	TotalAmount   float64     `json:"total_amount"`
	PaymentID     string      `json:"payment_id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
