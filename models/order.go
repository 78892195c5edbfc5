package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusCancelled  = "Cancelled"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

type ShippingInfo struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

type Order struct {
	ID                int             `json:"id"`
	UserID            int             `json:"user_id"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	OrderStatus       string          `json:"order_status"`
	PaymentStatus     string          `json:"payment_status"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	TransactionID     string          `json:"transaction_id,omitempty"`
	RazorpayPaymentID string          `json:"razorpay_payment_id,omitempty"`
	RazorpayOrderID   string          `json:"razorpay_order_id,omitempty"`
	Shipping          ShippingInfo    `json:"shipping"`
	Items             []OrderItem     `json:"items,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderItem snapshots catalog name and price at order time so later
// catalog changes never alter historical orders.
type OrderItem struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
}
