package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Payment status constants
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// ShippingAddress is snapshotted into the order at checkout
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Order is created once at checkout and never deleted. After creation only
// the lifecycle fields (status, payment status, the timestamps below and the
// cancellation reason) change; item and price snapshots are immutable so
// later catalog edits do not rewrite order history.
type Order struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	OrderNumber        string          `gorm:"uniqueIndex" json:"order_number"`
	UserID             uint            `json:"user_id"`
	User               User            `json:"user" gorm:"foreignKey:UserID"`
	OrderItems         []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	ShippingAddress    ShippingAddress `json:"shipping_address" gorm:"embedded;embeddedPrefix:ship_"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentStatus      string          `json:"payment_status"`
	Status             string          `json:"status"`
	ItemsPrice         float64         `json:"items_price"`
	ShippingPrice      float64         `json:"shipping_price"`
	TaxPrice           float64         `json:"tax_price"`
	Discount           float64         `json:"discount"`
	TotalPrice         float64         `json:"total_price"`
	CouponCode         string          `json:"coupon_code,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	DeliveredAt        *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// OrderItem snapshots name, unit price and image at order time
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}
