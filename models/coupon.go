package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon discount types
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Coupon struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Code          string         `gorm:"uniqueIndex" json:"code"` // stored upper case
	DiscountType  string         `json:"discount_type"`           // "percentage" or "fixed"
	DiscountValue float64        `json:"discount_value"`
	MinPurchase   float64        `json:"min_purchase"`
	MaxDiscount   *float64       `json:"max_discount,omitempty"` // cap for percentage coupons, optional
	ExpiryDate    time.Time      `json:"expiry_date"`
	UsageLimit    *int           `json:"usage_limit,omitempty"` // nil means unlimited
	UsedCount     int            `json:"used_count"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
