// Package coupon re-validates discount coupons server-side. The discount is
// always recomputed from the server's own subtotal; client-submitted totals
// are never trusted.
package coupon

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
)

// ErrCouponNotFound is returned by stores when no coupon matches a code.
var ErrCouponNotFound = errors.New("coupon not found")

// InvalidCouponError carries the human-readable rejection reason. A coupon
// accepted at cart-preview time may legitimately fail with this at checkout
// if its state changed in between; callers treat it as a normal validation
// failure, not a server fault.
type InvalidCouponError struct {
	Reason string
}

func (e *InvalidCouponError) Error() string {
	return e.Reason
}

// NormalizeCode upper-cases and trims a coupon code; codes are matched
// case-insensitively by storing and querying the normalized form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks the coupon against the server-computed subtotal and
// returns the discount amount. All of the following must hold: the coupon
// is active, not expired, under its usage limit (when one is set), and the
// subtotal meets the minimum purchase.
func Validate(cpn *models.Coupon, subtotal float64, now time.Time) (float64, error) {
	if !cpn.IsActive {
		return 0, &InvalidCouponError{Reason: "Coupon is not active"}
	}
	if now.After(cpn.ExpiryDate) {
		return 0, &InvalidCouponError{Reason: "Coupon has expired"}
	}
	if cpn.UsageLimit != nil && cpn.UsedCount >= *cpn.UsageLimit {
		return 0, &InvalidCouponError{Reason: "Coupon usage limit reached"}
	}
	if subtotal < cpn.MinPurchase {
		return 0, &InvalidCouponError{
			Reason: fmt.Sprintf("Minimum purchase of %.2f required for this coupon", cpn.MinPurchase),
		}
	}
	return Discount(cpn, subtotal), nil
}

// Discount computes the discount amount for an already-valid coupon.
// Percentage discounts are clamped to MaxDiscount when set; every discount
// is clamped to the subtotal so the total can never go negative.
func Discount(cpn *models.Coupon, subtotal float64) float64 {
	var discount float64
	switch cpn.DiscountType {
	case models.DiscountTypePercentage:
		discount = subtotal * cpn.DiscountValue / 100
		if cpn.MaxDiscount != nil && discount > *cpn.MaxDiscount {
			discount = *cpn.MaxDiscount
		}
	case models.DiscountTypeFixed:
		discount = cpn.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	return math.Round(discount*100) / 100
}
