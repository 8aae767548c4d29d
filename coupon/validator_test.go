package coupon

import (
	"testing"
	"time"

	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validCoupon() *models.Coupon {
	return &models.Coupon{
		Code:          "SAVE10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		ExpiryDate:    time.Now().Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCode("  save10 "))
	assert.Equal(t, "SAVE10", NormalizeCode("Save10"))
}

func TestValidatePercentageCappedAtMaxDiscount(t *testing.T) {
	cpn := validCoupon()
	cpn.MaxDiscount = floatPtr(50)

	discount, err := Validate(cpn, 1000, time.Now())
	require.NoError(t, err)
	// 10% of 1000 is 100, capped at 50.
	assert.Equal(t, 50.0, discount)
}

func TestValidatePercentageBelowCap(t *testing.T) {
	cpn := validCoupon()
	cpn.MaxDiscount = floatPtr(50)

	discount, err := Validate(cpn, 300, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 30.0, discount)
}

func TestValidateFixedClampedToSubtotal(t *testing.T) {
	cpn := validCoupon()
	cpn.DiscountType = models.DiscountTypeFixed
	cpn.DiscountValue = 200

	discount, err := Validate(cpn, 150, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 150.0, discount, "discount never exceeds the subtotal")
}

func TestValidateInactive(t *testing.T) {
	cpn := validCoupon()
	cpn.IsActive = false

	_, err := Validate(cpn, 1000, time.Now())

	var invalid *InvalidCouponError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Coupon is not active", invalid.Reason)
}

func TestValidateExpired(t *testing.T) {
	cpn := validCoupon()
	cpn.ExpiryDate = time.Now().Add(-time.Hour)

	_, err := Validate(cpn, 1000, time.Now())

	var invalid *InvalidCouponError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Coupon has expired", invalid.Reason)
}

func TestValidateUsageLimitReached(t *testing.T) {
	cpn := validCoupon()
	cpn.UsageLimit = intPtr(5)
	cpn.UsedCount = 5

	_, err := Validate(cpn, 1000, time.Now())

	var invalid *InvalidCouponError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Coupon usage limit reached", invalid.Reason)
}

func TestValidateUnderUsageLimit(t *testing.T) {
	cpn := validCoupon()
	cpn.UsageLimit = intPtr(5)
	cpn.UsedCount = 4

	_, err := Validate(cpn, 1000, time.Now())
	require.NoError(t, err)
}

func TestValidateMinPurchaseNotMet(t *testing.T) {
	cpn := validCoupon()
	cpn.MinPurchase = 500

	_, err := Validate(cpn, 499.99, time.Now())

	var invalid *InvalidCouponError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "Minimum purchase")

	_, err = Validate(cpn, 500, time.Now())
	assert.NoError(t, err)
}

func TestDiscountRoundsToTwoDecimals(t *testing.T) {
	cpn := validCoupon()
	cpn.DiscountValue = 7.5

	assert.Equal(t, 7.46, Discount(cpn, 99.45))
}
