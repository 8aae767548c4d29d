package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/config"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/coupon"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/inventory"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/orders"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// ApplyCouponRequest represents the request body for previewing a coupon
// against a cart
type ApplyCouponRequest struct {
	Code  string                  `json:"code" binding:"required"`
	Items []orders.PlaceOrderItem `json:"items" binding:"required"`
}

// ApplyCoupon previews a coupon against the submitted cart. The subtotal is
// recomputed from the catalog, never taken from the client. This is a
// preview only: the coupon is validated again at checkout and may be
// rejected there if its state changed in between.
func ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequest(c, "Cannot apply a coupon to an empty cart", nil)
		return
	}
	utils.LogInfo("Previewing coupon code: %s against %d items", req.Code, len(req.Items))

	products := inventory.NewStore(config.DB)
	var subtotal float64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			utils.BadRequest(c, "Item quantity must be at least 1", nil)
			return
		}
		product, err := products.FindByID(item.ProductID)
		if err != nil {
			respondOrderError(c, err)
			return
		}
		subtotal += product.Price * float64(item.Quantity)
	}

	cpn, err := orders.NewCouponStore(config.DB).FindByCode(coupon.NormalizeCode(req.Code))
	if err != nil {
		utils.LogError("Coupon lookup failed for code %s: %v", req.Code, err)
		respondOrderError(c, err)
		return
	}

	discount, err := coupon.Validate(cpn, subtotal, time.Now())
	if err != nil {
		utils.LogError("Coupon %s rejected: %v", cpn.Code, err)
		respondOrderError(c, err)
		return
	}

	utils.LogInfo("Coupon %s previews a discount of %.2f on subtotal %.2f", cpn.Code, discount, subtotal)
	utils.Success(c, "Coupon applied successfully", gin.H{
		"coupon_code": cpn.Code,
		"subtotal":    fmt.Sprintf("%.2f", subtotal),
		"discount":    fmt.Sprintf("%.2f", discount),
		"total":       fmt.Sprintf("%.2f", subtotal-discount),
	})
}
