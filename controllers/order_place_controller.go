package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/orders"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// PlaceOrderRequest represents the request body for placing an order.
// Any price fields the client submits are ignored; every amount on the
// order is recomputed server-side.
type PlaceOrderRequest struct {
	Items           []orders.PlaceOrderItem `json:"items" binding:"required"`
	ShippingAddress models.ShippingAddress  `json:"shipping_address" binding:"required"`
	PaymentMethod   string                  `json:"payment_method" binding:"required"`
	CouponCode      string                  `json:"coupon_code"`
}

// PlaceOrder creates an order from the submitted item list
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}
	utils.LogInfo("Processing order placement for user ID: %d", user.ID)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	paymentMethod := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	validMethods := map[string]bool{
		"cod":    true,
		"online": true,
	}
	if !validMethods[paymentMethod] {
		utils.LogError("Invalid payment method '%s' for user ID: %d", paymentMethod, user.ID)
		utils.BadRequest(c, "Invalid payment method. Must be one of: cod, online", nil)
		return
	}

	order, err := orderService().PlaceOrder(orders.PlaceOrderInput{
		UserID:          user.ID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   paymentMethod,
		CouponCode:      req.CouponCode,
	})
	if err != nil {
		utils.LogError("Order placement failed for user ID: %d: %v", user.ID, err)
		respondOrderError(c, err)
		return
	}
	utils.LogInfo("Created order %s (ID: %d) for user ID: %d", order.OrderNumber, order.ID, user.ID)

	// Confirmation email is best effort and never fails the order.
	go func(email string, placed models.Order) {
		if err := utils.SendOrderConfirmation(email, &placed); err != nil {
			utils.LogError("Failed to send order confirmation for %s: %v", placed.OrderNumber, err)
		}
	}(user.Email, *order)

	utils.Created(c, "Thank you for shopping with us! Your order has been placed successfully.", gin.H{
		"order_id":       order.ID,
		"order_number":   order.OrderNumber,
		"status":         order.Status,
		"payment_status": order.PaymentStatus,
		"payment_method": order.PaymentMethod,
		"items_price":    fmt.Sprintf("%.2f", order.ItemsPrice),
		"shipping_price": fmt.Sprintf("%.2f", order.ShippingPrice),
		"tax_price":      fmt.Sprintf("%.2f", order.TaxPrice),
		"discount":       fmt.Sprintf("%.2f", order.Discount),
		"total_price":    fmt.Sprintf("%.2f", order.TotalPrice),
		"coupon_code":    order.CouponCode,
	})
}
