package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/config"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/orders"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// ListMyOrders lists the logged-in user's orders, newest first, with
// optional filters by status and date
func ListMyOrders(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var userOrders []models.Order
	query := config.DB.Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("DATE(created_at) = ?", date)
	}
	query.Order("created_at DESC").Preload("OrderItems").Find(&userOrders)

	summaries := make([]gin.H, 0, len(userOrders))
	for _, o := range userOrders {
		summaries = append(summaries, gin.H{
			"id":             o.ID,
			"order_number":   o.OrderNumber,
			"date":           o.CreatedAt.Format("2006-01-02 15:04:05"),
			"status":         o.Status,
			"payment_status": o.PaymentStatus,
			"total_price":    o.TotalPrice,
		})
	}
	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": summaries})
}

// GetOrderDetails returns detailed info for a specific order. Only the
// order's owner or an admin may read it.
func GetOrderDetails(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	if order.UserID != user.ID && !user.IsAdmin {
		utils.LogError("User %d attempted to read order %d owned by user %d", user.ID, order.ID, order.UserID)
		respondOrderError(c, orders.ErrNotOwner)
		return
	}

	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}

// CancelOrder cancels a pending order, restores stock, and records the
// reason. Orders past Pending are rejected without touching stock.
func CancelOrder(c *gin.Context) {
	utils.LogInfo("CancelOrder called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	var order models.Order
	if err := config.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	if order.UserID != user.ID && !user.IsAdmin {
		utils.LogError("User %d attempted to cancel order %d owned by user %d", user.ID, order.ID, order.UserID)
		respondOrderError(c, orders.ErrNotOwner)
		return
	}

	if err := orderLifecycle().Cancel(&order, req.Reason); err != nil {
		utils.LogError("Failed to cancel order %d: %v", order.ID, err)
		respondOrderError(c, err)
		return
	}
	utils.LogInfo("Cancelled order %s (ID: %d), stock restored", order.OrderNumber, order.ID)

	utils.Success(c, "Order cancelled", gin.H{
		"order_id":            order.ID,
		"order_number":        order.OrderNumber,
		"status":              order.Status,
		"cancelled_at":        order.CancelledAt,
		"cancellation_reason": order.CancellationReason,
	})
}
