package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/config"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/models"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/orders"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

// AdminListOrders lists all orders with optional filters and pagination
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Order{})

	if id := c.Query("id"); id != "" {
		query = query.Where("id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("DATE(created_at) = ?", date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	pagination.SetTotal(total)

	var allOrders []models.Order
	if err := query.Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Preload("User").Preload("OrderItems").
		Find(&allOrders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	summaries := make([]gin.H, 0, len(allOrders))
	for _, o := range allOrders {
		summaries = append(summaries, gin.H{
			"id":             o.ID,
			"order_number":   o.OrderNumber,
			"user_id":        o.UserID,
			"email":          o.User.Email,
			"date":           o.CreatedAt.Format("2006-01-02 15:04:05"),
			"status":         o.Status,
			"payment_status": o.PaymentStatus,
			"items":          len(o.OrderItems),
			"total_price":    fmt.Sprintf("%.2f", o.TotalPrice),
		})
	}
	utils.SendPaginatedResponse(c, summaries, pagination)
}

// AdminUpdateOrderStatus updates the status of an order, applying the
// lifecycle rules: Delivered marks the order paid, Cancelled restores
// stock, and out-of-order transitions are rejected.
func AdminUpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("AdminUpdateOrderStatus called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.LogError("Invalid status in request: %v", err)
		utils.BadRequest(c, "Status is required", nil)
		return
	}
	utils.LogDebug("Requested status update to: %s for order %d", req.Status, orderID)

	if !orders.KnownStatus(req.Status) {
		utils.LogError("Invalid status requested: %s", req.Status)
		utils.BadRequest(c, "Invalid status", gin.H{
			"valid_statuses": []string{
				models.OrderStatusPending,
				models.OrderStatusProcessing,
				models.OrderStatusShipped,
				models.OrderStatusDelivered,
				models.OrderStatusCancelled,
			},
		})
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}
	utils.LogDebug("Found order with current status: %s", order.Status)

	if err := orderLifecycle().UpdateStatus(&order, req.Status); err != nil {
		utils.LogError("Failed to update order %d status: %v", order.ID, err)
		respondOrderError(c, err)
		return
	}
	utils.LogInfo("Successfully updated order %d status to %s", order.ID, order.Status)

	utils.Success(c, "Order status updated successfully", gin.H{
		"order": gin.H{
			"id":             order.ID,
			"order_number":   order.OrderNumber,
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"delivered_at":   order.DeliveredAt,
			"cancelled_at":   order.CancelledAt,
			"total_price":    fmt.Sprintf("%.2f", order.TotalPrice),
		},
	})
}
