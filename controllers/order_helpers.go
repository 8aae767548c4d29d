package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/config"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/coupon"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/inventory"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/orders"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/utils"
)

func stockEngine() *inventory.Engine {
	return inventory.NewEngine(inventory.NewStore(config.DB))
}

func orderService() *orders.Service {
	db := config.DB
	return orders.NewService(
		inventory.NewStore(db),
		orders.NewOrderStore(db),
		orders.NewCouponStore(db),
		stockEngine(),
	)
}

func orderLifecycle() *orders.Lifecycle {
	return orders.NewLifecycle(orders.NewOrderStore(config.DB), stockEngine())
}

// respondOrderError maps the typed errors of the order/inventory/coupon
// packages onto the standard response envelope. Validation failures are
// client errors with no partial side effects; a RollbackError means the
// database is inconsistent and is logged as critical before responding.
func respondOrderError(c *gin.Context, err error) {
	var productNotFound *inventory.ProductNotFoundError
	var insufficientStock *inventory.InsufficientStockError
	var rollbackFailed *inventory.RollbackError
	var invalidCoupon *coupon.InvalidCouponError
	var invalidTransition *orders.InvalidTransitionError

	switch {
	case errors.Is(err, orders.ErrEmptyOrder):
		utils.BadRequest(c, "Cannot place an order with no items", nil)
	case errors.Is(err, orders.ErrInvalidQuantity):
		utils.BadRequest(c, "Item quantity must be at least 1", err.Error())
	case errors.As(err, &productNotFound):
		utils.NotFound(c, fmt.Sprintf("Product %d not found", productNotFound.ProductID))
	case errors.As(err, &insufficientStock):
		utils.BadRequest(c, "Insufficient stock", gin.H{
			"product_id": insufficientStock.ProductID,
			"requested":  insufficientStock.Requested,
			"available":  insufficientStock.Available,
		})
	case errors.Is(err, coupon.ErrCouponNotFound):
		utils.NotFound(c, "Coupon not found")
	case errors.As(err, &invalidCoupon):
		utils.BadRequest(c, invalidCoupon.Reason, nil)
	case errors.As(err, &invalidTransition):
		utils.BadRequest(c, "Invalid status transition", gin.H{
			"from": invalidTransition.From,
			"to":   invalidTransition.To,
		})
	case errors.Is(err, orders.ErrNotOwner):
		utils.Forbidden(c, "You are not authorized to access this order")
	case errors.As(err, &rollbackFailed):
		utils.LogError("CRITICAL: rollback inconsistency: %v", err)
		utils.InternalServerError(c, "Order failed and stock restoration did not complete", err.Error())
	default:
		utils.InternalServerError(c, "Failed to process order", err.Error())
	}
}
