package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/controllers"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/middleware"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// Order management
		admin.GET("/orders", controllers.AdminListOrders)
		admin.GET("/orders/export", controllers.DownloadSalesReportExcel)
		admin.PUT("/orders/:id/status", controllers.AdminUpdateOrderStatus)

		// Coupon management
		admin.POST("/coupons", controllers.CreateCoupon)
		admin.GET("/coupons", controllers.ListCoupons)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)

		// Product management
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.PUT("/products/:id/stock", controllers.RestockProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
	}
}
