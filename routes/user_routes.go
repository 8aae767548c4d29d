package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/controllers"
	"github.com/mdmuhtasimrashid-bit/beauty-ecommerce-sub000/middleware"
)

// initUserRoutes initializes all customer-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProductDetails)

	// Protected routes
	user := router.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		user.POST("/orders", controllers.PlaceOrder)
		user.GET("/orders", controllers.ListMyOrders)
		user.GET("/orders/:id", controllers.GetOrderDetails)
		user.PUT("/orders/:id/cancel", controllers.CancelOrder)
		user.GET("/orders/:id/invoice", controllers.DownloadInvoice)

		user.POST("/coupons/apply", controllers.ApplyCoupon)
	}
}
