package routes

import (
	"restaurant-orders/handlers"
	"restaurant-orders/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	r.GET("/customer/signup", handlers.CustomerSignupForm)
	r.POST("/customer/signup", handlers.CustomerSignup)
	r.GET("/customer/login", handlers.CustomerLoginForm)
	r.POST("/customer/login", handlers.CustomerLogin)
	r.GET("/customer/logout", handlers.CustomerLogout)

	r.GET("/admin/login", handlers.AdminLoginForm)
	r.POST("/admin/login", handlers.AdminLogin)
	r.GET("/admin/logout", handlers.AdminLogout)

	// Tracking needs no login; lookup is by order id + email
	r.GET("/track_order", handlers.TrackOrderForm)
	r.POST("/track_order", handlers.TrackOrder)

	// Receipt is session-scoped and one-shot
	r.GET("/receipt", handlers.GetReceipt)

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/")
	customer.Use(middleware.CustomerRequired())
	{
		customer.GET("/menu", handlers.GetMenu)
		customer.POST("/add_to_cart/:itemID", handlers.AddToCart)
		customer.GET("/cart", handlers.ViewCart)
		customer.POST("/cart", handlers.UpdateCart)
		customer.GET("/order", handlers.OrderForm)
		customer.POST("/order", handlers.PlaceOrder)
		customer.GET("/cancel_order/:orderID/:orderGroupID", handlers.CancelOrderForm)
		customer.POST("/cancel_order/:orderID/:orderGroupID", handlers.CancelOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/orders", handlers.AdminListOrders)
		admin.GET("/admin/orders/update/:orderID", handlers.AdminUpdateStatusForm)
		admin.POST("/admin/orders/update/:orderID", handlers.AdminUpdateStatus)
		admin.GET("/admin/orders/update_time/:orderID", handlers.AdminUpdateTimeForm)
		admin.POST("/admin/orders/update_time/:orderID", handlers.AdminUpdateTime)
	}
}
