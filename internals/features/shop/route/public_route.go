package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/shop/controller"
	"afa_backend/internals/middlewares"
)

// ShopPublicRoutes mounts the catalog and order placement endpoints.
func ShopPublicRoutes(r fiber.Router, db *gorm.DB) {
	products := controller.NewProductController(db)
	orders := controller.NewOrderController(db)

	shop := r.Group("/shop")
	shop.Get("/products", products.GetCatalog)
	shop.Post("/orders", middlewares.PublicFormRateLimiter(), orders.PlaceOrder)
	shop.Post("/orders/notification", orders.GatewayNotification) // 🔔 gateway webhook
	shop.Post("/orders/:id/checkout", orders.Checkout)            // 💳 Snap token
}
