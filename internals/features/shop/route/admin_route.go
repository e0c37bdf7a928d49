package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/shop/controller"
)

// ShopAdminRoutes mounts inventory and order management endpoints.
func ShopAdminRoutes(r fiber.Router, db *gorm.DB) {
	products := controller.NewProductController(db)
	orders := controller.NewOrderController(db)

	shop := r.Group("/shop")

	shop.Get("/products", products.GetAllProducts)
	shop.Post("/products", products.CreateProduct)
	shop.Put("/products/:id", products.UpdateProduct)
	shop.Post("/products/:id/image", products.UploadProductImage)
	shop.Delete("/products/:id", products.DeleteProduct)

	shop.Get("/orders", orders.GetAllOrders)
	shop.Get("/orders/:id", orders.GetOrderByID)
	shop.Patch("/orders/:id/status", orders.UpdateOrderStatus)
}
