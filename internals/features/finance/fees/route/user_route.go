package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/finance/fees/controller"
)

func FeesUserRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Get("/", paymentCtrl.GetMyPayments)
	payments.Post("/:id/checkout", paymentCtrl.Checkout) // 💳 Snap token
}

// FeesPublicRoutes carries the gateway webhook; it authenticates by order id.
func FeesPublicRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := controller.NewPaymentController(db)

	api.Post("/payments/notification", paymentCtrl.GatewayNotification)
}
