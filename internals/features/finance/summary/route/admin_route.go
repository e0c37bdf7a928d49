package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/finance/summary/controller"
)

// SummaryAdminRoutes mounts the dashboard endpoint.
func SummaryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSummaryController(db)
	r.Get("/summary", ctrl.GetSummary)
}
