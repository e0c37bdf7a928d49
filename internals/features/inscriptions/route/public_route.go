package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/inscriptions/controller"
	"afa_backend/internals/middlewares"
)

func InscriptionPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInscriptionController(db)

	api.Post("/inscriptions", middlewares.PublicFormRateLimiter(), ctrl.CreateInscription) // ➕ submission form
}
