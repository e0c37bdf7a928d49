package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/activities/controller"
)

// ActivityAdminRoutes mounts the catalog management endpoints.
func ActivityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityController(db)

	activities := r.Group("/activities")
	activities.Get("/", ctrl.GetAllActivities)
	activities.Post("/", ctrl.CreateActivity)
	activities.Put("/:id", ctrl.UpdateActivity)
	activities.Post("/:id/image", ctrl.UploadActivityImage)
	activities.Delete("/:id", ctrl.DeleteActivity)
}
