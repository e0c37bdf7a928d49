package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/activities/controller"
)

// ActivityPublicRoutes mounts the localized catalog endpoints.
func ActivityPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityController(db)

	activities := r.Group("/activities")
	activities.Get("/", ctrl.GetPublicActivities)
	activities.Get("/:id", ctrl.GetPublicActivityByID)
}
