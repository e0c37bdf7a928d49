package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/calendar/controller"
)

// CalendarAdminRoutes mounts the event management endpoints.
func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := r.Group("/events")
	events.Get("/", ctrl.GetAllEvents)
	events.Post("/", ctrl.CreateEvent)
	events.Put("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}
