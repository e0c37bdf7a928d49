package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/calendar/controller"
)

// CalendarPublicRoutes mounts the upcoming-events endpoint.
func CalendarPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := r.Group("/events")
	events.Get("/", ctrl.GetUpcomingEvents)
}
