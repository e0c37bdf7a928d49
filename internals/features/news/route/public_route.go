package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/news/controller"
)

// NewsPublicRoutes mounts the published-news endpoints.
func NewsPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	news := r.Group("/news")
	news.Get("/", ctrl.GetPublishedNews)
	news.Get("/:slug", ctrl.GetPublishedNewsBySlug)
}
