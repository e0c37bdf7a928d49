package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/features/news/controller"
)

// NewsAdminRoutes mounts the news management endpoints.
func NewsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	news := r.Group("/news")
	news.Get("/", ctrl.GetAllNews)
	news.Post("/", ctrl.CreateNews)
	news.Put("/:id", ctrl.UpdateNews)
	news.Post("/:id/cover", ctrl.UploadNewsCover)
	news.Delete("/:id", ctrl.DeleteNews)
}
