package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"afa_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the base middleware chain shared by every route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
