package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/configs"
	"afa_backend/internals/features/users/auth/controller"
	"afa_backend/internals/features/users/auth/service"
	"afa_backend/internals/middlewares"
	authmw "afa_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	authGuard := authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    service.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	})

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login) // 🔑 email + password
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/logout", authGuard, ctrl.Logout)
	auth.Get("/me", authGuard, ctrl.Me)
}

// AuthAdminRoutes wires account management under the admin group.
func AuthAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	users := api.Group("/users")
	users.Post("/", ctrl.Register) // ➕ create admin/member account
}
