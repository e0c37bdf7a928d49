package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"afa_backend/internals/configs"
	activityRoute "afa_backend/internals/features/activities/route"
	calendarRoute "afa_backend/internals/features/calendar/route"
	feesRoute "afa_backend/internals/features/finance/fees/route"
	summaryRoute "afa_backend/internals/features/finance/summary/route"
	inscriptionRoute "afa_backend/internals/features/inscriptions/route"
	newsRoute "afa_backend/internals/features/news/route"
	shopRoute "afa_backend/internals/features/shop/route"
	authRoute "afa_backend/internals/features/users/auth/route"
	authService "afa_backend/internals/features/users/auth/service"
	authmw "afa_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under three surfaces:
//
//	/api/public: no auth
//	/api/u: any logged-in member
//	/api/a: admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	authGuard := authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authService.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	})

	// 🌍 Public surface
	public := app.Group("/api/public")
	inscriptionRoute.InscriptionPublicRoutes(public, db)
	activityRoute.ActivityPublicRoutes(public, db)
	newsRoute.NewsPublicRoutes(public, db)
	calendarRoute.CalendarPublicRoutes(public, db)
	shopRoute.ShopPublicRoutes(public, db)
	feesRoute.FeesPublicRoutes(public, db)

	// 👤 Member surface
	user := app.Group("/api/u", authGuard)
	feesRoute.FeesUserRoutes(user, db)

	// 🔐 Admin surface
	admin := app.Group("/api/a", authGuard, authmw.AdminOnly())
	authRoute.AuthAdminRoutes(admin, db)
	inscriptionRoute.InscriptionAdminRoutes(admin, db)
	activityRoute.ActivityAdminRoutes(admin, db)
	newsRoute.NewsAdminRoutes(admin, db)
	calendarRoute.CalendarAdminRoutes(admin, db)
	shopRoute.ShopAdminRoutes(admin, db)
	feesRoute.FeesAdminRoutes(admin, db)
	summaryRoute.SummaryAdminRoutes(admin, db)

	// 🖼️ Stored uploads (webp images)
	app.Static("/uploads", configs.UploadDir)
}
