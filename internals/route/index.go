package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	authService "belajarku_backend/internals/features/users/auth/service"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
	routeDetails "belajarku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT wajib + cek blacklist
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authService.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	routeDetails.AuthUserRoutes(private, db)
	routeDetails.UserRoutes(private, db)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicPublicRoutes(public, db)
	routeDetails.AcademicUserRoutes(private, db)

	log.Println("[INFO] Mounting Planner routes...")
	routeDetails.PlannerUserRoutes(private, db)

	log.Println("[INFO] Mounting Notes routes...")
	routeDetails.NotesUserRoutes(private, db)

	log.Println("[INFO] Mounting Assist routes...")
	routeDetails.AssistUserRoutes(private, db)

	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingPublicRoutes(public, db)
	routeDetails.BillingUserRoutes(private, db)
}
