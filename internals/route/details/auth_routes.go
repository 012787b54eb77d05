package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "belajarku_backend/internals/features/users/auth/controller"
	middlewares "belajarku_backend/internals/middlewares"
)

// AuthRoutes: endpoint kredensial di luar group /api/u.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth", middlewares.LoginRateLimiter())
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", ctrl.Login)
	auth.Post("/login-google", ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthUserRoutes: endpoint auth yang butuh token valid.
func AuthUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	private.Get("/me", ctrl.Me)
	private.Post("/logout", ctrl.Logout)
	private.Post("/change-password", ctrl.ChangePassword)
}
