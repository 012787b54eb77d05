package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "belajarku_backend/internals/features/users/user/controller"
)

func UserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	private.Get("/profile", ctrl.GetProfile)
	private.Put("/profile", ctrl.UpdateProfile)
}
