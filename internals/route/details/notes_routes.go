package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noteController "belajarku_backend/internals/features/notes/notes/controller"
)

func NotesUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := noteController.NewNoteController(db)

	private.Get("/notes", ctrl.GetAll)
	private.Post("/notes", ctrl.Create)
	private.Get("/notes/:id", ctrl.GetByID)
	private.Put("/notes/:id", ctrl.Update)
	private.Delete("/notes/:id", ctrl.Delete)
}
