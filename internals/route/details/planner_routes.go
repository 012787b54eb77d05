package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	plannerController "belajarku_backend/internals/features/planner/events/controller"
)

func PlannerUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := plannerController.NewPlannerEventController(db)

	private.Get("/planner/events", ctrl.GetAll)
	private.Post("/planner/events", ctrl.Create)
	private.Put("/planner/events/:id", ctrl.Update)
	private.Delete("/planner/events/:id", ctrl.Delete)
}
