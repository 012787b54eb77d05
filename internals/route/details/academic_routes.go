package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "belajarku_backend/internals/features/academics/catalog_courses/controller"
	dashboardController "belajarku_backend/internals/features/academics/dashboard/controller"
	gradeItemController "belajarku_backend/internals/features/academics/grade_items/controller"
	recordController "belajarku_backend/internals/features/academics/records/controller"
	courseController "belajarku_backend/internals/features/academics/student_courses/controller"
)

// AcademicPublicRoutes: katalog bisa dibaca tanpa login.
func AcademicPublicRoutes(public fiber.Router, db *gorm.DB) {
	catalog := catalogController.NewCatalogCourseController(db)

	public.Get("/catalog-courses", catalog.GetAll)
	public.Get("/catalog-courses/:id", catalog.GetByID)
}

func AcademicUserRoutes(private fiber.Router, db *gorm.DB) {
	catalog := catalogController.NewCatalogCourseController(db)
	courses := courseController.NewStudentCourseController(db)
	items := gradeItemController.NewGradeItemController(db)
	records := recordController.NewAcademicRecordController(db)
	dashboard := dashboardController.NewDashboardController(db)

	private.Post("/catalog-courses", catalog.Create)
	private.Put("/catalog-courses/:id", catalog.Update)
	private.Delete("/catalog-courses/:id", catalog.Delete)
	private.Post("/catalog-courses/:id/prerequisites", catalog.AddPrerequisite)

	private.Get("/courses", courses.GetAll)
	private.Post("/courses", courses.Create)
	private.Get("/courses/:id", courses.GetByID)
	private.Put("/courses/:id", courses.Update)
	private.Delete("/courses/:id", courses.Delete)
	private.Post("/courses/:id/finish", courses.Finish)

	private.Get("/courses/:course_id/grade-items", items.GetByCourse)
	private.Post("/courses/:course_id/grade-items", items.Create)
	private.Put("/courses/:course_id/grade-items/:id", items.Update)
	private.Delete("/courses/:course_id/grade-items/:id", items.Delete)

	private.Get("/records/me", records.GetMine)
	private.Get("/records/me/entries", records.GetMyEntries)
	private.Get("/records/me/audit", records.AuditMine)

	private.Get("/dashboard", dashboard.Get)
	private.Get("/dashboard/transcript", dashboard.ExportTranscript)
}
