package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/academics/dashboard/dto"
	gradingService "belajarku_backend/internals/features/academics/grading/service"
	recordDTO "belajarku_backend/internals/features/academics/records/dto"
	recordModel "belajarku_backend/internals/features/academics/records/model"
	courseDTO "belajarku_backend/internals/features/academics/student_courses/dto"
	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
	helper "belajarku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/u/dashboard
// Semua agregasi dihitung ulang per request (tanpa cache): IPS + persen dari
// SemesterAggregator, huruf/risiko per mata kuliah dari tabel konversi, record
// kumulatif dibaca apa adanya.
func (ctrl *DashboardController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var courses []courseModel.StudentCourseModel
	if err := ctrl.DB.
		Where("student_course_user_id = ? AND student_course_finalized_at IS NULL", userID).
		Order("student_course_created_at ASC").
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil mata kuliah")
	}

	open := make([]dto.CourseStatusDTO, 0, len(courses))
	for _, course := range courses {
		status := gradingService.StatusForMark(course.StudentCourseCurrentMark)
		open = append(open, dto.CourseStatusDTO{
			StudentCourseDTO: courseDTO.ToStudentCourseDTO(course),
			StatusMessage:    gradingService.StatusMessage(status),
		})
	}

	var rec recordModel.AcademicRecordModel
	err = ctrl.DB.Where("academic_record_user_id = ?", userID).First(&rec).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil record")
	}

	return helper.Success(c, "OK", dto.DashboardDTO{
		OpenCourses: open,
		Semester:    gradingService.ComputeSemesterSummary(courses),
		Record:      recordDTO.ToAcademicRecordDTO(rec),
	})
}
