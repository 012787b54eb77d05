package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "belajarku_backend/internals/features/academics/catalog_courses/model"
	itemModel "belajarku_backend/internals/features/academics/grade_items/model"
	gradingService "belajarku_backend/internals/features/academics/grading/service"
	"belajarku_backend/internals/features/academics/student_courses/dto"
	"belajarku_backend/internals/features/academics/student_courses/model"
	helper "belajarku_backend/internals/helpers"
)

type StudentCourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentCourseController(db *gorm.DB) *StudentCourseController {
	return &StudentCourseController{DB: db, Validate: validator.New()}
}

func (ctrl *StudentCourseController) findOwned(tx *gorm.DB, courseID, userID uuid.UUID) (*model.StudentCourseModel, error) {
	var course model.StudentCourseModel
	if err := tx.
		Where("student_course_id = ? AND student_course_user_id = ?", courseID, userID).
		First(&course).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
	}
	return &course, nil
}

// GET /api/u/courses?semester=&status=
func (ctrl *StudentCourseController) GetAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.StudentCourseModel{}).
		Where("student_course_user_id = ?", userID)
	if sem := c.Query("semester"); sem != "" {
		q = q.Where("student_course_semester = ?", sem)
	}
	switch c.Query("status") {
	case "open":
		q = q.Where("student_course_finalized_at IS NULL")
	case "finalized":
		q = q.Where("student_course_finalized_at IS NOT NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hitung mata kuliah")
	}

	var courses []model.StudentCourseModel
	if err := q.Order("student_course_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil mata kuliah")
	}

	out := make([]dto.StudentCourseDTO, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.ToStudentCourseDTO(course))
	}
	return helper.Success(c, "OK", fiber.Map{
		"courses":    out,
		"pagination": helper.BuildPagination(total, p, len(out)),
	})
}

// GET /api/u/courses/:id
func (ctrl *StudentCourseController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}
	course, err := ctrl.findOwned(ctrl.DB, courseID, userID)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", dto.ToStudentCourseDTO(*course))
}

// POST /api/u/courses — enroll
func (ctrl *StudentCourseController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateStudentCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.StudentCourseModel{
		StudentCourseUserID:      userID,
		StudentCourseTitle:       body.StudentCourseTitle,
		StudentCourseSemester:    body.StudentCourseSemester,
		StudentCourseCreditHours: body.StudentCourseCreditHours,
		StudentCourseTargetGrade: body.StudentCourseTargetGrade,
	}
	if body.StudentCourseCatalogID != nil {
		catalogID, err := uuid.Parse(*body.StudentCourseCatalogID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Catalog ID tidak valid")
		}
		var catalog catalogModel.CatalogCourseModel
		if err := ctrl.DB.First(&catalog, "catalog_course_id = ?", catalogID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mata kuliah katalog tidak ditemukan")
		}
		course.StudentCourseCatalogID = &catalogID
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		log.Printf("[ERROR] Gagal enroll mata kuliah: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal enroll mata kuliah")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Berhasil enroll", dto.ToStudentCourseDTO(course))
}

// PUT /api/u/courses/:id
func (ctrl *StudentCourseController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var body dto.UpdateStudentCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course *model.StudentCourseModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		course, err = ctrl.findOwned(tx, courseID, userID)
		if err != nil {
			return err
		}

		if body.StudentCourseTitle != nil {
			course.StudentCourseTitle = *body.StudentCourseTitle
		}
		if body.StudentCourseSemester != nil {
			course.StudentCourseSemester = body.StudentCourseSemester
		}
		if body.StudentCourseCreditHours != nil {
			if course.IsFinalized() {
				// SKS sudah masuk record kumulatif, tidak boleh digeser lagi
				return fiber.NewError(fiber.StatusBadRequest, "SKS mata kuliah final tidak bisa diubah")
			}
			course.StudentCourseCreditHours = *body.StudentCourseCreditHours
		}
		if body.StudentCourseTargetGrade != nil {
			course.StudentCourseTargetGrade = body.StudentCourseTargetGrade
		}
		return tx.Save(course).Error
	})
	if err != nil {
		return err
	}

	return helper.Success(c, "Mata kuliah diperbarui", dto.ToStudentCourseDTO(*course))
}

// DELETE /api/u/courses/:id — hanya selama masih OPEN
func (ctrl *StudentCourseController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		course, err := ctrl.findOwned(tx, courseID, userID)
		if err != nil {
			return err
		}
		if course.IsFinalized() {
			return fiber.NewError(fiber.StatusBadRequest, "Mata kuliah final tidak bisa dihapus (sudah masuk record)")
		}
		if err := tx.Where("grade_item_course_id = ?", courseID).
			Delete(&itemModel.GradeItemModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus grade items")
		}
		return tx.Delete(course).Error
	})
	if err != nil {
		return err
	}

	return helper.Success(c, "Mata kuliah dihapus", nil)
}

// POST /api/u/courses/:id/finish — finalisasi manual
// Tiga hasil berbeda: sukses pertama kali, sudah final (sukses no-op dengan
// flag already), dan belum ada nilai (error user, state tidak berubah).
func (ctrl *StudentCourseController) Finish(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var result gradingService.FinalizeResult
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		course, err := ctrl.findOwned(tx, courseID, userID)
		if err != nil {
			return err
		}
		result, err = gradingService.FinalizeManually(tx, course)
		return err
	})
	if errors.Is(err, gradingService.ErrNoMark) {
		return fiber.NewError(fiber.StatusBadRequest, "Belum ada nilai yang bisa difinalisasi")
	}
	if err != nil {
		return err
	}

	if result.Already {
		return helper.Success(c, "Mata kuliah sudah final", result)
	}
	return helper.Success(c, "Mata kuliah difinalisasi", result)
}
