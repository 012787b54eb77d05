package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/academics/grade_items/dto"
	"belajarku_backend/internals/features/academics/grade_items/model"
	gradingService "belajarku_backend/internals/features/academics/grading/service"
	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
	helper "belajarku_backend/internals/helpers"
)

type GradeItemController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradeItemController(db *gorm.DB) *GradeItemController {
	return &GradeItemController{DB: db, Validate: validator.New()}
}

// parseCourseID membaca path param :course_id. Nama param harus sama persis
// dengan deklarasi route.
func parseCourseID(c *fiber.Ctx) (uuid.UUID, error) {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}
	return courseID, nil
}

// ambil course milik user (cek ownership sekalian)
func findOwnedCourse(tx *gorm.DB, courseID, userID uuid.UUID) (*courseModel.StudentCourseModel, error) {
	var course courseModel.StudentCourseModel
	if err := tx.
		Where("student_course_id = ? AND student_course_user_id = ?", courseID, userID).
		First(&course).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
	}
	return &course, nil
}

// GET /api/u/courses/:course_id/grade-items
func (ctrl *GradeItemController) GetByCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := parseCourseID(c)
	if err != nil {
		return err
	}
	if _, err := findOwnedCourse(ctrl.DB, courseID, userID); err != nil {
		return err
	}

	var items []model.GradeItemModel
	if err := ctrl.DB.
		Where("grade_item_course_id = ?", courseID).
		Order("grade_item_created_at ASC").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil grade items")
	}

	out := make([]dto.GradeItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToGradeItemDTO(it))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/u/courses/:course_id/grade-items
// Tulis item → hitung ulang nilai → cek finalisasi otomatis: satu paket, satu
// transaksi.
func (ctrl *GradeItemController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := parseCourseID(c)
	if err != nil {
		return err
	}

	var body dto.CreateGradeItemRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	// validasi caller: skor tidak boleh melewati skor maksimal, SEBELUM agregator jalan
	if body.GradeItemScore > body.GradeItemMaxScore {
		return fiber.NewError(fiber.StatusBadRequest, "Skor tidak boleh melebihi skor maksimal")
	}

	item := model.GradeItemModel{
		GradeItemCourseID: courseID,
		GradeItemKind:     body.GradeItemKind,
		GradeItemTitle:    body.GradeItemTitle,
		GradeItemScore:    body.GradeItemScore,
		GradeItemMaxScore: body.GradeItemMaxScore,
		GradeItemWeight:   body.GradeItemWeight,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		course, err := findOwnedCourse(tx, courseID, userID)
		if err != nil {
			return err
		}
		if err := tx.Create(&item).Error; err != nil {
			log.Printf("[ERROR] Gagal membuat grade item: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan grade item")
		}
		return gradingService.RecomputeAndMaybeFinalize(tx, course)
	})
	if err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade item dibuat", dto.ToGradeItemDTO(item))
}

// PUT /api/u/courses/:course_id/grade-items/:id
func (ctrl *GradeItemController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Grade item ID tidak valid")
	}

	var body dto.UpdateGradeItemRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.GradeItemModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "grade_item_id = ?", itemID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Grade item tidak ditemukan")
		}
		course, err := findOwnedCourse(tx, item.GradeItemCourseID, userID)
		if err != nil {
			return err
		}

		if body.GradeItemKind != nil {
			item.GradeItemKind = *body.GradeItemKind
		}
		if body.GradeItemTitle != nil {
			item.GradeItemTitle = *body.GradeItemTitle
		}
		if body.GradeItemScore != nil {
			item.GradeItemScore = *body.GradeItemScore
		}
		if body.GradeItemMaxScore != nil {
			item.GradeItemMaxScore = *body.GradeItemMaxScore
		}
		if body.GradeItemWeight != nil {
			item.GradeItemWeight = *body.GradeItemWeight
		}
		if item.GradeItemScore > item.GradeItemMaxScore {
			return fiber.NewError(fiber.StatusBadRequest, "Skor tidak boleh melebihi skor maksimal")
		}

		if err := tx.Save(&item).Error; err != nil {
			log.Printf("[ERROR] Gagal update grade item: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update grade item")
		}
		return gradingService.RecomputeAndMaybeFinalize(tx, course)
	})
	if err != nil {
		return err
	}

	return helper.Success(c, "Grade item diperbarui", dto.ToGradeItemDTO(item))
}

// DELETE /api/u/courses/:course_id/grade-items/:id
// Hapus juga memicu hitung ulang: agregasinya selalu dari set penuh saat ini.
func (ctrl *GradeItemController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Grade item ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var item model.GradeItemModel
		if err := tx.First(&item, "grade_item_id = ?", itemID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Grade item tidak ditemukan")
		}
		course, err := findOwnedCourse(tx, item.GradeItemCourseID, userID)
		if err != nil {
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hapus grade item")
		}
		return gradingService.RecomputeAndMaybeFinalize(tx, course)
	})
	if err != nil {
		return err
	}

	return helper.Success(c, "Grade item dihapus", nil)
}
