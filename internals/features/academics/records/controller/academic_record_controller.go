package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingService "belajarku_backend/internals/features/academics/grading/service"
	"belajarku_backend/internals/features/academics/records/dto"
	"belajarku_backend/internals/features/academics/records/model"
	helper "belajarku_backend/internals/helpers"
)

type AcademicRecordController struct {
	DB *gorm.DB
}

func NewAcademicRecordController(db *gorm.DB) *AcademicRecordController {
	return &AcademicRecordController{DB: db}
}

// GET /api/u/records/me
// Record dibaca apa adanya — tidak pernah dihitung ulang di jalur baca.
// Belum pernah finalisasi → record nol (record baru dibuat lazy saat
// finalisasi pertama).
func (ctrl *AcademicRecordController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rec model.AcademicRecordModel
	err = ctrl.DB.Where("academic_record_user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, "Belum ada mata kuliah final", dto.AcademicRecordDTO{})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil record")
	}

	return helper.Success(c, "OK", dto.ToAcademicRecordDTO(rec))
}

// GET /api/u/records/me/entries — ledger mata kuliah final, urut waktu
func (ctrl *AcademicRecordController) GetMyEntries(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var entries []model.AcademicRecordEntryModel
	if err := ctrl.DB.
		Where("academic_record_entry_user_id = ?", userID).
		Order("academic_record_entry_finalized_at ASC").
		Find(&entries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil ledger")
	}

	out := make([]dto.AcademicRecordEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToAcademicRecordEntryDTO(e))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/records/me/audit
// Turunkan ulang record dari ledger dan bandingkan dengan yang tersimpan.
// Kalau tidak konsisten berarti ada finalisasi dobel / update liar.
func (ctrl *AcademicRecordController) AuditMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var stored model.AcademicRecordModel
	err = ctrl.DB.Where("academic_record_user_id = ?", userID).First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stored = model.AcademicRecordModel{AcademicRecordUserID: userID}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil record")
	}

	var entries []model.AcademicRecordEntryModel
	if err := ctrl.DB.
		Where("academic_record_entry_user_id = ?", userID).
		Order("academic_record_entry_finalized_at ASC").
		Find(&entries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil ledger")
	}

	derived := gradingService.DeriveRecordFromEntries(userID, entries)
	consistent := stored.AcademicRecordCGPA == derived.AcademicRecordCGPA &&
		stored.AcademicRecordCumulativePercent == derived.AcademicRecordCumulativePercent &&
		stored.AcademicRecordCreditsCompleted == derived.AcademicRecordCreditsCompleted &&
		stored.AcademicRecordCreditsCarried == derived.AcademicRecordCreditsCarried

	return helper.Success(c, "OK", dto.AuditDTO{
		Stored:     dto.ToAcademicRecordDTO(stored),
		Derived:    dto.ToAcademicRecordDTO(derived),
		Consistent: consistent,
	})
}
