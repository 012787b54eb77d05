package controller

import (
	"bytes"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	gradingService "belajarku_backend/internals/features/academics/grading/service"
	recordModel "belajarku_backend/internals/features/academics/records/model"
	helper "belajarku_backend/internals/helpers"
)

// GET /api/u/dashboard/transcript
// Ekspor transkrip XLSX: satu baris per mata kuliah final (dari ledger) plus
// ringkasan record kumulatif di bawahnya.
func (ctrl *DashboardController) ExportTranscript(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var entries []recordModel.AcademicRecordEntryModel
	if err := ctrl.DB.
		Where("academic_record_entry_user_id = ?", userID).
		Order("academic_record_entry_finalized_at ASC").
		Find(&entries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil ledger")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[ERROR] Gagal tutup workbook: %v", err)
		}
	}()

	sheet := "Transkrip"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Mata Kuliah", "SKS", "Nilai", "Huruf", "Poin GPA", "Status", "Difinalisasi"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		band := gradingService.GradeFor(e.AcademicRecordEntryMark)
		status := "Lulus"
		if !e.AcademicRecordEntryPassed {
			status = "Gagal"
		}
		values := []any{
			e.AcademicRecordEntryCourseTitle,
			e.AcademicRecordEntryCreditHours,
			e.AcademicRecordEntryMark,
			band.Letter,
			band.Points,
			status,
			e.AcademicRecordEntryFinalizedAt.Format("2006-01-02"),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// ringkasan kumulatif dari fold ledger (sumber yang sama dengan audit)
	derived := gradingService.DeriveRecordFromEntries(userID, entries)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "CGPA")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), derived.AcademicRecordCGPA)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Persen Kumulatif")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), derived.AcademicRecordCumulativePercent)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "SKS Lulus")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), derived.AcademicRecordCreditsCompleted)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "SKS Mengulang")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), derived.AcademicRecordCreditsCarried)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		log.Printf("[ERROR] Gagal tulis workbook: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat transkrip")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transkrip.xlsx"`)
	return c.Send(buf.Bytes())
}
