package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	recordModel "belajarku_backend/internals/features/academics/records/model"
	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
)

// AccumulateRecord menerapkan aturan rata-rata berjalan berbobot SKS pada satu
// record kumulatif: record lama diperlakukan seperti satu "mata kuliah virtual"
// yang membawa seluruh SKS lulus di rata-rata lama.
//
// Lulus: CGPA & persen kumulatif digeser oleh (poin GPA, nilai) mata kuliah
// baru, credits_completed bertambah. Gagal: hanya credits_carried bertambah —
// nilai mata kuliah gagal sama sekali tidak masuk rata-rata pencapaian. Itu
// kebijakan akademik yang disengaja, bukan bug.
func AccumulateRecord(rec recordModel.AcademicRecordModel, creditHours int, mark float64, passed bool) recordModel.AcademicRecordModel {
	if !passed {
		rec.AcademicRecordCreditsCarried += creditHours
		return rec
	}

	h := float64(creditHours)
	old := float64(rec.AcademicRecordCreditsCompleted)
	total := old + h
	if total > 0 {
		points := GradePoints(mark)
		rec.AcademicRecordCGPA = Round2((rec.AcademicRecordCGPA*old + points*h) / total)
		rec.AcademicRecordCumulativePercent = Round2((rec.AcademicRecordCumulativePercent*old + mark*h) / total)
	}
	rec.AcademicRecordCreditsCompleted += creditHours
	return rec
}

// ApplyToRecord menulis hasil finalisasi satu mata kuliah ke record user
// (dibuat lazy saat finalisasi pertama) plus satu baris ledger append-only.
// Dipanggil tepat sekali per mata kuliah, dijaga oleh state machine finalisasi,
// dan harus berada dalam transaksi yang sama dengan update finalized_at.
func ApplyToRecord(tx *gorm.DB, course *courseModel.StudentCourseModel, mark float64, passed bool, finalizedAt time.Time) error {
	userID := course.StudentCourseUserID

	var rec recordModel.AcademicRecordModel
	err := tx.Where("academic_record_user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = recordModel.AcademicRecordModel{AcademicRecordUserID: userID}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	updated := AccumulateRecord(rec, course.StudentCourseCreditHours, mark, passed)
	if err := tx.Model(&recordModel.AcademicRecordModel{}).
		Where("academic_record_id = ?", rec.AcademicRecordID).
		Updates(map[string]any{
			"academic_record_cgpa":               updated.AcademicRecordCGPA,
			"academic_record_cumulative_percent": updated.AcademicRecordCumulativePercent,
			"academic_record_credits_completed":  updated.AcademicRecordCreditsCompleted,
			"academic_record_credits_carried":    updated.AcademicRecordCreditsCarried,
		}).Error; err != nil {
		return err
	}

	entry := recordModel.AcademicRecordEntryModel{
		AcademicRecordEntryUserID:      userID,
		AcademicRecordEntryCourseID:    course.StudentCourseID,
		AcademicRecordEntryCourseTitle: course.StudentCourseTitle,
		AcademicRecordEntryMark:        mark,
		AcademicRecordEntryCreditHours: course.StudentCourseCreditHours,
		AcademicRecordEntryPassed:      passed,
		AcademicRecordEntryFinalizedAt: finalizedAt,
	}
	return tx.Create(&entry).Error
}

// DeriveRecordFromEntries menurunkan ulang record kumulatif sebagai fold murni
// atas ledger. Dipakai endpoint audit untuk membuktikan invariant
// "finalisasi tepat sekali" benar-benar terjaga.
func DeriveRecordFromEntries(userID uuid.UUID, entries []recordModel.AcademicRecordEntryModel) recordModel.AcademicRecordModel {
	rec := recordModel.AcademicRecordModel{AcademicRecordUserID: userID}
	for _, e := range entries {
		rec = AccumulateRecord(rec, e.AcademicRecordEntryCreditHours, e.AcademicRecordEntryMark, e.AcademicRecordEntryPassed)
	}
	return rec
}
