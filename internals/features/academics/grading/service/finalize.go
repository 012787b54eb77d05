package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	itemModel "belajarku_backend/internals/features/academics/grade_items/model"
	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
)

const (
	// Toleransi pembulatan float — sengaja bukan tepat 100
	autoFinalizeWeightThreshold = 99.5
	passMark                    = 50.0
)

// ErrNoMark: finalisasi manual ditolak karena belum ada nilai yang bisa
// dihitung. State mata kuliah tidak berubah.
var ErrNoMark = errors.New("belum ada nilai yang bisa dihitung")

// FinalizeResult membedakan finalisasi pertama kali dari pengulangan, supaya
// caller bisa memutuskan perlu kirim notifikasi atau tidak.
type FinalizeResult struct {
	Finalized bool     `json:"finalized"`
	Already   bool     `json:"already"`
	Passed    bool     `json:"passed"`
	Mark      *float64 `json:"mark,omitempty"`
}

// shouldAutoFinalize: keputusan murni, tanpa efek DB. Finalisasi otomatis
// hanya untuk mata kuliah OPEN dengan nilai non-nil dan total bobot ≥ 99.5.
func shouldAutoFinalize(course *courseModel.StudentCourseModel, items []itemModel.GradeItemModel, mark *float64) bool {
	if course.IsFinalized() {
		return false
	}
	if mark == nil {
		return false
	}
	return TotalWeight(items) >= autoFinalizeWeightThreshold
}

// decideManualFinalize: bagian murni dari FinalizeManually. Sudah final →
// no-op dengan flag Already (state lama dikembalikan apa adanya); nilai nil →
// ErrNoMark; selain itu transisi dengan lulus/gagal dari ambang passMark.
func decideManualFinalize(course *courseModel.StudentCourseModel, mark *float64) (FinalizeResult, error) {
	if course.IsFinalized() {
		passed := course.StudentCoursePassed != nil && *course.StudentCoursePassed
		return FinalizeResult{
			Finalized: true,
			Already:   true,
			Passed:    passed,
			Mark:      course.StudentCourseCurrentMark,
		}, nil
	}
	if mark == nil {
		return FinalizeResult{}, ErrNoMark
	}
	return FinalizeResult{
		Finalized: true,
		Already:   false,
		Passed:    *mark >= passMark,
		Mark:      mark,
	}, nil
}

func loadItems(tx *gorm.DB, courseID any) ([]itemModel.GradeItemModel, error) {
	var items []itemModel.GradeItemModel
	err := tx.Where("grade_item_course_id = ?", courseID).Find(&items).Error
	return items, err
}

// persistMark menulis ulang current_mark (kolom turunan) dari hasil hitung.
func persistMark(tx *gorm.DB, course *courseModel.StudentCourseModel, mark *float64) error {
	if err := tx.Model(&courseModel.StudentCourseModel{}).
		Where("student_course_id = ?", course.StudentCourseID).
		Update("student_course_current_mark", mark).Error; err != nil {
		return err
	}
	course.StudentCourseCurrentMark = mark
	return nil
}

// RecomputeAndMaybeFinalize: dipanggil setelah SETIAP tulis grade item
// (create/update/delete), dalam transaksi yang sama dengan tulisannya.
// Urutannya satu paket: hitung ulang nilai → simpan → cek finalisasi otomatis.
//
// Finalisasi otomatis hanya untuk mata kuliah OPEN: total bobot ≥ 99.5 DAN
// nilai non-nil. Kalau syarat tidak terpenuhi, diam saja (bukan error) dan
// mata kuliah tetap OPEN. Mata kuliah yang sudah final tetap dihitung ulang
// nilainya (invariant current_mark), tapi tidak pernah difinalisasi dua kali.
func RecomputeAndMaybeFinalize(tx *gorm.DB, course *courseModel.StudentCourseModel) error {
	items, err := loadItems(tx, course.StudentCourseID)
	if err != nil {
		return err
	}

	oldMark := course.StudentCourseCurrentMark
	mark := ComputeCourseMark(items)
	if err := persistMark(tx, course, mark); err != nil {
		return err
	}

	NotifyStatusChange(tx, course, oldMark, mark)

	if !shouldAutoFinalize(course, items, mark) {
		// skip senyap: sudah final, nilai nil, atau bobot belum cukup
		return nil
	}
	return finalize(tx, course, *mark)
}

// FinalizeManually: aksi eksplisit user, tanpa syarat total bobot.
// Hitung ulang dulu; nilai nil → ErrNoMark tanpa mengubah state; sudah final →
// no-op sukses dengan flag Already.
func FinalizeManually(tx *gorm.DB, course *courseModel.StudentCourseModel) (FinalizeResult, error) {
	if course.IsFinalized() {
		return decideManualFinalize(course, course.StudentCourseCurrentMark)
	}

	items, err := loadItems(tx, course.StudentCourseID)
	if err != nil {
		return FinalizeResult{}, err
	}
	mark := ComputeCourseMark(items)
	if err := persistMark(tx, course, mark); err != nil {
		return FinalizeResult{}, err
	}

	res, err := decideManualFinalize(course, mark)
	if err != nil {
		return FinalizeResult{}, err
	}
	if err := finalize(tx, course, *mark); err != nil {
		return FinalizeResult{}, err
	}
	return res, nil
}

// finalize mengeksekusi transisi satu arah OPEN → FINALIZED(passed|failed),
// tepat sekali per mata kuliah. finalized_at dan passed ditulis dalam SATU
// update supaya dua kolom nullable itu tidak pernah belah, lalu record
// kumulatif + ledger diisi dalam transaksi yang sama.
func finalize(tx *gorm.DB, course *courseModel.StudentCourseModel, mark float64) error {
	now := time.Now().UTC()
	passed := mark >= passMark

	if err := tx.Model(&courseModel.StudentCourseModel{}).
		Where("student_course_id = ? AND student_course_finalized_at IS NULL", course.StudentCourseID).
		Updates(map[string]any{
			"student_course_current_mark": mark,
			"student_course_finalized_at": now,
			"student_course_passed":       passed,
		}).Error; err != nil {
		return err
	}

	course.StudentCourseCurrentMark = &mark
	course.StudentCourseFinalizedAt = &now
	course.StudentCoursePassed = &passed

	return ApplyToRecord(tx, course, mark, passed, now)
}
