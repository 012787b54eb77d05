package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
	noteModel "belajarku_backend/internals/features/notes/notes/model"
)

// StatusMessage: teks rekomendasi per status risiko untuk ditampilkan / ditulis
// sebagai catatan advisory.
func StatusMessage(status string) string {
	switch status {
	case constants.RiskSafe:
		return "Nilai kamu aman. Pertahankan ritme belajarmu!"
	case constants.RiskNormal:
		return "Nilai kamu masih wajar. Sedikit dorongan lagi untuk naik ke zona aman."
	case constants.RiskAtRisk:
		return "Nilai kamu mulai berisiko. Coba review materi dan tambah jam belajar minggu ini."
	default:
		return "Nilai kamu dalam risiko tinggi. Prioritaskan mata kuliah ini dan pertimbangkan minta bantuan dosen/teman."
	}
}

func statusSeverity(status string) int {
	switch status {
	case constants.RiskSafe:
		return 0
	case constants.RiskNormal:
		return 1
	case constants.RiskAtRisk:
		return 2
	default:
		return 3
	}
}

// NotifyStatusChange menulis catatan advisory ke subsistem notes saat status
// risiko sebuah mata kuliah memburuk. Best effort: gagal menulis catatan tidak
// boleh menggagalkan transaksi nilai.
func NotifyStatusChange(tx *gorm.DB, course *courseModel.StudentCourseModel, oldMark, newMark *float64) {
	oldStatus := StatusForMark(oldMark)
	newStatus := StatusForMark(newMark)
	if statusSeverity(newStatus) <= statusSeverity(oldStatus) {
		return
	}

	courseID := course.StudentCourseID
	note := noteModel.NoteModel{
		NoteUserID:   course.StudentCourseUserID,
		NoteCourseID: &courseID,
		NoteTitle:    fmt.Sprintf("Status nilai %s: %s", course.StudentCourseTitle, newStatus),
		NoteContent:  StatusMessage(newStatus),
		NoteTags:     []string{"advisory", newStatus},
		NoteKind:     "advisory",
		NoteIsSystem: true,
	}
	if err := tx.Create(&note).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat catatan advisory: %v", err)
	}
}
