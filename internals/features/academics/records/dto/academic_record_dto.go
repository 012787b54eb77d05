package dto

import (
	"time"

	"belajarku_backend/internals/features/academics/records/model"
)

// ====================
// Response DTO
// ====================
type AcademicRecordDTO struct {
	AcademicRecordCGPA              float64   `json:"academic_record_cgpa"`
	AcademicRecordCumulativePercent float64   `json:"academic_record_cumulative_percent"`
	AcademicRecordCreditsCompleted  int       `json:"academic_record_credits_completed"`
	AcademicRecordCreditsCarried    int       `json:"academic_record_credits_carried"`
	AcademicRecordUpdatedAt         time.Time `json:"academic_record_updated_at"`
}

type AcademicRecordEntryDTO struct {
	AcademicRecordEntryCourseID    string    `json:"course_id"`
	AcademicRecordEntryCourseTitle string    `json:"course_title"`
	AcademicRecordEntryMark        float64   `json:"mark"`
	AcademicRecordEntryCreditHours int       `json:"credit_hours"`
	AcademicRecordEntryPassed      bool      `json:"passed"`
	AcademicRecordEntryFinalizedAt time.Time `json:"finalized_at"`
}

// AuditDTO membandingkan record tersimpan dengan hasil fold ulang atas ledger
type AuditDTO struct {
	Stored     AcademicRecordDTO `json:"stored"`
	Derived    AcademicRecordDTO `json:"derived"`
	Consistent bool              `json:"consistent"`
}

// ====================
// Converter
// ====================
func ToAcademicRecordDTO(m model.AcademicRecordModel) AcademicRecordDTO {
	return AcademicRecordDTO{
		AcademicRecordCGPA:              m.AcademicRecordCGPA,
		AcademicRecordCumulativePercent: m.AcademicRecordCumulativePercent,
		AcademicRecordCreditsCompleted:  m.AcademicRecordCreditsCompleted,
		AcademicRecordCreditsCarried:    m.AcademicRecordCreditsCarried,
		AcademicRecordUpdatedAt:         m.AcademicRecordUpdatedAt,
	}
}

func ToAcademicRecordEntryDTO(m model.AcademicRecordEntryModel) AcademicRecordEntryDTO {
	return AcademicRecordEntryDTO{
		AcademicRecordEntryCourseID:    m.AcademicRecordEntryCourseID.String(),
		AcademicRecordEntryCourseTitle: m.AcademicRecordEntryCourseTitle,
		AcademicRecordEntryMark:        m.AcademicRecordEntryMark,
		AcademicRecordEntryCreditHours: m.AcademicRecordEntryCreditHours,
		AcademicRecordEntryPassed:      m.AcademicRecordEntryPassed,
		AcademicRecordEntryFinalizedAt: m.AcademicRecordEntryFinalizedAt,
	}
}
