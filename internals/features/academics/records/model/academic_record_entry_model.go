package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicRecordEntryModel: ledger append-only, satu baris per mata kuliah yang
// difinalisasi. Dipakai untuk audit: record kumulatif harus bisa diturunkan
// ulang dari fold atas ledger ini.
type AcademicRecordEntryModel struct {
	AcademicRecordEntryID          uuid.UUID `gorm:"column:academic_record_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_record_entry_id"`
	AcademicRecordEntryUserID      uuid.UUID `gorm:"column:academic_record_entry_user_id;type:uuid;not null;index" json:"academic_record_entry_user_id"`
	AcademicRecordEntryCourseID    uuid.UUID `gorm:"column:academic_record_entry_course_id;type:uuid;not null;uniqueIndex" json:"academic_record_entry_course_id"`
	AcademicRecordEntryCourseTitle string    `gorm:"column:academic_record_entry_course_title;size:150;not null" json:"academic_record_entry_course_title"`
	AcademicRecordEntryMark        float64   `gorm:"column:academic_record_entry_mark;not null" json:"academic_record_entry_mark"`
	AcademicRecordEntryCreditHours int       `gorm:"column:academic_record_entry_credit_hours;not null" json:"academic_record_entry_credit_hours"`
	AcademicRecordEntryPassed      bool      `gorm:"column:academic_record_entry_passed;not null" json:"academic_record_entry_passed"`
	AcademicRecordEntryFinalizedAt time.Time `gorm:"column:academic_record_entry_finalized_at;type:timestamptz;not null" json:"academic_record_entry_finalized_at"`
}

func (AcademicRecordEntryModel) TableName() string {
	return "academic_record_entries"
}
