package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicRecordModel: satu baris per user, dibuat lazy saat finalisasi pertama.
// Hanya berubah lewat update aditif di grading service, tidak pernah diedit user.
type AcademicRecordModel struct {
	AcademicRecordID               uuid.UUID `gorm:"column:academic_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_record_id"`
	AcademicRecordUserID           uuid.UUID `gorm:"column:academic_record_user_id;type:uuid;not null;uniqueIndex" json:"academic_record_user_id"`
	AcademicRecordCGPA             float64   `gorm:"column:academic_record_cgpa;not null;default:0" json:"academic_record_cgpa"`
	AcademicRecordCumulativePercent float64  `gorm:"column:academic_record_cumulative_percent;not null;default:0" json:"academic_record_cumulative_percent"`
	AcademicRecordCreditsCompleted int       `gorm:"column:academic_record_credits_completed;not null;default:0" json:"academic_record_credits_completed"`
	AcademicRecordCreditsCarried   int       `gorm:"column:academic_record_credits_carried;not null;default:0" json:"academic_record_credits_carried"`
	AcademicRecordCreatedAt        time.Time `gorm:"column:academic_record_created_at;autoCreateTime" json:"academic_record_created_at"`
	AcademicRecordUpdatedAt        time.Time `gorm:"column:academic_record_updated_at;autoUpdateTime" json:"academic_record_updated_at"`
}

func (AcademicRecordModel) TableName() string {
	return "academic_records"
}
