package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeItemModel merepresentasikan satu komponen nilai pada student_course
type GradeItemModel struct {
	GradeItemID       uuid.UUID `gorm:"column:grade_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_item_id"`
	GradeItemCourseID uuid.UUID `gorm:"column:grade_item_course_id;type:uuid;not null;index" json:"grade_item_course_id"`
	GradeItemKind     string    `gorm:"column:grade_item_kind;size:20;not null" json:"grade_item_kind"`
	GradeItemTitle    string    `gorm:"column:grade_item_title;size:150;not null" json:"grade_item_title"`
	GradeItemScore    float64   `gorm:"column:grade_item_score;not null" json:"grade_item_score"`
	GradeItemMaxScore float64   `gorm:"column:grade_item_max_score;not null" json:"grade_item_max_score"`

	// Bobot dalam poin persen. Sengaja tidak divalidasi total ≤ 100 saat tulis:
	// item bonus boleh membuat total lewat 100.
	GradeItemWeight float64 `gorm:"column:grade_item_weight;not null" json:"grade_item_weight"`

	GradeItemCreatedAt time.Time `gorm:"column:grade_item_created_at;autoCreateTime" json:"grade_item_created_at"`
	GradeItemUpdatedAt time.Time `gorm:"column:grade_item_updated_at;autoUpdateTime" json:"grade_item_updated_at"`
}

func (GradeItemModel) TableName() string {
	return "grade_items"
}
