package dto

import (
	"time"

	"belajarku_backend/internals/features/academics/grade_items/model"
)

// ====================
// Request DTO
// ====================
type CreateGradeItemRequest struct {
	GradeItemKind     string  `json:"grade_item_kind" validate:"required,oneof=quiz midterm final assignment project lab presentation"`
	GradeItemTitle    string  `json:"grade_item_title" validate:"required,max=150"`
	GradeItemScore    float64 `json:"grade_item_score" validate:"gte=0"`
	GradeItemMaxScore float64 `json:"grade_item_max_score" validate:"gt=0"`
	// bobot bebas: total > 100 dibiarkan untuk item bonus
	GradeItemWeight float64 `json:"grade_item_weight"`
}

type UpdateGradeItemRequest struct {
	GradeItemKind     *string  `json:"grade_item_kind,omitempty" validate:"omitempty,oneof=quiz midterm final assignment project lab presentation"`
	GradeItemTitle    *string  `json:"grade_item_title,omitempty" validate:"omitempty,max=150"`
	GradeItemScore    *float64 `json:"grade_item_score,omitempty" validate:"omitempty,gte=0"`
	GradeItemMaxScore *float64 `json:"grade_item_max_score,omitempty" validate:"omitempty,gt=0"`
	GradeItemWeight   *float64 `json:"grade_item_weight,omitempty"`
}

// ====================
// Response DTO
// ====================
type GradeItemDTO struct {
	GradeItemID        string    `json:"grade_item_id"`
	GradeItemCourseID  string    `json:"grade_item_course_id"`
	GradeItemKind      string    `json:"grade_item_kind"`
	GradeItemTitle     string    `json:"grade_item_title"`
	GradeItemScore     float64   `json:"grade_item_score"`
	GradeItemMaxScore  float64   `json:"grade_item_max_score"`
	GradeItemWeight    float64   `json:"grade_item_weight"`
	GradeItemCreatedAt time.Time `json:"grade_item_created_at"`
}

// ====================
// Converter
// ====================
func ToGradeItemDTO(m model.GradeItemModel) GradeItemDTO {
	return GradeItemDTO{
		GradeItemID:        m.GradeItemID.String(),
		GradeItemCourseID:  m.GradeItemCourseID.String(),
		GradeItemKind:      m.GradeItemKind,
		GradeItemTitle:     m.GradeItemTitle,
		GradeItemScore:     m.GradeItemScore,
		GradeItemMaxScore:  m.GradeItemMaxScore,
		GradeItemWeight:    m.GradeItemWeight,
		GradeItemCreatedAt: m.GradeItemCreatedAt,
	}
}
