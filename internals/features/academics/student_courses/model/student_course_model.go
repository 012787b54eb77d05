package model

import (
	"time"

	"github.com/google/uuid"

	"belajarku_backend/internals/constants"
	catalogModel "belajarku_backend/internals/features/academics/catalog_courses/model"
)

// StudentCourseModel merepresentasikan mata kuliah yang diambil satu user.
// current_mark kolom turunan: selalu hasil hitung ulang dari grade_items, tidak
// pernah ditulis langsung oleh user.
type StudentCourseModel struct {
	StudentCourseID          uuid.UUID  `gorm:"column:student_course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_course_id"`
	StudentCourseUserID      uuid.UUID  `gorm:"column:student_course_user_id;type:uuid;not null;index" json:"student_course_user_id"`
	StudentCourseCatalogID   *uuid.UUID `gorm:"column:student_course_catalog_id;type:uuid" json:"student_course_catalog_id,omitempty"`
	StudentCourseTitle       string     `gorm:"column:student_course_title;size:150;not null" json:"student_course_title"`
	StudentCourseSemester    *string    `gorm:"column:student_course_semester;size:30" json:"student_course_semester,omitempty"`
	StudentCourseCreditHours int        `gorm:"column:student_course_credit_hours;not null;default:3" json:"student_course_credit_hours"`
	StudentCourseTargetGrade *string    `gorm:"column:student_course_target_grade;size:2" json:"student_course_target_grade,omitempty"`

	StudentCourseCurrentMark *float64   `gorm:"column:student_course_current_mark" json:"student_course_current_mark,omitempty"`
	StudentCourseFinalizedAt *time.Time `gorm:"column:student_course_finalized_at;type:timestamptz" json:"student_course_finalized_at,omitempty"`
	StudentCoursePassed      *bool      `gorm:"column:student_course_passed" json:"student_course_passed,omitempty"`

	StudentCourseCreatedAt time.Time `gorm:"column:student_course_created_at;autoCreateTime" json:"student_course_created_at"`
	StudentCourseUpdatedAt time.Time `gorm:"column:student_course_updated_at;autoUpdateTime" json:"student_course_updated_at"`

	// Relations
	Catalog *catalogModel.CatalogCourseModel `gorm:"foreignKey:StudentCourseCatalogID" json:"catalog,omitempty"`
}

func (StudentCourseModel) TableName() string {
	return "student_courses"
}

// IsFinalized: finalized_at != null adalah satu-satunya sumber kebenaran state
func (m *StudentCourseModel) IsFinalized() bool {
	return m.StudentCourseFinalizedAt != nil
}

// Status menurunkan status eksplisit supaya finalized_at & passed tidak pernah
// dibaca terpisah oleh caller.
func (m *StudentCourseModel) Status() string {
	if !m.IsFinalized() {
		return constants.CourseStatusOpen
	}
	if m.StudentCoursePassed != nil && *m.StudentCoursePassed {
		return constants.CourseStatusFinalizedPassed
	}
	return constants.CourseStatusFinalizedFailed
}
