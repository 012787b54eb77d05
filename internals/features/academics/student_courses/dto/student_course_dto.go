package dto

import (
	"time"

	gradingService "belajarku_backend/internals/features/academics/grading/service"
	"belajarku_backend/internals/features/academics/student_courses/model"
)

// ====================
// Request DTO
// ====================
type CreateStudentCourseRequest struct {
	StudentCourseTitle       string  `json:"student_course_title" validate:"required,max=150"`
	StudentCourseCatalogID   *string `json:"student_course_catalog_id,omitempty" validate:"omitempty,uuid"`
	StudentCourseSemester    *string `json:"student_course_semester,omitempty" validate:"omitempty,max=30"`
	StudentCourseCreditHours int     `json:"student_course_credit_hours" validate:"required,min=1,max=12"`
	StudentCourseTargetGrade *string `json:"student_course_target_grade,omitempty" validate:"omitempty,oneof=A A- B+ B B- C+ C C- D+ D"`
}

type UpdateStudentCourseRequest struct {
	StudentCourseTitle       *string `json:"student_course_title,omitempty" validate:"omitempty,max=150"`
	StudentCourseSemester    *string `json:"student_course_semester,omitempty" validate:"omitempty,max=30"`
	StudentCourseCreditHours *int    `json:"student_course_credit_hours,omitempty" validate:"omitempty,min=1,max=12"`
	StudentCourseTargetGrade *string `json:"student_course_target_grade,omitempty" validate:"omitempty,oneof=A A- B+ B B- C+ C C- D+ D"`
}

// ====================
// Response DTO
// ====================
type StudentCourseDTO struct {
	StudentCourseID          string     `json:"student_course_id"`
	StudentCourseCatalogID   *string    `json:"student_course_catalog_id,omitempty"`
	StudentCourseTitle       string     `json:"student_course_title"`
	StudentCourseSemester    *string    `json:"student_course_semester,omitempty"`
	StudentCourseCreditHours int        `json:"student_course_credit_hours"`
	StudentCourseTargetGrade *string    `json:"student_course_target_grade,omitempty"`
	StudentCourseCurrentMark *float64   `json:"student_course_current_mark,omitempty"`
	StudentCourseLetter      *string    `json:"student_course_letter,omitempty"`
	StudentCourseGradePoints *float64   `json:"student_course_grade_points,omitempty"`
	StudentCourseRiskStatus  string     `json:"student_course_risk_status"`
	StudentCourseStatus      string     `json:"student_course_status"`
	StudentCourseFinalizedAt *time.Time `json:"student_course_finalized_at,omitempty"`
	StudentCoursePassed      *bool      `json:"student_course_passed,omitempty"`
	StudentCourseCreatedAt   time.Time  `json:"student_course_created_at"`
}

// ====================
// Converter
// ====================
// Huruf, poin GPA, dan status risiko selalu diturunkan segar dari current_mark
// lewat tabel konversi — tidak pernah disimpan.
func ToStudentCourseDTO(m model.StudentCourseModel) StudentCourseDTO {
	out := StudentCourseDTO{
		StudentCourseID:          m.StudentCourseID.String(),
		StudentCourseTitle:       m.StudentCourseTitle,
		StudentCourseSemester:    m.StudentCourseSemester,
		StudentCourseCreditHours: m.StudentCourseCreditHours,
		StudentCourseTargetGrade: m.StudentCourseTargetGrade,
		StudentCourseCurrentMark: m.StudentCourseCurrentMark,
		StudentCourseRiskStatus:  gradingService.StatusForMark(m.StudentCourseCurrentMark),
		StudentCourseStatus:      m.Status(),
		StudentCourseFinalizedAt: m.StudentCourseFinalizedAt,
		StudentCoursePassed:      m.StudentCoursePassed,
		StudentCourseCreatedAt:   m.StudentCourseCreatedAt,
	}
	if m.StudentCourseCatalogID != nil {
		s := m.StudentCourseCatalogID.String()
		out.StudentCourseCatalogID = &s
	}
	if m.StudentCourseCurrentMark != nil {
		band := gradingService.GradeFor(*m.StudentCourseCurrentMark)
		out.StudentCourseLetter = &band.Letter
		out.StudentCourseGradePoints = &band.Points
	}
	return out
}
