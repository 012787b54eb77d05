package dto

import (
	"belajarku_backend/internals/features/academics/catalog_courses/model"
)

// ====================
// Request DTO
// ====================
type CreateCatalogCourseRequest struct {
	CatalogCourseCode        string  `json:"catalog_course_code" validate:"required,max=20"`
	CatalogCourseTitle       string  `json:"catalog_course_title" validate:"required,max=150"`
	CatalogCourseDescription *string `json:"catalog_course_description,omitempty"`
	CatalogCourseCreditHours int     `json:"catalog_course_credit_hours" validate:"required,min=1,max=12"`
}

type UpdateCatalogCourseRequest struct {
	CatalogCourseTitle       *string `json:"catalog_course_title,omitempty" validate:"omitempty,max=150"`
	CatalogCourseDescription *string `json:"catalog_course_description,omitempty"`
	CatalogCourseCreditHours *int    `json:"catalog_course_credit_hours,omitempty" validate:"omitempty,min=1,max=12"`
}

type AddPrerequisiteRequest struct {
	RequiresCourseID string `json:"requires_course_id" validate:"required,uuid"`
}

// ====================
// Response DTO
// ====================
type CatalogCourseDTO struct {
	CatalogCourseID          string             `json:"catalog_course_id"`
	CatalogCourseCode        string             `json:"catalog_course_code"`
	CatalogCourseTitle       string             `json:"catalog_course_title"`
	CatalogCourseDescription *string            `json:"catalog_course_description,omitempty"`
	CatalogCourseCreditHours int                `json:"catalog_course_credit_hours"`
	Prerequisites            []CatalogCourseDTO `json:"prerequisites,omitempty"`
}

// ====================
// Converter
// ====================
func ToCatalogCourseDTO(m model.CatalogCourseModel) CatalogCourseDTO {
	out := CatalogCourseDTO{
		CatalogCourseID:          m.CatalogCourseID.String(),
		CatalogCourseCode:        m.CatalogCourseCode,
		CatalogCourseTitle:       m.CatalogCourseTitle,
		CatalogCourseDescription: m.CatalogCourseDescription,
		CatalogCourseCreditHours: m.CatalogCourseCreditHours,
	}
	for _, p := range m.Prerequisites {
		// satu level saja, rantai prasyarat tidak di-expand rekursif
		out.Prerequisites = append(out.Prerequisites, CatalogCourseDTO{
			CatalogCourseID:          p.CatalogCourseID.String(),
			CatalogCourseCode:        p.CatalogCourseCode,
			CatalogCourseTitle:       p.CatalogCourseTitle,
			CatalogCourseCreditHours: p.CatalogCourseCreditHours,
		})
	}
	return out
}
