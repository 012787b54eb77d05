package model

import (
	"time"

	"github.com/google/uuid"
)

// CatalogCourseModel merepresentasikan katalog mata kuliah global
type CatalogCourseModel struct {
	CatalogCourseID          uuid.UUID `gorm:"column:catalog_course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"catalog_course_id"`
	CatalogCourseCode        string    `gorm:"column:catalog_course_code;size:20;not null;unique" json:"catalog_course_code"`
	CatalogCourseTitle       string    `gorm:"column:catalog_course_title;size:150;not null" json:"catalog_course_title"`
	CatalogCourseDescription *string   `gorm:"column:catalog_course_description;type:text" json:"catalog_course_description,omitempty"`
	CatalogCourseCreditHours int       `gorm:"column:catalog_course_credit_hours;not null;default:3" json:"catalog_course_credit_hours"`
	CatalogCourseCreatedAt   time.Time `gorm:"column:catalog_course_created_at;autoCreateTime" json:"catalog_course_created_at"`
	CatalogCourseUpdatedAt   time.Time `gorm:"column:catalog_course_updated_at;autoUpdateTime" json:"catalog_course_updated_at"`

	// Relations
	Prerequisites []CatalogCourseModel `gorm:"many2many:catalog_course_prerequisites;foreignKey:CatalogCourseID;joinForeignKey:CatalogCoursePrereqCourseID;References:CatalogCourseID;joinReferences:CatalogCoursePrereqRequiresID" json:"prerequisites,omitempty"`
}

func (CatalogCourseModel) TableName() string {
	return "catalog_courses"
}
