package dto

import (
	gradingService "belajarku_backend/internals/features/academics/grading/service"
	recordDTO "belajarku_backend/internals/features/academics/records/dto"
	courseDTO "belajarku_backend/internals/features/academics/student_courses/dto"
)

// DashboardDTO: snapshot hidup — semua nilai turunan dihitung segar per
// request, hanya record kumulatif yang dibaca apa adanya.
type DashboardDTO struct {
	OpenCourses []CourseStatusDTO              `json:"open_courses"`
	Semester    gradingService.SemesterSummary `json:"semester"`
	Record      recordDTO.AcademicRecordDTO    `json:"record"`
}

type CourseStatusDTO struct {
	courseDTO.StudentCourseDTO
	StatusMessage string `json:"status_message"`
}
