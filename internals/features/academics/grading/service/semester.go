package service

import (
	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
)

// SemesterSummary: hasil agregasi lintas mata kuliah yang masih berjalan.
// Murni untuk tampilan dashboard, tidak pernah disimpan.
type SemesterSummary struct {
	GPA     float64 `json:"semester_gpa"`
	Percent float64 `json:"semester_percent"`
	Courses int     `json:"courses_counted"`
}

// ComputeSemesterSummary menghitung IPS + persen semester berjalan dengan bobot
// SKS, dari mata kuliah OPEN milik user. Mata kuliah tanpa nilai (mark nil)
// atau dengan SKS ≤ 0 dikeluarkan dari pembilang DAN penyebut — bukan dihitung
// nol. Tanpa mata kuliah eligible hasilnya 0 (bukan nil).
func ComputeSemesterSummary(courses []courseModel.StudentCourseModel) SemesterSummary {
	var gpaSum, pctSum, creditSum float64
	counted := 0

	for _, course := range courses {
		if course.IsFinalized() {
			continue
		}
		if course.StudentCourseCurrentMark == nil {
			continue
		}
		if course.StudentCourseCreditHours <= 0 {
			continue
		}
		h := float64(course.StudentCourseCreditHours)
		mark := *course.StudentCourseCurrentMark
		gpaSum += GradePoints(mark) * h
		pctSum += mark * h
		creditSum += h
		counted++
	}

	if creditSum == 0 {
		return SemesterSummary{}
	}
	return SemesterSummary{
		GPA:     Round2(gpaSum / creditSum),
		Percent: Round2(pctSum / creditSum),
		Courses: counted,
	}
}
