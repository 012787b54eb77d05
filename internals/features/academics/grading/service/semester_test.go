package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	courseModel "belajarku_backend/internals/features/academics/student_courses/model"
)

func openCourse(credits int, mark *float64) courseModel.StudentCourseModel {
	return courseModel.StudentCourseModel{
		StudentCourseCreditHours: credits,
		StudentCourseCurrentMark: mark,
	}
}

func fptr(v float64) *float64 { return &v }

// Mata kuliah tanpa nilai dikeluarkan total, SKS-nya tidak masuk penyebut
func TestSemesterIgnoresNilMarkCourses(t *testing.T) {
	courses := []courseModel.StudentCourseModel{
		openCourse(3, nil),
		openCourse(4, fptr(70)),
	}
	sum := ComputeSemesterSummary(courses)

	// hanya mata kuliah 4 SKS yang dihitung
	assert.Equal(t, 2.5, sum.GPA) // 70 → C+ 2.50
	assert.Equal(t, 70.0, sum.Percent)
	assert.Equal(t, 1, sum.Courses)
}

func TestSemesterWeightedByCredits(t *testing.T) {
	courses := []courseModel.StudentCourseModel{
		openCourse(2, fptr(95)), // A  3.75
		openCourse(4, fptr(65)), // C  2.25
	}
	sum := ComputeSemesterSummary(courses)

	// (3.75*2 + 2.25*4) / 6 = 2.75
	assert.Equal(t, 2.75, sum.GPA)
	// (95*2 + 65*4) / 6 = 75.0
	assert.Equal(t, 75.0, sum.Percent)
}

// SKS ≤ 0 dikeluarkan walau nilainya ada
func TestSemesterExcludesNonPositiveCredits(t *testing.T) {
	courses := []courseModel.StudentCourseModel{
		openCourse(0, fptr(90)),
		openCourse(-1, fptr(90)),
		openCourse(3, fptr(80)),
	}
	sum := ComputeSemesterSummary(courses)

	assert.Equal(t, 3.0, sum.GPA)
	assert.Equal(t, 80.0, sum.Percent)
	assert.Equal(t, 1, sum.Courses)
}

// Tanpa mata kuliah eligible → 0 (bukan nil); caller harus bisa bedakan sendiri
func TestSemesterEmptyIsZero(t *testing.T) {
	sum := ComputeSemesterSummary(nil)
	assert.Equal(t, 0.0, sum.GPA)
	assert.Equal(t, 0.0, sum.Percent)
	assert.Equal(t, 0, sum.Courses)

	sum = ComputeSemesterSummary([]courseModel.StudentCourseModel{openCourse(3, nil)})
	assert.Equal(t, 0.0, sum.GPA)
	assert.Equal(t, 0, sum.Courses)
}

// Mata kuliah yang sudah final tidak masuk agregasi semester berjalan
func TestSemesterExcludesFinalized(t *testing.T) {
	now := time.Now()
	passed := true
	finalized := courseModel.StudentCourseModel{
		StudentCourseCreditHours: 3,
		StudentCourseCurrentMark: fptr(90),
		StudentCourseFinalizedAt: &now,
		StudentCoursePassed:      &passed,
	}
	courses := []courseModel.StudentCourseModel{
		finalized,
		openCourse(3, fptr(60)),
	}
	sum := ComputeSemesterSummary(courses)

	assert.Equal(t, 2.0, sum.GPA) // hanya yang open: 60 → C- 2.00
	assert.Equal(t, 60.0, sum.Percent)
	assert.Equal(t, 1, sum.Courses)
}
