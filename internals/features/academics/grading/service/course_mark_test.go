package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemModel "belajarku_backend/internals/features/academics/grade_items/model"
)

func item(weight, score, max float64) itemModel.GradeItemModel {
	return itemModel.GradeItemModel{
		GradeItemWeight:   weight,
		GradeItemScore:    score,
		GradeItemMaxScore: max,
	}
}

func TestComputeCourseMarkWeighted(t *testing.T) {
	// (80*40 + 90*60) / 100 = 86.0
	items := []itemModel.GradeItemModel{
		item(40, 80, 100),
		item(60, 90, 100),
	}
	mark := ComputeCourseMark(items)
	require.NotNil(t, mark)
	assert.Equal(t, 86.0, *mark)
	assert.Equal(t, "B+", GradeLetter(*mark))
	assert.Equal(t, 3.25, GradePoints(*mark))
}

func TestComputeCourseMarkEmptyIsNil(t *testing.T) {
	assert.Nil(t, ComputeCourseMark(nil))
	assert.Nil(t, ComputeCourseMark([]itemModel.GradeItemModel{}))
}

// Semua bobot ≤ 0 → nilai nil, BUKAN 0
func TestComputeCourseMarkZeroWeightIsNil(t *testing.T) {
	items := []itemModel.GradeItemModel{
		item(0, 100, 100),
		item(-10, 50, 100),
	}
	assert.Nil(t, ComputeCourseMark(items))
}

// Item berbobot ≤ 0 tidak ikut pembagi
func TestComputeCourseMarkIgnoresNonPositiveWeight(t *testing.T) {
	items := []itemModel.GradeItemModel{
		item(50, 80, 100),
		item(0, 0, 100), // diabaikan, tidak menyeret turun
	}
	mark := ComputeCourseMark(items)
	require.NotNil(t, mark)
	assert.Equal(t, 80.0, *mark)
}

// max_score ≤ 0 dihitung kontribusi 0 persen, bukan division by zero
func TestComputeCourseMarkMaxScoreZero(t *testing.T) {
	items := []itemModel.GradeItemModel{
		item(50, 10, 0),
		item(50, 90, 100),
	}
	mark := ComputeCourseMark(items)
	require.NotNil(t, mark)
	assert.Equal(t, 45.0, *mark)
}

func TestComputeCourseMarkRounding(t *testing.T) {
	// (100*1 + 0*2) / 3 = 33.333... → 33.33
	items := []itemModel.GradeItemModel{
		item(1, 100, 100),
		item(2, 0, 100),
	}
	mark := ComputeCourseMark(items)
	require.NotNil(t, mark)
	assert.Equal(t, 33.33, *mark)
}

func TestComputeCourseMarkClamped(t *testing.T) {
	// skor ekstra melewati max → persen > 100 → di-clamp
	items := []itemModel.GradeItemModel{
		item(100, 150, 100),
	}
	mark := ComputeCourseMark(items)
	require.NotNil(t, mark)
	assert.Equal(t, 100.0, *mark)
}

// Hitung total harus idempotent: set item sama → hasil sama
func TestComputeCourseMarkIdempotent(t *testing.T) {
	items := []itemModel.GradeItemModel{
		item(30, 77, 100),
		item(25, 60, 80),
		item(45, 88, 100),
	}
	first := ComputeCourseMark(items)
	second := ComputeCourseMark(items)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestTotalWeight(t *testing.T) {
	items := []itemModel.GradeItemModel{
		item(40, 0, 100),
		item(60, 0, 100),
	}
	assert.Equal(t, 100.0, TotalWeight(items))

	// total bobot > 100 dibiarkan (item bonus), tidak ditolak
	items = append(items, item(10, 0, 100))
	assert.Equal(t, 110.0, TotalWeight(items))
}
