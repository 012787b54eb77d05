package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"belajarku_backend/internals/constants"
)

func TestGradeForTable(t *testing.T) {
	cases := []struct {
		mark   float64
		letter string
		points float64
	}{
		{100, "A", 3.75},
		{95, "A", 3.75},
		{94.99, "A-", 3.50},
		{90, "A-", 3.50},
		{86, "B+", 3.25},
		{85, "B+", 3.25},
		{80, "B", 3.00},
		{75, "B-", 2.75},
		{70, "C+", 2.50},
		{65, "C", 2.25},
		{60, "C-", 2.00},
		{55, "D+", 1.75},
		{50, "D", 1.50},
		{49.99, "F", 0.00},
		{0, "F", 0.00},
	}
	for _, tc := range cases {
		b := GradeFor(tc.mark)
		assert.Equal(t, tc.letter, b.Letter, "mark %v", tc.mark)
		assert.Equal(t, tc.points, b.Points, "mark %v", tc.mark)
	}
}

func TestGradeForClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "A", GradeLetter(120))
	assert.Equal(t, "F", GradeLetter(-5))
}

// Poin GPA harus monoton tidak menurun dan tabel total di seluruh [0,100]
func TestGradePointsMonotonic(t *testing.T) {
	prev := -1.0
	for m := 0.0; m <= 100.0; m += 0.25 {
		p := GradePoints(m)
		assert.GreaterOrEqual(t, p, prev, "mark %v", m)
		assert.NotEmpty(t, GradeLetter(m), "mark %v", m)
		prev = p
	}
}

func TestRiskStatus(t *testing.T) {
	assert.Equal(t, constants.RiskSafe, RiskStatus(80))
	assert.Equal(t, constants.RiskNormal, RiskStatus(79.99))
	assert.Equal(t, constants.RiskNormal, RiskStatus(70))
	assert.Equal(t, constants.RiskAtRisk, RiskStatus(69.99))
	assert.Equal(t, constants.RiskAtRisk, RiskStatus(60))
	assert.Equal(t, constants.RiskHighRisk, RiskStatus(59.99))
	assert.Equal(t, constants.RiskHighRisk, RiskStatus(0))
}

// Nilai nil = belum ada nilai → status normal, bukan high_risk
func TestStatusForNilMark(t *testing.T) {
	assert.Equal(t, constants.RiskNormal, StatusForMark(nil))

	m := 55.0
	assert.Equal(t, constants.RiskHighRisk, StatusForMark(&m))
}
