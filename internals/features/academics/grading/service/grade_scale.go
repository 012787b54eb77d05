package service

import "belajarku_backend/internals/constants"

// GradeBand: satu baris tabel konversi nilai → huruf + bobot GPA
type GradeBand struct {
	Min    float64
	Letter string
	Points float64
}

// Tabel konversi, batas bawah inklusif, urut menurun.
var gradeBands = []GradeBand{
	{95, "A", 3.75},
	{90, "A-", 3.50},
	{85, "B+", 3.25},
	{80, "B", 3.00},
	{75, "B-", 2.75},
	{70, "C+", 2.50},
	{65, "C", 2.25},
	{60, "C-", 2.00},
	{55, "D+", 1.75},
	{50, "D", 1.50},
	{0, "F", 0.00},
}

func clampMark(m float64) float64 {
	if m < 0 {
		return 0
	}
	if m > 100 {
		return 100
	}
	return m
}

// GradeFor mengembalikan band untuk sebuah nilai (di-clamp dulu ke [0,100])
func GradeFor(mark float64) GradeBand {
	m := clampMark(mark)
	for _, b := range gradeBands {
		if m >= b.Min {
			return b
		}
	}
	return gradeBands[len(gradeBands)-1]
}

func GradeLetter(mark float64) string {
	return GradeFor(mark).Letter
}

func GradePoints(mark float64) float64 {
	return GradeFor(mark).Points
}

// RiskStatus memetakan nilai ke status risiko kasar untuk dashboard.
// Nilai nil ditangani caller (StatusForMark), bukan di sini.
func RiskStatus(mark float64) string {
	switch {
	case mark >= 80:
		return constants.RiskSafe
	case mark >= 70:
		return constants.RiskNormal
	case mark >= 60:
		return constants.RiskAtRisk
	default:
		return constants.RiskHighRisk
	}
}

// StatusForMark: nilai nil = "belum ada nilai" → dianggap normal untuk status.
// Jangan disamakan dengan nil untuk agregasi (di sana nil berarti tanpa data,
// bukan nol).
func StatusForMark(mark *float64) string {
	if mark == nil {
		return constants.RiskNormal
	}
	return RiskStatus(*mark)
}
