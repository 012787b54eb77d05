package service

import (
	"math"

	itemModel "belajarku_backend/internals/features/academics/grade_items/model"
)

// Round2 membulatkan ke 2 desimal (half-up untuk nilai positif)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeCourseMark menghitung nilai mata kuliah dari seluruh grade item saat
// ini. Selalu hitung total dari set penuh, tidak pernah inkremental, supaya
// edit/hapus dalam urutan apa pun tetap konsisten.
//
// Return nil kalau tidak ada data yang bisa dipakai (tanpa item, atau semua
// bobot ≤ 0). Nilai nil beda makna dengan 0.
func ComputeCourseMark(items []itemModel.GradeItemModel) *float64 {
	var numerator, denominator float64

	for _, it := range items {
		if it.GradeItemWeight <= 0 {
			// item tanpa bobot tidak ikut pembagi
			continue
		}
		pct := 0.0
		if it.GradeItemMaxScore > 0 {
			pct = it.GradeItemScore / it.GradeItemMaxScore * 100
		}
		numerator += pct * it.GradeItemWeight
		denominator += it.GradeItemWeight
	}

	if denominator == 0 {
		return nil
	}

	mark := Round2(clampMark(numerator / denominator))
	return &mark
}

// TotalWeight menjumlahkan bobot semua item (termasuk ≤ 0, biar apa adanya;
// threshold finalisasi otomatis hanya peduli totalnya).
func TotalWeight(items []itemModel.GradeItemModel) float64 {
	var sum float64
	for _, it := range items {
		sum += it.GradeItemWeight
	}
	return sum
}
