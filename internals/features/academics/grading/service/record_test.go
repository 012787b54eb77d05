package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	recordModel "belajarku_backend/internals/features/academics/records/model"
)

func emptyRecord() recordModel.AcademicRecordModel {
	return recordModel.AcademicRecordModel{AcademicRecordUserID: uuid.New()}
}

// Record kosong + lulus 3 SKS nilai 86 → CGPA 3.25, persen 86.0, completed 3
func TestAccumulateFirstPassedCourse(t *testing.T) {
	rec := AccumulateRecord(emptyRecord(), 3, 86, true)

	assert.Equal(t, 3.25, rec.AcademicRecordCGPA)
	assert.Equal(t, 86.0, rec.AcademicRecordCumulativePercent)
	assert.Equal(t, 3, rec.AcademicRecordCreditsCompleted)
	assert.Equal(t, 0, rec.AcademicRecordCreditsCarried)
}

// Gagal: hanya credits_carried naik; CGPA & persen tidak tersentuh sama sekali
func TestAccumulateFailedCourseLeavesAverages(t *testing.T) {
	rec := AccumulateRecord(emptyRecord(), 3, 40, false)

	assert.Equal(t, 0.0, rec.AcademicRecordCGPA)
	assert.Equal(t, 0.0, rec.AcademicRecordCumulativePercent)
	assert.Equal(t, 0, rec.AcademicRecordCreditsCompleted)
	assert.Equal(t, 3, rec.AcademicRecordCreditsCarried)
}

func TestAccumulateFailedAfterPassedBitForBit(t *testing.T) {
	rec := AccumulateRecord(emptyRecord(), 3, 86, true)
	cgpaBefore := rec.AcademicRecordCGPA
	pctBefore := rec.AcademicRecordCumulativePercent

	rec = AccumulateRecord(rec, 4, 47.5, false)

	assert.Equal(t, cgpaBefore, rec.AcademicRecordCGPA)
	assert.Equal(t, pctBefore, rec.AcademicRecordCumulativePercent)
	assert.Equal(t, 3, rec.AcademicRecordCreditsCompleted)
	assert.Equal(t, 4, rec.AcademicRecordCreditsCarried)
}

// Rata-rata berjalan berbobot SKS: record lama = satu "mata kuliah virtual"
func TestAccumulateRunningAverage(t *testing.T) {
	rec := AccumulateRecord(emptyRecord(), 3, 86, true)  // B+ 3.25
	rec = AccumulateRecord(rec, 3, 95, true)             // A  3.75

	// (3.25*3 + 3.75*3) / 6 = 3.5
	assert.Equal(t, 3.5, rec.AcademicRecordCGPA)
	// (86*3 + 95*3) / 6 = 90.5
	assert.Equal(t, 90.5, rec.AcademicRecordCumulativePercent)
	assert.Equal(t, 6, rec.AcademicRecordCreditsCompleted)
}

func TestAccumulateUnevenCredits(t *testing.T) {
	rec := AccumulateRecord(emptyRecord(), 2, 50, true) // D 1.50
	rec = AccumulateRecord(rec, 4, 80, true)            // B 3.00

	// (1.5*2 + 3.0*4) / 6 = 2.5
	assert.Equal(t, 2.5, rec.AcademicRecordCGPA)
	// (50*2 + 80*4) / 6 = 70.0
	assert.Equal(t, 70.0, rec.AcademicRecordCumulativePercent)
}

// Fold atas ledger harus menghasilkan record yang sama dengan update bertahap
func TestDeriveRecordFromEntriesMatchesIncremental(t *testing.T) {
	userID := uuid.New()

	entries := []recordModel.AcademicRecordEntryModel{
		{AcademicRecordEntryCreditHours: 3, AcademicRecordEntryMark: 86, AcademicRecordEntryPassed: true},
		{AcademicRecordEntryCreditHours: 4, AcademicRecordEntryMark: 40, AcademicRecordEntryPassed: false},
		{AcademicRecordEntryCreditHours: 2, AcademicRecordEntryMark: 72.5, AcademicRecordEntryPassed: true},
	}

	incremental := recordModel.AcademicRecordModel{AcademicRecordUserID: userID}
	for _, e := range entries {
		incremental = AccumulateRecord(incremental, e.AcademicRecordEntryCreditHours, e.AcademicRecordEntryMark, e.AcademicRecordEntryPassed)
	}

	derived := DeriveRecordFromEntries(userID, entries)

	assert.Equal(t, incremental.AcademicRecordCGPA, derived.AcademicRecordCGPA)
	assert.Equal(t, incremental.AcademicRecordCumulativePercent, derived.AcademicRecordCumulativePercent)
	assert.Equal(t, incremental.AcademicRecordCreditsCompleted, derived.AcademicRecordCreditsCompleted)
	assert.Equal(t, incremental.AcademicRecordCreditsCarried, derived.AcademicRecordCreditsCarried)
}
