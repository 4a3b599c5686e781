package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ayuda/types"
)

func entry(barangay string, status types.DamageStatus, amount int, is4ps bool) types.AssessmentEntry {
	return types.AssessmentEntry{
		Assessment: types.DamageAssessment{DamageStatus: status, RecommendedAmount: amount},
		Household:  types.Household{Name: "x", Barangay: barangay, Is4Ps: is4ps, HouseHeight: 4, HouseWidth: 8},
	}
}

func TestSummarizeThreeTiersOneBarangay(t *testing.T) {
	entries := []types.AssessmentEntry{
		entry("Tondo", types.DamageTotal, 10000, true),
		entry("Tondo", types.DamagePartial, 5000, false),
		entry("Tondo", types.DamageNone, 0, false),
	}

	s := Summarize("Typhoon Rosing 2025", entries)

	assert.Equal(t, "Typhoon Rosing 2025", s.DisasterName)
	assert.Equal(t, 3, s.TotalHouseholds)
	assert.Equal(t, 15000, s.TotalBudget)
	assert.Equal(t, map[types.DamageStatus]int{
		types.DamageTotal: 1, types.DamagePartial: 1, types.DamageNone: 1,
	}, s.ByStatus)
	assert.Equal(t, map[int]int{0: 1, 5000: 1, 10000: 1}, s.ByAmount)
	assert.Equal(t, types.BarangayStats{Count: 3, Budget: 15000}, s.ByBarangay["Tondo"])
	assert.Equal(t, 1, s.Total4Ps)
	assert.Equal(t, 5000.00, s.AveragePerHousehold)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize("quiet day", nil)

	assert.Equal(t, 0, s.TotalHouseholds)
	assert.Equal(t, 0, s.TotalBudget)
	assert.Equal(t, 0.0, s.AveragePerHousehold)
	// All keys present even with no data.
	assert.Len(t, s.ByStatus, 3)
	assert.Len(t, s.ByAmount, 3)
	assert.Empty(t, s.ByBarangay)
}

func TestSummarizeReconciliation(t *testing.T) {
	entries := []types.AssessmentEntry{
		entry("Tondo", types.DamageTotal, 10000, true),
		entry("Baseco", types.DamageTotal, 10000, false),
		entry("Baseco", types.DamagePartial, 5000, true),
		entry("Navotas", types.DamagePartial, 5000, false),
		entry("Navotas", types.DamageNone, 0, false),
		entry("Navotas", types.DamageNone, 0, true),
		entry("Tondo", types.DamagePartial, 5000, false),
	}

	s := Summarize("d", entries)

	byAmountTotal := 0
	for tier, count := range s.ByAmount {
		byAmountTotal += tier * count
	}
	assert.Equal(t, s.TotalBudget, byAmountTotal)

	byBarangayTotal := 0
	countTotal := 0
	for _, stats := range s.ByBarangay {
		byBarangayTotal += stats.Budget
		countTotal += stats.Count
	}
	assert.Equal(t, s.TotalBudget, byBarangayTotal)
	assert.Equal(t, s.TotalHouseholds, countTotal)

	statusTotal := 0
	for _, count := range s.ByStatus {
		statusTotal += count
	}
	amountCountTotal := 0
	for _, count := range s.ByAmount {
		amountCountTotal += count
	}
	assert.Equal(t, s.TotalHouseholds, statusTotal)
	assert.Equal(t, s.TotalHouseholds, amountCountTotal)
}

func TestSummarizeAverageRounding(t *testing.T) {
	entries := []types.AssessmentEntry{
		entry("Tondo", types.DamageTotal, 10000, false),
		entry("Tondo", types.DamagePartial, 5000, false),
		entry("Tondo", types.DamagePartial, 5000, false),
	}
	s := Summarize("d", entries)
	// 20000 / 3 = 6666.666..., rounded to 2 decimals.
	assert.Equal(t, 6666.67, s.AveragePerHousehold)
}

func TestRows(t *testing.T) {
	e := types.AssessmentEntry{
		Assessment: types.DamageAssessment{DamageStatus: types.DamagePartial, RecommendedAmount: 5000},
		Household: types.Household{
			HouseholdID: "HH-00007", Name: "Ana Reyes", Address: "12 Tayuman Street",
			Barangay: "Tondo", Latitude: 14.6123, Longitude: 120.9687,
			FloodDepth: 1.8, HouseHeight: 4.5, HouseWidth: 8.2, Is4Ps: true,
		},
	}

	rows := Rows([]types.AssessmentEntry{e})
	require.Len(t, rows, 1)

	assert.Equal(t, "HH-00007", rows[0].HouseholdID)
	assert.Equal(t, "PARTIAL", rows[0].DamageStatus)
	assert.Equal(t, 5000, rows[0].Amount)
	assert.Equal(t, 1.8, rows[0].FloodDepth)
	assert.True(t, rows[0].Is4Ps)
}

func TestRowsFallBackToNameWithoutPublicID(t *testing.T) {
	e := types.AssessmentEntry{
		Assessment: types.DamageAssessment{},
		Household:  types.Household{Name: "Juan Dela Cruz"},
	}
	rows := Rows([]types.AssessmentEntry{e})
	require.Len(t, rows, 1)
	assert.Equal(t, "Juan Dela Cruz", rows[0].HouseholdID)
}
