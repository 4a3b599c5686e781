package budget

import (
	"math"

	"go-ayuda/types"
)

// Summarize rolls one disaster's assessments up into the aggregate record the
// dashboard shows. Single pass; the status and amount maps are pre-seeded so
// every key is present even at zero, and TotalBudget reconciles exactly with
// both breakdowns by construction.
func Summarize(disasterName string, entries []types.AssessmentEntry) types.BudgetSummary {
	summary := types.BudgetSummary{
		DisasterName: disasterName,
		ByStatus: map[types.DamageStatus]int{
			types.DamageTotal:   0,
			types.DamagePartial: 0,
			types.DamageNone:    0,
		},
		ByAmount: map[int]int{
			types.AmountNone:    0,
			types.AmountPartial: 0,
			types.AmountTotal:   0,
		},
		ByBarangay: map[string]types.BarangayStats{},
	}

	for _, e := range entries {
		amount := e.Assessment.RecommendedAmount

		summary.TotalHouseholds++
		summary.TotalBudget += amount
		summary.ByStatus[e.Assessment.DamageStatus]++
		summary.ByAmount[amount]++

		stats := summary.ByBarangay[e.Household.Barangay]
		stats.Count++
		stats.Budget += amount
		summary.ByBarangay[e.Household.Barangay] = stats

		if e.Household.Is4Ps {
			summary.Total4Ps++
		}
	}

	if summary.TotalHouseholds > 0 {
		avg := float64(summary.TotalBudget) / float64(summary.TotalHouseholds)
		summary.AveragePerHousehold = math.Round(avg*100) / 100
	}
	return summary
}

// Rows flattens assessments into per-household export records, in the order
// the entries arrived.
func Rows(entries []types.AssessmentEntry) []types.ExportRow {
	rows := make([]types.ExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, types.ExportRow{
			HouseholdID:  e.Household.PublicID(),
			Name:         e.Household.Name,
			Address:      e.Household.Address,
			Barangay:     e.Household.Barangay,
			Latitude:     e.Household.Latitude,
			Longitude:    e.Household.Longitude,
			DamageStatus: string(e.Assessment.DamageStatus),
			Amount:       e.Assessment.RecommendedAmount,
			FloodDepth:   e.Household.FloodDepth,
			HouseHeight:  e.Household.HouseHeight,
			HouseWidth:   e.Household.HouseWidth,
			Is4Ps:        e.Household.Is4Ps,
		})
	}
	return rows
}
