package types

// BarangayStats is the per-area slice of a budget summary.
type BarangayStats struct {
	Count  int `json:"count"`
	Budget int `json:"budget"`
}

// BudgetSummary is the disaster-level rollup of every assessment's payout.
// ByStatus and ByAmount always carry all three keys, even at zero, so the
// reconciliation checks can iterate them without missing-key cases.
type BudgetSummary struct {
	DisasterName        string                   `json:"disaster_name"`
	TotalHouseholds     int                      `json:"total_households"`
	TotalBudget         int                      `json:"total_budget"`
	ByStatus            map[DamageStatus]int     `json:"by_status"`
	ByAmount            map[int]int              `json:"by_amount"`
	ByBarangay          map[string]BarangayStats `json:"by_barangay"`
	Total4Ps            int                      `json:"total_4ps"`
	AveragePerHousehold float64                  `json:"average_per_household"`
}

// ExportRow is one flat per-assessment record for tabular export.
type ExportRow struct {
	HouseholdID  string  `json:"household_id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Barangay     string  `json:"barangay"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DamageStatus string  `json:"damage_status"`
	Amount       int     `json:"ect_amount"`
	FloodDepth   float64 `json:"flood_depth"`
	HouseHeight  float64 `json:"house_height"`
	HouseWidth   float64 `json:"house_width"`
	Is4Ps        bool    `json:"is_4ps"`
}
