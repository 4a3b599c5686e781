package types

import "time"

type DamageStatus string

const (
	DamageNone    DamageStatus = "NONE"
	DamagePartial DamageStatus = "PARTIAL"
	DamageTotal   DamageStatus = "TOTAL"
)

// Valid reports whether s is one of the three known classifications.
func (s DamageStatus) Valid() bool {
	switch s {
	case DamageNone, DamagePartial, DamageTotal:
		return true
	}
	return false
}

// The three fixed ECT payout tiers in PHP. Every amount in the system,
// whatever produced it, resolves to one of these.
const (
	AmountNone    = 0
	AmountPartial = 5000
	AmountTotal   = 10000
)

// DamageAssessment links one Household to one DisasterEvent. At most one
// assessment exists per (household, disaster) pair. RecommendedAmount is
// derived from DamageStatus on every write and is never accepted verbatim
// from a caller.
type DamageAssessment struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	HouseholdID       uint         `gorm:"uniqueIndex:idx_household_disaster;not null" json:"household_id"`
	DisasterID        uint         `gorm:"uniqueIndex:idx_household_disaster;not null" json:"disaster_id"`
	DamageStatus      DamageStatus `gorm:"size:10;default:NONE" json:"damage_status"`
	RecommendedAmount int          `json:"recommended_ect_amount"`
	Notes             string       `json:"notes"`
	AssessedBy        string       `gorm:"size:100" json:"assessed_by"`
	AssessedAt        time.Time    `gorm:"autoCreateTime" json:"assessed_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Household Household `gorm:"belongsTo;foreignKey:HouseholdID;references:ID" json:"household,omitempty"`
}

// AssessmentEntry is an assessment joined to its household, the unit the
// budget and validation passes consume.
type AssessmentEntry struct {
	Assessment DamageAssessment
	Household  Household
}
