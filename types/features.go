package types

// FeatureVector is the fixed-schema record the ML classifier consumes.
// It is computed on demand from a household and its damage classification
// and never persisted. Field order matters only at the mlmodel boundary,
// where rows are built in training column order.
type FeatureVector struct {
	Barangay         string
	FloodDepth       float64
	HouseHeight      float64
	HouseWidth       float64
	DamageStatus     DamageStatus
	Is4Ps            int
	FloodHeightRatio float64
}
