package allocation

import "go-ayuda/types"

// RuleAmount is the authoritative payout policy: TOTAL damage gets PHP10,000,
// PARTIAL gets PHP5,000, everything else gets nothing. The store applies it
// on every assessment write regardless of what the ML path says, so persisted
// financial figures are never a function of the model.
func RuleAmount(status types.DamageStatus) int {
	switch status {
	case types.DamageTotal:
		return types.AmountTotal
	case types.DamagePartial:
		return types.AmountPartial
	default:
		return types.AmountNone
	}
}
