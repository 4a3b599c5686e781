package allocation

import "go-ayuda/types"

// Allocation sources reported by the resolver.
const (
	SourceML   = "ml"
	SourceRule = "rule"
)

// Predictor produces an advisory payout tier from a feature vector. The
// second return is false when no prediction is available (model missing,
// inference failure); a valid zero amount returns (0, true).
type Predictor interface {
	Predict(fv types.FeatureVector) (int, bool)
}

// Resolver orchestrates the ML-first, rule-fallback decision used by the
// reporting endpoints. It never mutates stored state: the amount persisted on
// an assessment is always the rule-based one.
type Resolver struct {
	predictor Predictor
}

func NewResolver(p Predictor) *Resolver {
	return &Resolver{predictor: p}
}

// Resolve returns the advisory amount for one household and its assessment,
// plus which path produced it. Any failure on the ML side degrades silently
// to the rule amount computed from the stored damage classification.
func (r *Resolver) Resolve(h types.Household, a types.DamageAssessment) (int, string) {
	if r.predictor != nil {
		fv, err := BuildFeatureVector(h, a.DamageStatus)
		if err == nil {
			if amount, ok := r.predictor.Predict(fv); ok {
				return amount, SourceML
			}
		}
	}
	return RuleAmount(a.DamageStatus), SourceRule
}
