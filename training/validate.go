package training

import (
	"math"

	"go.uber.org/zap"

	"go-ayuda/allocation"
	"go-ayuda/types"
)

// One tier step; predictions off by at most this still count as "within
// tolerance" in the report.
const tierStep = types.AmountPartial

// Report compares the classifier's advisory amounts against the stored
// rule-based ones over a batch of assessments. It is an offline diagnostic:
// nothing in the runtime decision path consumes it.
type Report struct {
	Total             int     `json:"total"`
	ExactMatches      int     `json:"exact_matches"`
	Different         int     `json:"different"`
	WithinTolerance   int     `json:"within_tolerance"`
	MatchesDamage     int     `json:"matches_damage"`
	DiffersFromDamage int     `json:"differs_from_damage"`
	ExactAccuracy     float64 `json:"exact_accuracy"`
	ToleranceAccuracy float64 `json:"tolerance_accuracy"`
}

// Validate scores predictor output against each assessment's stored amount
// and against the amount its damage classification implies. Assessments the
// predictor cannot score fall back to the rule amount, mirroring the runtime
// resolver, so an unavailable model reports as 100% exact.
func Validate(entries []types.AssessmentEntry, p allocation.Predictor, logger *zap.Logger) Report {
	if logger == nil {
		logger = zap.NewNop()
	}
	var r Report

	for _, e := range entries {
		r.Total++
		ruleAmount := e.Assessment.RecommendedAmount

		mlAmount := ruleAmount
		if p != nil {
			if fv, err := allocation.BuildFeatureVector(e.Household, e.Assessment.DamageStatus); err == nil {
				if amount, ok := p.Predict(fv); ok {
					mlAmount = amount
				}
			} else {
				logger.Warn("skipping prediction for household", zap.String("household", e.Household.PublicID()), zap.Error(err))
			}
		}

		if mlAmount == ruleAmount {
			r.ExactMatches++
		} else {
			r.Different++
		}
		if math.Abs(float64(mlAmount-ruleAmount)) <= tierStep {
			r.WithinTolerance++
		}

		expected := allocation.RuleAmount(e.Assessment.DamageStatus)
		if mlAmount == expected {
			r.MatchesDamage++
		} else {
			r.DiffersFromDamage++
		}
	}

	if r.Total > 0 {
		r.ExactAccuracy = float64(r.ExactMatches) / float64(r.Total) * 100
		r.ToleranceAccuracy = float64(r.WithinTolerance) / float64(r.Total) * 100
	}
	return r
}
