package training

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"go-ayuda/allocation"
	"go-ayuda/mlmodel"
	"go-ayuda/types"
)

// Generative assumptions for the synthetic corpus. Damage is assigned by
// thresholding the flood-height ratio and the raw depth; the payout follows
// the rule mapping plus a small 4Ps "upgrade" perturbation, intentional label
// noise that keeps the classification task non-trivial.
const (
	floodDepthCap = 5.0

	houseHeightMean, houseHeightStd = 4.5, 1.0
	houseHeightMin, houseHeightMax  = 2.0, 8.0

	houseWidthMean, houseWidthStd = 8.0, 2.0
	houseWidthMin, houseWidthMax  = 4.0, 15.0

	fourPsRate = 0.30

	totalRatioThreshold   = 0.8
	totalDepthThreshold   = 3.5
	partialRatioThreshold = 0.4
	partialDepthThreshold = 1.5

	partialUpgradeProb = 0.10
	noneUpgradeProb    = 0.05
	noneUpgradeDepth   = 0.5
)

var corpusBarangays = []string{"Tondo", "Baseco", "Navotas"}

// Sample is one synthetic feature/label pair.
type Sample struct {
	Barangay         string
	FloodDepth       float64
	HouseHeight      float64
	HouseWidth       float64
	DamageStatus     types.DamageStatus
	Is4Ps            bool
	FloodHeightRatio float64
	ECTAmount        int
}

// DamageForConditions applies the synthetic damage policy to one flood
// exposure: ratio and raw depth each have a TOTAL and a PARTIAL threshold.
func DamageForConditions(ratio, depth float64) types.DamageStatus {
	switch {
	case ratio > totalRatioThreshold || depth > totalDepthThreshold:
		return types.DamageTotal
	case ratio > partialRatioThreshold || depth > partialDepthThreshold:
		return types.DamagePartial
	default:
		return types.DamageNone
	}
}

// GenerateCorpus draws n samples with a fixed seed so training runs are
// reproducible.
func GenerateCorpus(n int, seed int64) []Sample {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]Sample, 0, n)

	for i := 0; i < n; i++ {
		depth := rng.ExpFloat64()
		if depth > floodDepthCap {
			depth = floodDepthCap
		}
		height := clamp(rng.NormFloat64()*houseHeightStd+houseHeightMean, houseHeightMin, houseHeightMax)
		width := clamp(rng.NormFloat64()*houseWidthStd+houseWidthMean, houseWidthMin, houseWidthMax)
		is4ps := rng.Float64() < fourPsRate

		ratio := depth / height
		if ratio > 1.0 {
			ratio = 1.0
		}

		status := DamageForConditions(ratio, depth)
		amount := allocation.RuleAmount(status)

		// Label noise: 4Ps recipients occasionally get bumped a tier.
		if is4ps && status == types.DamagePartial && rng.Float64() < partialUpgradeProb {
			amount = types.AmountTotal
		} else if is4ps && status == types.DamageNone && depth > noneUpgradeDepth && rng.Float64() < noneUpgradeProb {
			amount = types.AmountPartial
		}

		samples = append(samples, Sample{
			Barangay:         corpusBarangays[rng.Intn(len(corpusBarangays))],
			FloodDepth:       round2(depth),
			HouseHeight:      round2(height),
			HouseWidth:       round2(width),
			DamageStatus:     status,
			Is4Ps:            is4ps,
			FloodHeightRatio: round3(ratio),
			ECTAmount:        amount,
		})
	}
	return samples
}

// WriteCorpusCSV saves samples in the column layout the offline trainer
// expects: the model feature columns followed by the ECT_Amount label.
func WriteCorpusCSV(path string, samples []Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append([]string{}, mlmodel.FeatureNames...), "ECT_Amount")
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range samples {
		is4ps := "0"
		if s.Is4Ps {
			is4ps = "1"
		}
		record := []string{
			s.Barangay,
			fmt.Sprintf("%.2f", s.FloodDepth),
			fmt.Sprintf("%.2f", s.HouseHeight),
			fmt.Sprintf("%.2f", s.HouseWidth),
			string(s.DamageStatus),
			is4ps,
			fmt.Sprintf("%.3f", s.FloodHeightRatio),
			strconv.Itoa(s.ECTAmount),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 { return float64(int(v*100+0.5)) / 100 }
func round3(v float64) float64 { return float64(int(v*1000+0.5)) / 1000 }
