package mlmodel

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"go-ayuda/types"
)

// Default artifact locations, tried in priority order. AYUDA_MODEL_PATH, when
// set, is prepended so a deployment can pin an exact blob.
var defaultPaths = []string{
	"data/ect_model.gob",
	"data/ect_allocation_model_v1.gob",
	"models/ect_allocation_model_v1.gob",
}

// loaded bundles an artifact with its categorical-index lookup. Instances are
// immutable once built, so inference can hold one across a Reload without
// synchronization.
type loaded struct {
	art  *Artifact
	cats map[int]bool
}

// Handle owns the process-wide model state. The first Predict (or Available)
// call attempts the load exactly once; if every candidate fails the handle
// stays unavailable until Reload. Inference is read-only once loaded and safe
// for concurrent callers.
type Handle struct {
	mu        sync.Mutex
	attempted bool
	cur       *loaded

	paths []string
	log   *zap.Logger
}

// Load builds a handle over the default candidate paths. The artifact itself
// is not touched until first use.
func Load(logger *zap.Logger) *Handle {
	paths := defaultPaths
	if p := os.Getenv("AYUDA_MODEL_PATH"); p != "" {
		paths = append([]string{p}, paths...)
	}
	return LoadFrom(paths, logger)
}

// LoadFrom builds a handle over an explicit candidate list.
func LoadFrom(paths []string, logger *zap.Logger) *Handle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handle{paths: paths, log: logger}
}

func (h *Handle) ensureLoaded() *loaded {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.attempted {
		h.attempted = true
		h.loadLocked()
	}
	return h.cur
}

func (h *Handle) loadLocked() {
	for _, path := range h.paths {
		art, err := ReadArtifact(path)
		if err != nil {
			if !os.IsNotExist(err) {
				h.log.Warn("model artifact rejected", zap.String("path", path), zap.Error(err))
			}
			continue
		}
		cats := make(map[int]bool, len(art.CategoricalIdx))
		for _, i := range art.CategoricalIdx {
			cats[i] = true
		}
		h.cur = &loaded{art: art, cats: cats}
		h.log.Info("loaded ML model", zap.String("path", path), zap.Int("trees", len(art.Trees)))
		return
	}
	h.log.Warn("no ML model artifact found, rule-based allocation only", zap.Strings("paths", h.paths))
}

// Available reports whether a model is loaded, loading it first if this is
// the first call.
func (h *Handle) Available() bool {
	return h.ensureLoaded() != nil
}

// Reload discards the loaded state and re-runs the candidate search, letting
// a long-lived process pick up a newly trained artifact.
func (h *Handle) Reload() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = nil
	h.attempted = true
	h.loadLocked()
}

// Predict runs the ensemble on one feature vector and snaps the raw output
// to a valid tier. It returns (0, false) when no prediction is available,
// whatever the reason; nothing escapes this boundary.
func (h *Handle) Predict(fv types.FeatureVector) (int, bool) {
	m := h.ensureLoaded()
	if m == nil {
		return 0, false
	}

	row := featureRow(fv)
	art := m.art
	raw := art.Bias
	for ti := range art.Trees {
		v, err := walk(&art.Trees[ti], row, m.cats)
		if err != nil {
			h.log.Warn("inference failed", zap.Int("tree", ti), zap.Error(err))
			return 0, false
		}
		raw += v
	}
	return SnapToTier(raw), true
}

// SnapToTier maps a raw model output onto the nearest valid payout tier.
// Thresholds sit at the midpoints between tiers, guarding against drift or
// fractional outputs.
func SnapToTier(raw float64) int {
	switch {
	case raw < 2500:
		return types.AmountNone
	case raw < 7500:
		return types.AmountPartial
	default:
		return types.AmountTotal
	}
}

// featureValue holds one cell of an input row: Str for categorical columns,
// Num for numeric ones.
type featureValue struct {
	Str string
	Num float64
}

// featureRow lays the vector out in training column order (see FeatureNames).
func featureRow(fv types.FeatureVector) []featureValue {
	return []featureValue{
		{Str: fv.Barangay},
		{Num: fv.FloodDepth},
		{Num: fv.HouseHeight},
		{Num: fv.HouseWidth},
		{Str: string(fv.DamageStatus)},
		{Num: float64(fv.Is4Ps)},
		{Num: fv.FloodHeightRatio},
	}
}

func walk(t *Tree, row []featureValue, cats map[int]bool) (float64, error) {
	idx := 0
	// A well-formed tree terminates in at most len(Nodes) hops.
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("node index %d out of range", idx)
		}
		n := t.Nodes[idx]
		if n.Feature == leaf {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(row) {
			return 0, fmt.Errorf("feature index %d out of range", n.Feature)
		}
		goLeft := false
		if cats[n.Feature] {
			goLeft = row[n.Feature].Str == n.Match
		} else {
			goLeft = row[n.Feature].Num <= n.Threshold
		}
		if goLeft {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("tree walk did not terminate")
}
