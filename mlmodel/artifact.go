package mlmodel

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
)

// CurrentVersion is the artifact format this build can read. The trainer
// stamps it into every blob it writes; anything else is rejected at load.
const CurrentVersion = 1

// Feature column order used at training time. Rows handed to the ensemble
// must follow it exactly.
var FeatureNames = []string{
	"Barangay_ID",
	"Flood_Depth_Meters",
	"House_Height_Meters",
	"House_Width_Meters",
	"Damage_Classification",
	"Is_4Ps_Recipient",
	"Flood_Height_Ratio",
}

// Indices of the categorical columns (barangay and damage classification).
var CategoricalIdx = []int{0, 4}

const leaf = -1

// Node is one split or leaf of a boosted tree. Feature == leaf marks a leaf
// carrying Value. For numeric splits the walk goes left when the feature is
// <= Threshold; for categorical splits, when the feature equals Match.
type Node struct {
	Feature   int
	Threshold float64
	Match     string
	Left      int
	Right     int
	Value     float64
}

type Tree struct {
	Nodes []Node
}

// Artifact is the opaque versioned blob the adapter loads: a boosted-tree
// ensemble whose raw prediction (bias plus the sum of leaf values) is an
// integer-like payout value, snapped to a tier after the walk.
type Artifact struct {
	Version        int
	FeatureNames   []string
	CategoricalIdx []int
	Bias           float64
	Trees          []Tree
}

var errBadArtifact = errors.New("malformed model artifact")

// ReadArtifact decodes and sanity-checks one candidate blob.
func ReadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var art Artifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if art.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", errBadArtifact, art.Version, CurrentVersion)
	}
	if len(art.FeatureNames) != len(FeatureNames) {
		return nil, fmt.Errorf("%w: %d feature columns, want %d", errBadArtifact, len(art.FeatureNames), len(FeatureNames))
	}
	if len(art.Trees) == 0 {
		return nil, fmt.Errorf("%w: no trees", errBadArtifact)
	}
	return &art, nil
}

// WriteArtifact encodes an artifact to path. Used by the offline trainer and
// by tests that fabricate small ensembles.
func WriteArtifact(path string, art *Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(art)
}
