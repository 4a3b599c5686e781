package allocation

import (
	"errors"
	"fmt"

	"go-ayuda/types"
)

// ErrDataIntegrity marks a household record that violates an invariant the
// upstream validation should have enforced. It is not recovered locally.
var ErrDataIntegrity = errors.New("data integrity violation")

// BuildFeatureVector converts a household and its damage classification into
// the fixed-schema feature record the classifier was trained on. Callers with
// no assessment on file pass types.DamageNone.
func BuildFeatureVector(h types.Household, status types.DamageStatus) (types.FeatureVector, error) {
	if h.HouseHeight <= 0 {
		return types.FeatureVector{}, fmt.Errorf("%w: household %s has house_height %.2f", ErrDataIntegrity, h.PublicID(), h.HouseHeight)
	}
	if !status.Valid() {
		status = types.DamageNone
	}

	ratio := h.FloodDepth / h.HouseHeight
	if ratio > 1.0 {
		ratio = 1.0
	}

	is4ps := 0
	if h.Is4Ps {
		is4ps = 1
	}

	return types.FeatureVector{
		Barangay:         h.Barangay,
		FloodDepth:       h.FloodDepth,
		HouseHeight:      h.HouseHeight,
		HouseWidth:       h.HouseWidth,
		DamageStatus:     status,
		Is4Ps:            is4ps,
		FloodHeightRatio: ratio,
	}, nil
}
