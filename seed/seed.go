package seed

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"go-ayuda/db"
	"go-ayuda/types"
)

const householdCount = 50

type barangaySpec struct {
	name      string
	baseLat   float64
	baseLon   float64
	maxOffset float64
	latMin    float64
	latMax    float64
	lonMin    float64
	lonMax    float64
	streets   []string
	areaName  string
}

var barangays = []barangaySpec{
	{
		name: "Tondo", baseLat: 14.6250, baseLon: 120.9700, maxOffset: 0.008,
		latMin: 14.5800, latMax: 14.6300, lonMin: 120.9500, lonMax: 120.9800,
		streets: []string{
			"Juan Luna Street", "Moriones Street", "Dagupan Street", "Velasquez Street",
			"P. Guevarra Street", "Tayuman Street", "Abad Santos Avenue", "Rizal Avenue Extension",
			"Capulong Street", "Lakandula Street", "M. Dela Fuente Street", "Antonio Rivera Street",
		},
		areaName: "Tondo, Manila",
	},
	{
		name: "Baseco", baseLat: 14.5920, baseLon: 120.9600, maxOffset: 0.006,
		latMin: 14.5850, latMax: 14.6000, lonMin: 120.9550, lonMax: 120.9700,
		streets: []string{
			"Baseco Road", "Port Area Road", "Roxas Boulevard Extension", "Baseco Compound",
			"Coastal Road", "Baseco Boulevard", "Port Road", "Baseco Main Street",
		},
		areaName: "Baseco Compound, Port Area, Manila",
	},
	{
		name: "Navotas", baseLat: 14.6550, baseLon: 120.9450, maxOffset: 0.007,
		latMin: 14.6400, latMax: 14.6700, lonMin: 120.9300, lonMax: 120.9600,
		streets: []string{
			"Navotas Boulevard", "C-4 Road", "M. Naval Street", "San Roque Street",
			"Tangos Street", "Daanghari Road", "Bagumbayan Street", "San Jose Street",
			"Navotas Fish Port Road", "Bangus Street", "Tanza Street", "North Bay Boulevard",
		},
		areaName: "Navotas City",
	},
}

var firstNames = []string{
	"Juan", "Maria", "Pedro", "Ana", "Carlos", "Rosa", "Jose", "Lourdes", "Roberto", "Carmen",
	"Ricardo", "Elena", "Fernando", "Isabel", "Miguel", "Patricia", "Antonio", "Sofia", "Manuel", "Lucia",
}

var lastNames = []string{
	"Dela Cruz", "Santos", "Garcia", "Rodriguez", "Mendoza", "Villanueva", "Torres", "Fernandez",
	"Cruz", "Reyes", "Ramos", "Lopez", "Gonzalez", "Martinez", "Perez", "Sanchez", "Rivera", "Morales", "Ortiz", "Castillo",
}

// Run loads the demo NCR dataset: one active typhoon event and 50 households
// across Tondo, Baseco and Navotas, each with a damage assessment derived
// from its flood exposure. Seeding is idempotent per disaster name.
func Run(store *db.Store, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	disaster, err := ensureDisaster(store)
	if err != nil {
		return err
	}
	logger.Info("seeding demo data", zap.String("disaster", disaster.Name))

	existing, err := store.ListHouseholds()
	if err != nil {
		return err
	}
	byPublicID := make(map[string]types.Household, len(existing))
	for _, h := range existing {
		byPublicID[h.HouseholdID] = h
	}

	rng := rand.New(rand.NewSource(42))
	created := 0

	for i := 0; i < householdCount; i++ {
		spec := barangays[rng.Intn(len(barangays))]

		lat := clampf(spec.baseLat+rng.Float64()*2*spec.maxOffset-spec.maxOffset, spec.latMin, spec.latMax)
		lon := clampf(spec.baseLon+rng.Float64()*2*spec.maxOffset-spec.maxOffset, spec.lonMin, spec.lonMax)

		h := types.Household{
			HouseholdID:   fmt.Sprintf("HH-%05d", i),
			Name:          fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			Barangay:      spec.name,
			Latitude:      round6(lat),
			Longitude:     round6(lon),
			FloodDepth:    round2(rng.Float64() * 4),
			HouseHeight:   round2(3 + rng.Float64()*5),
			HouseWidth:    round2(6 + rng.Float64()*6),
			Is4Ps:         rng.Intn(2) == 0,
			ContactNumber: fmt.Sprintf("+63917%07d", rng.Intn(9000000)+1000000),
		}
		h.Address = fmt.Sprintf("%d %s, %s", rng.Intn(999)+1, spec.streets[rng.Intn(len(spec.streets))], spec.areaName)

		if prev, ok := byPublicID[h.HouseholdID]; ok {
			// Already seeded on an earlier run; keep the stored record and
			// just refresh its assessment below.
			h = prev
		} else {
			if err := store.CreateHousehold(&h); err != nil {
				return fmt.Errorf("seeding household %s: %w", h.HouseholdID, err)
			}
			created++
		}

		status := statusForDepth(h.FloodDepth)
		// 10% of assessments get a random override, so the dataset is not a
		// pure function of flood depth.
		if rng.Float64() < 0.1 {
			all := []types.DamageStatus{types.DamageTotal, types.DamagePartial, types.DamageNone}
			status = all[rng.Intn(len(all))]
		}

		a := types.DamageAssessment{
			HouseholdID:  h.ID,
			DisasterID:   disaster.ID,
			DamageStatus: status,
			Notes:        fmt.Sprintf("Seeded assessment for %s", h.Name),
			AssessedBy:   "System Admin",
		}
		if err := store.SaveAssessment(&a); err != nil {
			return fmt.Errorf("seeding assessment for %s: %w", h.HouseholdID, err)
		}
	}

	logger.Info("seed complete", zap.Int("households", created))
	return nil
}

func ensureDisaster(store *db.Store) (types.DisasterEvent, error) {
	disasters, err := store.ListDisasters()
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return types.DisasterEvent{}, err
	}
	for _, d := range disasters {
		if d.Name == "Typhoon Rosing 2025" {
			return d, nil
		}
	}
	d := types.DisasterEvent{
		Name:         "Typhoon Rosing 2025",
		Description:  "A severe typhoon that affected multiple barangays in Metro Manila (NCR)",
		DateOccurred: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
	if err := store.CreateDisaster(&d); err != nil {
		return types.DisasterEvent{}, err
	}
	return d, nil
}

func statusForDepth(depth float64) types.DamageStatus {
	switch {
	case depth > 3.0:
		return types.DamageTotal
	case depth > 1.0:
		return types.DamagePartial
	default:
		return types.DamageNone
	}
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
