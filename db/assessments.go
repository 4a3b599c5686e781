package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-ayuda/allocation"
	"go-ayuda/types"
)

// ErrBadStatus rejects an assessment whose damage classification is not one
// of NONE/PARTIAL/TOTAL.
var ErrBadStatus = errors.New("unknown damage status")

// SaveAssessment creates or updates the single assessment for the given
// (household, disaster) pair. The recommended amount is always rederived from
// the damage classification before the write; whatever the caller put there
// is discarded. Saving with an unchanged classification is a no-op on the
// amount.
func (s *Store) SaveAssessment(a *types.DamageAssessment) error {
	if a.DamageStatus == "" {
		a.DamageStatus = types.DamageNone
	}
	if !a.DamageStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrBadStatus, a.DamageStatus)
	}
	if _, err := s.GetHousehold(a.HouseholdID); err != nil {
		return err
	}
	if _, err := s.GetDisaster(a.DisasterID); err != nil {
		return err
	}

	// Derived field: the stored amount is a pure function of the status.
	a.RecommendedAmount = allocation.RuleAmount(a.DamageStatus)

	var existing types.DamageAssessment
	err := s.db.Where("household_id = ? AND disaster_id = ?", a.HouseholdID, a.DisasterID).
		First(&existing).Error
	switch {
	case err == nil:
		a.ID = existing.ID
		a.AssessedAt = existing.AssessedAt
		if err := s.db.Omit("Household").Save(a).Error; err != nil {
			return fmt.Errorf("updating assessment: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Omit("Household").Create(a).Error; err != nil {
			return fmt.Errorf("creating assessment: %w", err)
		}
	default:
		return fmt.Errorf("looking up assessment: %w", err)
	}
	return nil
}

// GetAssessmentFor returns the assessment for one (household, disaster) pair.
func (s *Store) GetAssessmentFor(householdID, disasterID uint) (types.DamageAssessment, error) {
	var a types.DamageAssessment
	err := s.db.Where("household_id = ? AND disaster_id = ?", householdID, disasterID).
		First(&a).Error
	if err != nil {
		return types.DamageAssessment{}, notFound(err)
	}
	return a, nil
}

// ListAssessments filters by disaster and/or household; zero means no filter.
// Households come preloaded, newest assessment first.
func (s *Store) ListAssessments(disasterID, householdID uint) ([]types.DamageAssessment, error) {
	q := s.db.Preload("Household").Order("assessed_at desc")
	if disasterID != 0 {
		q = q.Where("disaster_id = ?", disasterID)
	}
	if householdID != 0 {
		q = q.Where("household_id = ?", householdID)
	}
	var assessments []types.DamageAssessment
	if err := q.Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	return assessments, nil
}

// EntriesForDisaster returns one disaster's assessments joined to their
// households, the point-in-time slice the aggregation and validation passes
// run over.
func (s *Store) EntriesForDisaster(disasterID uint) ([]types.AssessmentEntry, error) {
	assessments, err := s.ListAssessments(disasterID, 0)
	if err != nil {
		return nil, err
	}
	entries := make([]types.AssessmentEntry, 0, len(assessments))
	for _, a := range assessments {
		entries = append(entries, types.AssessmentEntry{
			Assessment: a,
			Household:  a.Household,
		})
	}
	return entries, nil
}

// AllEntries returns every assessment joined to its household, for the
// offline validator.
func (s *Store) AllEntries() ([]types.AssessmentEntry, error) {
	return s.EntriesForDisaster(0)
}
