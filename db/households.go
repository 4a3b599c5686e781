package db

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-ayuda/types"
)

// CreateHousehold inserts a household, assigning a public identifier when the
// caller left it blank.
func (s *Store) CreateHousehold(h *types.Household) error {
	if h.HouseholdID == "" {
		h.HouseholdID = newHouseholdID()
	}
	if err := s.db.Create(h).Error; err != nil {
		return fmt.Errorf("creating household: %w", err)
	}
	return nil
}

// ListHouseholds returns every household ordered by display name.
func (s *Store) ListHouseholds() ([]types.Household, error) {
	var households []types.Household
	if err := s.db.Order("name").Find(&households).Error; err != nil {
		return nil, fmt.Errorf("listing households: %w", err)
	}
	return households, nil
}

func (s *Store) GetHousehold(id uint) (types.Household, error) {
	var h types.Household
	if err := s.db.First(&h, id).Error; err != nil {
		return types.Household{}, notFound(err)
	}
	return h, nil
}

func (s *Store) UpdateHousehold(h *types.Household) error {
	if h.ID == 0 {
		return ErrNotFound
	}
	if err := s.db.Save(h).Error; err != nil {
		return fmt.Errorf("updating household: %w", err)
	}
	return nil
}

// DeleteHousehold removes a household and its assessments.
func (s *Store) DeleteHousehold(id uint) error {
	if _, err := s.GetHousehold(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ?", id).Delete(&types.DamageAssessment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&types.Household{}, id).Error
	})
}

func newHouseholdID() string {
	return "HH-" + strings.ToUpper(uuid.NewString()[:8])
}
