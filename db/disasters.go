package db

import (
	"fmt"

	"go-ayuda/types"
)

func (s *Store) CreateDisaster(d *types.DisasterEvent) error {
	if err := s.db.Create(d).Error; err != nil {
		return fmt.Errorf("creating disaster: %w", err)
	}
	return nil
}

// ListDisasters returns all disaster events, most recent first.
func (s *Store) ListDisasters() ([]types.DisasterEvent, error) {
	var disasters []types.DisasterEvent
	if err := s.db.Order("date_occurred desc").Find(&disasters).Error; err != nil {
		return nil, fmt.Errorf("listing disasters: %w", err)
	}
	return disasters, nil
}

func (s *Store) GetDisaster(id uint) (types.DisasterEvent, error) {
	var d types.DisasterEvent
	if err := s.db.First(&d, id).Error; err != nil {
		return types.DisasterEvent{}, notFound(err)
	}
	return d, nil
}

func (s *Store) UpdateDisaster(d *types.DisasterEvent) error {
	if d.ID == 0 {
		return ErrNotFound
	}
	if err := s.db.Save(d).Error; err != nil {
		return fmt.Errorf("updating disaster: %w", err)
	}
	return nil
}
