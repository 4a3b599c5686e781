package types

import "time"

// Household stores permanent data for one household. The flood and house
// dimension fields double as ML features. HouseHeight must stay positive,
// it is used as a denominator when computing the flood-height ratio.
type Household struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HouseholdID   string    `gorm:"size:20;uniqueIndex" json:"household_id"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	Address       string    `json:"address"`
	Barangay      string    `gorm:"size:100;index" json:"barangay"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	FloodDepth    float64   `json:"flood_depth"`
	HouseHeight   float64   `gorm:"default:4" json:"house_height"`
	HouseWidth    float64   `gorm:"default:8" json:"house_width"`
	Is4Ps         bool      `json:"is_4ps"`
	ContactNumber string    `gorm:"size:20" json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublicID returns the stable identifier shown to field staff, falling back
// to the display name for rows seeded before identifiers were assigned.
func (h Household) PublicID() string {
	if h.HouseholdID != "" {
		return h.HouseholdID
	}
	return h.Name
}
