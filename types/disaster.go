package types

import "time"

// DisasterEvent lets new disasters be created so the system is reusable
// across events. Households are not owned by a disaster; the relationship
// exists only through damage assessments.
type DisasterEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Description  string    `json:"description"`
	DateOccurred time.Time `json:"date_occurred"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
