package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all records.
type DefaultModel struct {
	ID uuid.UUID `json:"id" gorm:"primaryKey"`
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
//
// For tasks, CreatedAt and UpdatedAt are business data: the normalizer uses
// them to date expenses and fallback income.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// AfterFind updates the timestamps to use UTC as timezone.
//
// They are stored in UTC, but reading them back from SQLite
// returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate generates a UUID for the record unless one is already set.
// Schedule rows carry deterministic IDs that must survive the insert.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
