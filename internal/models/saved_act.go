package models

import (
	"time"

	"gorm.io/gorm"
)

// SavedAct is an act bookmarked by a user. Title, summary, impact and
// penalties are snapshots copied from the act at save time and are not
// kept in sync with later catalog edits.
type SavedAct struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	UserEmail     string    `json:"userEmail" gorm:"not null;uniqueIndex:idx_user_act"`
	UserFirstName string    `json:"userFirstName" gorm:"not null"`
	ActID         int       `json:"actId" gorm:"not null;uniqueIndex:idx_user_act"`
	Title         string    `json:"title" gorm:"size:1000;not null"`
	Summary       string    `json:"summary" gorm:"size:2000"`
	Impact        string    `json:"impact" gorm:"size:2000"`
	Penalties     string    `json:"penalties" gorm:"size:2000"`
	SavedAt       time.Time `json:"savedAt" gorm:"column:saved_at"`
}

// TableName table name override
func (SavedAct) TableName() string {
	return "saved_acts"
}

// BeforeCreate stamps SavedAt exactly once, at insert time
func (s *SavedAct) BeforeCreate(tx *gorm.DB) error {
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}
	return nil
}
