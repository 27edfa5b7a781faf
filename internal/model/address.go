package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a locally persisted address, fed from BAN selections.
// Rows are deduplicated on the (address, postal_code, city) signature.
type Address struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Address    string    `json:"address" gorm:"size:512;not null;index"`
	PostalCode *string   `json:"postal_code,omitempty" gorm:"size:10;index"`
	City       *string   `json:"city,omitempty" gorm:"size:255;index"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
