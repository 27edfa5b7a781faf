package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchUsage is one row per address-search request. Rows are immutable once
// written; the anonymous quota counts them per IP over the current calendar
// day. Retention/cleanup is handled outside the API.
type SearchUsage struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:char(36);index"`
	IPAddress string     `json:"ip_address" gorm:"size:45;not null;index:idx_usage_ip_day"`
	Query     string     `json:"query" gorm:"size:512"`
	QueriedAt time.Time  `json:"queried_at" gorm:"not null;index:idx_usage_ip_day"`
}

// BeforeCreate sets the UUID and timestamp before creating the record.
func (s *SearchUsage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.QueriedAt.IsZero() {
		s.QueriedAt = time.Now()
	}
	return nil
}
