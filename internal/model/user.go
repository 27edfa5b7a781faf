package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. The current plan is denormalized on
// the row; the historical trail lives in the credits ledger and the
// subscriptions table.
type User struct {
	ID                    uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	OrgID                 uuid.UUID  `json:"org_id" gorm:"type:char(36);not null;index"`
	Email                 string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash          string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName              string     `json:"full_name,omitempty" gorm:"size:255"`
	IsAdmin               bool       `json:"is_admin" gorm:"default:false"`
	Active                bool       `json:"active" gorm:"default:true;index"`
	PlanCode              string     `json:"plan_code" gorm:"size:50;default:'free'"`
	BillingPeriod         string     `json:"billing_period" gorm:"size:20;default:'credits'"`
	SubscriptionStartedAt *time.Time `json:"subscription_started_at,omitempty"`
	SubscriptionRenewsAt  *time.Time `json:"subscription_renews_at,omitempty"`
	ResetToken            *string    `json:"-" gorm:"size:64;index"`
	ResetTokenExpiresAt   *time.Time `json:"-"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUIDs before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.OrgID == uuid.Nil {
		u.OrgID = uuid.New()
	}
	return nil
}
