package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionStatus represents the status of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// BillingPlan is a purchasable plan (free, starter, pro, business).
type BillingPlan struct {
	Code        string          `json:"code" gorm:"primaryKey;size:50"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description *string         `json:"description,omitempty" gorm:"size:512"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Currency    string          `json:"currency" gorm:"size:3;not null;default:'EUR'"`
	Period      string          `json:"period" gorm:"size:20;not null"` // free, monthly, annual
	Credits     int             `json:"credits" gorm:"not null"`
	IsActive    bool            `json:"is_active" gorm:"default:true;index"`
	SortOrder   int             `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Subscription records one plan subscription event.
type Subscription struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	UserID             uuid.UUID          `json:"user_id" gorm:"type:char(36);not null;index"`
	PlanCode           string             `json:"plan_code" gorm:"size:50;not null"`
	StartedAt          time.Time          `json:"started_at"`
	CurrentPeriodStart time.Time          `json:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end"`
	Status             SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt          time.Time          `json:"created_at"`
}

// CreditEntry is one append-only credits ledger row. Entries are never
// mutated; they fall out of the balance once expires_at passes.
type CreditEntry struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;index"`
	PlanCode  string     `json:"plan_code" gorm:"size:50"`
	Delta     int        `json:"delta" gorm:"not null"` // positive = grant
	Reason    string     `json:"reason,omitempty" gorm:"size:255"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" gorm:"index"`
}

// TableName keeps the original ledger table name.
func (CreditEntry) TableName() string {
	return "credits_ledger"
}
