package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamx/internal/model"
)

// BillingRepository defines plan, subscription and credits ledger
// persistence. WithTransaction scopes the compound subscribe operation to a
// single database transaction.
type BillingRepository interface {
	FindActivePlan(ctx context.Context, code string) (*model.BillingPlan, error)
	ListActivePlans(ctx context.Context) ([]model.BillingPlan, error)
	ListValidCredits(ctx context.Context, userID uuid.UUID, now time.Time) ([]model.CreditEntry, error)
	AppendCredit(ctx context.Context, entry *model.CreditEntry) error
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	UpdateUserPlan(ctx context.Context, userID uuid.UUID, planCode, billingPeriod string, renewsAt time.Time) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BillingRepository) error) error
}

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new billing repository.
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) FindActivePlan(ctx context.Context, code string) (*model.BillingPlan, error) {
	var plan model.BillingPlan
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *billingRepository) ListActivePlans(ctx context.Context) ([]model.BillingPlan, error) {
	var plans []model.BillingPlan
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, price ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// ListValidCredits returns non-zero ledger entries that are unexpired at
// now, newest first.
func (r *billingRepository) ListValidCredits(ctx context.Context, userID uuid.UUID, now time.Time) ([]model.CreditEntry, error) {
	var entries []model.CreditEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("delta <> 0").
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *billingRepository) AppendCredit(ctx context.Context, entry *model.CreditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *billingRepository) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// UpdateUserPlan writes the denormalized plan fields on the user row.
// subscription_started_at is only set on the first subscription.
func (r *billingRepository) UpdateUserPlan(ctx context.Context, userID uuid.UUID, planCode, billingPeriod string, renewsAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"plan_code":               planCode,
			"billing_period":          billingPeriod,
			"subscription_started_at": gorm.Expr("COALESCE(subscription_started_at, ?)", time.Now()),
			"subscription_renews_at":  renewsAt,
		}).Error
}

// WithTransaction executes fn against a transaction-scoped repository.
func (r *billingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BillingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &billingRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
