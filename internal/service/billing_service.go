package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamx/internal/cache"
	apperrors "casamx/internal/errors"
	"casamx/internal/model"
	"casamx/internal/repository"
)

const (
	// CreditsTTLDays is how long granted credit packs stay spendable.
	CreditsTTLDays = 90

	planCacheTTL  = 5 * time.Minute
	planCacheKey  = "billing:plans"
	monthlyPeriod = "monthly"
	annualPeriod  = "annual"
	freePeriod    = "free"
)

// BillingSummary is the per-user billing view: current plan, spendable
// credits and the still-valid ledger entries behind them.
type BillingSummary struct {
	PlanCode     string              `json:"plan_code"`
	PlanName     *string             `json:"plan_name,omitempty"`
	Period       string              `json:"period,omitempty"`
	CreditsTotal int                 `json:"credits_total"`
	NextExpiry   *time.Time          `json:"next_expiry,omitempty"`
	Entries      []model.CreditEntry `json:"entries"`
}

// BillingService manages plans, subscriptions and the credits ledger.
type BillingService interface {
	ListPlans(ctx context.Context) ([]model.BillingPlan, error)
	Summary(ctx context.Context, userID uuid.UUID) (*BillingSummary, error)
	Subscribe(ctx context.Context, userID uuid.UUID, planCode string) (*BillingSummary, error)
	Grant(ctx context.Context, userID uuid.UUID, planCode string, amount int, reason string, ttlDays int) error
}

type billingService struct {
	billing repository.BillingRepository
	users   repository.UserRepository
	cache   *cache.Client
}

// NewBillingService creates the billing service.
func NewBillingService(billing repository.BillingRepository, users repository.UserRepository, cacheClient *cache.Client) BillingService {
	return &billingService{
		billing: billing,
		users:   users,
		cache:   cacheClient,
	}
}

// ListPlans returns active plans, cached briefly since the catalog rarely
// changes.
func (s *billingService) ListPlans(ctx context.Context) ([]model.BillingPlan, error) {
	if data, _ := s.cache.Get(ctx, planCacheKey); data != nil {
		var cached []model.BillingPlan
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	plans, err := s.billing.ListActivePlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	if payload, err := json.Marshal(plans); err == nil {
		_ = s.cache.Set(ctx, planCacheKey, payload, planCacheTTL)
	}
	return plans, nil
}

// Summary computes the spendable balance: the sum of non-expired ledger
// deltas clamped at zero, plus the earliest upcoming expiry.
func (s *billingService) Summary(ctx context.Context, userID uuid.UUID) (*BillingSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	entries, err := s.billing.ListValidCredits(ctx, userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}

	total := 0
	var nextExpiry *time.Time
	for _, e := range entries {
		total += e.Delta
		if e.ExpiresAt != nil && (nextExpiry == nil || e.ExpiresAt.Before(*nextExpiry)) {
			nextExpiry = e.ExpiresAt
		}
	}
	if total < 0 {
		total = 0
	}

	summary := &BillingSummary{
		PlanCode:     user.PlanCode,
		Period:       user.BillingPeriod,
		CreditsTotal: total,
		NextExpiry:   nextExpiry,
		Entries:      entries,
	}
	if plan, err := s.billing.FindActivePlan(ctx, user.PlanCode); err == nil {
		summary.PlanName = &plan.Name
	}
	return summary, nil
}

// Grant appends one credit pack to the ledger. Non-positive amounts are a
// no-op, not an error.
func (s *billingService) Grant(ctx context.Context, userID uuid.UUID, planCode string, amount int, reason string, ttlDays int) error {
	return grantCredits(ctx, s.billing, userID, planCode, amount, reason, ttlDays)
}

func grantCredits(ctx context.Context, repo repository.BillingRepository, userID uuid.UUID, planCode string, amount int, reason string, ttlDays int) error {
	if amount <= 0 {
		return nil
	}
	if ttlDays <= 0 {
		ttlDays = CreditsTTLDays
	}
	expires := time.Now().AddDate(0, 0, ttlDays)
	entry := &model.CreditEntry{
		UserID:    userID,
		PlanCode:  planCode,
		Delta:     amount,
		Reason:    reason,
		ExpiresAt: &expires,
	}
	return repo.AppendCredit(ctx, entry)
}

// Subscribe switches the user to a plan. The plan-field update on the user
// row, the subscription record and the credit grant commit in one
// transaction or not at all.
func (s *billingService) Subscribe(ctx context.Context, userID uuid.UUID, planCode string) (*BillingSummary, error) {
	plan, err := s.billing.FindActivePlan(ctx, planCode)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}

	now := time.Now()
	periodEnd := periodEndFor(plan.Period, now)

	err = s.billing.WithTransaction(ctx, func(ctx context.Context, repo repository.BillingRepository) error {
		if err := repo.UpdateUserPlan(ctx, userID, plan.Code, plan.Period, periodEnd); err != nil {
			return fmt.Errorf("update user plan: %w", err)
		}

		sub := &model.Subscription{
			UserID:             userID,
			PlanCode:           plan.Code,
			StartedAt:          now,
			CurrentPeriodStart: now,
			CurrentPeriodEnd:   periodEnd,
			Status:             model.SubscriptionStatusActive,
		}
		if err := repo.CreateSubscription(ctx, sub); err != nil {
			return fmt.Errorf("create subscription: %w", err)
		}

		reason := fmt.Sprintf("Subscription %s", plan.Code)
		if err := grantCredits(ctx, repo, userID, plan.Code, plan.Credits, reason, CreditsTTLDays); err != nil {
			return fmt.Errorf("grant credits: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Summary(ctx, userID)
}

func periodEndFor(period string, now time.Time) time.Time {
	switch period {
	case monthlyPeriod:
		return now.AddDate(0, 0, 30)
	case annualPeriod:
		return now.AddDate(0, 0, 365)
	case freePeriod:
		return now
	default:
		return now.AddDate(0, 0, 30)
	}
}
