package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"casamx/internal/model"
)

// UsageRepository defines append-only search usage persistence.
type UsageRepository interface {
	Log(ctx context.Context, record *model.SearchUsage) error
	CountForIPSince(ctx context.Context, ip string, since time.Time) (int64, error)
}

type usageRepository struct {
	db *gorm.DB
}

// NewUsageRepository creates a new usage repository.
func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) Log(ctx context.Context, record *model.SearchUsage) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *usageRepository) CountForIPSince(ctx context.Context, ip string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SearchUsage{}).
		Where("ip_address = ?", ip).
		Where("queried_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
