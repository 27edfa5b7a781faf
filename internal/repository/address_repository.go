package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamx/internal/model"
)

// AddressRepository defines local address persistence operations.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Address, error)
	FindBySignature(ctx context.Context, label string, postalCode, city *string) (*model.Address, error)
	SearchLike(ctx context.Context, pattern string, limit int) ([]model.Address, error)
	ListGeocodedWithin(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]model.Address, error)
}

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository.
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	var address model.Address
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// FindBySignature looks up an existing row with the same
// (address, postal_code, city) triple, NULLs compared as equal.
func (r *addressRepository) FindBySignature(ctx context.Context, label string, postalCode, city *string) (*model.Address, error) {
	q := r.db.WithContext(ctx).Where("address = ?", label)
	if postalCode != nil {
		q = q.Where("postal_code = ?", *postalCode)
	} else {
		q = q.Where("postal_code IS NULL")
	}
	if city != nil {
		q = q.Where("city = ?", *city)
	} else {
		q = q.Where("city IS NULL")
	}

	var address model.Address
	if err := q.First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// SearchLike matches the pattern against address, city and postal code,
// newest rows first.
func (r *addressRepository) SearchLike(ctx context.Context, pattern string, limit int) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.WithContext(ctx).
		Where("address LIKE ? OR city LIKE ? OR postal_code LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// ListGeocodedWithin returns geocoded rows inside a bounding box. Exact
// distance filtering and ordering happen in the service layer.
func (r *addressRepository) ListGeocodedWithin(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.WithContext(ctx).
		Where("lat IS NOT NULL AND lng IS NOT NULL").
		Where("lat BETWEEN ? AND ?", minLat, maxLat).
		Where("lng BETWEEN ? AND ?", minLng, maxLng).
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}
