package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamx/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	FindByValidResetToken(ctx context.Context, email, token string) (*model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches case-insensitively; email uniqueness is enforced on
// the lowercased form at registration.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_token":            token,
			"reset_token_expires_at": expiresAt,
		}).Error
}

// FindByValidResetToken returns the user only when the token matches and has
// not expired.
func (r *userRepository) FindByValidResetToken(ctx context.Context, email, token string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		Where("reset_token = ?", token).
		Where("reset_token_expires_at IS NOT NULL AND reset_token_expires_at > ?", time.Now()).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the password hash and consumes any pending reset
// token in the same statement.
func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash":          passwordHash,
			"reset_token":            nil,
			"reset_token_expires_at": nil,
		}).Error
}
