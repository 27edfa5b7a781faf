package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"casamx/internal/auth"
	apperrors "casamx/internal/errors"
	"casamx/internal/model"
	"casamx/internal/repository"
)

const (
	minPasswordLength = 8
	resetTokenTTL     = time.Hour
	// freePlanWindowDays is the initial subscription window granted at
	// registration on the free plan.
	freePlanWindowDays = 90
)

// AuthService handles registration, login and password reset.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, token, newPassword string) error
}

type authService struct {
	users     repository.UserRepository
	hasher    *auth.Hasher
	codec     *auth.TokenCodec
	dummyHash string
}

// NewAuthService creates the authentication service. A dummy digest is
// precomputed for the unknown-email login path.
func NewAuthService(users repository.UserRepository, hasher *auth.Hasher, codec *auth.TokenCodec) AuthService {
	dummy, _ := hasher.Hash("casamx-dummy-password-for-timing")
	return &authService{
		users:     users,
		hasher:    hasher,
		codec:     codec,
		dummyHash: dummy,
	}
}

func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}
	return nil
}

// Register creates a user on the free plan and returns a session token.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validatePasswordStrength(password); err != nil {
		return nil, "", err
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	renews := now.AddDate(0, 0, freePlanWindowDays)
	user := &model.User{
		Email:                 email,
		PasswordHash:          hash,
		Active:                true,
		PlanCode:              "free",
		BillingPeriod:         "credits",
		SubscriptionStartedAt: &now,
		SubscriptionRenewsAt:  &renews,
	}

	// The existence check above races with concurrent registrations; the
	// unique index on email is the real guard.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.codec.Issue(user.ID, user.OrgID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a session token. Unknown email,
// inactive user and wrong password all return the same generic error, and
// the unknown-email path still runs a hash verification.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Burn comparable CPU time before answering.
		s.hasher.Verify(password, s.dummyHash)
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !user.Active {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.OrgID, user.Email, user.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// ForgotPassword stores a single-use, time-bound reset token on the user
// row. An unknown email yields no error and an empty token so the HTTP
// response stays uniform.
func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	token, err := newResetToken()
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// ResetPassword consumes a reset token and replaces the password hash.
func (s *authService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	if err := validatePasswordStrength(newPassword); err != nil {
		return err
	}

	user, err := s.users.FindByValidResetToken(ctx, email, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrResetInvalid
		}
		return fmt.Errorf("check reset token: %w", err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
