package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "casamx/internal/errors"
	"casamx/internal/model"
)

// MockUsageRepository is a mock implementation of UsageRepository.
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) Log(ctx context.Context, record *model.SearchUsage) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUsageRepository) CountForIPSince(ctx context.Context, ip string, since time.Time) (int64, error) {
	args := m.Called(ctx, ip, since)
	return args.Get(0).(int64), args.Error(1)
}

func TestQuotaService_CheckAndLog_Anonymous(t *testing.T) {
	tests := []struct {
		name          string
		count         int64
		expectedError error
		expectLog     bool
	}{
		{name: "first search of the day", count: 0, expectedError: nil, expectLog: true},
		{name: "under the limit", count: 2, expectedError: nil, expectLog: true},
		{name: "at the limit", count: 3, expectedError: apperrors.ErrQuotaExceeded, expectLog: false},
		{name: "over the limit", count: 7, expectedError: apperrors.ErrQuotaExceeded, expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUsageRepository)
			mockRepo.On("CountForIPSince", mock.Anything, "203.0.113.9", mock.AnythingOfType("time.Time")).Return(tt.count, nil)
			if tt.expectLog {
				mockRepo.On("Log", mock.Anything, mock.MatchedBy(func(r *model.SearchUsage) bool {
					return r.IPAddress == "203.0.113.9" && r.UserID == nil && r.Query == "12 rue de la paix"
				})).Return(nil)
			}

			service := NewQuotaService(mockRepo, 3)
			err := service.CheckAndLog(context.Background(), "203.0.113.9", "12 rue de la paix", nil)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuotaService_CheckAndLog_AuthenticatedBypass(t *testing.T) {
	mockRepo := new(MockUsageRepository)
	userID := uuid.New()
	mockRepo.On("Log", mock.Anything, mock.MatchedBy(func(r *model.SearchUsage) bool {
		return r.UserID != nil && *r.UserID == userID
	})).Return(nil)

	service := NewQuotaService(mockRepo, 3)
	err := service.CheckAndLog(context.Background(), "203.0.113.9", "avenue foch", &userID)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "CountForIPSince", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	at := time.Date(2026, 3, 14, 17, 42, 11, 500, loc)

	got := startOfDay(at)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
