package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"casamx/internal/auth"
	"casamx/internal/ban"
	apperrors "casamx/internal/errors"
	"casamx/internal/model"
	"casamx/internal/service"
)

// MockAddressService is a mock implementation of service.AddressService.
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) Autocomplete(ctx context.Context, query string, limit int) ([]ban.Suggestion, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ban.Suggestion), args.Error(1)
}

func (m *MockAddressService) LogSelection(ctx context.Context, sel service.Selection) (*model.Address, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

func (m *MockAddressService) Search(ctx context.Context, query string, limit int, lat, lng *float64) ([]service.AddressResult, error) {
	args := m.Called(ctx, query, limit, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AddressResult), args.Error(1)
}

func (m *MockAddressService) Near(ctx context.Context, lat, lng float64, radiusM, limit int) ([]service.AddressResult, error) {
	args := m.Called(ctx, lat, lng, radiusM, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AddressResult), args.Error(1)
}

func (m *MockAddressService) FindByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

// MockQuotaService is a mock implementation of service.QuotaService.
type MockQuotaService struct {
	mock.Mock
}

func (m *MockQuotaService) CheckAndLog(ctx context.Context, ip, query string, userID *uuid.UUID) error {
	args := m.Called(ctx, ip, query, userID)
	return args.Error(0)
}

func newAddressHandler(addresses *MockAddressService, quota *MockQuotaService) (*AddressHandler, *auth.TokenCodec) {
	codec := auth.NewTokenCodec("test-secret", time.Hour)
	return NewAddressHandler(addresses, quota, codec), codec
}

func TestAddressHandler_BanAutocomplete(t *testing.T) {
	t.Run("returns suggestions", func(t *testing.T) {
		mockAddresses := new(MockAddressService)
		mockQuota := new(MockQuotaService)
		mockQuota.On("CheckAndLog", mock.Anything, mock.Anything, "12 rue", (*uuid.UUID)(nil)).Return(nil)
		mockAddresses.On("Autocomplete", mock.Anything, "12 rue", 8).Return([]ban.Suggestion{
			{Label: "12 Rue de la Paix 75002 Paris", Source: "ban"},
		}, nil)

		h, _ := newAddressHandler(mockAddresses, mockQuota)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/addresses/ban-autocomplete?q=12+rue", nil)
		rec := httptest.NewRecorder()

		err := h.BanAutocomplete(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "12 Rue de la Paix 75002 Paris")
		mockQuota.AssertExpectations(t)
		mockAddresses.AssertExpectations(t)
	})

	t.Run("quota exhaustion maps to 429 without calling upstream", func(t *testing.T) {
		mockAddresses := new(MockAddressService)
		mockQuota := new(MockQuotaService)
		mockQuota.On("CheckAndLog", mock.Anything, mock.Anything, "12 rue", (*uuid.UUID)(nil)).
			Return(apperrors.ErrQuotaExceeded)

		h, _ := newAddressHandler(mockAddresses, mockQuota)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/addresses/ban-autocomplete?q=12+rue", nil)
		rec := httptest.NewRecorder()

		err := h.BanAutocomplete(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
		mockAddresses.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("authenticated caller passes a user id to the quota check", func(t *testing.T) {
		mockAddresses := new(MockAddressService)
		mockQuota := new(MockQuotaService)
		mockQuota.On("CheckAndLog", mock.Anything, mock.Anything, "12 rue", mock.MatchedBy(func(id *uuid.UUID) bool {
			return id != nil
		})).Return(nil)
		mockAddresses.On("Autocomplete", mock.Anything, "12 rue", 8).Return([]ban.Suggestion{}, nil)

		h, codec := newAddressHandler(mockAddresses, mockQuota)
		token, err := codec.Issue(uuid.New(), uuid.New(), "user@example.com", false)
		assert.NoError(t, err)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/api/addresses/ban-autocomplete?q=12+rue", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()

		assert.NoError(t, h.BanAutocomplete(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		mockQuota.AssertExpectations(t)
	})

	t.Run("short query rejected", func(t *testing.T) {
		mockQuota := new(MockQuotaService)
		h, _ := newAddressHandler(new(MockAddressService), mockQuota)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/addresses/ban-autocomplete?q=a", nil)
		rec := httptest.NewRecorder()

		err := h.BanAutocomplete(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockQuota.AssertNotCalled(t, "CheckAndLog", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		mockAddresses := new(MockAddressService)
		mockQuota := new(MockQuotaService)
		mockQuota.On("CheckAndLog", mock.Anything, mock.Anything, "12 rue", (*uuid.UUID)(nil)).Return(nil)
		mockAddresses.On("Autocomplete", mock.Anything, "12 rue", 8).Return(nil, apperrors.ErrUpstream)

		h, _ := newAddressHandler(mockAddresses, mockQuota)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/addresses/ban-autocomplete?q=12+rue", nil)
		rec := httptest.NewRecorder()

		err := h.BanAutocomplete(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	})
}

func TestAddressHandler_Near(t *testing.T) {
	t.Run("missing coordinates rejected", func(t *testing.T) {
		h, _ := newAddressHandler(new(MockAddressService), new(MockQuotaService))
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/addresses/near?lat=48.85", nil)
		rec := httptest.NewRecorder()

		err := h.Near(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("out-of-range radius rejected", func(t *testing.T) {
		h, _ := newAddressHandler(new(MockAddressService), new(MockQuotaService))
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/addresses/near?lat=48.85&lng=2.35&radius_m=50000", nil)
		rec := httptest.NewRecorder()

		err := h.Near(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("defaults applied", func(t *testing.T) {
		mockAddresses := new(MockAddressService)
		mockQuota := new(MockQuotaService)
		mockQuota.On("CheckAndLog", mock.Anything, mock.Anything, mock.Anything, (*uuid.UUID)(nil)).Return(nil)
		mockAddresses.On("Near", mock.Anything, 48.85, 2.35, 500, 20).Return([]service.AddressResult{}, nil)

		h, _ := newAddressHandler(mockAddresses, mockQuota)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/addresses/near?lat=48.85&lng=2.35", nil)
		rec := httptest.NewRecorder()

		assert.NoError(t, h.Near(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		mockAddresses.AssertExpectations(t)
	})
}
