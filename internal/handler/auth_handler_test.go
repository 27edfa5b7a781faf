package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"casamx/internal/auth"
	apperrors "casamx/internal/errors"
	"casamx/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	args := m.Called(ctx, email, token, newPassword)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("sets the session cookie", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Register", mock.Anything, "new@example.com", "password123").
			Return(&model.User{ID: uuid.New(), Email: "new@example.com"}, "signed-token", nil)

		h := NewAuthHandler(mockService, time.Hour, false)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"email":"new@example.com","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.Register(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp AuthResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, 3600, resp.ExpiresIn)

		cookie := sessionCookie(rec)
		assert.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, 3600, cookie.MaxAge)
		mockService.AssertExpectations(t)
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Register", mock.Anything, "taken@example.com", "password123").
			Return(nil, "", apperrors.ErrEmailTaken)

		h := NewAuthHandler(mockService, time.Hour, false)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"email":"taken@example.com","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.Register(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	})

	t.Run("malformed email rejected before the service", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := NewAuthHandler(mockService, time.Hour, false)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"email":"not-an-email","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.Register(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("invalid credentials map to 401", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "user@example.com", "wrong").
			Return("", nil, apperrors.ErrInvalidCredentials)

		h := NewAuthHandler(mockService, time.Hour, false)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"user@example.com","password":"wrong"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.Login(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService), time.Hour, false)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	err := h.Logout(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	forgot := func(h *AuthHandler, email string) (*httptest.ResponseRecorder, error) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
			strings.NewReader(`{"email":"`+email+`"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		err := h.ForgotPassword(e.NewContext(req, rec))
		return rec, err
	}

	t.Run("dev mode echoes the token for a known email", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("ForgotPassword", mock.Anything, "user@example.com").Return("reset-token", nil)

		rec, err := forgot(NewAuthHandler(mockService, time.Hour, false), "user@example.com")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ForgotPasswordResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.NotNil(t, resp.ResetToken)
		assert.Equal(t, "reset-token", *resp.ResetToken)
	})

	t.Run("prod mode never echoes the token", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("ForgotPassword", mock.Anything, "user@example.com").Return("reset-token", nil)

		rec, err := forgot(NewAuthHandler(mockService, time.Hour, true), "user@example.com")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ForgotPasswordResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Nil(t, resp.ResetToken)
	})

	t.Run("unknown email gets the same 200 body", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("ForgotPassword", mock.Anything, "ghost@example.com").Return("", nil)

		rec, err := forgot(NewAuthHandler(mockService, time.Hour, false), "ghost@example.com")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("invalid token maps to 400", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("ResetPassword", mock.Anything, "user@example.com", "stale", "new-password-1").
			Return(apperrors.ErrResetInvalid)

		h := NewAuthHandler(mockService, time.Hour, false)
		e := newTestEcho()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password",
			strings.NewReader(`{"email":"user@example.com","token":"stale","new_password":"new-password-1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.ResetPassword(e.NewContext(req, rec))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
