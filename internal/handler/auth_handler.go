package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"casamx/internal/auth"
	"casamx/internal/errors"
	"casamx/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	tokenTTL    time.Duration
	prod        bool
}

// NewAuthHandler creates a new auth handler. prod controls whether reset
// tokens are withheld from responses.
func NewAuthHandler(authService service.AuthService, tokenTTL time.Duration, prod bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenTTL:    tokenTTL,
		prod:        prod,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest asks for a password reset token.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest consumes a password reset token.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int         `json:"expires_in"`
	User        interface{} `json:"user,omitempty"`
}

// ForgotPasswordResponse is always the same shape whether or not the email
// exists; the token field is populated in dev mode only.
type ForgotPasswordResponse struct {
	OK         bool    `json:"ok"`
	ResetToken *string `json:"reset_token,omitempty"`
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// Register godoc
// @Summary Register a new user on the free plan
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.setSessionCookie(c, token, int(h.tokenTTL.Seconds()))
	return c.JSON(http.StatusCreated, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.tokenTTL.Seconds()),
		User:        user,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.setSessionCookie(c, token, int(h.tokenTTL.Seconds()))
	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.tokenTTL.Seconds()),
		User:        user,
	})
}

// Me godoc
// @Summary Return the verified caller identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Identity
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Tokens carry no revocation mechanism; logout only clears the cookie
	// and the token dies at its natural expiry.
	h.setSessionCookie(c, "", -1)
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ForgotPassword godoc
// @Summary Issue a password reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} ForgotPasswordResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// Uniform response whether or not the email exists. The raw token is
	// echoed in dev mode only; in prod it travels by mail.
	resp := ForgotPasswordResponse{OK: true}
	if !h.prod && token != "" {
		resp.ResetToken = &token
	}
	return c.JSON(http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary Reset the password with a valid token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset payload"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Email, req.Token, req.NewPassword); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
