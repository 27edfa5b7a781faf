package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any login failure, keeping one
	// generic message for unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("an account already exists with this email")
	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password must contain at least 8 characters")
	// ErrResetInvalid is returned when a password reset token does not match
	// or has expired.
	ErrResetInvalid = errors.New("reset link is invalid or expired")
	// ErrQuotaExceeded is returned when an anonymous caller hits the daily
	// search limit.
	ErrQuotaExceeded = errors.New("anonymous search quota reached for today")
	// ErrUserNotFound is returned when a referenced user is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrAddressNotFound is returned when a referenced address is absent.
	ErrAddressNotFound = errors.New("address not found")
	// ErrPlanNotFound is returned when a billing plan is absent or inactive.
	ErrPlanNotFound = errors.New("billing plan not found")
	// ErrUpstream is returned when the national address service is
	// unreachable or answers with a non-200 status.
	ErrUpstream = errors.New("address lookup service unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store failures fall
// through to a generic 500 without internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrResetInvalid):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "RESET_INVALID")
	case errors.Is(err, ErrQuotaExceeded):
		return NewHTTPError(http.StatusTooManyRequests, err.Error(), "QUOTA_EXCEEDED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrAddressNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ADDRESS_NOT_FOUND")
	case errors.Is(err, ErrPlanNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLAN_NOT_FOUND")
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "UPSTREAM_FAILURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
