package auth

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "casamx_session"

// ContextKey is where the middleware stores the verified identity.
const ContextKey = "user"

// Middleware builds the session authenticator: it locates a token in the
// session cookie first, then in a Bearer authorization header, and decodes
// it through the one shared TokenCodec. The check is stateless; it never
// touches the user store, so deactivation only takes effect once the token
// expires.
func Middleware(codec *TokenCodec) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "cookie:" + SessionCookieName + ",header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := codec.Decode(token)
			if err != nil {
				return nil, err
			}
			return claims.Identity()
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": "token expired", "code": "TOKEN_EXPIRED",
				})
			case errors.Is(err, ErrTokenInvalid):
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": "token invalid", "code": "TOKEN_INVALID",
				})
			default:
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": "missing token", "code": "UNAUTHENTICATED",
				})
			}
		},
	})
}

// CurrentUser returns the verified identity placed in the context by
// Middleware.
func CurrentUser(c echo.Context) (*Identity, error) {
	identity, ok := c.Get(ContextKey).(*Identity)
	if !ok || identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}
	return identity, nil
}

// OptionalIdentity resolves the caller identity on routes that are open to
// anonymous traffic. Any extraction or decode failure yields nil rather than
// an error: the caller is simply treated as anonymous.
func OptionalIdentity(c echo.Context, codec *TokenCodec) *Identity {
	token := ""
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		token = cookie.Value
	}
	if token == "" {
		authz := c.Request().Header.Get(echo.HeaderAuthorization)
		if strings.HasPrefix(authz, "Bearer ") {
			token = strings.TrimPrefix(authz, "Bearer ")
		}
	}
	if token == "" {
		return nil
	}
	claims, err := codec.Decode(token)
	if err != nil {
		return nil
	}
	identity, err := claims.Identity()
	if err != nil {
		return nil
	}
	return identity
}
