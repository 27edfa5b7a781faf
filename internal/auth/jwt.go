package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when a token is structurally valid but past
	// its expiry window.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for any other decode failure: bad
	// signature, malformed token, wrong signing method.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the single claim shape used across the whole API: subject user
// id, organization, email and admin flag, plus the registered timestamps.
type Claims struct {
	OrgID   string `json:"org_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"adm"`
	jwt.RegisteredClaims
}

// Identity is the verified caller identity produced from decoded claims.
type Identity struct {
	UserID  uuid.UUID `json:"user_id"`
	OrgID   uuid.UUID `json:"org_id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

// TokenCodec issues and verifies signed session tokens. Tokens are
// stateless: validity is signature plus expiry, with no server-side session
// table and no revocation before natural expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec signing with secret and issuing tokens valid
// for ttl.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the validity window tokens are issued with. It bounds how long
// a deactivated user keeps being accepted.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given identity, expiring at now + TTL.
func (c *TokenCodec) Issue(userID, orgID uuid.UUID, email string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		OrgID:   orgID.String(),
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies signature and expiry, returning the embedded claims.
// Expired tokens fail with ErrTokenExpired, everything else with
// ErrTokenInvalid.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Identity converts decoded claims into a verified Identity. Claims carrying
// unparsable ids are treated as invalid tokens.
func (cl *Claims) Identity() (*Identity, error) {
	userID, err := uuid.Parse(cl.Subject)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	orgID, err := uuid.Parse(cl.OrgID)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return &Identity{
		UserID:  userID,
		OrgID:   orgID,
		Email:   cl.Email,
		IsAdmin: cl.IsAdmin,
	}, nil
}
