package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 12

// Hasher produces and verifies salted one-way password digests.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt work factor. Out-of-range
// costs fall back to the default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a self-describing bcrypt digest of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Malformed or corrupted
// digests verify as false rather than surfacing an error, so the hash format
// never leaks to callers.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
