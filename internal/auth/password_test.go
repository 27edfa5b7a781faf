package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("s3cret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "s3cret-password", digest)

	assert.True(t, hasher.Verify("s3cret-password", digest))
	assert.False(t, hasher.Verify("wrong-password", digest))
}

func TestHasher_VerifyCorruptedDigest(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty digest", digest: ""},
		{name: "not a bcrypt digest", digest: "plaintext-stored-by-mistake"},
		{name: "truncated digest", digest: "$2a$12$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("anything", tt.digest))
		})
	}
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{name: "below minimum", cost: bcrypt.MinCost - 1},
		{name: "above maximum", cost: bcrypt.MaxCost + 1},
		{name: "zero", cost: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewHasher(tt.cost)
			assert.Equal(t, DefaultBcryptCost, hasher.cost)
		})
	}
}
