package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "https://api-adresse.data.gouv.fr", cfg.BANBaseURL)
	assert.Equal(t, 5*time.Second, cfg.BANTimeout)
	assert.Equal(t, 3, cfg.AnonDailyQuota)
	assert.NotEmpty(t, cfg.CORSOrigins)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		jwtSecret string
		quota     int
		wantErr   bool
	}{
		{name: "prod with real secret", env: "prod", jwtSecret: "a-strong-secret", quota: 3, wantErr: false},
		{name: "prod with placeholder secret", env: "prod", jwtSecret: "change-me", quota: 3, wantErr: true},
		{name: "prod with empty secret", env: "prod", jwtSecret: "", quota: 3, wantErr: true},
		{name: "dev tolerates the placeholder", env: "dev", jwtSecret: "change-me", quota: 3, wantErr: false},
		{name: "negative quota rejected", env: "dev", jwtSecret: "x", quota: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Env: tt.env, JWTSecret: tt.jwtSecret, AnonDailyQuota: tt.quota}
			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CASAMX_TEST_STR", "value")
	t.Setenv("CASAMX_TEST_INT", "42")
	t.Setenv("CASAMX_TEST_DUR", "90s")
	t.Setenv("CASAMX_TEST_LIST", "a, b ,,c")

	assert.Equal(t, "value", getEnv("CASAMX_TEST_STR", "def"))
	assert.Equal(t, "def", getEnv("CASAMX_TEST_MISSING", "def"))
	assert.Equal(t, 42, getEnvInt("CASAMX_TEST_INT", 0))
	assert.Equal(t, 7, getEnvInt("CASAMX_TEST_STR", 7))
	assert.Equal(t, 90*time.Second, getEnvDuration("CASAMX_TEST_DUR", time.Minute))
	assert.Equal(t, []string{"a", "b", "c"}, getEnvList("CASAMX_TEST_LIST", nil))
}
