package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// insecureSecret is the placeholder shipped in example env files. The server
// refuses to boot with it in production mode.
const insecureSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env            string
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	BANBaseURL     string
	BANTimeout     time.Duration
	AnonDailyQuota int
	CORSOrigins    []string
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("APP_ENV", "prod"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/casamx?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", insecureSecret),
		JWTTTL:         getEnvDuration("JWT_TTL", 24*time.Hour),
		BcryptCost:     getEnvInt("BCRYPT_COST", 12),
		BANBaseURL:     getEnv("BAN_BASE_URL", "https://api-adresse.data.gouv.fr"),
		BANTimeout:     getEnvDuration("BAN_TIMEOUT", 5*time.Second),
		AnonDailyQuota: getEnvInt("ANON_DAILY_QUOTA", 3),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"https://casametrix.com", "https://www.casametrix.com", "http://localhost:5173"}),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

// IsProd reports whether the server runs in production mode. Production mode
// gates the insecure-secret check and suppresses reset tokens in responses.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.IsProd() && (c.JWTSecret == "" || c.JWTSecret == insecureSecret) {
		return fmt.Errorf("JWT_SECRET is unset or uses the default placeholder; set a strong value before starting in prod")
	}
	if c.AnonDailyQuota < 0 {
		return fmt.Errorf("ANON_DAILY_QUOTA must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
