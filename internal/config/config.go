package config

import (
	"os"
	"slices"
	"strconv"
	"strings"
)

// DefaultAllowOrigins is the local frontend allow-list used when CORS_ALLOW_ORIGINS is unset.
var DefaultAllowOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:3002",
	"http://localhost:3003",
	"http://localhost:3004",
	"http://localhost:3005",
	"http://localhost:3006",
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// CORSConfig holds cross-origin settings for the browser frontends.
type CORSConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
}

// AppConfig is the centralized configuration struct for the application.
// Every field has a default, so the server runs with no environment at all.
type AppConfig struct {
	Port              string
	Environment       string
	Version           string
	ShutdownTimeoutMs int
	Log               LogConfig
	CORS              CORSConfig
}

// wildcardOrigin allows every origin; credentials cannot be combined with it.
const wildcardOrigin = "*"

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// A "*" in CORS_ALLOW_ORIGINS collapses the list to "*" and disables credentials.
func Load() *AppConfig {
	cfg := &AppConfig{
		Port:              getEnv("PORT", "3006"),
		Environment:       getEnv("APP_ENV", "development"),
		Version:           getEnv("APP_VERSION", "1.0.0"),
		ShutdownTimeoutMs: getEnvInt("SHUTDOWN_TIMEOUT_MS", 0),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowOrigins:     getEnvList("CORS_ALLOW_ORIGINS", DefaultAllowOrigins),
			AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		},
	}
	if slices.Contains(cfg.CORS.AllowOrigins, wildcardOrigin) {
		cfg.CORS.AllowOrigins = []string{wildcardOrigin}
		cfg.CORS.AllowCredentials = false
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma-separated value, dropping blanks.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
