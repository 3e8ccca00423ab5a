package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "APP_VERSION", "CORS_ALLOW_ORIGINS", "CORS_ALLOW_CREDENTIALS", "SHUTDOWN_TIMEOUT_MS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3006", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, 0, cfg.ShutdownTimeoutMs)
	assert.Equal(t, DefaultAllowOrigins, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.Len(t, cfg.CORS.AllowOrigins, 7)
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("APP_VERSION", "2.3.4")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, ,http://127.0.0.1:5173")
	t.Setenv("SHUTDOWN_TIMEOUT_MS", "250")

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "2.3.4", cfg.Version)
	assert.Equal(t, 250, cfg.ShutdownTimeoutMs)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORS.AllowOrigins)
}

func TestLoadWildcardOriginDisablesCredentials(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000,*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	cfg := Load()

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.CORS.AllowCredentials)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"
	def := []string{"a"}

	t.Setenv(key, " , ")
	assert.Equal(t, def, getEnvList(key, def))

	t.Setenv(key, "x,y")
	assert.Equal(t, []string{"x", "y"}, getEnvList(key, def))
}
