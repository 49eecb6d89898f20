package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CODE_MAX_ATTEMPTS", "3")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("PDF_TITLE", "")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Document.CodeMaxAttempts)
	assert.False(t, cfg.Document.MetricsEnabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "Chelita Software - Fullstack Test", cfg.Document.Title)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "LOG_FORMAT", "CORS_ALLOW_ORIGINS", "CODE_MAX_ATTEMPTS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, DefaultAllowedOrigins, cfg.CORS.AllowOrigins)
	assert.Equal(t, 5, cfg.Document.CodeMaxAttempts)
	assert.True(t, cfg.Document.MetricsEnabled)
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
	def := []string{"x"}

	os.Setenv(key, " , ,")
	assert.Equal(t, def, getEnvList(key, def))

	os.Setenv(key, "a,b")
	assert.Equal(t, []string{"a", "b"}, getEnvList(key, def))

	os.Unsetenv(key)
	assert.Equal(t, def, getEnvList(key, def))
}
