package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultAllowedOrigins are the local development origins allowed to call the API.
// "null" covers pages opened straight from the filesystem.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:8080",
	"null",
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string
}

// DocumentConfig holds settings for document generation.
type DocumentConfig struct {
	Title           string
	CodeMaxAttempts int
	MetricsEnabled  bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost  string
	Port     string
	Env      string
	Log      LogConfig
	CORS     CORSConfig
	Document DocumentConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	env := getEnv("APP_ENV", "development")

	defaultFormat := "console"
	if env == "production" {
		defaultFormat = "json"
	}

	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Env:     env,
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultFormat),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", DefaultAllowedOrigins),
		},
		Document: DocumentConfig{
			Title:           getEnv("PDF_TITLE", "Chelita Software - Fullstack Test"),
			CodeMaxAttempts: getEnvInt("CODE_MAX_ATTEMPTS", 5),
			MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		},
	}
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

// getEnvList splits a comma separated value, dropping blank entries.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
