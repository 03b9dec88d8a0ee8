// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Profiles ProfilesConfig
	Session  SessionConfig
	CORS     CORSConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// ProfilesConfig selects and tunes the profile source used when a page session mounts.
type ProfilesConfig struct {
	Source       string // "randomuser" or "fake"
	URL          string
	Count        int
	FetchTimeout time.Duration
	FakeSeed     int64 // 0 means seeded from the clock
}

// SessionConfig holds browser session settings.
type SessionConfig struct {
	Secret        string
	CookieName    string
	TTL           time.Duration
	SweepInterval time.Duration
	Max           int // stored sessions, 0 means no cap
}

// CORSConfig holds the allowed origins for the JSON API.
type CORSConfig struct {
	AllowedOrigins []string
}

// Wildcard reports whether any origin may call the API.
// Credentialed cross-origin calls are only possible with explicit origins.
func (c CORSConfig) Wildcard() bool {
	return len(c.AllowedOrigins) == 0 || slices.Contains(c.AllowedOrigins, "*")
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev bool
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Profiles: ProfilesConfig{
			Source:       getEnv("PROFILE_SOURCE", "randomuser"),
			URL:          getEnv("RANDOMUSER_URL", "https://randomuser.me/api/"),
			Count:        getEnvInt("PROFILE_COUNT", 40),
			FetchTimeout: getEnvDuration("PROFILE_FETCH_TIMEOUT", 10*time.Second),
			FakeSeed:     int64(getEnvInt("FAKE_SEED", 0)),
		},
		Session: SessionConfig{
			Secret:        getEnv("SESSION_SECRET", "devsessionsecret"),
			CookieName:    getEnv("SESSION_COOKIE", "smash_session"),
			TTL:           getEnvDuration("SESSION_TTL", time.Hour),
			SweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
			Max:           getEnvInt("SESSION_MAX", 10000),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		App: AppConfig{
			Dev: getEnvBool("DEV", false),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

// getEnvDuration parses a Go duration string ("10s", "1h"). Invalid values fall back to the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
