// Package config reads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingRentalAPIBaseURL = errors.New("missing RENTAL_API_BASE_URL")

const (
	SessionStoreMemory   = "memory"
	SessionStoreDynamoDB = "dynamodb"
)

type Config struct {
	Port string

	RentalAPIBaseURL string
	RentalAPITimeout time.Duration

	SessionStore        string
	SessionsTable       string
	SessionTTL          time.Duration
	SessionCookieSecure bool

	CORSAllowedOrigins []string

	// InvoiceLocation is the zone invoice dates are printed in.
	InvoiceLocation *time.Location
}

// Load reads every setting, applying defaults. A .env file is picked up by
// godotenv/autoload in main before this runs.
func Load() (Config, error) {
	cfg := Config{
		Port:             getenvDefault("PORT", "8080"),
		RentalAPIBaseURL: strings.TrimSpace(os.Getenv("RENTAL_API_BASE_URL")),
		SessionStore:     strings.ToLower(getenvDefault("SESSION_STORE", SessionStoreMemory)),
		SessionsTable:    getenvDefault("SESSIONS_TABLE", "manager_sessions"),
	}
	if cfg.RentalAPIBaseURL == "" {
		return Config{}, ErrMissingRentalAPIBaseURL
	}

	var err error
	if cfg.RentalAPITimeout, err = durationEnv("RENTAL_API_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SessionCookieSecure, err = boolEnv("SESSION_COOKIE_SECURE", false); err != nil {
		return Config{}, err
	}

	tz := getenvDefault("INVOICE_TIMEZONE", "UTC")
	if cfg.InvoiceLocation, err = time.LoadLocation(tz); err != nil {
		return Config{}, fmt.Errorf("invalid INVOICE_TIMEZONE %q: %w", tz, err)
	}

	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreDynamoDB:
	default:
		return Config{}, fmt.Errorf("invalid SESSION_STORE %q: want %s or %s", cfg.SessionStore, SessionStoreMemory, SessionStoreDynamoDB)
	}

	for _, o := range strings.Split(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}
