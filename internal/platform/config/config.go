package config

import (
	"errors"
	"os"
	"strings"
)

// Config carries process-wide settings. It is built once at startup and
// passed by reference into the components that need it, instead of each
// component reading the environment at call time.
type Config struct {
	// Port is the HTTP listen port.
	Port string
	// APIKey gates inbound requests via the X-API-Key header.
	// Empty disables the gate (local development).
	APIKey string
	// MapsAPIKey authenticates against the Google Distance Matrix API.
	MapsAPIKey string
}

// Load reads configuration from the environment. The provider key is
// required: without it every gateway call would fail immediately.
func Load() (Config, error) {
	cfg := Config{
		Port:       envOrDefault("PORT", "8080"),
		APIKey:     os.Getenv("API_KEY"),
		MapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
	}

	if strings.TrimSpace(cfg.MapsAPIKey) == "" {
		return Config{}, errors.New("GOOGLE_MAPS_API_KEY is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
