package config

import (
	"fmt"
	"os"
	"strconv"
)

// Auth modes. "backend" verifies tokens against the external identity
// service; "jwt" verifies locally with a key derived from the master secret.
const (
	AuthModeBackend = "backend"
	AuthModeJWT     = "jwt"
)

// Config holds relay server configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// BackendURL is the identity service base URL (no trailing slash).
	BackendURL string
	// AuthMode selects the token verifier implementation.
	AuthMode string
	// MasterSecret is required in jwt auth mode.
	MasterSecret string
	Debug        bool
	// AllowedOrigins is intentionally permissive for now.
	// TODO: lock down origins before exposing the relay publicly.
	AllowedOrigins []string
}

// Overrides optionally overrides values from environment variables.
//
// A nil pointer means "use the environment/default value".
type Overrides struct {
	Addr         *string
	BackendURL   *string
	AuthMode     *string
	MasterSecret *string
	Debug        *bool
}

// Load loads relay configuration from environment variables and applies any
// explicit overrides.
func Load(overrides Overrides) (*Config, error) {
	port := 3000
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	addr := fmt.Sprintf(":%d", port)
	if overrides.Addr != nil {
		addr = *overrides.Addr
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://127.0.0.1:8000/api"
	}
	if overrides.BackendURL != nil {
		backendURL = *overrides.BackendURL
	}

	authMode := os.Getenv("AUTH_MODE")
	if authMode == "" {
		authMode = AuthModeBackend
	}
	if overrides.AuthMode != nil {
		authMode = *overrides.AuthMode
	}

	masterSecret := os.Getenv("RELAY_MASTER_SECRET")
	if overrides.MasterSecret != nil {
		masterSecret = *overrides.MasterSecret
	}

	switch authMode {
	case AuthModeBackend:
	case AuthModeJWT:
		if masterSecret == "" {
			return nil, fmt.Errorf("RELAY_MASTER_SECRET environment variable is required in jwt auth mode")
		}
	default:
		return nil, fmt.Errorf("invalid AUTH_MODE: %s", authMode)
	}

	debug := false
	if debugStr := os.Getenv("DEBUG"); debugStr == "true" || debugStr == "1" {
		debug = true
	}
	if overrides.Debug != nil {
		debug = *overrides.Debug
	}

	return &Config{
		Addr:           addr,
		BackendURL:     backendURL,
		AuthMode:       authMode,
		MasterSecret:   masterSecret,
		Debug:          debug,
		AllowedOrigins: []string{"*"},
	}, nil
}
