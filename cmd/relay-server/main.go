package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/waslchat/relay/internal/api"
	"github.com/waslchat/relay/internal/auth"
	"github.com/waslchat/relay/internal/config"
	"github.com/waslchat/relay/internal/logger"
	"github.com/waslchat/relay/internal/websocket"
)

func main() {
	// Load configuration
	cfg, err := config.Load(config.Overrides{})
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}

	if cfg.Debug {
		logger.SetLevel(logger.LevelDebug)
	}

	// Set Gin mode
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize token verifier
	verifier, err := buildVerifier(cfg)
	if err != nil {
		logger.Errorf("Failed to create token verifier: %v", err)
		os.Exit(1)
	}

	// Initialize Socket.IO relay server
	logger.Infof("Initializing Socket.IO relay...")
	relayServer := websocket.NewRelayServer(verifier)
	defer relayServer.Close()

	router := api.NewRouter(cfg, relayServer)

	logger.Infof("Relay server starting on http://localhost%s", cfg.Addr)
	logger.Infof("Auth mode: %s", cfg.AuthMode)
	if cfg.AuthMode == config.AuthModeBackend {
		logger.Infof("Identity backend: %s", cfg.BackendURL)
	}

	if err := router.Run(cfg.Addr); err != nil {
		logger.Errorf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// buildVerifier selects the token verifier for the configured auth mode.
func buildVerifier(cfg *config.Config) (auth.TokenVerifier, error) {
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		return auth.NewJWTVerifier(cfg.MasterSecret)
	default:
		return auth.NewBackendVerifier(cfg.BackendURL), nil
	}
}
