// Package api assembles the HTTP surface around the Socket.IO relay: the
// health probe for orchestration and the transport mount.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/waslchat/relay/internal/api/middleware"
	"github.com/waslchat/relay/internal/config"
	"github.com/waslchat/relay/internal/websocket"
)

// NewRouter builds the Gin engine: CORS, request logging, the health
// endpoint, and the Socket.IO mount. Every other path is a 404.
func NewRouter(cfg *config.Config, relay *websocket.RelayServer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	router.Use(middleware.LoggingMiddleware())

	// Liveness probe for orchestration
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Mount Socket.IO (accessible without auth for the handshake; the
	// connection gate checks the token after the transport is established)
	router.Any("/socket.io", relay.HandleSocketIO())
	router.Any("/socket.io/*any", relay.HandleSocketIO())

	return router
}
