// Package websocket hosts the Socket.IO transport for the relay: the
// connection gate that binds verified identities to sockets and the room
// router that delivers point-to-point messages.
package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
	sockettypes "github.com/zishang520/socket.io/v3/pkg/types"

	"github.com/waslchat/relay/internal/auth"
	"github.com/waslchat/relay/internal/logger"
)

// RelayServer wraps the Socket.IO server for the message relay.
type RelayServer struct {
	verifier auth.TokenVerifier
	server   *socket.Server
	rooms    *RoomRegistry
}

// NewRelayServer creates a new Socket.IO relay server backed by the given
// token verifier.
func NewRelayServer(verifier auth.TokenVerifier) *RelayServer {
	opts := socket.DefaultServerOptions()

	// Same permissive policy the HTTP layer applies.
	// TODO: lock down origins before exposing the relay publicly.
	opts.SetCors(&sockettypes.Cors{
		Origin:      "*",
		Credentials: false,
	})

	// PingInterval defines how frequently the server pings clients to detect
	// stale sockets. Dead clients must leave their rooms promptly, or
	// point-to-point deliveries keep targeting them.
	const PingInterval = 5 * time.Second

	// PingTimeout defines how long the server waits before considering a
	// socket dead (no pong received).
	const PingTimeout = 15 * time.Second

	opts.SetPingInterval(PingInterval)
	opts.SetPingTimeout(PingTimeout)
	opts.SetPath("/socket.io")

	server := socket.NewServer(nil, opts)

	s := &RelayServer{
		verifier: verifier,
		server:   server,
		rooms:    NewRoomRegistry(),
	}

	s.server.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		s.handleConnection(client)
	})

	return s
}

// decodeAny re-marshals a loosely typed Socket.IO value into a concrete
// shape.
func decodeAny(input any, out any) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// HandleSocketIO creates a Gin handler for the Socket.IO endpoint.
func (s *RelayServer) HandleSocketIO() gin.HandlerFunc {
	httpHandler := s.server.ServeHandler(nil)

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		// Handle preflight
		if c.Request.Method == "OPTIONS" {
			c.Status(http.StatusOK)
			return
		}

		logger.Tracef("Socket.IO request: %s %s", c.Request.Method, c.Request.URL.Path)

		httpHandler.ServeHTTP(c.Writer, c.Request)
	}
}

// Close shuts down the Socket.IO server.
func (s *RelayServer) Close() error {
	s.server.Close(nil)
	return nil
}
