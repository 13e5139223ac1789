package websocket

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	socket "github.com/zishang520/socket.io/servers/socket/v3"

	"github.com/waslchat/relay/internal/auth"
	"github.com/waslchat/relay/internal/logger"
	"github.com/waslchat/relay/internal/websocket/handlers"
	"github.com/waslchat/relay/pkg/wire"
)

// handleConnection is the connection gate. It runs before any room-routing
// handler is registered: the token is extracted from the handshake, verified
// exactly once against the identity service, and only then is the socket
// admitted with its identity bound.
func (s *RelayServer) handleConnection(client *socket.Socket) {
	socketID := string(client.Id())

	logger.Infof("Socket.IO connection attempt (socket %s)", socketID)

	handshake := client.Handshake()

	var authPayload wire.SocketAuthPayload
	if len(handshake.Auth) > 0 {
		if err := decodeAny(handshake.Auth, &authPayload); err != nil {
			// Fall through to the query parameter; a garbled auth payload is
			// the same as an absent one.
			logger.Warnf("Socket.IO invalid auth data (socket %s): %v", socketID, err)
		}
	}

	token, ok := handlers.ExtractToken(authPayload, handshake.Query.Query())
	if !ok {
		logger.Warnf("Socket.IO missing token (socket %s)", socketID)
		s.reject(client, auth.MsgTokenMissing)
		return
	}

	// The gate suspends on the verification call. If the client drops while
	// it is in flight, the result must be discarded: no admission, no room
	// state. The disconnect listener also covers cleanup for admitted
	// sockets.
	var gone atomic.Bool
	client.On("disconnect", func(data ...any) {
		gone.Store(true)
		s.handleDisconnect(socketID, disconnectReason(data))
	})

	userID, err := s.verifier.Verify(context.Background(), token)
	if err != nil {
		logger.Warnf("Token verification failed (socket %s): %v", socketID, verifyFailureCause(err))
		s.reject(client, clientMessage(err))
		return
	}

	if !s.admit(client, socketID, userID, &gone) {
		logger.Debugf("Socket %s disconnected during verification; discarding result", socketID)
		return
	}

	logger.Infof("Token verified for user: %s (socket %s)", userID, socketID)

	s.registerClientHandlers(client, socketID)
}

// admit registers a verified socket unless it disconnected while verification
// was in flight. The disconnect listener stores the flag before removing the
// socket, so rechecking after registration covers the interleaving where the
// listener's removal ran before the socket existed in the registry; in every
// ordering a disconnected socket ends up unregistered.
func (s *RelayServer) admit(client *socket.Socket, socketID string, userID auth.UserID, gone *atomic.Bool) bool {
	if gone.Load() {
		return false
	}

	s.rooms.AddSocket(socketID, &SocketData{
		UserID:      userID,
		Socket:      client,
		ConnectedAt: time.Now(),
	})

	if gone.Load() {
		// The disconnect listener may have fired between the first check and
		// the registration, in which case its removal found nothing.
		s.rooms.RemoveSocket(socketID)
		return false
	}
	return true
}

// reject refuses a connection with a sanitized message and closes it.
func (s *RelayServer) reject(client *socket.Socket, message string) {
	client.Emit("error", wire.ErrorPayload{Message: message})
	client.Disconnect(true)
}

func (s *RelayServer) handleDisconnect(socketID, reason string) {
	if data, ok := s.rooms.Get(socketID); ok {
		logger.Infof("User disconnected: %s (socket %s, reason: %s)", data.UserID, socketID, reason)
	} else {
		logger.Debugf("Unadmitted socket disconnected: %s (reason: %s)", socketID, reason)
	}
	s.rooms.RemoveSocket(socketID)
}

func disconnectReason(data []any) string {
	if len(data) > 0 {
		if r, ok := data[0].(string); ok {
			return r
		}
	}
	return ""
}

// clientMessage maps a verification failure to the sanitized client-visible
// message. Upstream causes never reach the wire.
func clientMessage(err error) string {
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		return authErr.Error()
	}
	return auth.MsgTokenInvalid
}

// verifyFailureCause unwraps the loggable upstream cause of a verification
// failure, falling back to the sanitized error.
func verifyFailureCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return cause
	}
	return err
}
