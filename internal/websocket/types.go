package websocket

import (
	"time"

	socket "github.com/zishang520/socket.io/servers/socket/v3"

	"github.com/waslchat/relay/internal/auth"
)

// SocketData stores per-connection state created at admission time. UserID is
// the verified identity bound by the connection gate and never changes for
// the socket's lifetime.
type SocketData struct {
	UserID      auth.UserID
	Socket      *socket.Socket
	ConnectedAt time.Time
}
