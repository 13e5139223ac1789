package handlers

import "github.com/waslchat/relay/internal/auth"

// AuthContext carries the authenticated socket identity into handler
// functions. It intentionally excludes transport-specific types.
//
// The user id is bound once at connection admission and never changes for
// the socket's lifetime.
type AuthContext struct {
	userID   auth.UserID
	socketID string
}

// NewAuthContext constructs an AuthContext for a single socket event.
func NewAuthContext(userID auth.UserID, socketID string) AuthContext {
	return AuthContext{
		userID:   userID,
		socketID: socketID,
	}
}

// UserID returns the verified user id bound to the socket.
func (a AuthContext) UserID() auth.UserID {
	return a.userID
}

// SocketID returns the caller socket id.
func (a AuthContext) SocketID() string {
	return a.socketID
}
