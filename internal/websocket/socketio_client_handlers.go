package websocket

import (
	socket "github.com/zishang520/socket.io/servers/socket/v3"

	"github.com/waslchat/relay/internal/logger"
	"github.com/waslchat/relay/internal/websocket/handlers"
	"github.com/waslchat/relay/pkg/wire"
)

// registerClientHandlers wires the room-routing events for an admitted
// socket. The connection gate has already bound the socket's identity; every
// handler re-reads it from the registry and validates claims against it.
func (s *RelayServer) registerClientHandlers(client *socket.Socket, socketID string) {
	// Join event - admit the socket to its own room only
	client.On(wire.EventJoin, func(data ...any) {
		sd, ok := s.rooms.Get(socketID)
		if !ok {
			return
		}

		if len(data) == 0 {
			logger.Warnf("Socket %s sent join without a user id", socketID)
			return
		}

		instr := handlers.Join(handlers.NewAuthContext(sd.UserID, socketID), data[0])
		if instr == nil {
			return
		}

		if s.rooms.Join(instr.Room(), socketID) {
			logger.Infof("Socket %s joined room: %s", socketID, instr.Room())
		} else {
			logger.Tracef("Socket %s already in room: %s", socketID, instr.Room())
		}
	})

	// Send event - deliver to every member of the receiver's room
	client.On(wire.EventSendMessage, func(data ...any) {
		sd, ok := s.rooms.Get(socketID)
		if !ok {
			return
		}

		if len(data) == 0 {
			logger.Warnf("Socket %s sent message without a payload", socketID)
			return
		}

		var payload map[string]any
		if err := decodeAny(data[0], &payload); err != nil {
			logger.Warnf("Message data decode error (socket %s): %v (type=%T)", socketID, err, data[0])
			return
		}

		instr := handlers.SendMessage(handlers.NewAuthContext(sd.UserID, socketID), payload)
		if instr == nil {
			return
		}

		members := s.rooms.Members(instr.Room())
		logger.Tracef("Delivering message from %s to %d member(s) of room %s",
			sd.UserID, len(members), instr.Room())
		for _, member := range members {
			if member.Socket == nil {
				continue
			}
			member.Socket.Emit(wire.EventReceiveMessage, instr.Payload())
		}
	})
}
