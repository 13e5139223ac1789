// Package wire defines the payload shapes exchanged with relay clients over
// Socket.IO.
package wire

// Event names accepted from clients.
const (
	EventJoin        = "join"
	EventSendMessage = "send_message"
)

// EventReceiveMessage is emitted to every member of the receiver's room.
const EventReceiveMessage = "receive_message"

// Message field keys. Messages are forwarded as raw objects so that fields
// beyond these are preserved unmodified.
const (
	FieldSenderID   = "senderId"
	FieldReceiverID = "receiverId"
)

// SocketAuthPayload is the Socket.IO handshake auth payload.
type SocketAuthPayload struct {
	Token string `json:"token"`
}

// ErrorPayload is emitted to a client before its connection is refused.
type ErrorPayload struct {
	Message string `json:"message"`
}
