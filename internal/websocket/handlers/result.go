package handlers

// JoinInstruction describes a room join approved by the Join handler.
type JoinInstruction struct {
	room string
}

func newJoin(room string) *JoinInstruction {
	return &JoinInstruction{room: room}
}

// Room returns the room key the socket should be added to.
func (j *JoinInstruction) Room() string { return j.room }

// DeliverInstruction describes a message delivery approved by the
// SendMessage handler.
type DeliverInstruction struct {
	room    string
	payload map[string]any
}

func newDeliver(room string, payload map[string]any) *DeliverInstruction {
	return &DeliverInstruction{room: room, payload: payload}
}

// Room returns the destination room key (the receiver's user id).
func (d *DeliverInstruction) Room() string { return d.room }

// Payload returns the original message object, unmodified.
func (d *DeliverInstruction) Payload() map[string]any { return d.payload }
