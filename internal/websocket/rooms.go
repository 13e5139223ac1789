package websocket

import "sync"

// RoomRegistry owns the room membership table: which sockets are admitted and
// which rooms each belongs to. All mutation goes through this type; event
// handlers run on independent goroutines, so the table is mutex-guarded
// rather than relying on a single-threaded dispatcher.
type RoomRegistry struct {
	mu      sync.RWMutex
	sockets map[string]*SocketData         // socketID -> connection state
	rooms   map[string]map[string]struct{} // room -> socketID set
	members map[string]map[string]struct{} // socketID -> room set
}

// NewRoomRegistry creates an empty registry.
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		sockets: make(map[string]*SocketData),
		rooms:   make(map[string]map[string]struct{}),
		members: make(map[string]map[string]struct{}),
	}
}

// AddSocket admits a socket. Called once per connection, after the gate has
// bound its identity.
func (r *RoomRegistry) AddSocket(socketID string, data *SocketData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sockets[socketID] = data
}

// Get returns the connection state for an admitted socket.
func (r *RoomRegistry) Get(socketID string) (*SocketData, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.sockets[socketID]
	return data, ok
}

// Join adds a socket to a room. Membership is set-like: rejoining is a no-op.
// Reports whether the membership changed. Unknown sockets are rejected.
func (r *RoomRegistry) Join(room, socketID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sockets[socketID]; !ok {
		return false
	}

	set, ok := r.rooms[room]
	if !ok {
		set = make(map[string]struct{})
		r.rooms[room] = set
	}
	if _, ok := set[socketID]; ok {
		return false
	}
	set[socketID] = struct{}{}

	joined, ok := r.members[socketID]
	if !ok {
		joined = make(map[string]struct{})
		r.members[socketID] = joined
	}
	joined[room] = struct{}{}
	return true
}

// Leave removes a socket from one room.
func (r *RoomRegistry) Leave(room, socketID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(room, socketID)
}

func (r *RoomRegistry) leaveLocked(room, socketID string) {
	if set, ok := r.rooms[room]; ok {
		delete(set, socketID)
		if len(set) == 0 {
			delete(r.rooms, room)
		}
	}
	if joined, ok := r.members[socketID]; ok {
		delete(joined, room)
		if len(joined) == 0 {
			delete(r.members, socketID)
		}
	}
}

// RemoveSocket removes a socket from every room it belongs to and releases
// its connection state. Safe to call for sockets that were never admitted.
func (r *RoomRegistry) RemoveSocket(socketID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for room := range r.members[socketID] {
		if set, ok := r.rooms[room]; ok {
			delete(set, socketID)
			if len(set) == 0 {
				delete(r.rooms, room)
			}
		}
	}
	delete(r.members, socketID)
	delete(r.sockets, socketID)
}

// Members returns a snapshot of the connection state for every current member
// of a room. A room with no members yields an empty slice, not an error.
func (r *RoomRegistry) Members(room string) []*SocketData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.rooms[room]
	result := make([]*SocketData, 0, len(set))
	for socketID := range set {
		if data, ok := r.sockets[socketID]; ok {
			result = append(result, data)
		}
	}
	return result
}

// SocketCount returns the number of admitted sockets.
func (r *RoomRegistry) SocketCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sockets)
}

// RoomCount returns the number of rooms with at least one member.
func (r *RoomRegistry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
