package core

import "github.com/google/uuid"

// Registry owns the set of live rooms and their lifecycle. A room exists
// iff its member list is non-empty or it was just created and nobody has
// left yet; the instant the last member leaves, the room is deleted.
// Absence of an id here is the sole source of truth that a room does not
// exist.
//
// Registry is not safe for concurrent use; the hub serializes access.
type Registry struct {
	rooms map[string]*Room
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// Create registers a new empty room and returns its id. An empty id asks
// the registry to allocate one; a caller-supplied id is used verbatim and
// replaces any room already under that id.
func (g *Registry) Create(id string) string {
	if id == "" {
		id = uuid.NewString()
	}
	g.rooms[id] = NewRoom(id)
	return id
}

// Room returns the live room for id, if any.
func (g *Registry) Room(id string) (*Room, bool) {
	room, ok := g.rooms[id]
	return room, ok
}

// Join appends name to the room's member list and returns the updated
// list for broadcast. Fails with ErrRoomNotFound for an unknown id.
func (g *Registry) Join(id, name string) ([]string, error) {
	room, ok := g.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	room.addMember(name)
	return room.Members(), nil
}

// Leave removes name from the room. If the member list empties, the room
// is deleted and ok is false; otherwise the updated list is returned for
// broadcast. Leaving an unknown room is a no-op.
func (g *Registry) Leave(id, name string) (members []string, ok bool) {
	room, exists := g.rooms[id]
	if !exists {
		return nil, false
	}
	room.removeMember(name)
	if room.Empty() {
		delete(g.rooms, id)
		return nil, false
	}
	return room.Members(), true
}

// Members returns a snapshot of the room's member list, empty (never an
// error) for an unknown id.
func (g *Registry) Members(id string) []string {
	room, ok := g.rooms[id]
	if !ok {
		return []string{}
	}
	return room.Members()
}

// Len reports how many rooms are live.
func (g *Registry) Len() int {
	return len(g.rooms)
}
