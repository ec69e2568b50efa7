package core

// Room tracks member display names in join order plus the live clients
// subscribed to its notifications. The member list is what observers see;
// the subscriber set is who gets told about it.
type Room struct {
	ID          string
	members     []string
	subscribers map[*Client]struct{}
}

// NewRoom constructs a room with no members.
func NewRoom(id string) *Room {
	return &Room{
		ID:          id,
		subscribers: make(map[*Client]struct{}),
	}
}

// Subscribe adds a client to the room's notification group.
func (r *Room) Subscribe(c *Client) {
	r.subscribers[c] = struct{}{}
}

// Unsubscribe removes a client from the notification group.
func (r *Room) Unsubscribe(c *Client) {
	delete(r.subscribers, c)
}

// Broadcast sends an event to every subscriber, dropping it for slow
// consumers rather than blocking the hub.
func (r *Room) Broadcast(ev *Event) {
	for client := range r.subscribers {
		client.send(ev)
	}
}

// Members returns a copy of the member list in join order.
func (r *Room) Members() []string {
	out := make([]string, len(r.members))
	copy(out, r.members)
	return out
}

// Empty reports whether the member list is empty.
func (r *Room) Empty() bool {
	return len(r.members) == 0
}

// addMember appends name in join order. Rejoining under a name already
// present is a no-op, so a reconnecting client never duplicates itself.
func (r *Room) addMember(name string) bool {
	for _, m := range r.members {
		if m == name {
			return false
		}
	}
	r.members = append(r.members, name)
	return true
}

// removeMember deletes every occurrence of name.
func (r *Room) removeMember(name string) {
	kept := r.members[:0]
	for _, m := range r.members {
		if m != name {
			kept = append(kept, m)
		}
	}
	r.members = kept
}
