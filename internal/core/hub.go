package core

import "context"

type request struct {
	client *Client
	cmd    *Command
}

// Hub routes client commands to the room registry and presence directory
// and emits the resulting notifications. All state lives behind the Run
// goroutine: registration, disconnects, and commands are serviced one at
// a time, so a mutation and the member-list snapshot it broadcasts are
// always computed in the same step.
type Hub struct {
	registry *Registry
	presence Presence

	clients    map[*Client]chan struct{}
	register   chan *Client
	unregister chan *Client
	requests   chan request
	done       chan struct{}
}

// NewHub constructs a hub around the given presence directory. A nil
// presence defaults to the room-scoped variant.
func NewHub(presence Presence) *Hub {
	if presence == nil {
		presence = NewRoomPresence()
	}
	return &Hub{
		registry:   NewRegistry(),
		presence:   presence,
		clients:    make(map[*Client]chan struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		requests:   make(chan request),
		done:       make(chan struct{}),
	}
}

// RegisterClient hands a freshly connected client to the hub.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient delivers the client's disconnect to the hub. Safe to
// call more than once; repeats are no-ops. Returns immediately once the
// hub has shut down, so late disconnects never block.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Run services hub traffic until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.addClient(ctx, c)
		case c := <-h.unregister:
			h.dropClient(c)
		case req := <-h.requests:
			h.dispatch(req.client, req.cmd)
		}
	}
}

func (h *Hub) addClient(ctx context.Context, c *Client) {
	if _, ok := h.clients[c]; ok {
		return
	}
	stop := make(chan struct{})
	h.clients[c] = stop
	go h.pump(ctx, c, stop)
}

// pump forwards one client's commands into the hub's single request
// stream. It ends when the client unregisters or the hub shuts down.
func (h *Hub) pump(ctx context.Context, c *Client, stop <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case cmd := <-c.Commands:
			select {
			case h.requests <- request{client: c, cmd: cmd}:
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}
}

// dropClient runs disconnect cleanup: release the binding, fix up room
// membership, and notify whoever is left. Unknown clients (a second
// disconnect, or one that never registered) are ignored.
func (h *Hub) dropClient(c *Client) {
	stop, ok := h.clients[c]
	if !ok {
		return
	}
	close(stop)
	delete(h.clients, c)

	b, bound := h.presence.Unbind(c)
	if !bound {
		return
	}
	if b.Room != "" {
		h.leaveRoom(c, b)
		return
	}
	h.broadcastUserList()
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	if cmd == nil {
		return
	}
	if _, ok := h.clients[c]; !ok {
		// Command raced a disconnect; the client is gone.
		return
	}
	switch cmd.Kind {
	case CommandCreateRoom:
		h.handleCreateRoom(c, cmd)
	case CommandJoinRoom:
		h.handleJoinRoom(c, cmd)
	case CommandSendRoomMessage:
		h.handleRoomMessage(cmd)
	case CommandGetUsers:
		h.handleGetUsers(c, cmd)
	case CommandJoin:
		h.handleJoin(c, cmd)
	case CommandSendMessage:
		h.handleDirectMessage(cmd)
	}
}

func (h *Hub) handleCreateRoom(c *Client, cmd *Command) {
	id := h.registry.Create(cmd.Room)
	c.send(&Event{Kind: EventRoomCreated, Room: id})
	if cmd.Name != "" {
		h.bindToRoom(c, id, cmd.Name)
	}
}

func (h *Hub) handleJoinRoom(c *Client, cmd *Command) {
	h.bindToRoom(c, cmd.Room, cmd.Name)
}

// bindToRoom moves c into the room as one logical step: any current
// membership is released, binding and member list are updated, and the
// room sees exactly one fresh member-list broadcast.
func (h *Hub) bindToRoom(c *Client, roomID, name string) {
	room, ok := h.registry.Room(roomID)
	if !ok {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeRoomNotFound, "Room does not exist!")})
		return
	}

	prev, wasBound := h.presence.Lookup(c)
	if err := h.presence.Bind(c, Binding{Name: name, Room: roomID}); err != nil {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeNameTaken, "Name is already taken!")})
		return
	}
	if wasBound && prev.Room != "" && prev.Room != roomID {
		h.leaveRoom(c, prev)
	}
	if wasBound && prev.Room == roomID && prev.Name != name {
		room.removeMember(prev.Name)
	}

	users, err := h.registry.Join(roomID, name)
	if err != nil {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeRoomNotFound, "Room does not exist!")})
		return
	}
	room.Subscribe(c)
	room.Broadcast(&Event{Kind: EventRoomUsers, Room: roomID, Users: users})
}

// handleRoomMessage fans a message out to the room's subscribers. Sends
// are fire-and-forget: an unknown room drops the message silently.
func (h *Hub) handleRoomMessage(cmd *Command) {
	room, ok := h.registry.Room(cmd.Room)
	if !ok {
		return
	}
	room.Broadcast(&Event{
		Kind:   EventRoomMessage,
		Room:   cmd.Room,
		Sender: cmd.Sender,
		Text:   cmd.Text,
	})
}

func (h *Hub) handleGetUsers(c *Client, cmd *Command) {
	c.send(&Event{
		Kind:  EventUsers,
		Room:  cmd.Room,
		Users: h.registry.Members(cmd.Room),
	})
}

// handleJoin registers a global identity for point-to-point messaging and
// pushes the updated user list to everyone. Re-registering the same name
// from the same client is idempotent; the list is broadcast either way.
func (h *Hub) handleJoin(c *Client, cmd *Command) {
	if prev, ok := h.presence.Lookup(c); ok && prev.Room != "" {
		h.leaveRoom(c, prev)
	}
	if err := h.presence.Bind(c, Binding{Name: cmd.Name}); err != nil {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeNameTaken, "Name is already taken!")})
		return
	}
	h.broadcastUserList()
}

// handleDirectMessage routes a message to the recipient's connection
// only. An unknown recipient drops the message with no error to the
// sender.
func (h *Hub) handleDirectMessage(cmd *Command) {
	target, ok := h.presence.ByName(cmd.Receiver)
	if !ok {
		return
	}
	target.send(&Event{
		Kind:   EventDirectMessage,
		Sender: cmd.Sender,
		Text:   cmd.Text,
	})
}

// leaveRoom removes c's membership and tells the survivors. If the room
// emptied it is already gone from the registry and nothing is broadcast.
func (h *Hub) leaveRoom(c *Client, b Binding) {
	room, ok := h.registry.Room(b.Room)
	if !ok {
		return
	}
	room.Unsubscribe(c)
	if users, alive := h.registry.Leave(b.Room, b.Name); alive {
		room.Broadcast(&Event{Kind: EventRoomUsers, Room: b.Room, Users: users})
	}
}

func (h *Hub) broadcastUserList() {
	ev := &Event{Kind: EventUserList, Users: h.presence.Names()}
	for c := range h.clients {
		c.send(ev)
	}
}
