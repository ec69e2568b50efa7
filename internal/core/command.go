package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateRoom allocates a new room, optionally binding the creator
	// as its first member.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom binds the client to an existing room.
	CommandJoinRoom
	// CommandSendRoomMessage fans a chat message out to room subscribers.
	CommandSendRoomMessage
	// CommandGetUsers asks for a room's current member list.
	CommandGetUsers
	// CommandJoin registers a global identity (point-to-point messaging).
	CommandJoin
	// CommandSendMessage routes a message to a single named recipient.
	CommandSendMessage
)

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Room     string // target room id; for CommandCreateRoom, optional caller-supplied id
	Name     string // display name of the joiner or creator
	Sender   string
	Receiver string
	Text     string
}
