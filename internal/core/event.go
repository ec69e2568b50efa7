package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomCreated replies to the creator with the allocated room id.
	EventRoomCreated EventKind = iota
	// EventRoomUsers notifies room subscribers about the updated member list.
	EventRoomUsers
	// EventRoomMessage notifies room subscribers about a chat message.
	EventRoomMessage
	// EventUsers replies to a member-list query.
	EventUsers
	// EventUserList notifies all clients about the global identity list.
	EventUserList
	// EventDirectMessage delivers a point-to-point message to its recipient.
	EventDirectMessage
	// EventError notifies a single client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind   EventKind
	Room   string
	Sender string
	Text   string
	Users  []string
	Error  *CoreError
}
