package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateRoom      = "createRoom"
	InboundTypeJoinRoom        = "joinRoom"
	InboundTypeSendRoomMessage = "sendRoomMessage"
	InboundTypeGetUsers        = "getUsers"
	InboundTypeJoin            = "join"
	InboundTypeSendMessage     = "sendMessage"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventRoomCreated        = "roomCreated"
	EventRoomUsers          = "roomUsers"
	EventReceiveRoomMessage = "receiveRoomMessage"
	EventUsers              = "users"
	EventUserList           = "userList"
	EventReceiveMessage     = "receiveMessage"
)

// CreateRoomData asks for a new room. Both fields are optional: an empty
// roomId lets the server allocate one, and a creatorName immediately
// joins the creator to the new room.
type CreateRoomData struct {
	RoomID      string `json:"roomId,omitempty"`
	CreatorName string `json:"creatorName,omitempty"`
}

// JoinRoomData requests membership in an existing room.
type JoinRoomData struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

// RoomMessageData is a chat message addressed to a room.
type RoomMessageData struct {
	RoomID  string `json:"roomId"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// GetUsersData asks for a room's current member list.
type GetUsersData struct {
	RoomID string `json:"roomId"`
}

// JoinData registers a global identity for point-to-point messaging.
type JoinData struct {
	Username string `json:"username"`
}

// DirectMessageData is a point-to-point message routed by receiver name.
type DirectMessageData struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// RoomCreatedData replies to the creator with the allocated room id.
type RoomCreatedData struct {
	RoomID string `json:"roomId"`
}

// RoomUsersData carries a room's member list after a membership change.
type RoomUsersData struct {
	RoomID string   `json:"roomId"`
	Users  []string `json:"users"`
}

// ReceiveRoomMessageData is a chat message fanned out to a room.
type ReceiveRoomMessageData struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// UsersData replies to a getUsers query.
type UsersData struct {
	RoomID string   `json:"roomId"`
	Users  []string `json:"users"`
}

// UserListData carries the global identity list.
type UserListData struct {
	Users []string `json:"users"`
}

// ReceiveMessageData is a point-to-point message delivered to one client.
type ReceiveMessageData struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
