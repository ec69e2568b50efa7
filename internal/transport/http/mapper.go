package http

import (
	"encoding/json"

	"github.com/srujalprusty/ChatAppServer/internal/core"
	"github.com/srujalprusty/ChatAppServer/internal/proto"
)

// inboundToCommand validates one inbound envelope and maps it to a core
// command. A non-nil proto.Error means the envelope was understood but
// malformed and the client should be told; a non-nil error means the
// payload could not be decoded at all.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		var create proto.CreateRoomData
		if len(inbound.Data) > 0 {
			if err := json.Unmarshal(inbound.Data, &create); err != nil {
				return nil, nil, err
			}
		}
		return &core.Command{
			Kind: core.CommandCreateRoom,
			Room: create.RoomID,
			Name: create.CreatorName,
		}, nil, nil
	case proto.InboundTypeJoinRoom:
		var join proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		if join.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		if join.Name == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "name is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandJoinRoom,
			Room: join.RoomID,
			Name: join.Name,
		}, nil, nil
	case proto.InboundTypeSendRoomMessage:
		var msg proto.RoomMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		if msg.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		return &core.Command{
			Kind:   core.CommandSendRoomMessage,
			Room:   msg.RoomID,
			Sender: msg.Sender,
			Text:   msg.Message,
		}, nil, nil
	case proto.InboundTypeGetUsers:
		var query proto.GetUsersData
		if err := json.Unmarshal(inbound.Data, &query); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandGetUsers,
			Room: query.RoomID,
		}, nil, nil
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		if join.Username == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "username is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandJoin,
			Name: join.Username,
		}, nil, nil
	case proto.InboundTypeSendMessage:
		var msg proto.DirectMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		if msg.Receiver == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "receiver is required"}, nil
		}
		return &core.Command{
			Kind:     core.CommandSendMessage,
			Sender:   msg.Sender,
			Receiver: msg.Receiver,
			Text:     msg.Message,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomCreated:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomCreated,
			Data:  proto.RoomCreatedData{RoomID: event.Room},
		}
	case core.EventRoomUsers:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomUsers,
			Data: proto.RoomUsersData{
				RoomID: event.Room,
				Users:  event.Users,
			},
		}
	case core.EventRoomMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventReceiveRoomMessage,
			Data: proto.ReceiveRoomMessageData{
				Sender:  event.Sender,
				Message: event.Text,
			},
		}
	case core.EventUsers:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventUsers,
			Data: proto.UsersData{
				RoomID: event.Room,
				Users:  event.Users,
			},
		}
	case core.EventUserList:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventUserList,
			Data:  proto.UserListData{Users: event.Users},
		}
	case core.EventDirectMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventReceiveMessage,
			Data: proto.ReceiveMessageData{
				Sender:  event.Sender,
				Message: event.Text,
			},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
