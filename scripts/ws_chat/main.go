// Command ws_chat is a small interactive client for poking at a running
// relay: it creates or joins a room and turns stdin lines into room
// messages.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/srujalprusty/ChatAppServer/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "display name")
	room := flag.String("room", "", "room id to join; empty creates a new room")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, data any) {
		payload, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			cancel()
			log.Printf("marshal %s: %v", typ, marshalErr)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	roomID := *room
	if roomID == "" {
		send(proto.InboundTypeCreateRoom, proto.CreateRoomData{CreatorName: *user})
		created, waitErr := waitRoomCreated(ctx, conn)
		if waitErr != nil {
			return fmt.Errorf("create room: %w", waitErr)
		}
		roomID = created
		fmt.Printf("Created room %s\n", roomID)
	} else {
		send(proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomID: roomID, Name: *user})
	}

	fmt.Printf("Connected to %s as %s in room %s\n", *addr, *user, roomID)
	fmt.Println("Type messages and press Enter to send. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn, roomID, *user)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func waitRoomCreated(ctx context.Context, conn *websocket.Conn) (string, error) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return "", err
		}
		if outbound.Event != proto.EventRoomCreated {
			continue
		}
		raw, err := json.Marshal(outbound.Data)
		if err != nil {
			return "", err
		}
		var created proto.RoomCreatedData
		if err := json.Unmarshal(raw, &created); err != nil {
			return "", err
		}
		return created.RoomID, nil
	}
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		if outbound.Type == proto.OutboundTypeError && outbound.Error != nil {
			fmt.Printf("error: %s (%s)\n", outbound.Error.Msg, outbound.Error.Code)
			continue
		}

		switch outbound.Event {
		case proto.EventReceiveRoomMessage:
			var evt proto.ReceiveRoomMessageData
			if err := reencode(outbound.Data, &evt); err != nil {
				log.Printf("unmarshal %s: %v", outbound.Event, err)
				continue
			}
			fmt.Printf("%s: %s\n", evt.Sender, evt.Message)
		case proto.EventRoomUsers:
			var evt proto.RoomUsersData
			if err := reencode(outbound.Data, &evt); err != nil {
				log.Printf("unmarshal %s: %v", outbound.Event, err)
				continue
			}
			fmt.Printf("[room %s] members: %s\n", evt.RoomID, strings.Join(evt.Users, ", "))
		default:
			fmt.Printf("event=%s data=%v\n", outbound.Event, outbound.Data)
		}
	}
}

func reencode(data any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func writeLoop(ctx context.Context, conn *websocket.Conn, room, user string) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}

			payload, err := json.Marshal(proto.RoomMessageData{RoomID: room, Sender: user, Message: text})
			if err != nil {
				log.Printf("marshal msg: %v", err)
				return
			}
			if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeSendRoomMessage, Data: payload}); err != nil {
				log.Printf("send error: %v", err)
				return
			}
		}
	}
}
