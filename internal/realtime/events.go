package realtime

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Event names sent to clients.
const (
	EventScoreUpdate     = "score:update"
	EventMatchStatus     = "match:status"
	EventCommentaryNew   = "commentary:new"
	EventNotificationNew = "notification:new"

	// Acknowledgements for client join/leave requests.
	EventRoomJoined = "room:joined"
	EventRoomLeft   = "room:left"
	EventRoomError  = "room:error"
)

// Message is the envelope written to every socket.
type Message struct {
	Event     string          `json:"event"`
	Room      string          `json:"room,omitempty"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Emitter publishes events to connected clients. Delivery is best effort.
type Emitter interface {
	// Emit sends to every connection joined to room.
	Emit(room, event string, data interface{})
	// Broadcast sends to every connection.
	Broadcast(event string, data interface{})
}

// NopEmitter drops everything.
type NopEmitter struct{}

func (NopEmitter) Emit(string, string, interface{}) {}
func (NopEmitter) Broadcast(string, interface{})    {}

func newMessage(room, event string, data interface{}) (Message, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return Message{Event: event, Room: room, Data: raw, Timestamp: time.Now().UTC()}, nil
}

func MatchRoom(id uint) string { return "match:" + strconv.FormatUint(uint64(id), 10) }

func UserRoom(id uint) string { return "user:" + strconv.FormatUint(uint64(id), 10) }

func ExternalRoom(source, id string) string { return "external:" + source + ":" + id }

// roomKind validates a room name and returns its kind and, for match and
// user rooms, the numeric id.
func roomKind(room string) (kind string, id uint, ok bool) {
	parts := strings.Split(room, ":")
	switch {
	case len(parts) == 2 && (parts[0] == "match" || parts[0] == "user"):
		n, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil || n == 0 {
			return "", 0, false
		}
		return parts[0], uint(n), true
	case len(parts) == 3 && parts[0] == "external" && parts[1] != "" && parts[2] != "":
		return "external", 0, true
	}
	return "", 0, false
}
