package realtime

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const testSecret = "ws-secret"

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	return startHubWith(t, DefaultConfig())
}

func startHubWith(t *testing.T, config Config) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(config)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Start(ctx)

	r := gin.New()
	r.GET("/ws", NewHandler(hub, testSecret).ServeWS)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestMatchQueryJoinsRoomAndReceivesEmit(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url+"?match=7")
	waitFor(t, func() bool { return hub.Stats().Rooms["match:7"] == 1 })

	hub.Emit(MatchRoom(7), EventScoreUpdate, map[string]string{"home_score": "120/3"})

	msg := read(t, conn)
	if msg.Event != EventScoreUpdate || msg.Room != "match:7" {
		t.Fatalf("got %+v", msg)
	}
	var data map[string]string
	if err := json.Unmarshal(msg.Data, &data); err != nil || data["home_score"] != "120/3" {
		t.Errorf("data = %s", msg.Data)
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestEmitOnlyReachesRoomMembers(t *testing.T) {
	hub, url := startHub(t)
	inRoom := dial(t, url+"?match=1")
	outside := dial(t, url+"?match=2")
	waitFor(t, func() bool {
		s := hub.Stats()
		return s.Rooms["match:1"] == 1 && s.Rooms["match:2"] == 1
	})

	hub.Emit(MatchRoom(1), EventCommentaryNew, "four")
	hub.Broadcast(EventMatchStatus, "live")

	if msg := read(t, inRoom); msg.Event != EventCommentaryNew {
		t.Errorf("in-room first event = %s", msg.Event)
	}
	if msg := read(t, inRoom); msg.Event != EventMatchStatus {
		t.Errorf("in-room second event = %s", msg.Event)
	}
	// The outsider sees only the broadcast.
	if msg := read(t, outside); msg.Event != EventMatchStatus {
		t.Errorf("outsider event = %s", msg.Event)
	}
}

func TestJoinLeaveMessages(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)

	if err := conn.WriteJSON(map[string]string{"action": "join", "room": "external:football:99"}); err != nil {
		t.Fatal(err)
	}
	if msg := read(t, conn); msg.Event != EventRoomJoined || msg.Room != "external:football:99" {
		t.Fatalf("ack = %+v", msg)
	}

	hub.Emit(ExternalRoom("football", "99"), EventScoreUpdate, nil)
	if msg := read(t, conn); msg.Event != EventScoreUpdate {
		t.Fatalf("event = %+v", msg)
	}

	_ = conn.WriteJSON(map[string]string{"action": "leave", "room": "external:football:99"})
	if msg := read(t, conn); msg.Event != EventRoomLeft {
		t.Fatalf("ack = %+v", msg)
	}
	waitFor(t, func() bool { return hub.Stats().Rooms["external:football:99"] == 0 })
}

func TestUserRoomsBelongToTheirOwner(t *testing.T) {
	hub, url := startHub(t)

	anon := dial(t, url)
	_ = anon.WriteJSON(map[string]string{"action": "join", "room": "user:5"})
	if msg := read(t, anon); msg.Event != EventRoomError {
		t.Fatalf("anonymous join of user room = %+v", msg)
	}

	tok, err := token.GenerateJWT(5, "user", testSecret, 5)
	if err != nil {
		t.Fatal(err)
	}
	owner := dial(t, url+"?token="+tok)
	waitFor(t, func() bool { return hub.Stats().Rooms["user:5"] == 1 })

	hub.Emit(UserRoom(5), EventNotificationNew, map[string]string{"title": "hi"})
	if msg := read(t, owner); msg.Event != EventNotificationNew {
		t.Fatalf("owner event = %+v", msg)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	_, url := startHub(t)
	_, resp, err := websocket.DefaultDialer.Dial(url+"?token=garbage", nil)
	if err == nil {
		t.Fatal("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != 401 {
		t.Fatalf("response = %v", resp)
	}
}

func TestDisconnectCleansUp(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url+"?match=3")
	waitFor(t, func() bool { return hub.Stats().TotalConnections == 1 })

	conn.Close()
	waitFor(t, func() bool {
		s := hub.Stats()
		return s.TotalConnections == 0 && len(s.Rooms) == 0
	})
}

func TestRoomKind(t *testing.T) {
	tests := []struct {
		room string
		kind string
		ok   bool
	}{
		{"match:12", "match", true},
		{"user:3", "user", true},
		{"external:cricket:abc-1", "external", true},
		{"match:abc", "", false},
		{"match:0", "", false},
		{"external:cricket", "", false},
		{"lobby", "", false},
	}
	for _, tt := range tests {
		kind, _, ok := roomKind(tt.room)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("roomKind(%q) = %q, %v", tt.room, kind, ok)
		}
	}
}

func TestSlowClientEvicted(t *testing.T) {
	config := DefaultConfig()
	config.SendBuffer = 1
	hub, url := startHubWith(t, config)

	// The connection joins a room and then never reads.
	dial(t, url+"?match=1")
	waitFor(t, func() bool { return hub.Stats().Rooms["match:1"] == 1 })
	if got := hub.Stats().TotalConnections; got != 1 {
		t.Fatalf("connections = %d, want 1", got)
	}

	payload := strings.Repeat("x", 256*1024)
	deadline := time.Now().Add(5 * time.Second)
	for hub.Stats().TotalConnections != 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow connection was not evicted")
		}
		hub.Emit(MatchRoom(1), EventCommentaryNew, payload)
		time.Sleep(2 * time.Millisecond)
	}
	if rooms := hub.Stats().Rooms; rooms["match:1"] != 0 {
		t.Errorf("evicted connection still in room: %v", rooms)
	}
}
