package realtime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBridgeDropsOwnMessages(t *testing.T) {
	hub := NewHub(DefaultConfig())
	b := newBridge(nil, "livescore.events", hub)

	own, _ := json.Marshal(busEnvelope{Origin: b.instanceID, Message: Message{Event: EventScoreUpdate, Room: "match:1"}})
	b.handle(own)
	if n := len(hub.broadcastCh); n != 0 {
		t.Fatalf("own message delivered locally: %d queued", n)
	}

	other, _ := json.Marshal(busEnvelope{Origin: "another-instance", Message: Message{Event: EventScoreUpdate, Room: "match:1", Timestamp: time.Now()}})
	b.handle(other)
	if n := len(hub.broadcastCh); n != 1 {
		t.Fatalf("remote message queued %d times, want 1", n)
	}
	d := <-hub.broadcastCh
	if d.all || d.msg.Room != "match:1" {
		t.Errorf("delivery = %+v", d)
	}

	b.handle([]byte("not json"))
	if n := len(hub.broadcastCh); n != 0 {
		t.Errorf("malformed message queued")
	}
}

type recordingRelay struct{ got []Message }

func (r *recordingRelay) Publish(msg Message) { r.got = append(r.got, msg) }

func TestHubPublishesToRelay(t *testing.T) {
	hub := NewHub(DefaultConfig())
	relay := &recordingRelay{}
	hub.SetRelay(relay)

	hub.Emit(MatchRoom(4), EventMatchStatus, map[string]string{"status": "live"})
	hub.Broadcast(EventNotificationNew, nil)

	if len(relay.got) != 2 || relay.got[0].Room != "match:4" || relay.got[1].Room != "" {
		t.Fatalf("relay got %+v", relay.got)
	}
	if len(hub.broadcastCh) != 2 {
		t.Errorf("local deliveries = %d, want 2", len(hub.broadcastCh))
	}
}
