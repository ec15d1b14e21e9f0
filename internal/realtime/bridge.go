package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// busEnvelope is the wire form on the NATS subject.
type busEnvelope struct {
	Origin  string  `json:"origin"`
	Message Message `json:"message"`
}

// Bridge relays hub messages between instances over a NATS subject.
// Messages published by this instance are ignored on receipt.
type Bridge struct {
	nc         *nats.Conn
	sub        *nats.Subscription
	subject    string
	instanceID string
	hub        *Hub
}

func NewBridge(url, subject string, hub *Hub) (*Bridge, error) {
	opts := []nats.Option{
		nats.Name("livescore"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return newBridge(nc, subject, hub), nil
}

func newBridge(nc *nats.Conn, subject string, hub *Hub) *Bridge {
	return &Bridge{
		nc:         nc,
		subject:    subject,
		instanceID: uuid.NewString(),
		hub:        hub,
	}
}

// Start subscribes to the subject and attaches the bridge to the hub.
func (b *Bridge) Start() error {
	sub, err := b.nc.Subscribe(b.subject, func(m *nats.Msg) {
		b.handle(m.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", b.subject, err)
	}
	b.sub = sub
	b.hub.SetRelay(b)
	log.Info().Str("subject", b.subject).Str("instance_id", b.instanceID).Msg("NATS bridge started")
	return nil
}

func (b *Bridge) Publish(msg Message) {
	data, err := json.Marshal(busEnvelope{Origin: b.instanceID, Message: msg})
	if err != nil {
		log.Error().Err(err).Str("event", msg.Event).Msg("failed to encode bus message")
		return
	}
	if err := b.nc.Publish(b.subject, data); err != nil {
		log.Warn().Err(err).Str("event", msg.Event).Msg("failed to publish to NATS")
	}
}

func (b *Bridge) handle(data []byte) {
	var env busEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Msg("ignoring malformed bus message")
		return
	}
	if env.Origin == b.instanceID {
		return
	}
	b.hub.DeliverLocal(env.Message)
}

func (b *Bridge) Close() {
	if b.sub != nil {
		_ = b.sub.Unsubscribe()
	}
	b.nc.Close()
}
