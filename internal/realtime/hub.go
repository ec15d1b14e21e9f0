package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/metrics"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Config holds websocket tuning.
type Config struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBuffer      int
	AllowedOrigins  []string // empty allows any origin
}

func DefaultConfig() Config {
	return Config{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendBuffer:      256,
	}
}

// Relay forwards locally emitted messages to other instances.
type Relay interface {
	Publish(msg Message)
}

type delivery struct {
	msg     Message
	payload []byte
	all     bool
}

// Hub tracks connections and the rooms they joined, and fans out messages.
type Hub struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool
	mu      sync.RWMutex

	upgrader    websocket.Upgrader
	config      Config
	broadcastCh chan delivery

	relay Relay
}

func NewHub(config Config) *Hub {
	if config.SendBuffer <= 0 {
		config.SendBuffer = DefaultConfig().SendBuffer
	}
	h := &Hub{
		clients:     make(map[*Client]bool),
		rooms:       make(map[string]map[*Client]bool),
		config:      config,
		broadcastCh: make(chan delivery, 1000),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  config.ReadBufferSize,
		WriteBufferSize: config.WriteBufferSize,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// SetRelay must be called before Start.
func (h *Hub) SetRelay(r Relay) {
	h.relay = r
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	if len(h.config.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.config.AllowedOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
}

// Start drains the broadcast channel until ctx is done, then closes every connection.
func (h *Hub) Start(ctx context.Context) {
	log.Info().Msg("realtime hub started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("realtime hub shutting down")
			h.closeAll()
			return
		case d := <-h.broadcastCh:
			h.deliver(d)
		}
	}
}

func (h *Hub) Emit(room, event string, data interface{}) {
	h.enqueue(room, event, data, false)
}

func (h *Hub) Broadcast(event string, data interface{}) {
	h.enqueue("", event, data, true)
}

func (h *Hub) enqueue(room, event string, data interface{}, all bool) {
	msg, err := newMessage(room, event, data)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("dropping event")
		return
	}
	metrics.EventsEmitted.WithLabelValues(event).Inc()
	if h.relay != nil {
		h.relay.Publish(msg)
	}
	h.DeliverLocal(msg)
}

// DeliverLocal queues msg for this instance's connections only. A message
// without a room goes to everyone.
func (h *Hub) DeliverLocal(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("event", msg.Event).Msg("failed to marshal event")
		return
	}
	select {
	case h.broadcastCh <- delivery{msg: msg, payload: payload, all: msg.Room == ""}:
	default:
		log.Warn().Str("event", msg.Event).Str("room", msg.Room).Msg("broadcast channel full, dropping message")
	}
}

func (h *Hub) deliver(d delivery) {
	var slow []*Client

	// Sends happen under the read lock so unregister cannot close a
	// channel mid-send.
	h.mu.RLock()
	targets := h.clients
	if !d.all {
		targets = h.rooms[d.msg.Room]
	}
	for c := range targets {
		select {
		case c.send <- d.payload:
		default:
			slow = append(slow, c)
		}
	}
	count := len(targets)
	h.mu.RUnlock()

	for _, c := range slow {
		log.Warn().Str("connection_id", c.ID).Msg("connection send buffer full, closing connection")
		h.unregister(c)
		c.conn.Close()
	}

	log.Debug().
		Str("event", d.msg.Event).
		Str("room", d.msg.Room).
		Int("connections", count).
		Msg("event delivered")
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	metrics.WSConnections.Inc()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	for room := range c.rooms {
		h.removeFromRoom(c, room)
	}
	close(c.send)
	metrics.WSConnections.Dec()
	log.Info().Str("connection_id", c.ID).Uint("user_id", c.UserID).Msg("connection unregistered")
}

func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][c] = true
	c.rooms[room] = true
}

func (h *Hub) leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeFromRoom(c, room)
}

// removeFromRoom requires h.mu held for writing.
func (h *Hub) removeFromRoom(c *Client, room string) {
	delete(c.rooms, room)
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()
	for _, c := range clients {
		h.unregister(c)
	}
}

// Stats describes current connections.
type Stats struct {
	TotalConnections int            `json:"total_connections"`
	Rooms            map[string]int `json:"rooms"`
}

func (h *Hub) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rooms := make(map[string]int, len(h.rooms))
	for room, members := range h.rooms {
		rooms[room] = len(members)
	}
	return Stats{TotalConnections: len(h.clients), Rooms: rooms}
}
