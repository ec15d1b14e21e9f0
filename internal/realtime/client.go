package realtime

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Client is one websocket connection.
type Client struct {
	ID          string
	UserID      uint // 0 for anonymous connections
	ConnectedAt time.Time

	conn  *websocket.Conn
	send  chan []byte
	hub   *Hub
	rooms map[string]bool // guarded by hub.mu
}

type clientMessage struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

func newClient(h *Hub, conn *websocket.Conn, userID uint) *Client {
	return &Client{
		ID:          uuid.New().String(),
		UserID:      userID,
		ConnectedAt: time.Now(),
		conn:        conn,
		send:        make(chan []byte, h.config.SendBuffer),
		hub:         h,
		rooms:       make(map[string]bool),
	}
}

// reply queues a message for this client only.
func (c *Client) reply(event, room string, data interface{}) {
	msg, err := newMessage(room, event, data)
	if err != nil {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()
	if !c.hub.clients[c] {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

// canJoin applies room rules: user rooms belong to their owner.
func (c *Client) canJoin(room string) (bool, string) {
	kind, id, ok := roomKind(room)
	if !ok {
		return false, "unknown room"
	}
	if kind == "user" && (c.UserID == 0 || c.UserID != id) {
		return false, "forbidden"
	}
	return true, ""
}

func (c *Client) handleClientMessage(raw []byte) {
	var m clientMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Debug().Str("connection_id", c.ID).Msg("ignoring malformed client message")
		return
	}

	switch m.Action {
	case "join":
		if ok, reason := c.canJoin(m.Room); !ok {
			c.reply(EventRoomError, m.Room, map[string]string{"error": reason})
			return
		}
		c.hub.join(c, m.Room)
		c.reply(EventRoomJoined, m.Room, nil)
	case "leave":
		c.hub.leave(c, m.Room)
		c.reply(EventRoomLeft, m.Room, nil)
	default:
		log.Debug().
			Str("connection_id", c.ID).
			Str("action", m.Action).
			Msg("ignoring unknown client action")
	}
}

// writePump handles sending messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.hub.unregister(c)
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().Err(err).Str("connection_id", c.ID).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Str("connection_id", c.ID).Msg("failed to send ping")
				return
			}
		}
	}
}

// readPump handles reading messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.config.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("connection_id", c.ID).Msg("unexpected websocket close")
			}
			return
		}
		c.handleClientMessage(message)
		_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
	}
}
