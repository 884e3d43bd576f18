package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/readerstyle/internal/catalog"
	"github.com/muurk/readerstyle/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Messages queued per client before it is dropped
	sendBuffer = 16
)

// MessageTypeApply marks a message carrying an applied configuration.
const MessageTypeApply = "apply"

// Message is the JSON payload pushed to browsers.
type Message struct {
	Type   string                `json:"type"`
	Config catalog.Configuration `json:"config"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans applied configurations out to connected browsers.
type Hub struct {
	mu       sync.Mutex
	clients  map[string]*client
	last     *catalog.Configuration
	closed   bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Publish records cfg as the last applied configuration and sends it to
// every connected client.
func (h *Hub) Publish(cfg catalog.Configuration) {
	payload, err := json.Marshal(Message{Type: MessageTypeApply, Config: cfg})
	if err != nil {
		logging.Error("Failed to encode preview message", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &cfg
	for id, c := range h.clients {
		select {
		case c.send <- payload:
		default:
			logging.Warn("Dropping slow preview client", zap.String("client_id", id))
			h.removeLocked(id)
		}
	}
}

// Last returns the last published configuration.
func (h *Hub) Last() (catalog.Configuration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return catalog.Configuration{}, false
	}
	return *h.last, true
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request to a WebSocket and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	if h.last != nil {
		if payload, err := json.Marshal(Message{Type: MessageTypeApply, Config: *h.last}); err == nil {
			c.send <- payload
		}
	}
	h.clients[c.id] = c
	h.mu.Unlock()

	logging.LogConnection(r.RemoteAddr, "preview_client_connected")

	go h.writePump(c)
	go h.readPump(c, r.RemoteAddr)
}

// Close disconnects every client. Later connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id := range h.clients {
		h.removeLocked(id)
	}
}

// removeLocked unregisters a client; the writer sees the closed channel and
// closes the connection. Callers hold h.mu.
func (h *Hub) removeLocked(id string) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	delete(h.clients, id)
	close(c.send)
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(id)
}

// readPump discards inbound messages and unregisters the client when the
// connection fails.
func (h *Hub) readPump(c *client, remoteAddr string) {
	defer func() {
		h.remove(c.id)
		logging.LogConnection(remoteAddr, "preview_client_disconnected")
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
