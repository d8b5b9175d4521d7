package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openrelief/disasterhub/pkg/logger"
	"github.com/openrelief/disasterhub/pkg/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 16 // 64 KiB; clients only send keepalives

	defaultBufferSize = 64
)

// EventDisasterUpdated is emitted whenever a disaster report is inserted.
const EventDisasterUpdated = "disaster_updated"

// Message represents a JSON payload delivered to realtime subscribers.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Hub fans events out to every connected client. There are no rooms and no
// authentication; every client receives every broadcast.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*connection]struct{}
	upgrader websocket.Upgrader
}

// NewHub constructs a realtime hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*connection]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The API is served with permissive CORS; the socket matches.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the HTTP connection to a WebSocket and registers the client.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithModule("realtime").Warn("upgrade failed", zap.Error(err))
		return
	}

	client := newConnection(h, conn)
	h.register(client)

	go client.writeLoop()
	client.readLoop()
}

// Broadcast delivers a message to every connected client. Delivery order
// matches emit order per producer; slow clients are dropped rather than
// blocking the hub.
func (h *Hub) Broadcast(event string, data any) {
	message := Message{Event: event, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			logger.WithModule("realtime").Warn("dropping backpressured client")
			go client.close()
		}
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(client *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
	metrics.RealtimeClients.Set(float64(len(h.clients)))
}

func (h *Hub) unregister(client *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	metrics.RealtimeClients.Set(float64(len(h.clients)))
}

type connection struct {
	hub    *Hub
	socket *websocket.Conn
	send   chan Message
	once   sync.Once
}

func newConnection(hub *Hub, conn *websocket.Conn) *connection {
	return &connection{
		hub:    hub,
		socket: conn,
		send:   make(chan Message, defaultBufferSize),
	}
}

func (c *connection) readLoop() {
	defer c.close()

	c.socket.SetReadLimit(maxMessageSize)
	_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Clients do not speak any protocol of their own; inbound frames only
	// refresh the read deadline until the peer goes away.
	for {
		if _, _, err := c.socket.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.WithModule("realtime").Debug("unexpected close", zap.Error(err))
			}
			return
		}
	}
}

func (c *connection) writeLoop() {
	defer c.close()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.socket.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) close() {
	c.once.Do(func() {
		c.hub.unregister(c)
		close(c.send)
		_ = c.socket.Close()
	})
}
