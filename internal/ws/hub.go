// Package ws pushes order lifecycle events to connected kitchen displays.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tablechef/internal/models"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Event is one kitchen-feed message
type Event struct {
	Type  string        `json:"type"`
	Order *models.Order `json:"order,omitempty"`
}

const (
	EventOrderSubmitted = "order_submitted"
	EventOrderCompleted = "order_completed"
	EventMenuChanged    = "menu_changed"
)

// Hub fans events out to every connected kitchen display
type Hub struct {
	mu    sync.Mutex
	conns map[*connection]struct{}
}

type connection struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{conns: make(map[*connection]struct{})}
}

// Broadcast sends an event to all connected displays. Slow clients that
// cannot drain their buffer have the message dropped.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: marshal event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		select {
		case c.send <- data:
		default:
			log.Println("ws: buffer full, dropping message")
		}
	}
}

// Handle upgrades the request and keeps the connection in the hub until it
// closes
func (h *Hub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: failed to upgrade connection: %v", err)
		return
	}

	wc := &connection{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  h,
	}

	h.mu.Lock()
	h.conns[wc] = struct{}{}
	h.mu.Unlock()

	go wc.writePump()
	go wc.readPump()
}

func (h *Hub) drop(wc *connection) {
	h.mu.Lock()
	delete(h.conns, wc)
	h.mu.Unlock()
}

// readPump discards client messages and detects closed connections
func (c *connection) readPump() {
	defer func() {
		c.hub.drop(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws: read error: %v", err)
			}
			break
		}
	}
}

// writePump pushes queued events and keepalive pings to the display
func (c *connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
