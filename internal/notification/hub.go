package notification

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

// Event names pushed to shop subscribers by the booking flow.
const (
	EventNewBooking       = "new_booking"
	EventBookingCancelled = "booking_cancelled"
	EventBookingUpdated   = "booking_updated"
)

// Event is the wire envelope for a shop notification.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// connection represents a single WebSocket client
type connection struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
	shops  map[string]bool // subscribed shop IDs
}

// Hub owns the live-connection registry: which connections are subscribed
// to which shop, and which user each connection belongs to. Created at
// server start, shared by the booking flow and the websocket handler.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*connection]bool // shopID -> connections
	users       map[string]*connection          // userID -> connection
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*connection]bool),
		users:       make(map[string]*connection),
	}
}

// subscribe idempotently adds the connection to a shop's subscriber set.
func (h *Hub) subscribe(c *connection, shopID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[shopID] == nil {
		h.subscribers[shopID] = make(map[*connection]bool)
	}
	h.subscribers[shopID][c] = true
	c.shops[shopID] = true
}

// setUserOnline maps a user id to its current connection.
func (h *Hub) setUserOnline(c *connection, userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.userID = userID
	h.users[userID] = c
}

// unregister removes the connection from every shop's subscriber set and
// from the user map. Safe to call for a connection that never subscribed.
func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for shopID := range c.shops {
		if set, ok := h.subscribers[shopID]; ok {
			delete(set, c)
			if len(set) == 0 {
				delete(h.subscribers, shopID)
			}
		}
	}
	if c.userID != "" {
		if existing, ok := h.users[c.userID]; ok && existing == c {
			delete(h.users, c.userID)
		}
	}
	close(c.send)
}

// Publish delivers the payload to every connection subscribed to the shop
// at the time of the call. Delivery is best-effort: a slow or closing
// subscriber is skipped, never retried, and failures are not surfaced.
func (h *Hub) Publish(shopID, event string, payload interface{}) {
	data, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.subscribers[shopID] {
		select {
		case c.send <- data:
		default:
			// client too slow, skip
		}
	}
}

// SubscriberCount reports live subscribers for a shop.
func (h *Hub) SubscriberCount(shopID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[shopID])
}

// ServeWS registers a new connection and starts read/write loops
func (h *Hub) ServeWS(conn *websocket.Conn) {
	c := &connection{
		conn:  conn,
		send:  make(chan []byte, 64),
		shops: make(map[string]bool),
	}

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var cmd struct {
			Type   string `json:"type"`
			ShopID string `json:"shop_id"`
			UserID string `json:"user_id"`
		}
		if err := json.Unmarshal(msg, &cmd); err != nil {
			continue
		}

		switch cmd.Type {
		case "subscribe":
			// A shop owner subscribes to their shop's booking events
			if cmd.ShopID != "" {
				h.subscribe(c, cmd.ShopID)
			}
		case "unsubscribe":
			if cmd.ShopID != "" {
				h.mu.Lock()
				if set, ok := h.subscribers[cmd.ShopID]; ok {
					delete(set, c)
				}
				delete(c.shops, cmd.ShopID)
				h.mu.Unlock()
			}
		case "user_online":
			if cmd.UserID != "" {
				h.setUserOnline(c, cmd.UserID)
			}
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
