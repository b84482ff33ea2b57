// Package notifier fans order lifecycle events out to websocket subscribers.
package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ordertracker/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Event names seen by subscribers.
	EventOrderCreated = "ordenCreada"
	EventOrderUpdated = "ordenActualizada"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxInboundSize = 512
	sendBuffer     = 32
)

var ErrHubClosed = errors.New("notification hub is closed")

// Message is the JSON frame pushed to every subscriber.
type Message struct {
	ID    string `json:"id"`
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Presenter renders an order in its public JSON shape.
type Presenter func(o *order.Order) any

// Hub keeps the set of connected subscribers and implements ports.EventPublisher.
//
// Delivery is best-effort: each subscriber has a bounded queue and is dropped
// when it falls behind, so Publish never blocks on a slow client.
type Hub struct {
	upgrader websocket.Upgrader
	present  Presenter
	logger   *slog.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID]*client
	closed  bool
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewHub creates an empty hub. checkOrigin may be nil to accept any origin.
func NewHub(present Presenter, checkOrigin func(r *http.Request) bool, logger *slog.Logger) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		present: present,
		logger:  logger.With("component", "notifier"),
		clients: make(map[uuid.UUID]*client),
	}
}

// ServeHTTP upgrades the request and registers the connection as a subscriber.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		h.logger.WarnContext(r.Context(), "Websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		id:   uuid.New(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.clients[c.id] = c
	h.mu.Unlock()

	h.logger.Info("Subscriber connected", "subscriber_id", c.id.String())

	go h.writeLoop(c)
	go h.readLoop(c)
}

// Publish broadcasts the event to every subscriber currently connected.
func (h *Hub) Publish(ctx context.Context, event order.Event) error {
	name, err := eventName(event.Kind())
	if err != nil {
		return err
	}

	payload, err := json.Marshal(Message{
		ID:    uuid.NewString(),
		Event: name,
		Data:  h.present(event.Order()),
	})
	if err != nil {
		return err
	}

	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrHubClosed
	}
	var slow []*client
	for _, c := range h.clients {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.WarnContext(ctx, "Dropping slow subscriber", "subscriber_id", c.id.String())
		h.remove(c)
	}

	return nil
}

// Ping sends a ping frame to every subscriber and drops those that cannot be
// written to. It returns the number of subscribers removed.
func (h *Hub) Ping(_ context.Context) int {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	pruned := 0
	for _, c := range clients {
		if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
			h.remove(c)
			pruned++
		}
	}
	return pruned
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every subscriber and rejects further publishes.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		h.remove(c)
	}
}

func (h *Hub) remove(c *client) {
	c.once.Do(func() {
		h.mu.Lock()
		delete(h.clients, c.id)
		h.mu.Unlock()

		close(c.done)
		_ = c.conn.Close()
		h.logger.Info("Subscriber disconnected", "subscriber_id", c.id.String())
	})
}

func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

// readLoop discards inbound frames and detects disconnects. The read deadline
// is pushed forward by each pong, so a client that stops answering pings is
// removed after pongWait.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(maxInboundSize)
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

func eventName(kind order.EventKind) (string, error) {
	switch kind {
	case order.OrderCreated:
		return EventOrderCreated, nil
	case order.OrderUpdated:
		return EventOrderUpdated, nil
	default:
		return "", errors.New("unknown event kind: " + kind.String())
	}
}
