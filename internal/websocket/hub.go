package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/events"
)

// queueTopic is the subscription of staff screens that follow every order.
const queueTopic = "*"

var ErrHubStopped = errors.New("websocket hub stopped")

type OrderUpdate struct {
	Type           string `json:"type"`
	OrderID        string `json:"order_id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
}

// Hub owns the subscriber map; only Run touches it.
type Hub struct {
	logger     *slog.Logger
	register   chan *Client
	unregister chan *Client
	broadcast  chan OrderUpdate
	done       chan struct{}
	clients    map[string]map[*Client]struct{}
	count      atomic.Int64
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger.With(slog.String("component", "websocket_hub")),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan OrderUpdate, 64),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]struct{}),
	}
}

// Run serves subscriptions until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			set, ok := h.clients[c.topic]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[c.topic] = set
			}
			set[c] = struct{}{}
			h.count.Add(1)

		case c := <-h.unregister:
			h.remove(c)

		case upd := <-h.broadcast:
			msg, err := json.Marshal(upd)
			if err != nil {
				h.logger.Error("failed to marshal update", slog.Any("error", err))
				continue
			}
			h.deliver(upd.OrderID, msg)
			h.deliver(queueTopic, msg)

		case <-ctx.Done():
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}
			h.clients = nil
			h.count.Store(0)
			return nil
		}
	}
}

// deliver drops clients that cannot keep up.
func (h *Hub) deliver(topic string, msg []byte) {
	for c := range h.clients[topic] {
		select {
		case c.send <- msg:
		default:
			h.remove(c)
		}
	}
}

func (h *Hub) remove(c *Client) {
	set, ok := h.clients[c.topic]
	if !ok {
		return
	}
	if _, exists := set[c]; exists {
		delete(set, c)
		close(c.send)
		h.count.Add(-1)
	}
	if len(set) == 0 {
		delete(h.clients, c.topic)
	}
}

// Clients reports the number of connected subscribers.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Publish implements events.Sink.
func (h *Hub) Publish(ctx context.Context, event events.OrderEvent) error {
	upd := OrderUpdate{
		Type:           string(event.Type),
		OrderID:        event.OrderID,
		Status:         event.Status,
		PreviousStatus: event.PreviousStatus,
	}

	select {
	case h.broadcast <- upd:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) subscribe(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unsubscribe(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
