package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	gw "github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 64
)

type OrderGetter interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
}

type Client struct {
	hub   *Hub
	conn  *gw.Conn
	send  chan []byte
	topic string
}

type Handler struct {
	logger   *slog.Logger
	hub      *Hub
	orders   OrderGetter
	upgrader gw.Upgrader
}

// NewHandler accepts connections from allowedOrigins, or from any origin when the list contains "*".
func NewHandler(logger *slog.Logger, hub *Hub, orders OrderGetter, allowedOrigins []string) *Handler {
	return &Handler{
		logger: logger.With(slog.String("handler", "websocket")),
		hub:    hub,
		orders: orders,
		upgrader: gw.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// InitCanteen mounts the staff feed that receives every order update.
func (h *Handler) InitCanteen(r chi.Router) {
	r.Get("/ws/queue", h.ServeQueue)
}

// Init mounts the per-order feed used by customers waiting for pickup.
func (h *Handler) Init(r chi.Router) {
	r.Get("/ws/orders/{orderID}", h.ServeOrder)
}

// @Summary Staff order queue feed
// @Tags websocket
// @Security BearerAuth
// @Success 101
// @Router /ws/queue [get]
func (h *Handler) ServeQueue(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, queueTopic, nil)
}

// @Summary Single order status feed
// @Tags websocket
// @Param orderID path string true "Order ID"
// @Success 101
// @Failure 404 {object} utils.ErrorResponse
// @Router /ws/orders/{orderID} [get]
func (h *Handler) ServeOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orders.GetOrderByID(r.Context(), orderID)
	if errors.Is(err, entities.ErrNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to get order", slog.String("order_id", orderID), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	initial, err := json.Marshal(OrderUpdate{Type: "order.snapshot", OrderID: order.ID, Status: order.Status.String()})
	if err != nil {
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.serve(w, r, orderID, initial)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, topic string, initial []byte) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := &Client{
		hub:   h.hub,
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		topic: topic,
	}
	if initial != nil {
		client.send <- initial
	}

	if !h.hub.subscribe(client) {
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump only drains control frames; clients never send data.
func (c *Client) readPump() {
	defer func() {
		c.hub.unsubscribe(c)
		_ = c.conn.Close()
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

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(gw.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(gw.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(gw.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
