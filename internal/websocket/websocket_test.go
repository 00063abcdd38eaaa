package websocket_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/events"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/websocket"
	"github.com/go-chi/chi/v5"
	gw "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderGetter map[string]entities.Order

func (g orderGetter) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	o, ok := g[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func setup(t *testing.T) (*websocket.Hub, *httptest.Server) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := websocket.NewHub(logger)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	h := websocket.NewHandler(logger, hub, orderGetter{
		"o1": {ID: "o1", Status: entities.StatusPreparing},
	}, []string{"*"})

	r := chi.NewRouter()
	h.InitCanteen(r)
	h.Init(r)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, path string) *gw.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, resp, err := gw.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUpdate(t *testing.T, conn *gw.Conn) websocket.OrderUpdate {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var upd websocket.OrderUpdate
	require.NoError(t, conn.ReadJSON(&upd))
	return upd
}

func TestHandler_OrderFeed(t *testing.T) {
	hub, srv := setup(t)
	conn := dial(t, srv, "/ws/orders/o1")

	snapshot := readUpdate(t, conn)
	assert.Equal(t, "o1", snapshot.OrderID)
	assert.Equal(t, "preparing", snapshot.Status)

	// Another order's update must not reach this subscriber.
	require.NoError(t, hub.Publish(context.Background(), events.OrderEvent{
		Type: events.TypeOrderStatusChanged, OrderID: "o2", Status: "ready", PreviousStatus: "preparing",
	}))
	require.NoError(t, hub.Publish(context.Background(), events.OrderEvent{
		Type: events.TypeOrderStatusChanged, OrderID: "o1", Status: "ready", PreviousStatus: "preparing",
	}))

	upd := readUpdate(t, conn)
	assert.Equal(t, "o1", upd.OrderID)
	assert.Equal(t, "ready", upd.Status)
	assert.Equal(t, "preparing", upd.PreviousStatus)
	assert.Equal(t, "order.status_changed", upd.Type)
}

func TestHandler_QueueFeedReceivesEveryOrder(t *testing.T) {
	hub, srv := setup(t)
	conn := dial(t, srv, "/ws/queue")

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	for _, id := range []string{"o7", "o8"} {
		require.NoError(t, hub.Publish(context.Background(), events.OrderEvent{
			Type: events.TypeOrderCreated, OrderID: id, Status: "pending",
		}))
	}

	assert.Equal(t, "o7", readUpdate(t, conn).OrderID)
	assert.Equal(t, "o8", readUpdate(t, conn).OrderID)
}

func TestHandler_UnknownOrder(t *testing.T) {
	_, srv := setup(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders/missing"
	_, resp, err := gw.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub, srv := setup(t)
	conn := dial(t, srv, "/ws/queue")
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishAfterStop(t *testing.T) {
	hub := websocket.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		_ = hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	// The broadcast buffer may still accept a few updates; once full, Publish reports the stop.
	var err error
	for range 100 {
		if err = hub.Publish(context.Background(), events.OrderEvent{OrderID: "o1"}); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, websocket.ErrHubStopped)
}
