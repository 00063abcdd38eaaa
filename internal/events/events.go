package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	TypeOrderCreated       EventType = "order.created"
	TypeOrderStatusChanged EventType = "order.status_changed"
)

type OrderEvent struct {
	ID             string          `json:"id"`
	Type           EventType       `json:"type"`
	OrderID        string          `json:"order_id"`
	UserID         int64           `json:"user_id"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Timestamp      time.Time       `json:"timestamp"`
}

func newEvent(t EventType, order entities.Order) OrderEvent {
	return OrderEvent{
		ID:        uuid.NewString(),
		Type:      t,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    order.Status.String(),
		Total:     order.Total,
		Timestamp: order.UpdatedAt,
	}
}

// Sink delivers events to one destination.
type Sink interface {
	Publish(ctx context.Context, event OrderEvent) error
}

// Fanout hands every event to all sinks. A failing sink is logged and skipped:
// the order change it describes is already committed.
type Fanout struct {
	logger *slog.Logger
	sinks  []Sink
}

func NewFanout(logger *slog.Logger, sinks ...Sink) *Fanout {
	return &Fanout{
		logger: logger.With(slog.String("component", "events")),
		sinks:  sinks,
	}
}

func (f *Fanout) OrderCreated(ctx context.Context, order entities.Order) {
	f.publish(ctx, newEvent(TypeOrderCreated, order))
}

func (f *Fanout) OrderStatusChanged(ctx context.Context, order entities.Order, previous entities.Status) {
	event := newEvent(TypeOrderStatusChanged, order)
	event.PreviousStatus = previous.String()
	f.publish(ctx, event)
}

func (f *Fanout) publish(ctx context.Context, event OrderEvent) {
	for _, sink := range f.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			f.logger.Warn("failed to publish event",
				slog.String("event_type", string(event.Type)),
				slog.String("order_id", event.OrderID),
				slog.Any("error", err),
			)
		}
	}
}
