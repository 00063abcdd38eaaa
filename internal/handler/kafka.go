package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/config"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req entities.PlaceOrder) (entities.Order, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler turns place-order commands into orders. Commands that cannot be
// handled are copied to <topic>-dlq with the failure in the "error" header.
type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	placer   OrderPlacer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, placer OrderPlacer) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.OrdersTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return NewKafkaHandlerWithClients(logger, reader, dlq, placer)
}

func NewKafkaHandlerWithClients(logger *slog.Logger, reader MessageReader, dlq MessageWriter, placer OrderPlacer) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: newValidator(),
		placer:   placer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleMessage(ctx, m); err != nil {
			commandsFailed.Inc()
			h.logger.Warn("failed to handle message",
				slog.Any("error", err),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
			)

			// The writer retries on its own; an undelivered DLQ copy leaves the offset uncommitted.
			if err := h.WriteToDLQ(ctx, m, err); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			commandsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleMessage(ctx context.Context, m kafka.Message) error {
	commandsInProgress.Inc()
	defer commandsInProgress.Dec()

	start := time.Now()
	defer func() {
		commandProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	var req PlaceOrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal command: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	order, err := h.placer.PlaceOrder(ctx, req.ToEntity())
	if err != nil {
		ordersPlaceFailed.WithLabelValues(sourceKafka).Inc()
		return fmt.Errorf("failed to place order: %w", err)
	}

	commandsProcessed.Inc()
	ordersPlaced.WithLabelValues(sourceKafka).Inc()
	h.logger.Debug("order placed from command", slog.String("order_id", order.ID), slog.Int64("user_id", order.UserID))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: append(slices.Clone(m.Headers), kafka.Header{Key: "error", Value: []byte(cause.Error())}),
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
