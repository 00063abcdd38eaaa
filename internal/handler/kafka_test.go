package handler_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/canteen-order-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader serves queued messages and then blocks until ctx is done.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
	drained   chan struct{}
	closed    bool
}

func newFakeReader(values ...string) *fakeReader {
	r := &fakeReader{drained: make(chan struct{})}
	for i, v := range values {
		r.queue = append(r.queue, kafka.Message{Topic: "orders.place", Offset: int64(i), Value: []byte(v)})
	}
	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		m := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()

	select {
	case <-r.drained:
	default:
		close(r.drained)
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func consumeAll(t *testing.T, reader *fakeReader, dlq *fakeWriter, placer handler.OrderPlacer) {
	t.Helper()

	h := handler.NewKafkaHandlerWithClients(discardLogger(), reader, dlq, placer)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Consume(ctx)
		close(done)
	}()

	<-reader.drained
	cancel()
	<-done

	require.NoError(t, h.Close())
	assert.True(t, reader.closed)
	assert.True(t, dlq.closed)
}

func TestKafkaHandler_Consume(t *testing.T) {
	const valid = `{"user_id":7,"payment_method":"cash","items":[{"product_id":1,"quantity":2}]}`

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(placer *mocks.MockOrderPlacer)
		wantDLQ      bool
		wantCause    string
	}{
		{
			name:  "placed",
			value: valid,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().PlaceOrder(mock.Anything, entities.PlaceOrder{
					UserID:        7,
					PaymentMethod: "cash",
					Items:         []entities.OrderLine{{ProductID: 1, Quantity: 2}},
				}).Return(entities.Order{ID: "o1", UserID: 7}, nil).Once()
			},
		},
		{
			name:      "broken json",
			value:     `{"user_id":`,
			wantDLQ:   true,
			wantCause: "failed to unmarshal command",
		},
		{
			name:      "invalid command",
			value:     `{"user_id":7,"payment_method":"cash","items":[]}`,
			wantDLQ:   true,
			wantCause: "invalid command",
		},
		{
			name:  "business error",
			value: valid,
			mockBehavior: func(placer *mocks.MockOrderPlacer) {
				placer.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{ProductID: 1, Name: "Adobo", Requested: 2}).Once()
			},
			wantDLQ:   true,
			wantCause: "insufficient stock for Adobo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			placer := mocks.NewMockOrderPlacer(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(placer)
			}
			reader := newFakeReader(tc.value)
			dlq := &fakeWriter{}

			consumeAll(t, reader, dlq, placer)

			require.Len(t, reader.committed, 1)
			if !tc.wantDLQ {
				assert.Empty(t, dlq.msgs)
				return
			}

			require.Len(t, dlq.msgs, 1)
			dead := dlq.msgs[0]
			assert.Equal(t, "orders.place-dlq", dead.Topic)
			assert.Equal(t, tc.value, string(dead.Value))
			require.NotEmpty(t, dead.Headers)
			last := dead.Headers[len(dead.Headers)-1]
			assert.Equal(t, "error", last.Key)
			assert.Contains(t, string(last.Value), tc.wantCause)
		})
	}
}

func TestKafkaHandler_DLQFailureLeavesOffsetUncommitted(t *testing.T) {
	reader := newFakeReader(`not json`)
	dlq := &fakeWriter{err: errors.New("broker down")}

	consumeAll(t, reader, dlq, mocks.NewMockOrderPlacer(t))

	assert.Empty(t, reader.committed)
}
