package expiry_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/expiry"
	mocks "github.com/SergeyBogomolovv/canteen-order-service/internal/expiry/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweeper_RunOnce(t *testing.T) {
	testCases := []struct {
		name    string
		expired int
		err     error
	}{
		{name: "nothing overdue"},
		{name: "expired some", expired: 3},
		{name: "partial failure still counts", expired: 1, err: errors.New("order o2: db error")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockExpirer(t)
			svc.EXPECT().ExpireOverdueOrders(mock.Anything).Return(tc.expired, tc.err).Once()

			s := expiry.NewSweeper(discardLogger(), svc, time.Minute)
			assert.Equal(t, tc.expired, s.RunOnce(context.Background()))
		})
	}
}

func TestSweeper_StartSweepsImmediatelyAndStopWaits(t *testing.T) {
	var calls atomic.Int32
	svc := mocks.NewMockExpirer(t)
	svc.EXPECT().ExpireOverdueOrders(mock.Anything).
		RunAndReturn(func(context.Context) (int, error) {
			calls.Add(1)
			return 0, nil
		})

	s := expiry.NewSweeper(discardLogger(), svc, 10*time.Millisecond)
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()))

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	s.Stop()
	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())

	s.Stop()
}

func TestSweeper_StopsWithContext(t *testing.T) {
	svc := mocks.NewMockExpirer(t)
	svc.EXPECT().ExpireOverdueOrders(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s := expiry.NewSweeper(discardLogger(), svc, time.Hour)
	require.NoError(t, s.Start(ctx))

	cancel()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
