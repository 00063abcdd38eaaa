package expiry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "canteen",
		Subsystem: "expiry",
		Name:      "expired_total",
		Help:      "Total number of ready orders expired after their pickup deadline.",
	})

	sweepErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "canteen",
		Subsystem: "expiry",
		Name:      "sweep_errors_total",
		Help:      "Total number of sweeps that finished with an error.",
	})

	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "canteen",
		Subsystem: "expiry",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of expiration sweeps in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

type Expirer interface {
	ExpireOverdueOrders(ctx context.Context) (int, error)
}

// Sweeper periodically expires ready orders whose pickup deadline has passed.
type Sweeper struct {
	logger   *slog.Logger
	svc      Expirer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(logger *slog.Logger, svc Expirer, interval time.Duration) *Sweeper {
	return &Sweeper{
		logger:   logger.With(slog.String("component", "expiry_sweeper")),
		svc:      svc,
		interval: interval,
	}
}

// Start sweeps once immediately and then every interval until ctx is done or Stop is called.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return nil
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)

	s.logger.Info("sweeper started", slog.Duration("interval", s.interval))
	return nil
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("sweeper stopped")
}

func (s *Sweeper) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.RunOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce performs a single sweep and returns how many orders it expired.
func (s *Sweeper) RunOnce(ctx context.Context) int {
	start := time.Now()
	expired, err := s.svc.ExpireOverdueOrders(ctx)
	sweepDuration.Observe(time.Since(start).Seconds())
	ordersExpired.Add(float64(expired))

	if err != nil {
		sweepErrors.Inc()
		s.logger.Error("sweep finished with errors", slog.Int("expired", expired), slog.Any("error", err))
		return expired
	}
	if expired > 0 {
		s.logger.Info("expired overdue orders", slog.Int("expired", expired))
	}
	return expired
}
