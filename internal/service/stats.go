package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"

	"golang.org/x/sync/errgroup"
)

// statsService recomputes dashboards from storage on every call.
type statsService struct {
	logger   *slog.Logger
	orders   OrderRepo
	users    UserRepo
	products ProductRepo
	loc      *time.Location
	now      func() time.Time
}

func NewStatsService(logger *slog.Logger, orders OrderRepo, users UserRepo, products ProductRepo, loc *time.Location, clock func() time.Time) *statsService {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &statsService{
		logger:   logger.With(slog.String("service", "stats")),
		orders:   orders,
		users:    users,
		products: products,
		loc:      loc,
		now:      clock,
	}
}

// CanteenDashboard covers orders only; user and product totals stay zero.
func (s *statsService) CanteenDashboard(ctx context.Context) (entities.DashboardStats, error) {
	summaries, err := s.orders.OrderSummaries(ctx)
	if err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to load orders: %w", err)
	}
	return entities.ComputeStats(summaries, s.now().In(s.loc)), nil
}

func (s *statsService) AdminDashboard(ctx context.Context) (entities.DashboardStats, error) {
	var (
		summaries []entities.OrderSummary
		users     int
		products  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summaries, err = s.orders.OrderSummaries(gctx)
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = s.users.CountUsers(gctx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = s.products.CountProducts(gctx)
		if err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return entities.DashboardStats{}, err
	}

	stats := entities.ComputeStats(summaries, s.now().In(s.loc))
	stats.TotalUsers = users
	stats.TotalProducts = products
	return stats, nil
}
