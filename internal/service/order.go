package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.Status, updatedAt time.Time) error
	OrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	// Empty statuses means every order.
	OrdersByStatus(ctx context.Context, statuses []entities.Status) ([]entities.Order, error)
	OverdueOrders(ctx context.Context, now time.Time) ([]entities.Order, error)
	// ExpireOrder reports false when the order is no longer ready and overdue.
	ExpireOrder(ctx context.Context, orderID string, now time.Time) (bool, error)
	OrderSummaries(ctx context.Context) ([]entities.OrderSummary, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

// Publisher announces order lifecycle changes. Delivery is best-effort.
type Publisher interface {
	OrderCreated(ctx context.Context, order entities.Order)
	OrderStatusChanged(ctx context.Context, order entities.Order, previous entities.Status)
}

type OrderConfig struct {
	PickupWindow time.Duration
	Transitions  entities.TransitionPolicy
	Clock        func() time.Time
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductRepo
	users     UserRepo
	cache     Cache
	publisher Publisher

	// cacheMu orders the compare-and-set in cacheOrder against concurrent fills.
	cacheMu sync.Mutex

	pickupWindow time.Duration
	policy       entities.TransitionPolicy
	now          func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	users UserRepo,
	cache Cache,
	publisher Publisher,
	cfg OrderConfig,
) *orderService {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Transitions == "" {
		cfg.Transitions = entities.TransitionsStrict
	}
	return &orderService{
		logger:       logger.With(slog.String("service", "order")),
		txManager:    txManager,
		orders:       orders,
		products:     products,
		users:        users,
		cache:        cache,
		publisher:    publisher,
		pickupWindow: cfg.PickupWindow,
		policy:       cfg.Transitions,
		now:          cfg.Clock,
	}
}

// PlaceOrder checks stock of every line under row locks before writing anything,
// so a shortfall on one line leaves all stock untouched and creates no order.
func (s *orderService) PlaceOrder(ctx context.Context, req entities.PlaceOrder) (entities.Order, error) {
	if len(req.Items) == 0 {
		return entities.Order{}, entities.ErrEmptyOrder
	}

	requested := make(map[int64]int, len(req.Items))
	ids := make([]int64, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return entities.Order{}, fmt.Errorf("product %d: %w", line.ProductID, entities.ErrInvalidQuantity)
		}
		if _, ok := requested[line.ProductID]; !ok {
			ids = append(ids, line.ProductID)
		}
		requested[line.ProductID] += line.Quantity
	}
	slices.Sort(ids)

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.users.UserExists(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return fmt.Errorf("user %d: %w", req.UserID, entities.ErrUserNotFound)
		}

		products, err := s.products.ProductsForUpdate(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to lock products: %w", err)
		}
		byID := make(map[int64]entities.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		for _, id := range ids {
			p, ok := byID[id]
			if !ok {
				return fmt.Errorf("product %d: %w", id, entities.ErrProductNotFound)
			}
			if p.Stock < requested[id] {
				return &entities.InsufficientStockError{
					ProductID: p.ID,
					Name:      p.Name,
					Available: p.Stock,
					Requested: requested[id],
				}
			}
		}

		now := s.now()
		for _, id := range ids {
			if err := s.products.DecrementStock(ctx, id, requested[id], now); err != nil {
				return err
			}
		}

		order = entities.Order{
			ID:             uuid.NewString(),
			UserID:         req.UserID,
			Status:         entities.StatusPending,
			PaymentMethod:  req.PaymentMethod,
			PickupTime:     req.PickupTime,
			PickupDeadline: now.Add(s.pickupWindow),
			Notes:          req.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
			Items:          make([]entities.OrderItem, 0, len(req.Items)),
		}
		for _, line := range req.Items {
			order.Items = append(order.Items, byID[line.ProductID].Snapshot(line.Quantity))
		}
		order.Total = order.ItemsTotal()

		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	s.storeOrder(ctx, order)
	s.publisher.OrderCreated(ctx, order)
	return order, nil
}

// UpdateStatus moves the order to status under the configured transition policy.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status string) (entities.Order, error) {
	next, err := entities.ParseStatus(status)
	if err != nil {
		return entities.Order{}, err
	}

	var (
		order    entities.Order
		previous entities.Status
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := s.policy.Check(current.Status, next); err != nil {
			return err
		}

		now := s.now()
		if err := s.orders.UpdateStatus(ctx, orderID, next, now); err != nil {
			return err
		}

		previous = current.Status
		current.Status = next
		current.UpdatedAt = now
		order = current
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order status updated",
		slog.String("order_id", orderID),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)

	s.cacheOrder(ctx, order)
	s.publisher.OrderStatusChanged(ctx, order, previous)
	return order, nil
}

// ExpireOverdueOrders moves every ready order past its pickup deadline to expired.
// A failure on one order does not stop the others; all failures are returned joined.
func (s *orderService) ExpireOverdueOrders(ctx context.Context) (int, error) {
	now := s.now()

	overdue, err := s.orders.OverdueOrders(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find overdue orders: %w", err)
	}

	var (
		expired int
		errs    []error
	)
	for _, order := range overdue {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if !order.Overdue(now) {
			continue
		}

		ok, err := s.orders.ExpireOrder(ctx, order.ID, now)
		if err != nil {
			s.logger.Error("failed to expire order", slog.String("order_id", order.ID), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("order %s: %w", order.ID, err))
			continue
		}
		if !ok {
			s.logger.Debug("order left ready before expiry", slog.String("order_id", order.ID))
			continue
		}

		expired++
		previous := order.Status
		order.Status = entities.StatusExpired
		order.UpdatedAt = now

		s.cacheOrder(ctx, order)
		s.publisher.OrderStatusChanged(ctx, order, previous)
	}

	if expired > 0 {
		s.logger.Info("expired overdue orders", slog.Int("count", expired))
	}
	return expired, errors.Join(errs...)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(ctx, orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			s.cache.Delete(ctx, orderID)
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(ctx, cfg, fn, entities.ErrNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(ctx, order)
	return order, nil
}

func (s *orderService) UserOrders(ctx context.Context, userID int64) ([]entities.Order, error) {
	return s.orders.OrdersByUser(ctx, userID)
}

// ActiveOrders is the canteen queue: pending, preparing and ready orders, oldest first.
func (s *orderService) ActiveOrders(ctx context.Context) ([]entities.Order, error) {
	return s.orders.OrdersByStatus(ctx, entities.ActiveStatuses)
}

// AllOrders lists every order, or only those in status when it is not empty.
func (s *orderService) AllOrders(ctx context.Context, status string) ([]entities.Order, error) {
	if status == "" {
		return s.orders.OrdersByStatus(ctx, nil)
	}
	st, err := entities.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.orders.OrdersByStatus(ctx, []entities.Status{st})
}

// cacheOrder stores order unless the cache already holds a later version of it.
// A read that loaded the row before a status commit must not overwrite the committed status.
func (s *orderService) cacheOrder(ctx context.Context, order entities.Order) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if data, ok := s.cache.Get(ctx, order.ID); ok {
		var cached entities.Order
		if err := cached.Unmarshal(data); err == nil && cached.UpdatedAt.After(order.UpdatedAt) {
			return
		}
	}
	s.storeOrder(ctx, order)
}

func (s *orderService) storeOrder(ctx context.Context, order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(ctx, order.ID, data)
}

// WarmUpCache loads up to count active orders into the cache, since those are the ones polled while waiting for pickup.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.OrdersByStatus(ctx, entities.ActiveStatuses)
	if err != nil {
		return fmt.Errorf("failed to load active orders: %w", err)
	}

	if len(orders) > count {
		orders = orders[len(orders)-count:]
	}
	for _, o := range orders {
		s.cacheOrder(ctx, o)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
