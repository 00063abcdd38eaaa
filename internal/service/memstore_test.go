package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/service"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/trm"
)

// memTx serializes transactions, standing in for the row locks postgres takes.
type memTx struct {
	trm.Manager
	mu sync.Mutex
}

func (m *memTx) Do(ctx context.Context, cb func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cb(ctx)
}

type memProducts struct {
	service.ProductRepo
	mu       sync.Mutex
	products map[int64]entities.Product
}

func newMemProducts(products ...entities.Product) *memProducts {
	m := &memProducts{products: make(map[int64]entities.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memProducts) stock(id int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

func (m *memProducts) ProductsForUpdate(_ context.Context, ids []int64) ([]entities.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) DecrementStock(_ context.Context, id int64, amount int, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.products[id]
	if p.Stock < amount {
		return entities.ErrInsufficientStock
	}
	p.Stock -= amount
	p.UpdatedAt = now
	m.products[id] = p
	return nil
}

func (m *memProducts) GetProduct(_ context.Context, id int64) (entities.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

type memUsers struct {
	service.UserRepo
	ids map[int64]bool
}

func (m *memUsers) UserExists(_ context.Context, id int64) (bool, error) {
	return m.ids[id], nil
}

type memOrders struct {
	service.OrderRepo
	mu     sync.Mutex
	orders map[string]entities.Order
}

func newMemOrders() *memOrders {
	return &memOrders{orders: make(map[string]entities.Order)}
}

func (m *memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *memOrders) put(o entities.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
}

func (m *memOrders) CreateOrder(_ context.Context, o entities.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[o.ID]; ok {
		return fmt.Errorf("duplicate order %s", o.ID)
	}
	m.orders[o.ID] = o
	return nil
}

func (m *memOrders) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (m *memOrders) GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error) {
	return m.GetOrderByID(ctx, id)
}

func (m *memOrders) UpdateStatus(_ context.Context, id string, status entities.Status, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	m.orders[id] = o
	return nil
}

func (m *memOrders) OverdueOrders(_ context.Context, now time.Time) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entities.Order{}
	for _, o := range m.orders {
		if o.Status == entities.StatusReady && o.PickupDeadline.Before(now) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PickupDeadline.Before(out[j].PickupDeadline) })
	return out, nil
}

func (m *memOrders) ExpireOrder(_ context.Context, id string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != entities.StatusReady || !o.PickupDeadline.Before(now) {
		return false, nil
	}
	o.Status = entities.StatusExpired
	o.UpdatedAt = now
	m.orders[id] = o
	return true, nil
}

func (m *memOrders) snapshot() map[string]entities.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]entities.Order, len(m.orders))
	for k, v := range m.orders {
		out[k] = v
	}
	return out
}

type statusChange struct {
	orderID  string
	previous entities.Status
	next     entities.Status
}

type recordingPublisher struct {
	mu      sync.Mutex
	created []string
	changes []statusChange
}

func (p *recordingPublisher) OrderCreated(_ context.Context, order entities.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, order.ID)
}

func (p *recordingPublisher) OrderStatusChanged(_ context.Context, order entities.Order, previous entities.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, statusChange{orderID: order.ID, previous: previous, next: order.Status})
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}
