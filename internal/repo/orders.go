package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

// CreateOrder inserts the order and its item snapshots. Call it inside a transaction.
func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.UserID, string(o.Status), o.Total, o.PaymentMethod, nullString(o.PickupTime),
			o.PickupDeadline, nullString(o.Notes), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(orderItemColumns...)
	for i, it := range o.Items {
		q = q.Values(o.ID, i, it.ProductID, it.Name, it.Category, nullString(it.Image), it.Price, it.Quantity)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	return r.getOrder(ctx, query, args...)
}

// GetOrderForUpdate locks the order row until the surrounding transaction ends.
func (r *orderRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	return r.getOrder(ctx, query, args...)
}

func (r *orderRepo) getOrder(ctx context.Context, query string, args ...any) (entities.Order, error) {
	var order Order
	err := r.getContext(ctx, &order, query, args...)
	// A malformed uuid cannot name an order.
	if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pgInvalidText {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.withItems(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID string, status entities.Status, updatedAt time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if pqCode(err) == pgInvalidText {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if !ok {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) OrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC"))
}

// OrdersByStatus returns orders in any of statuses, oldest first. No statuses means all orders, newest first.
func (r *orderRepo) OrdersByStatus(ctx context.Context, statuses []entities.Status) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")
	if len(statuses) == 0 {
		return r.listOrders(ctx, q.OrderBy("created_at DESC"))
	}
	return r.listOrders(ctx, q.Where(sq.Eq{"status": statusStrings(statuses)}).OrderBy("created_at ASC"))
}

// OverdueOrders returns ready orders whose pickup deadline is strictly before now.
func (r *orderRepo) OverdueOrders(ctx context.Context, now time.Time) ([]entities.Order, error) {
	return r.listOrders(ctx, r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(entities.StatusReady)}).
		Where(sq.Lt{"pickup_deadline": now}).
		OrderBy("pickup_deadline ASC"))
}

// ExpireOrder flips a still ready, still overdue order to expired.
// It reports false when the order left ready in the meantime.
func (r *orderRepo) ExpireOrder(ctx context.Context, orderID string, now time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusExpired)).
		Set("updated_at", now).
		Where(sq.Eq{"id": orderID, "status": string(entities.StatusReady)}).
		Where(sq.Lt{"pickup_deadline": now}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to expire order: %w", err)
	}
	return ok, nil
}

func (r *orderRepo) OrderSummaries(ctx context.Context) ([]entities.OrderSummary, error) {
	query, args := r.qb.Select("status", "total", "created_at").
		From("orders").
		MustSql()

	var rows []OrderSummary
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order summaries: %w", err)
	}

	result := make([]entities.OrderSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, entities.OrderSummary{
			Status:    entities.Status(row.Status),
			Total:     row.Total,
			CreatedAt: row.CreatedAt,
		})
	}
	return result, nil
}

func (r *orderRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}
	return r.withItems(ctx, orders)
}

// withItems loads the items of all orders with one query and keeps the order of orders.
func (r *orderRepo) withItems(ctx context.Context, orders []Order) ([]entities.Order, error) {
	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args := r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[string][]OrderItem, len(orders))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func statusStrings(statuses []entities.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
