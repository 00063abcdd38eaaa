package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var productLineColumns = []string{
	"p.id AS product_id", "p.name", "p.category", "p.image", "p.price", "p.stock",
	"p.created_at", "p.updated_at",
}

type cartRepo struct {
	base
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{base: newBase(db)}
}

func (r *cartRepo) CartItems(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	query, args := r.qb.Select(append([]string{"c.user_id", "c.quantity", "c.added_at"}, productLineColumns...)...).
		From("cart_items c").
		Join("products p ON p.id = c.product_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.added_at", "p.id").
		MustSql()

	var lines []productLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	result := make([]entities.CartItem, 0, len(lines))
	for _, l := range lines {
		result = append(result, entities.CartItem{
			UserID:   l.UserID,
			Quantity: l.Quantity,
			Product:  l.product(),
		})
	}
	return result, nil
}

// AddCartItem adds quantity to the cart line of the product, creating the line if needed.
func (r *cartRepo) AddCartItem(ctx context.Context, userID, productID int64, quantity int, now time.Time) error {
	query, args := r.qb.Insert("cart_items").
		Columns("user_id", "product_id", "quantity", "added_at").
		Values(userID, productID, quantity, now).
		Suffix("ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if pqCode(err) == pgForeignKeyViolation {
		return fmt.Errorf("user %d or product %d: %w", userID, productID, entities.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (r *cartRepo) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if !ok {
		return fmt.Errorf("cart item %w", entities.ErrNotFound)
	}
	return nil
}

func (r *cartRepo) ClearCart(ctx context.Context, userID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
