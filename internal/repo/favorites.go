package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type favoriteRepo struct {
	base
}

func NewFavoriteRepo(db *sqlx.DB) *favoriteRepo {
	return &favoriteRepo{base: newBase(db)}
}

func (r *favoriteRepo) Favorites(ctx context.Context, userID int64) ([]entities.Favorite, error) {
	query, args := r.qb.Select(append([]string{"f.user_id", "f.created_at AS added_at"}, productLineColumns...)...).
		From("favorites f").
		Join("products p ON p.id = f.product_id").
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC").
		MustSql()

	var lines []productLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select favorites: %w", err)
	}

	result := make([]entities.Favorite, 0, len(lines))
	for _, l := range lines {
		result = append(result, entities.Favorite{
			UserID:    l.UserID,
			Product:   l.product(),
			CreatedAt: l.AddedAt,
		})
	}
	return result, nil
}

// AddFavorite is idempotent: adding a product twice keeps the first entry.
func (r *favoriteRepo) AddFavorite(ctx context.Context, userID, productID int64, now time.Time) error {
	query, args := r.qb.Insert("favorites").
		Columns("user_id", "product_id", "created_at").
		Values(userID, productID, now).
		Suffix("ON CONFLICT (user_id, product_id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if pqCode(err) == pgForeignKeyViolation {
		return fmt.Errorf("user %d or product %d: %w", userID, productID, entities.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepo) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	query, args := r.qb.Delete("favorites").
		Where(sq.Eq{"user_id": userID, "product_id": productID}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !ok {
		return fmt.Errorf("favorite %w", entities.ErrNotFound)
	}
	return nil
}
