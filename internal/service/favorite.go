package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
)

type FavoriteRepo interface {
	Favorites(ctx context.Context, userID int64) ([]entities.Favorite, error)
	AddFavorite(ctx context.Context, userID, productID int64, now time.Time) error
	RemoveFavorite(ctx context.Context, userID, productID int64) error
}

type favoriteService struct {
	logger    *slog.Logger
	favorites FavoriteRepo
	products  ProductRepo
	now       func() time.Time
}

func NewFavoriteService(logger *slog.Logger, favorites FavoriteRepo, products ProductRepo, clock func() time.Time) *favoriteService {
	if clock == nil {
		clock = time.Now
	}
	return &favoriteService{
		logger:    logger.With(slog.String("service", "favorite")),
		favorites: favorites,
		products:  products,
		now:       clock,
	}
}

func (s *favoriteService) Favorites(ctx context.Context, userID int64) ([]entities.Favorite, error) {
	return s.favorites.Favorites(ctx, userID)
}

// AddFavorite is a no-op when the product is already a favorite.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, productID int64) error {
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.favorites.AddFavorite(ctx, userID, productID, s.now())
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	return s.favorites.RemoveFavorite(ctx, userID, productID)
}
