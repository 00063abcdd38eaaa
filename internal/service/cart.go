package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
)

type CartRepo interface {
	CartItems(ctx context.Context, userID int64) ([]entities.CartItem, error)
	// AddCartItem increases the quantity of an existing line instead of adding a second one.
	AddCartItem(ctx context.Context, userID, productID int64, quantity int, now time.Time) error
	RemoveCartItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type cartService struct {
	logger   *slog.Logger
	cart     CartRepo
	products ProductRepo
	now      func() time.Time
}

func NewCartService(logger *slog.Logger, cart CartRepo, products ProductRepo, clock func() time.Time) *cartService {
	if clock == nil {
		clock = time.Now
	}
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		cart:     cart,
		products: products,
		now:      clock,
	}
}

func (s *cartService) Cart(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	return s.cart.CartItems(ctx, userID)
}

func (s *cartService) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidQuantity
	}
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return err
	}
	if err := s.cart.AddCartItem(ctx, userID, productID, quantity, s.now()); err != nil {
		return err
	}

	s.logger.Debug("cart item added", slog.Int64("user_id", userID), slog.Int64("product_id", productID), slog.Int("quantity", quantity))
	return nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	return s.cart.RemoveCartItem(ctx, userID, productID)
}

func (s *cartService) ClearCart(ctx context.Context, userID int64) error {
	return s.cart.ClearCart(ctx, userID)
}
