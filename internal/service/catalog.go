package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
)

type ProductRepo interface {
	// ProductsForUpdate locks the rows until the surrounding transaction ends.
	ProductsForUpdate(ctx context.Context, ids []int64) ([]entities.Product, error)
	DecrementStock(ctx context.Context, productID int64, amount int, now time.Time) error

	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	ListProducts(ctx context.Context, category string) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, productID int64, upd entities.ProductUpdate, now time.Time) (entities.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	CountProducts(ctx context.Context) (int, error)
}

type catalogService struct {
	logger   *slog.Logger
	products ProductRepo
	now      func() time.Time
}

func NewCatalogService(logger *slog.Logger, products ProductRepo, clock func() time.Time) *catalogService {
	if clock == nil {
		clock = time.Now
	}
	return &catalogService{
		logger:   logger.With(slog.String("service", "catalog")),
		products: products,
		now:      clock,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, category string) ([]entities.Product, error) {
	return s.products.ListProducts(ctx, category)
}

func (s *catalogService) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	return s.products.GetProduct(ctx, productID)
}

func (s *catalogService) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := s.products.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product created", slog.Int64("product_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, productID int64, upd entities.ProductUpdate) (entities.Product, error) {
	updated, err := s.products.UpdateProduct(ctx, productID, upd, s.now())
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product updated", slog.Int64("product_id", productID))
	return updated, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	s.logger.Info("product deleted", slog.Int64("product_id", productID))
	return nil
}
