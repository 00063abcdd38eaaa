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

type productRepo struct {
	base
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{base: newBase(db)}
}

// ProductsForUpdate locks the given products in id order, so concurrent orders
// touching the same products always acquire locks in the same sequence.
func (r *productRepo) ProductsForUpdate(ctx context.Context, ids []int64) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		MustSql()

	return r.listProducts(ctx, query, args...)
}

// DecrementStock subtracts amount from the product stock, refusing to go below zero.
func (r *productRepo) DecrementStock(ctx context.Context, productID int64, amount int, now time.Time) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", amount)).
		Set("updated_at", now).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": amount}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if !ok {
		return fmt.Errorf("product %d: %w", productID, entities.ErrInsufficientStock)
	}
	return nil
}

func (r *productRepo) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// ListProducts returns all products, or those of one category when category is set.
func (r *productRepo) ListProducts(ctx context.Context, category string) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).From("products").OrderBy("category", "name")
	if category != "" {
		q = q.Where(sq.Eq{"category": category})
	}

	query, args := q.MustSql()
	return r.listProducts(ctx, query, args...)
}

func (r *productRepo) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Insert("products").
		Columns("name", "category", "image", "price", "stock", "created_at", "updated_at").
		Values(p.Name, p.Category, nullString(p.Image), p.Price, p.Stock, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + joinColumns(productColumns)).
		MustSql()

	var product Product
	if err := r.getContext(ctx, &product, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *productRepo) UpdateProduct(ctx context.Context, productID int64, upd entities.ProductUpdate, now time.Time) (entities.Product, error) {
	q := r.qb.Update("products").
		Set("name", upd.Name).
		Set("category", upd.Category).
		Set("image", nullString(upd.Image)).
		Set("price", upd.Price).
		Set("updated_at", now).
		Where(sq.Eq{"id": productID}).
		Suffix("RETURNING " + joinColumns(productColumns))
	if upd.Stock != nil {
		q = q.Set("stock", *upd.Stock)
	}

	query, args := q.MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *productRepo) DeleteProduct(ctx context.Context, productID int64) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !ok {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) CountProducts(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("products").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *productRepo) listProducts(ctx context.Context, query string, args ...any) ([]entities.Product, error) {
	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
