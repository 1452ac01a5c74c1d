package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/db"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
)

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	row, err := r.q.CreateProduct(ctx, db.CreateProductParams{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Image:         product.Image,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.CreateProduct: %w", mapErr(err))
	}

	return mapProductToDomain(row)
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", mapErr(err))
	}

	return mapProductToDomain(row)
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, id uuid.UUID, in domain.ProductInput) (domain.Product, error) {
	row, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:            id,
		Name:          in.Name,
		Description:   in.Description,
		PriceAmount:   in.Price.Amount,
		PriceCurrency: in.Price.Currency.String(),
		Image:         in.Image,
		UpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", mapErr(err))
	}

	return mapProductToDomain(row)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeleteProduct(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	priceCurrency, err := parseCurrency(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: priceCurrency},
		Image:       row.Image,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
