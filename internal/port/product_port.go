package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in domain.ProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
}
