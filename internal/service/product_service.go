package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type ProductService struct {
	products port.ProductRepository
	currency currency.Unit
	logger   *zap.Logger
	now      func() time.Time
}

func NewProductService(products port.ProductRepository, cur currency.Unit, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		currency: cur,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Currency is the unit every price in the catalog is expressed in.
func (s *ProductService) Currency() currency.Unit {
	return s.currency
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Product{}, domain.NotFound("product not found")
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, caller *domain.Identity, in domain.ProductInput) (domain.Product, error) {
	admin, err := domain.RequireAdmin(caller)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.validate(in); err != nil {
		return domain.Product{}, err
	}

	now := s.now()
	product, err := s.products.CreateProduct(ctx, domain.Product{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.CreateProduct: %w", err)
	}

	s.logger.Info("product created",
		zap.Stringer("product_id", product.ID),
		zap.Stringer("admin_id", admin.ID))

	return product, nil
}

// UpdateProduct leaves existing cart and order lines untouched, they hold snapshots.
func (s *ProductService) UpdateProduct(ctx context.Context, caller *domain.Identity, productID uuid.UUID, in domain.ProductInput) (domain.Product, error) {
	if _, err := domain.RequireAdmin(caller); err != nil {
		return domain.Product{}, err
	}
	if err := s.validate(in); err != nil {
		return domain.Product{}, err
	}

	product, err := s.products.UpdateProduct(ctx, productID, in)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Product{}, domain.NotFound("product not found")
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.UpdateProduct: %w", err)
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, caller *domain.Identity, productID uuid.UUID) error {
	if _, err := domain.RequireAdmin(caller); err != nil {
		return err
	}

	deleted, err := s.products.DeleteProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("products.DeleteProduct: %w", err)
	}
	if !deleted {
		return domain.NotFound("product not found")
	}

	return nil
}

func (s *ProductService) validate(in domain.ProductInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Price.Currency != s.currency {
		return domain.BadRequest("price must be in %s", s.currency)
	}

	return nil
}
