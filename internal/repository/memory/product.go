package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
)

type productRepository struct {
	s *Store
}

func (r *productRepository) CreateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", product.ID, domain.ErrConflict)
	}

	r.s.products[product.ID] = product
	r.s.productOrder = append(r.s.productOrder, product.ID)

	return product, nil
}

func (r *productRepository) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrNotFound)
	}

	return product, nil
}

func (r *productRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	products := make([]domain.Product, 0, len(r.s.productOrder))
	for _, id := range slices.Backward(r.s.productOrder) {
		products = append(products, r.s.products[id])
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(_ context.Context, id uuid.UUID, in domain.ProductInput) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrNotFound)
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Image = in.Image
	product.UpdatedAt = r.s.now()
	r.s.products[id] = product

	return product, nil
}

func (r *productRepository) DeleteProduct(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}

	delete(r.s.products, id)
	r.s.productOrder = removeID(r.s.productOrder, id)

	return true, nil
}
