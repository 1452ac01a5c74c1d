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

type CartService struct {
	carts    port.CartRepository
	products port.ProductRepository
	currency currency.Unit
	logger   *zap.Logger
	now      func() time.Time
}

func NewCartService(carts port.CartRepository, products port.ProductRepository, cur currency.Unit, logger *zap.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		currency: cur,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetCart returns the caller's cart, creating an empty one on first access.
func (s *CartService) GetCart(ctx context.Context, caller *domain.Identity) (domain.Cart, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.carts.GetOrCreateCart(ctx, id.ID, s.currency)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetOrCreateCart: %w", err)
	}

	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, caller *domain.Identity, productID uuid.UUID, quantity int) (domain.Cart, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Cart{}, err
	}
	if quantity < 1 {
		return domain.Cart{}, domain.BadRequest("quantity must be at least 1")
	}

	product, err := s.products.GetProduct(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Cart{}, domain.NotFound("product not found")
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	if _, err := s.carts.GetOrCreateCart(ctx, id.ID, s.currency); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetOrCreateCart: %w", err)
	}

	now := s.now()
	cart, err := s.carts.UpdateCart(ctx, id.ID, func(cart *domain.Cart) error {
		return cart.AddProduct(product, quantity, now)
	})
	if err != nil {
		return domain.Cart{}, s.cartErr("carts.UpdateCart", err)
	}

	return cart, nil
}

// SetItemQuantity replaces the quantity of a line, zero or less removes it.
func (s *CartService) SetItemQuantity(ctx context.Context, caller *domain.Identity, productID uuid.UUID, quantity int) (domain.Cart, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.carts.UpdateCart(ctx, id.ID, func(cart *domain.Cart) error {
		return cart.SetQuantity(productID, quantity)
	})
	if err != nil {
		return domain.Cart{}, s.cartErr("carts.UpdateCart", err)
	}

	return cart, nil
}

// RemoveItem does not fail when the product is not in the cart.
func (s *CartService) RemoveItem(ctx context.Context, caller *domain.Identity, productID uuid.UUID) (domain.Cart, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.carts.UpdateCart(ctx, id.ID, func(cart *domain.Cart) error {
		cart.RemoveProduct(productID)
		return nil
	})
	if err != nil {
		return domain.Cart{}, s.cartErr("carts.UpdateCart", err)
	}

	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, caller *domain.Identity) (domain.Cart, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Cart{}, err
	}

	if _, err := s.carts.GetOrCreateCart(ctx, id.ID, s.currency); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetOrCreateCart: %w", err)
	}

	cart, err := s.carts.UpdateCart(ctx, id.ID, func(cart *domain.Cart) error {
		cart.Clear()
		return nil
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.UpdateCart: %w", err)
	}

	return cart, nil
}

// cartErr turns a missing cart into a caller-facing NOT_FOUND and keeps the
// domain errors raised inside mutations as they are.
func (s *CartService) cartErr(op string, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound("cart not found")
	}

	return fmt.Errorf("%s: %w", op, err)
}
