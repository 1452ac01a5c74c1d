package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	s *Store
}

func (r *cartRepository) GetCart(_ context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[ownerID]
	if !ok {
		return domain.Cart{}, fmt.Errorf("cart[%s]: %w", ownerID, domain.ErrNotFound)
	}

	return cloneCart(cart), nil
}

func (r *cartRepository) GetOrCreateCart(_ context.Context, ownerID uuid.UUID, cur currency.Unit) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, ok := r.s.carts[ownerID]
	if !ok {
		now := r.s.now()
		cart = domain.Cart{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Currency:  cur,
			CreatedAt: now,
			UpdatedAt: now,
		}
		r.s.carts[ownerID] = cart
	}

	return cloneCart(cart), nil
}

// UpdateCart keeps the store locked across the read-modify-write.
func (r *cartRepository) UpdateCart(_ context.Context, ownerID uuid.UUID, fn port.CartMutation) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.carts[ownerID]
	if !ok {
		return domain.Cart{}, fmt.Errorf("cart[%s]: %w", ownerID, domain.ErrNotFound)
	}

	cart := cloneCart(stored)
	if err := fn(&cart); err != nil {
		return domain.Cart{}, err
	}

	cart.UpdatedAt = r.s.now()
	r.s.carts[ownerID] = cloneCart(cart)

	return cart, nil
}

func (r *cartRepository) DeleteCart(_ context.Context, ownerID uuid.UUID) (bool, error) {
	if ownerID == uuid.Nil {
		return false, fmt.Errorf("ownerID is empty")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.carts[ownerID]
	delete(r.s.carts, ownerID)

	return ok, nil
}
