package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"golang.org/x/text/currency"
)

// CartMutation edits a cart in place. Returning an error discards the edit.
type CartMutation func(cart *domain.Cart) error

type CartRepository interface {
	// GetCart returns domain.ErrNotFound when the owner has no cart.
	GetCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error)
	GetOrCreateCart(ctx context.Context, ownerID uuid.UUID, cur currency.Unit) (domain.Cart, error)
	// UpdateCart applies fn while no other writer can touch the same cart.
	UpdateCart(ctx context.Context, ownerID uuid.UUID, fn CartMutation) (domain.Cart, error)
	DeleteCart(ctx context.Context, ownerID uuid.UUID) (bool, error)
}
