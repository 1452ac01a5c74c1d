package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
)

// OrderBuilder turns the locked cart into the order to persist.
type OrderBuilder func(cart domain.Cart) (domain.Order, error)

type OrderRepository interface {
	// PlaceOrder persists the order built from the owner's cart and then empties
	// the cart, all or nothing. A missing cart is passed to build as an empty one.
	PlaceOrder(ctx context.Context, ownerID uuid.UUID, build OrderBuilder) (domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
	// ListOrders returns newest first.
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error)
}
