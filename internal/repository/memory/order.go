package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
)

type orderRepository struct {
	s *Store
}

func (r *orderRepository) PlaceOrder(_ context.Context, ownerID uuid.UUID, build port.OrderBuilder) (domain.Order, error) {
	if ownerID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("ownerID is empty")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cart, cartExists := r.s.carts[ownerID]
	if !cartExists {
		cart = domain.Cart{OwnerID: ownerID}
	}

	order, err := build(cloneCart(cart))
	if err != nil {
		return domain.Order{}, err
	}

	r.s.orders[order.ID] = cloneOrder(order)
	r.s.orderOrder = append(r.s.orderOrder, order.ID)

	if cartExists {
		cart.Items = nil
		cart.UpdatedAt = order.CreatedAt
		r.s.carts[ownerID] = cart
	}

	return order, nil
}

func (r *orderRepository) GetOrder(_ context.Context, id uuid.UUID) (domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("order[%s]: %w", id, domain.ErrNotFound)
	}

	return cloneOrder(order), nil
}

func (r *orderRepository) ListOrders(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var orders []domain.Order
	for _, id := range slices.Backward(r.s.orderOrder) {
		order := r.s.orders[id]
		if filter.Matches(order) {
			orders = append(orders, cloneOrder(order))
		}
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("order[%s]: %w", id, domain.ErrNotFound)
	}

	order.Status = status
	order.UpdatedAt = r.s.now()
	r.s.orders[id] = order

	return cloneOrder(order), nil
}
