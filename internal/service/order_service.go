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
)

type OrderService struct {
	orders port.OrderRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewOrderService(orders port.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Checkout turns the caller's cart into a pending order and empties the cart.
// Either both happen or neither does.
func (s *OrderService) Checkout(ctx context.Context, caller *domain.Identity) (domain.Order, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Order{}, err
	}

	now := s.now()
	order, err := s.orders.PlaceOrder(ctx, id.ID, func(cart domain.Cart) (domain.Order, error) {
		return domain.NewOrderFromCart(cart, id, now)
	})
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			return domain.Order{}, derr
		}
		return domain.Order{}, fmt.Errorf("orders.PlaceOrder: %w", err)
	}

	s.logger.Info("order placed",
		zap.Stringer("order_id", order.ID),
		zap.Stringer("user_id", order.UserID),
		zap.Int("items", len(order.Items)),
		zap.Stringer("total", order.Total))

	return order, nil
}

// ListOrders scopes non-admin callers to their own orders whatever the filter says.
func (s *OrderService) ListOrders(ctx context.Context, caller *domain.Identity, filter domain.OrderFilter) ([]domain.Order, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return nil, err
	}

	if !id.IsAdmin() {
		filter = domain.OrderFilter{UserID: &id.ID}
	}

	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) ListOwnOrders(ctx context.Context, caller *domain.Identity) ([]domain.Order, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrders(ctx, domain.OrderFilter{UserID: &id.ID})
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, caller *domain.Identity, orderID uuid.UUID) (domain.Order, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Order{}, domain.NotFound("order not found")
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	if !id.IsAdmin() && order.UserID != id.ID {
		return domain.Order{}, domain.Forbidden("not allowed to view this order")
	}

	return order, nil
}

// UpdateStatus allows any transition between the known statuses, including
// reopening a completed order.
func (s *OrderService) UpdateStatus(ctx context.Context, caller *domain.Identity, orderID uuid.UUID, status string) (domain.Order, error) {
	id, err := domain.RequireAdmin(caller)
	if err != nil {
		return domain.Order{}, err
	}

	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, parsed)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Order{}, domain.NotFound("order not found")
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.UpdateStatus: %w", err)
	}

	s.logger.Info("order status updated",
		zap.Stringer("order_id", order.ID),
		zap.String("status", string(order.Status)),
		zap.Stringer("admin_id", id.ID))

	return order, nil
}
