package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderStatusPending, OrderStatusCompleted:
		return status, nil
	default:
		return "", BadRequest("invalid status %q, use 'pending' or 'completed'", s)
	}
}

type Order struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Username string
	Items    []OrderItem
	Total    Money
	Status   OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Price     Money
	Image     *string
	Quantity  int
}

func (i OrderItem) Subtotal() Money {
	return i.Price.Mul(i.Quantity)
}

// NewOrderFromCart copies every cart line into a pending order. The total is
// computed from the copies, so later cart or catalog edits never reach it.
func NewOrderFromCart(cart Cart, owner Identity, now time.Time) (Order, error) {
	if cart.IsEmpty() {
		return Order{}, BadRequest("cart is empty")
	}

	items := make([]OrderItem, 0, len(cart.Items))
	total := NewMoney(decimal.Zero, cart.Currency)
	for _, line := range cart.Items {
		item := OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     cloneString(line.Image),
			Quantity:  line.Quantity,
		}
		items = append(items, item)

		var err error
		if total, err = total.Add(item.Subtotal()); err != nil {
			return Order{}, BadRequest("cart line %s: %s", item.ProductID, err)
		}
	}

	return Order{
		ID:        uuid.New(),
		UserID:    owner.ID,
		Username:  owner.Username,
		Items:     items,
		Total:     total,
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// OrderFilter narrows an order listing, nil fields match everything.
type OrderFilter struct {
	Status *OrderStatus
	UserID *uuid.UUID
}

func (f OrderFilter) Matches(o Order) bool {
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.UserID != nil && o.UserID != *f.UserID {
		return false
	}

	return true
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
