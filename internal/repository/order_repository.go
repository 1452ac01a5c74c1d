package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/db"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

// PlaceOrder inserts the order before emptying the cart, inside one transaction
// that also holds the cart row lock.
func (r *orderRepository) PlaceOrder(ctx context.Context, ownerID uuid.UUID, build port.OrderBuilder) (domain.Order, error) {
	if ownerID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("ownerID is empty")
	}

	return withTx(ctx, r.pool, func(q *db.Queries) (domain.Order, error) {
		cartExists := true
		cart, err := loadCart(ctx, q, ownerID, true)
		if errors.Is(err, domain.ErrNotFound) {
			cartExists = false
			cart = domain.Cart{OwnerID: ownerID}
		} else if err != nil {
			return domain.Order{}, fmt.Errorf("loadCart: %w", err)
		}

		order, err := build(cart)
		if err != nil {
			return domain.Order{}, err
		}

		if err := insertOrder(ctx, q, order); err != nil {
			return domain.Order{}, fmt.Errorf("insertOrder: %w", err)
		}

		if cartExists {
			cart.Clear()
			cart.UpdatedAt = order.CreatedAt
			if err := saveCartItems(ctx, q, cart); err != nil {
				return domain.Order{}, fmt.Errorf("saveCartItems: %w", err)
			}
		}

		return order, nil
	})
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", mapErr(err))
	}

	orders, err := r.withItems(ctx, []db.Order{row})
	if err != nil {
		return domain.Order{}, fmt.Errorf("withItems: %w", err)
	}

	return orders[0], nil
}

func (r *orderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	params := db.ListOrdersParams{UserID: filter.UserID}
	if filter.Status != nil {
		status := string(*filter.Status)
		params.Status = &status
	}

	rows, err := r.q.ListOrders(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders, err := r.withItems(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("withItems: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	row, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:        id,
		Status:    string(status),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.UpdateOrderStatus: %w", mapErr(err))
	}

	orders, err := r.withItems(ctx, []db.Order{row})
	if err != nil {
		return domain.Order{}, fmt.Errorf("withItems: %w", err)
	}

	return orders[0], nil
}

func (r *orderRepository) withItems(ctx context.Context, rows []db.Order) ([]domain.Order, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	itemRows, err := r.q.ListOrderItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrderItems: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]domain.OrderItem, len(rows))
	for _, itemRow := range itemRows {
		item, err := mapOrderItemToDomain(itemRow)
		if err != nil {
			return nil, fmt.Errorf("mapOrderItemToDomain: %w", err)
		}
		itemsByOrder[itemRow.OrderID] = append(itemsByOrder[itemRow.OrderID], item)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapOrderToDomain(row, itemsByOrder[row.ID])
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func insertOrder(ctx context.Context, q *db.Queries, order domain.Order) error {
	err := q.CreateOrder(ctx, db.CreateOrderParams{
		ID:            order.ID,
		UserID:        order.UserID,
		Username:      order.Username,
		TotalAmount:   order.Total.Amount,
		TotalCurrency: order.Total.Currency.String(),
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.CreateOrder: %w", err)
	}

	for i, item := range order.Items {
		err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
			OrderID:       order.ID,
			Position:      int32(i),
			ProductID:     item.ProductID,
			Name:          item.Name,
			PriceAmount:   item.Price.Amount,
			PriceCurrency: item.Price.Currency.String(),
			Image:         item.Image,
			Quantity:      int32(item.Quantity),
		})
		if err != nil {
			return fmt.Errorf("q.InsertOrderItem: %w", err)
		}
	}

	return nil
}

func mapOrderToDomain(row db.Order, items []domain.OrderItem) (domain.Order, error) {
	totalCurrency, err := parseCurrency(row.TotalCurrency)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:        row.ID,
		UserID:    row.UserID,
		Username:  row.Username,
		Items:     items,
		Total:     domain.Money{Amount: row.TotalAmount, Currency: totalCurrency},
		Status:    domain.OrderStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func mapOrderItemToDomain(row db.OrderItem) (domain.OrderItem, error) {
	priceCurrency, err := parseCurrency(row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, err
	}

	return domain.OrderItem{
		ProductID: row.ProductID,
		Name:      row.Name,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: priceCurrency},
		Image:     row.Image,
		Quantity:  int(row.Quantity),
	}, nil
}
