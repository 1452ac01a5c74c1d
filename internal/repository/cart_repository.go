package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/db"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	cart, err := loadCart(ctx, r.q, ownerID, false)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("loadCart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) GetOrCreateCart(ctx context.Context, ownerID uuid.UUID, cur currency.Unit) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	err := r.q.CreateCartIfMissing(ctx, db.CreateCartIfMissingParams{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Currency:  cur.String(),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.CreateCartIfMissing: %w", err)
	}

	cart, err := loadCart(ctx, r.q, ownerID, false)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("loadCart: %w", err)
	}

	return cart, nil
}

// UpdateCart holds a row lock on the cart for the whole read-modify-write, so
// concurrent mutations of one cart are serialized instead of overwriting each other.
func (r *cartRepository) UpdateCart(ctx context.Context, ownerID uuid.UUID, fn port.CartMutation) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	return withTx(ctx, r.pool, func(q *db.Queries) (domain.Cart, error) {
		cart, err := loadCart(ctx, q, ownerID, true)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("loadCart: %w", err)
		}

		if err := fn(&cart); err != nil {
			return domain.Cart{}, err
		}

		cart.UpdatedAt = time.Now().UTC()
		if err := saveCartItems(ctx, q, cart); err != nil {
			return domain.Cart{}, fmt.Errorf("saveCartItems: %w", err)
		}

		return cart, nil
	})
}

func (r *cartRepository) DeleteCart(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	if ownerID == uuid.Nil {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteCart(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCart: %w", err)
	}

	return rowsAffected > 0, nil
}

func loadCart(ctx context.Context, q *db.Queries, ownerID uuid.UUID, forUpdate bool) (domain.Cart, error) {
	var (
		row db.Cart
		err error
	)
	if forUpdate {
		row, err = q.GetCartForUpdate(ctx, ownerID)
	} else {
		row, err = q.GetCart(ctx, ownerID)
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", mapErr(err))
	}

	dbCartItems, err := q.GetCartItems(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCartItems: %w", err)
	}

	items, err := mapGetCartItemsRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartItemsRowsToDomain: %w", err)
	}

	cur, err := parseCurrency(row.Currency)
	if err != nil {
		return domain.Cart{}, err
	}

	return domain.Cart{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Currency:  cur,
		Items:     items,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// saveCartItems replaces the stored lines with the ones in cart.
func saveCartItems(ctx context.Context, q *db.Queries, cart domain.Cart) error {
	if err := q.DeleteCartItems(ctx, cart.OwnerID); err != nil {
		return fmt.Errorf("q.DeleteCartItems: %w", err)
	}

	for _, item := range cart.Items {
		createdAt := item.CreatedAt
		if createdAt.IsZero() {
			createdAt = cart.UpdatedAt
		}

		err := q.InsertCartItem(ctx, db.InsertCartItemParams{
			OwnerID:       cart.OwnerID,
			ProductID:     item.ProductID,
			Name:          item.Name,
			PriceAmount:   item.Price.Amount,
			PriceCurrency: item.Price.Currency.String(),
			Image:         item.Image,
			Quantity:      int32(item.Quantity),
			CreatedAt:     createdAt,
		})
		if err != nil {
			return fmt.Errorf("q.InsertCartItem: %w", err)
		}
	}

	err := q.TouchCart(ctx, db.TouchCartParams{
		OwnerID:   cart.OwnerID,
		UpdatedAt: cart.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.TouchCart: %w", err)
	}

	return nil
}

func mapGetCartItemsRowToDomain(row db.GetCartItemsRow) (domain.CartItem, error) {
	parsedCurrency, err := parseCurrency(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		ProductID: row.ProductID,
		Name:      row.Name,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Image:     row.Image,
		Quantity:  int(row.Quantity),
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetCartItemsRowsToDomain(rows []db.GetCartItemsRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartItemsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartItemsRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
