package repository_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
	"github.com/nikolayk812/shopfront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type orderRepositorySuite struct {
	suite.Suite

	carts  port.CartRepository
	orders port.OrderRepository
	pool   *pgxpool.Pool
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(orderRepositorySuite))
}

func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.carts = repository.NewCart(suite.pool)
	suite.orders = repository.NewOrder(suite.pool)
}

func (suite *orderRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *orderRepositorySuite) TearDownTest() {
	suite.NoError(truncateAll(suite.T().Context(), suite.pool))
}

func (suite *orderRepositorySuite) TestPlaceOrder() {
	t := suite.T()
	ctx := t.Context()
	owner := randomIdentity()
	products := []domain.Product{randomProduct(), randomProduct()}

	suite.fillCart(owner.ID, map[int]int{0: 2, 1: 1}, products)

	now := time.Now().UTC().Truncate(time.Microsecond)
	placed, err := suite.orders.PlaceOrder(ctx, owner.ID, func(cart domain.Cart) (domain.Order, error) {
		return domain.NewOrderFromCart(cart, owner, now)
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, placed.Status)
	assert.Equal(t, owner.Username, placed.Username)

	wantTotal := products[0].Price.Amount.Mul(decimalOf(2)).Add(products[1].Price.Amount)
	assert.True(t, wantTotal.Equal(placed.Total.Amount), "total %s, want %s", placed.Total.Amount, wantTotal)

	stored, err := suite.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	assertOrder(t, placed, stored)

	cart, err := suite.carts.GetCart(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func (suite *orderRepositorySuite) TestPlaceOrder_EmptyCart() {
	tests := []struct {
		name      string
		withCart  bool
		wantError error
	}{
		{name: "no cart: error", withCart: false, wantError: domain.ErrBadRequest},
		{name: "empty cart: error", withCart: true, wantError: domain.ErrBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()
			owner := randomIdentity()

			if tt.withCart {
				_, err := suite.carts.GetOrCreateCart(ctx, owner.ID, currency.EUR)
				require.NoError(t, err)
			}

			_, err := suite.orders.PlaceOrder(ctx, owner.ID, func(cart domain.Cart) (domain.Order, error) {
				return domain.NewOrderFromCart(cart, owner, time.Now())
			})
			require.ErrorIs(t, err, tt.wantError)

			orders, err := suite.orders.ListOrders(ctx, domain.OrderFilter{UserID: &owner.ID})
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

// Catalog edits after checkout never reach the stored order.
// A failing order write rolls back, the cart keeps its lines.
func (suite *orderRepositorySuite) TestPlaceOrder_WriteFails() {
	tests := []struct {
		name   string
		mutate func(order domain.Order, existing domain.Order) domain.Order
	}{
		{
			name: "duplicate order id: error",
			mutate: func(order, existing domain.Order) domain.Order {
				order.ID = existing.ID
				return order
			},
		},
		{
			name: "line violates quantity check: error",
			mutate: func(order, _ domain.Order) domain.Order {
				order.Items[0].Quantity = 0
				return order
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			other := randomIdentity()
			suite.fillCart(other.ID, map[int]int{0: 1}, []domain.Product{randomProduct()})
			existing, err := suite.orders.PlaceOrder(ctx, other.ID, func(cart domain.Cart) (domain.Order, error) {
				return domain.NewOrderFromCart(cart, other, time.Now())
			})
			require.NoError(t, err)

			owner := randomIdentity()
			suite.fillCart(owner.ID, map[int]int{0: 2, 1: 3}, []domain.Product{randomProduct(), randomProduct()})

			_, err = suite.orders.PlaceOrder(ctx, owner.ID, func(cart domain.Cart) (domain.Order, error) {
				order, err := domain.NewOrderFromCart(cart, owner, time.Now())
				if err != nil {
					return domain.Order{}, err
				}
				return tt.mutate(order, existing), nil
			})
			require.Error(t, err)

			cart, err := suite.carts.GetCart(ctx, owner.ID)
			require.NoError(t, err)
			require.Len(t, cart.Items, 2)
			assert.Equal(t, 2, cart.Items[0].Quantity)
			assert.Equal(t, 3, cart.Items[1].Quantity)

			orders, err := suite.orders.ListOrders(ctx, domain.OrderFilter{UserID: &owner.ID})
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func (suite *orderRepositorySuite) TestPlaceOrder_FrozenSnapshot() {
	t := suite.T()
	ctx := t.Context()
	owner := randomIdentity()
	product := randomProduct()

	productRepo := repository.NewProduct(suite.pool)
	_, err := productRepo.CreateProduct(ctx, product)
	require.NoError(t, err)

	suite.fillCart(owner.ID, map[int]int{0: 3}, []domain.Product{product})

	placed, err := suite.orders.PlaceOrder(ctx, owner.ID, func(cart domain.Cart) (domain.Order, error) {
		return domain.NewOrderFromCart(cart, owner, time.Now().UTC())
	})
	require.NoError(t, err)

	_, err = productRepo.UpdateProduct(ctx, product.ID, domain.ProductInput{
		Name:  "renamed",
		Price: domain.NewMoney(product.Price.Amount.Add(decimalOf(50)), currency.EUR),
	})
	require.NoError(t, err)

	stored, err := suite.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, product.Name, stored.Items[0].Name)
	assert.True(t, product.Price.Amount.Equal(stored.Items[0].Price.Amount))
	assert.True(t, placed.Total.Amount.Equal(stored.Total.Amount))
}

func (suite *orderRepositorySuite) TestListOrders() {
	t := suite.T()
	ctx := t.Context()

	ana := randomIdentity()
	bob := randomIdentity()
	product := randomProduct()

	var placed []domain.Order
	for i, owner := range []domain.Identity{ana, bob, ana} {
		suite.fillCart(owner.ID, map[int]int{0: 1}, []domain.Product{product})

		order, err := suite.orders.PlaceOrder(ctx, owner.ID, func(cart domain.Cart) (domain.Order, error) {
			return domain.NewOrderFromCart(cart, owner, time.Now().UTC().Add(time.Duration(i)*time.Second))
		})
		require.NoError(t, err)
		placed = append(placed, order)
	}

	_, err := suite.orders.UpdateStatus(ctx, placed[0].ID, domain.OrderStatusCompleted)
	require.NoError(t, err)

	completed := domain.OrderStatusCompleted
	pending := domain.OrderStatusPending

	tests := []struct {
		name    string
		filter  domain.OrderFilter
		wantIDs []uuid.UUID
	}{
		{
			name:    "no filter newest first: ok",
			wantIDs: []uuid.UUID{placed[2].ID, placed[1].ID, placed[0].ID},
		},
		{
			name:    "by user: ok",
			filter:  domain.OrderFilter{UserID: &ana.ID},
			wantIDs: []uuid.UUID{placed[2].ID, placed[0].ID},
		},
		{
			name:    "by status: ok",
			filter:  domain.OrderFilter{Status: &completed},
			wantIDs: []uuid.UUID{placed[0].ID},
		},
		{
			name:    "by user and status: ok",
			filter:  domain.OrderFilter{UserID: &bob.ID, Status: &pending},
			wantIDs: []uuid.UUID{placed[1].ID},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			orders, err := suite.orders.ListOrders(t.Context(), tt.filter)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID)
				assert.Len(t, o.Items, 1)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func (suite *orderRepositorySuite) TestUpdateStatus() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.orders.UpdateStatus(ctx, uuid.New(), domain.OrderStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.orders.GetOrder(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	owner := randomIdentity()
	suite.fillCart(owner.ID, map[int]int{0: 1}, []domain.Product{randomProduct()})

	placed, err := suite.orders.PlaceOrder(ctx, owner.ID, func(cart domain.Cart) (domain.Order, error) {
		return domain.NewOrderFromCart(cart, owner, time.Now().UTC())
	})
	require.NoError(t, err)

	for _, status := range []domain.OrderStatus{domain.OrderStatusCompleted, domain.OrderStatusPending} {
		updated, err := suite.orders.UpdateStatus(ctx, placed.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		assert.True(t, placed.Total.Amount.Equal(updated.Total.Amount))
		assert.Len(t, updated.Items, 1)
	}
}

// fillCart adds products[idx] with the given quantity for every map entry.
func (suite *orderRepositorySuite) fillCart(ownerID uuid.UUID, quantities map[int]int, products []domain.Product) {
	ctx := suite.T().Context()

	_, err := suite.carts.GetOrCreateCart(ctx, ownerID, currency.EUR)
	suite.Require().NoError(err)

	_, err = suite.carts.UpdateCart(ctx, ownerID, func(c *domain.Cart) error {
		now := time.Now()
		for idx := range products {
			qty, ok := quantities[idx]
			if !ok {
				continue
			}
			if err := c.AddProduct(products[idx], qty, now.Add(time.Duration(idx)*time.Millisecond)); err != nil {
				return err
			}
		}
		return nil
	})
	suite.Require().NoError(err)
}

func randomIdentity() domain.Identity {
	return domain.Identity{ID: uuid.New(), Username: gofakeitUsername(), Role: domain.RoleUser}
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	opts := cmp.Options{
		currencyComparer,
		cmpopts.EquateApproxTime(time.Millisecond),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
