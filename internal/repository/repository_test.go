package repository_test

import (
	"context"
	"fmt"
	"path"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	names, err := migrations.Names()
	if err != nil {
		return nil, "", fmt.Errorf("migrations.Names: %w", err)
	}

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		scripts = append(scripts, path.Join("..", "migrations", name))
	}

	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(scripts...),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE cart_items, carts, order_items, orders, products, users, messages CASCADE")
	return err
}

func randomProduct() domain.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)
	description := gofakeit.Sentence(6)
	image := gofakeit.URL()

	return domain.Product{
		ID:          uuid.New(),
		Name:        gofakeit.ProductName(),
		Description: &description,
		Price:       randomMoney(),
		Image:       &image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func gofakeitUsername() string {
	return gofakeit.Username() + gofakeit.DigitN(4)
}

func gofakeitSentence() string {
	return gofakeit.Sentence(8)
}

func decimalOf(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: currency.EUR,
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	for _, item := range actual {
		assert.False(t, item.CreatedAt.IsZero())
	}
}
