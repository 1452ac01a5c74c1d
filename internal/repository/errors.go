package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/shopfront/internal/domain"
	"golang.org/x/text/currency"
)

const uniqueViolation = "23505"

// mapErr translates driver errors into domain sentinels, anything else is
// returned unchanged.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}

	return err
}

func parseCurrency(s string) (currency.Unit, error) {
	unit, err := currency.ParseISO(s)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", s, err)
	}

	return unit, nil
}
