package domain_test

import (
	"testing"

	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestProductInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.ProductInput
		wantError string
	}{
		{name: "whole price: ok", input: input("Lamp", "10")},
		{name: "two decimals: ok", input: input("Lamp", "9.99")},
		{name: "trailing zeros: ok", input: input("Lamp", "9.990")},
		{name: "free: ok", input: input("Lamp", "0")},
		{name: "largest price: ok", input: input("Lamp", "9999999999.99")},
		{name: "blank name: error", input: input("  ", "1"), wantError: "name is required"},
		{name: "negative price: error", input: input("Lamp", "-0.01"), wantError: "price must not be negative"},
		{name: "three decimals: error", input: input("Lamp", "9.999"), wantError: "price must have at most 2 decimal places"},
		{name: "too large: error", input: input("Lamp", "10000000000"), wantError: "price must be less than 10000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantError != "" {
				require.ErrorIs(t, err, domain.ErrBadRequest)
				assert.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func input(name, price string) domain.ProductInput {
	return domain.ProductInput{
		Name:  name,
		Price: domain.NewMoney(decimal.RequireFromString(price), currency.EUR),
	}
}
