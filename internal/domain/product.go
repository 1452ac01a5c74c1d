package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prices are stored with two decimal places and at most ten integer digits.
var maxPrice = decimal.New(1, 10)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       Money
	Image       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductInput is the editable part of a product.
type ProductInput struct {
	Name        string
	Description *string
	Price       Money
	Image       *string
}

func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return BadRequest("name is required")
	}
	if in.Price.IsNegative() {
		return BadRequest("price must not be negative")
	}
	if !in.Price.Amount.Equal(in.Price.Amount.Round(2)) {
		return BadRequest("price must have at most 2 decimal places")
	}
	if in.Price.Amount.GreaterThanOrEqual(maxPrice) {
		return BadRequest("price must be less than %s", maxPrice)
	}

	return nil
}
