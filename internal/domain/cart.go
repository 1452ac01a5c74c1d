package domain

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MaxQuantity is the largest quantity a single line may hold.
const MaxQuantity = math.MaxInt32

type Cart struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Currency currency.Unit
	Items    []CartItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ProductID uuid.UUID
	Name      string
	Price     Money
	Image     *string
	Quantity  int

	CreatedAt time.Time
}

func (i CartItem) Subtotal() Money {
	return i.Price.Mul(i.Quantity)
}

// Total is always derived from the current lines.
func (c Cart) Total() Money {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal().Amount)
	}

	return Money{Amount: total, Currency: c.Currency}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Item(productID uuid.UUID) (CartItem, bool) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return CartItem{}, false
	}

	return c.Items[idx], true
}

// AddProduct increments the quantity of an existing line or appends a new line
// holding a snapshot of the product as it is now.
func (c *Cart) AddProduct(p Product, quantity int, now time.Time) error {
	if quantity < 1 {
		return BadRequest("quantity must be at least 1")
	}
	if p.Price.Currency != c.Currency {
		return BadRequest("product %s is priced in %s, cart uses %s", p.ID, p.Price.Currency, c.Currency)
	}

	if quantity > MaxQuantity {
		return BadRequest("quantity must be at most %d", MaxQuantity)
	}

	if idx := c.indexOf(p.ID); idx >= 0 {
		if c.Items[idx].Quantity > MaxQuantity-quantity {
			return BadRequest("quantity must be at most %d", MaxQuantity)
		}
		c.Items[idx].Quantity += quantity
		return nil
	}

	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		CreatedAt: now,
	})

	return nil
}

// SetQuantity replaces the quantity of an existing line, a quantity of zero or
// less removes it.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) error {
	idx := c.indexOf(productID)
	if idx < 0 {
		return NotFound("product is not in the cart")
	}

	if quantity <= 0 {
		c.Items = slices.Delete(c.Items, idx, idx+1)
		return nil
	}
	if quantity > MaxQuantity {
		return BadRequest("quantity must be at most %d", MaxQuantity)
	}

	c.Items[idx].Quantity = quantity

	return nil
}

// RemoveProduct reports whether a line was removed.
func (c *Cart) RemoveProduct(productID uuid.UUID) bool {
	before := len(c.Items)
	c.Items = slices.DeleteFunc(c.Items, func(item CartItem) bool {
		return item.ProductID == productID
	})

	return len(c.Items) != before
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) indexOf(productID uuid.UUID) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ProductID == productID
	})
}
