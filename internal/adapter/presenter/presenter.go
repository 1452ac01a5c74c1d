// Package presenter maps domain values to the JSON shapes both transports
// return. Identifiers are exposed as "id", timestamps as ISO-8601 strings.
package presenter

import (
	"time"

	"github.com/nikolayk812/shopfront/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Imagen      *string `json:"imagen"`
	CreatedAt   string  `json:"createdAt"`
}

type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Imagen    *string `json:"imagen"`
}

type Cart struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	Currency string     `json:"currency"`
}

// OrderItem mirrors CartItem, kept separate so the two can drift.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Imagen    *string `json:"imagen"`
}

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Username  string      `json:"username"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Currency  string      `json:"currency"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type Message struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

func FromProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount.InexactFloat64(),
		Currency:    p.Price.Currency.String(),
		Imagen:      p.Image,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func FromProducts(products []domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromCart(c domain.Cart) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItem{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Price:     item.Price.Amount.InexactFloat64(),
			Quantity:  item.Quantity,
			Imagen:    item.Image,
		})
	}

	return Cart{
		ID:       c.ID.String(),
		UserID:   c.OwnerID.String(),
		Items:    items,
		Total:    c.Total().Amount.InexactFloat64(),
		Currency: c.Currency.String(),
	}
}

func FromOrder(o domain.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Price:     item.Price.Amount.InexactFloat64(),
			Quantity:  item.Quantity,
			Imagen:    item.Image,
		})
	}

	return Order{
		ID:        o.ID.String(),
		UserID:    o.UserID.String(),
		Username:  o.Username,
		Items:     items,
		Total:     o.Total.Amount.InexactFloat64(),
		Currency:  o.Total.Currency.String(),
		Status:    string(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
}

func FromOrders(orders []domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromUser(u domain.User) User {
	return User{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func FromUsers(users []domain.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

func FromMessage(m domain.Message) Message {
	return Message{
		ID:        m.ID.String(),
		Username:  m.Username,
		Text:      m.Text,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

func FromMessages(messages []domain.Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, FromMessage(m))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
