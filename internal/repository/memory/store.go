// Package memory keeps every repository in process memory behind one mutex.
// It backs STORE_DRIVER=memory and the service and transport tests.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
)

type Store struct {
	mu sync.Mutex

	products     map[uuid.UUID]domain.Product
	productOrder []uuid.UUID

	carts map[uuid.UUID]domain.Cart

	orders     map[uuid.UUID]domain.Order
	orderOrder []uuid.UUID

	users     map[uuid.UUID]domain.Credentials
	userOrder []uuid.UUID

	messages []domain.Message

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		products: make(map[uuid.UUID]domain.Product),
		carts:    make(map[uuid.UUID]domain.Cart),
		orders:   make(map[uuid.UUID]domain.Order),
		users:    make(map[uuid.UUID]domain.Credentials),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Products() port.ProductRepository {
	return &productRepository{s: s}
}

func (s *Store) Carts() port.CartRepository {
	return &cartRepository{s: s}
}

func (s *Store) Orders() port.OrderRepository {
	return &orderRepository{s: s}
}

func (s *Store) Users() port.UserRepository {
	return &userRepository{s: s}
}

func (s *Store) Messages() port.MessageRepository {
	return &messageRepository{s: s}
}

func cloneCart(c domain.Cart) domain.Cart {
	c.Items = slices.Clone(c.Items)
	return c
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	return o
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	return slices.DeleteFunc(ids, func(x uuid.UUID) bool { return x == id })
}
