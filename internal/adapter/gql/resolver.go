package gql

import (
	"errors"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/auth"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/service"
	"go.uber.org/zap"
)

type resolver struct {
	products *service.ProductService
	carts    *service.CartService
	orders   *service.OrderService
	users    *service.UserService
	logger   *zap.Logger
}

func caller(p graphql.ResolveParams) *domain.Identity {
	return auth.IdentityFrom(p.Context)
}

func argID(p graphql.ResolveParams, name string) (uuid.UUID, bool) {
	s, _ := p.Args[name].(string)
	id, err := uuid.Parse(s)

	return id, err == nil
}

func argInt(p graphql.ResolveParams, name string) int {
	n, _ := p.Args[name].(int)
	return n
}

// product resolves to null for an unknown id.
func (r *resolver) product(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argID(p, "id")
	if !ok {
		return nil, nil
	}

	product, err := r.products.GetProduct(p.Context, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("product", err)
	}

	return presenter.FromProduct(product), nil
}

func (r *resolver) listProducts(p graphql.ResolveParams) (interface{}, error) {
	products, err := r.products.ListProducts(p.Context)
	if err != nil {
		return nil, r.fail("products", err)
	}

	return presenter.FromProducts(products), nil
}

func (r *resolver) myCart(p graphql.ResolveParams) (interface{}, error) {
	cart, err := r.carts.GetCart(p.Context, caller(p))
	if err != nil {
		return nil, r.fail("myCart", err)
	}

	return presenter.FromCart(cart), nil
}

func (r *resolver) myOrders(p graphql.ResolveParams) (interface{}, error) {
	orders, err := r.orders.ListOwnOrders(p.Context, caller(p))
	if err != nil {
		return nil, r.fail("myOrders", err)
	}

	return presenter.FromOrders(orders), nil
}

func (r *resolver) listOrders(p graphql.ResolveParams) (interface{}, error) {
	var filter domain.OrderFilter

	if in, ok := p.Args["filter"].(map[string]interface{}); ok {
		if s, _ := in["status"].(string); s != "" {
			if status, err := domain.ParseOrderStatus(s); err == nil {
				filter.Status = &status
			}
		}
		if s, _ := in["userId"].(string); s != "" {
			if userID, err := uuid.Parse(s); err == nil {
				filter.UserID = &userID
			}
		}
	}

	orders, err := r.orders.ListOrders(p.Context, caller(p), filter)
	if err != nil {
		return nil, r.fail("orders", err)
	}

	return presenter.FromOrders(orders), nil
}

func (r *resolver) order(p graphql.ResolveParams) (interface{}, error) {
	if _, err := domain.RequireAuthenticated(caller(p)); err != nil {
		return nil, r.fail("order", err)
	}

	id, ok := argID(p, "id")
	if !ok {
		return nil, r.fail("order", domain.NotFound("order not found"))
	}

	order, err := r.orders.GetOrder(p.Context, caller(p), id)
	if err != nil {
		return nil, r.fail("order", err)
	}

	return presenter.FromOrder(order), nil
}

func (r *resolver) listUsers(p graphql.ResolveParams) (interface{}, error) {
	users, err := r.users.ListUsers(p.Context, caller(p))
	if err != nil {
		return nil, r.fail("users", err)
	}

	return presenter.FromUsers(users), nil
}

// user resolves to null for an unknown id.
func (r *resolver) user(p graphql.ResolveParams) (interface{}, error) {
	if _, err := domain.RequireAdmin(caller(p)); err != nil {
		return nil, r.fail("user", err)
	}

	id, ok := argID(p, "id")
	if !ok {
		return nil, nil
	}

	user, err := r.users.GetUser(p.Context, caller(p), id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("user", err)
	}

	return presenter.FromUser(user), nil
}

func (r *resolver) addToCart(p graphql.ResolveParams) (interface{}, error) {
	productID, _ := argID(p, "productId")

	cart, err := r.carts.AddItem(p.Context, caller(p), productID, argInt(p, "quantity"))
	if err != nil {
		return nil, r.fail("addToCart", err)
	}

	return presenter.FromCart(cart), nil
}

func (r *resolver) updateCartItem(p graphql.ResolveParams) (interface{}, error) {
	productID, _ := argID(p, "productId")

	cart, err := r.carts.SetItemQuantity(p.Context, caller(p), productID, argInt(p, "quantity"))
	if err != nil {
		return nil, r.fail("updateCartItem", err)
	}

	return presenter.FromCart(cart), nil
}

func (r *resolver) removeFromCart(p graphql.ResolveParams) (interface{}, error) {
	productID, _ := argID(p, "productId")

	cart, err := r.carts.RemoveItem(p.Context, caller(p), productID)
	if err != nil {
		return nil, r.fail("removeFromCart", err)
	}

	return presenter.FromCart(cart), nil
}

func (r *resolver) clearCart(p graphql.ResolveParams) (interface{}, error) {
	cart, err := r.carts.Clear(p.Context, caller(p))
	if err != nil {
		return nil, r.fail("clearCart", err)
	}

	return presenter.FromCart(cart), nil
}

func (r *resolver) createOrder(p graphql.ResolveParams) (interface{}, error) {
	order, err := r.orders.Checkout(p.Context, caller(p))
	if err != nil {
		return nil, r.fail("createOrder", err)
	}

	return presenter.FromOrder(order), nil
}

func (r *resolver) updateOrderStatus(p graphql.ResolveParams) (interface{}, error) {
	if _, err := domain.RequireAdmin(caller(p)); err != nil {
		return nil, r.fail("updateOrderStatus", err)
	}

	id, ok := argID(p, "id")
	if !ok {
		return nil, r.fail("updateOrderStatus", domain.NotFound("order not found"))
	}

	status, _ := p.Args["status"].(string)

	order, err := r.orders.UpdateStatus(p.Context, caller(p), id, status)
	if err != nil {
		return nil, r.fail("updateOrderStatus", err)
	}

	return presenter.FromOrder(order), nil
}

func (r *resolver) updateUserRole(p graphql.ResolveParams) (interface{}, error) {
	if _, err := domain.RequireAdmin(caller(p)); err != nil {
		return nil, r.fail("updateUserRole", err)
	}

	id, ok := argID(p, "id")
	if !ok {
		return nil, r.fail("updateUserRole", domain.NotFound("user not found"))
	}

	role, _ := p.Args["role"].(string)

	user, err := r.users.UpdateRole(p.Context, caller(p), id, role)
	if err != nil {
		return nil, r.fail("updateUserRole", err)
	}

	return presenter.FromUser(user), nil
}

func (r *resolver) deleteUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := domain.RequireAdmin(caller(p)); err != nil {
		return nil, r.fail("deleteUser", err)
	}

	id, ok := argID(p, "id")
	if !ok {
		return nil, r.fail("deleteUser", domain.NotFound("user not found"))
	}

	if err := r.users.DeleteUser(p.Context, caller(p), id); err != nil {
		return nil, r.fail("deleteUser", err)
	}

	return true, nil
}
