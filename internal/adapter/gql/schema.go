package gql

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/nikolayk812/shopfront/internal/service"
	"go.uber.org/zap"
)

type Services struct {
	Products *service.ProductService
	Carts    *service.CartService
	Orders   *service.OrderService
	Users    *service.UserService
}

func NewSchema(svc Services, logger *zap.Logger) (graphql.Schema, error) {
	r := &resolver{
		products: svc.Products,
		carts:    svc.Carts,
		orders:   svc.Orders,
		users:    svc.Users,
		logger:   logger,
	}

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Resolve: r.listProducts,
			},
			"product": &graphql.Field{
				Type:    productType,
				Args:    idArg,
				Resolve: r.product,
			},
			"myCart": &graphql.Field{
				Type:    cartType,
				Resolve: r.myCart,
			},
			"myOrders": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderType))),
				Resolve: r.myOrders,
			},
			"orders": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderType))),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: orderFilterInput},
				},
				Resolve: r.listOrders,
			},
			"order": &graphql.Field{
				Type:    orderType,
				Args:    idArg,
				Resolve: r.order,
			},
			"users": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: r.listUsers,
			},
			"user": &graphql.Field{
				Type:    userType,
				Args:    idArg,
				Resolve: r.user,
			},
		},
	})

	productIDArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addToCart": &graphql.Field{
				Type: graphql.NewNonNull(cartType),
				Args: graphql.FieldConfigArgument{
					"productId": productIDArg,
					"quantity":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
				},
				Resolve: r.addToCart,
			},
			"updateCartItem": &graphql.Field{
				Type: graphql.NewNonNull(cartType),
				Args: graphql.FieldConfigArgument{
					"productId": productIDArg,
					"quantity":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.updateCartItem,
			},
			"removeFromCart": &graphql.Field{
				Type: graphql.NewNonNull(cartType),
				Args: graphql.FieldConfigArgument{
					"productId": productIDArg,
				},
				Resolve: r.removeFromCart,
			},
			"clearCart": &graphql.Field{
				Type:    graphql.NewNonNull(cartType),
				Resolve: r.clearCart,
			},
			"createOrder": &graphql.Field{
				Type:    graphql.NewNonNull(orderType),
				Resolve: r.createOrder,
			},
			"updateOrderStatus": &graphql.Field{
				Type: graphql.NewNonNull(orderType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.updateOrderStatus,
			},
			"updateUserRole": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"role": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.updateUserRole,
			},
			"deleteUser": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.deleteUser,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("graphql.NewSchema: %w", err)
	}

	return schema, nil
}
