package gql

import "github.com/graphql-go/graphql"

// Field resolution relies on the json tags of the presenter structs.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"role":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt": &graphql.Field{Type: graphql.String},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"currency":    &graphql.Field{Type: graphql.String},
		"imagen":      &graphql.Field{Type: graphql.String},
		"createdAt":   &graphql.Field{Type: graphql.String},
	},
})

func lineFields() graphql.Fields {
	return graphql.Fields{
		"productId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"quantity":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"imagen":    &graphql.Field{Type: graphql.String},
	}
}

var cartItemType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "CartItem",
	Fields: lineFields(),
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name:   "OrderItem",
	Fields: lineFields(),
})

var cartType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cart",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"items":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(cartItemType)))},
		"total":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"currency": &graphql.Field{Type: graphql.String},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"items":     &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemType)))},
		"total":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"currency":  &graphql.Field{Type: graphql.String},
		"status":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var orderFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"status": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"userId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})
