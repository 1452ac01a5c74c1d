package service_test

import (
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func (suite *serviceSuite) TestCheckout() {
	a := suite.createProduct("A", "10")

	_, err := suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 2)
	suite.Require().NoError(err)

	order, err := suite.orders.Checkout(suite.ctx(), &suite.ana)
	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusPending, order.Status)
	suite.Equal(suite.ana.ID, order.UserID)
	suite.Equal("ana", order.Username)
	suite.True(decimal.NewFromInt(20).Equal(order.Total.Amount))
	suite.Require().Len(order.Items, 1)
	suite.Equal(2, order.Items[0].Quantity)

	cart, err := suite.carts.GetCart(suite.ctx(), &suite.ana)
	suite.Require().NoError(err)
	suite.Empty(cart.Items)

	_, err = suite.orders.Checkout(suite.ctx(), &suite.ana)
	suite.Equal(domain.KindBadRequest, suite.kindOf(err))
	suite.Equal("cart is empty", domain.PublicMessage(err))

	orders, err := suite.orders.ListOwnOrders(suite.ctx(), &suite.ana)
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *serviceSuite) TestCheckout_NoCart() {
	_, err := suite.orders.Checkout(suite.ctx(), &suite.bob)
	suite.Equal(domain.KindBadRequest, suite.kindOf(err))

	_, err = suite.orders.Checkout(suite.ctx(), nil)
	suite.Equal(domain.KindUnauthenticated, suite.kindOf(err))
}

// Orders keep the prices they were placed with.
func (suite *serviceSuite) TestCheckout_FrozenSnapshot() {
	a := suite.createProduct("A", "10")

	_, err := suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 1)
	suite.Require().NoError(err)

	order, err := suite.orders.Checkout(suite.ctx(), &suite.ana)
	suite.Require().NoError(err)

	_, err = suite.products.UpdateProduct(suite.ctx(), &suite.admin, a.ID, domain.ProductInput{
		Name:  "A renamed",
		Price: domain.NewMoney(decimal.NewFromInt(50), currency.EUR),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.products.DeleteProduct(suite.ctx(), &suite.admin, a.ID))

	got, err := suite.orders.GetOrder(suite.ctx(), &suite.ana, order.ID)
	suite.Require().NoError(err)
	suite.Equal("A", got.Items[0].Name)
	suite.True(decimal.NewFromInt(10).Equal(got.Total.Amount))
}

func (suite *serviceSuite) TestListOrders_Scoping() {
	a := suite.createProduct("A", "3")

	for _, caller := range []domain.Identity{suite.ana, suite.bob} {
		_, err := suite.carts.AddItem(suite.ctx(), &caller, a.ID, 1)
		suite.Require().NoError(err)
		_, err = suite.orders.Checkout(suite.ctx(), &caller)
		suite.Require().NoError(err)
	}

	all, err := suite.orders.ListOrders(suite.ctx(), &suite.admin, domain.OrderFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 2)

	byBob, err := suite.orders.ListOrders(suite.ctx(), &suite.admin, domain.OrderFilter{UserID: &suite.bob.ID})
	suite.Require().NoError(err)
	suite.Require().Len(byBob, 1)
	suite.Equal(suite.bob.ID, byBob[0].UserID)

	// a non-admin filter is replaced by the caller's own scope
	own, err := suite.orders.ListOrders(suite.ctx(), &suite.ana, domain.OrderFilter{UserID: &suite.bob.ID})
	suite.Require().NoError(err)
	suite.Require().Len(own, 1)
	suite.Equal(suite.ana.ID, own[0].UserID)

	_, err = suite.orders.GetOrder(suite.ctx(), &suite.ana, byBob[0].ID)
	suite.Equal(domain.KindForbidden, suite.kindOf(err))

	_, err = suite.orders.GetOrder(suite.ctx(), &suite.ana, randomID())
	suite.Equal(domain.KindNotFound, suite.kindOf(err))
}

func (suite *serviceSuite) TestUpdateStatus() {
	a := suite.createProduct("A", "3")

	_, err := suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 1)
	suite.Require().NoError(err)
	order, err := suite.orders.Checkout(suite.ctx(), &suite.ana)
	suite.Require().NoError(err)

	tests := []struct {
		name     string
		caller   *domain.Identity
		status   string
		wantKind domain.Kind
	}{
		{name: "completed: ok", caller: &suite.admin, status: "completed"},
		{name: "back to pending: ok", caller: &suite.admin, status: "pending"},
		{name: "unknown status: error", caller: &suite.admin, status: "shipped", wantKind: domain.KindBadRequest},
		{name: "not admin: error", caller: &suite.ana, status: "completed", wantKind: domain.KindForbidden},
		{name: "anonymous: error", caller: nil, status: "completed", wantKind: domain.KindUnauthenticated},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, err := suite.orders.UpdateStatus(suite.ctx(), tt.caller, order.ID, tt.status)
			if tt.wantKind != "" {
				suite.Equal(tt.wantKind, suite.kindOf(err))
				return
			}
			suite.Require().NoError(err)
			suite.Equal(domain.OrderStatus(tt.status), got.Status)
		})
	}

	_, err = suite.orders.UpdateStatus(suite.ctx(), &suite.admin, randomID(), "completed")
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	pending := domain.OrderStatusPending
	orders, err := suite.orders.ListOrders(suite.ctx(), &suite.admin, domain.OrderFilter{Status: &pending})
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}
