package service_test

import (
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func (suite *serviceSuite) TestAddItem() {
	a := suite.createProduct("A", "10")

	cart, err := suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 2)
	suite.Require().NoError(err)
	suite.Require().Len(cart.Items, 1)
	suite.Equal(2, cart.Items[0].Quantity)
	suite.Equal("A", cart.Items[0].Name)
	suite.True(decimal.NewFromInt(20).Equal(cart.Total().Amount))

	cart, err = suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 3)
	suite.Require().NoError(err)
	suite.Require().Len(cart.Items, 1)
	suite.Equal(5, cart.Items[0].Quantity)
	suite.True(decimal.NewFromInt(50).Equal(cart.Total().Amount))

	tests := []struct {
		name     string
		caller   *domain.Identity
		product  domain.Product
		quantity int
		wantKind domain.Kind
	}{
		{name: "unknown product: error", caller: &suite.ana, product: domain.Product{ID: randomID()}, quantity: 1, wantKind: domain.KindNotFound},
		{name: "zero quantity: error", caller: &suite.ana, product: a, quantity: 0, wantKind: domain.KindBadRequest},
		{name: "anonymous: error", caller: nil, product: a, quantity: 1, wantKind: domain.KindUnauthenticated},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.carts.AddItem(suite.ctx(), tt.caller, tt.product.ID, tt.quantity)
			suite.Equal(tt.wantKind, suite.kindOf(err))

			cart, err := suite.carts.GetCart(suite.ctx(), &suite.ana)
			suite.Require().NoError(err)
			suite.Require().Len(cart.Items, 1)
			suite.Equal(5, cart.Items[0].Quantity)
		})
	}
}

func (suite *serviceSuite) TestGetCart_CreatesEmpty() {
	cart, err := suite.carts.GetCart(suite.ctx(), &suite.bob)
	suite.Require().NoError(err)
	suite.Equal(suite.bob.ID, cart.OwnerID)
	suite.Empty(cart.Items)
	suite.True(cart.Total().Amount.IsZero())

	again, err := suite.carts.GetCart(suite.ctx(), &suite.bob)
	suite.Require().NoError(err)
	suite.Equal(cart.ID, again.ID)
}

func (suite *serviceSuite) TestSetItemQuantity() {
	a := suite.createProduct("A", "4")

	_, err := suite.carts.SetItemQuantity(suite.ctx(), &suite.ana, a.ID, 1)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	_, err = suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 1)
	suite.Require().NoError(err)

	cart, err := suite.carts.SetItemQuantity(suite.ctx(), &suite.ana, a.ID, 6)
	suite.Require().NoError(err)
	suite.Equal(6, cart.Items[0].Quantity)
	suite.True(decimal.NewFromInt(24).Equal(cart.Total().Amount))

	_, err = suite.carts.SetItemQuantity(suite.ctx(), &suite.ana, randomID(), 1)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	cart, err = suite.carts.SetItemQuantity(suite.ctx(), &suite.ana, a.ID, 0)
	suite.Require().NoError(err)
	suite.Empty(cart.Items)
}

func (suite *serviceSuite) TestRemoveItemAndClear() {
	a := suite.createProduct("A", "1")
	b := suite.createProduct("B", "2")

	_, err := suite.carts.RemoveItem(suite.ctx(), &suite.bob, a.ID)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	for _, p := range []domain.Product{a, b} {
		_, err := suite.carts.AddItem(suite.ctx(), &suite.bob, p.ID, 1)
		suite.Require().NoError(err)
	}

	cart, err := suite.carts.RemoveItem(suite.ctx(), &suite.bob, a.ID)
	suite.Require().NoError(err)
	suite.Len(cart.Items, 1)

	cart, err = suite.carts.RemoveItem(suite.ctx(), &suite.bob, a.ID)
	suite.Require().NoError(err)
	suite.Len(cart.Items, 1)

	cart, err = suite.carts.Clear(suite.ctx(), &suite.bob)
	suite.Require().NoError(err)
	suite.Empty(cart.Items)
	suite.True(cart.Total().Amount.IsZero())
}

// A product edit after adding leaves the cart line as it was.
func (suite *serviceSuite) TestCartLineSnapshot() {
	a := suite.createProduct("A", "10")

	_, err := suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 1)
	suite.Require().NoError(err)

	_, err = suite.products.UpdateProduct(suite.ctx(), &suite.admin, a.ID, domain.ProductInput{
		Name:  "A2",
		Price: domain.NewMoney(decimal.NewFromInt(99), currency.EUR),
	})
	suite.Require().NoError(err)

	cart, err := suite.carts.GetCart(suite.ctx(), &suite.ana)
	suite.Require().NoError(err)
	suite.Equal("A", cart.Items[0].Name)
	suite.True(decimal.NewFromInt(10).Equal(cart.Items[0].Price.Amount))
}
