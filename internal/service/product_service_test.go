package service_test

import (
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func (suite *serviceSuite) TestCreateProduct() {
	image := "a.png"

	tests := []struct {
		name     string
		caller   *domain.Identity
		input    domain.ProductInput
		wantKind domain.Kind
	}{
		{
			name:   "admin: ok",
			caller: &suite.admin,
			input:  domain.ProductInput{Name: "Lamp", Price: domain.NewMoney(decimal.RequireFromString("12.50"), currency.EUR), Image: &image},
		},
		{
			name:     "not admin: error",
			caller:   &suite.ana,
			input:    domain.ProductInput{Name: "Lamp", Price: domain.NewMoney(decimal.NewFromInt(1), currency.EUR)},
			wantKind: domain.KindForbidden,
		},
		{
			name:     "anonymous: error",
			input:    domain.ProductInput{Name: "Lamp", Price: domain.NewMoney(decimal.NewFromInt(1), currency.EUR)},
			wantKind: domain.KindUnauthenticated,
		},
		{
			name:     "blank name: error",
			caller:   &suite.admin,
			input:    domain.ProductInput{Name: " ", Price: domain.NewMoney(decimal.NewFromInt(1), currency.EUR)},
			wantKind: domain.KindBadRequest,
		},
		{
			name:     "negative price: error",
			caller:   &suite.admin,
			input:    domain.ProductInput{Name: "Lamp", Price: domain.NewMoney(decimal.NewFromInt(-1), currency.EUR)},
			wantKind: domain.KindBadRequest,
		},
		{
			name:     "foreign currency: error",
			caller:   &suite.admin,
			input:    domain.ProductInput{Name: "Lamp", Price: domain.NewMoney(decimal.NewFromInt(1), currency.USD)},
			wantKind: domain.KindBadRequest,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			product, err := suite.products.CreateProduct(suite.ctx(), tt.caller, tt.input)
			if tt.wantKind != "" {
				suite.Equal(tt.wantKind, suite.kindOf(err))
				return
			}
			suite.Require().NoError(err)

			got, err := suite.products.GetProduct(suite.ctx(), product.ID)
			suite.Require().NoError(err)
			suite.Equal("Lamp", got.Name)
			suite.True(tt.input.Price.Amount.Equal(got.Price.Amount))
			suite.Equal(&image, got.Image)
		})
	}

	products, err := suite.products.ListProducts(suite.ctx())
	suite.Require().NoError(err)
	suite.Len(products, 1)
}

func (suite *serviceSuite) TestUpdateAndDeleteProduct() {
	p := suite.createProduct("A", "1")

	in := domain.ProductInput{Name: "B", Price: domain.NewMoney(decimal.NewFromInt(2), currency.EUR)}

	_, err := suite.products.UpdateProduct(suite.ctx(), &suite.ana, p.ID, in)
	suite.Equal(domain.KindForbidden, suite.kindOf(err))

	_, err = suite.products.UpdateProduct(suite.ctx(), &suite.admin, randomID(), in)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	updated, err := suite.products.UpdateProduct(suite.ctx(), &suite.admin, p.ID, in)
	suite.Require().NoError(err)
	suite.Equal("B", updated.Name)
	suite.Equal(p.ID, updated.ID)

	err = suite.products.DeleteProduct(suite.ctx(), &suite.ana, p.ID)
	suite.Equal(domain.KindForbidden, suite.kindOf(err))

	suite.Require().NoError(suite.products.DeleteProduct(suite.ctx(), &suite.admin, p.ID))

	err = suite.products.DeleteProduct(suite.ctx(), &suite.admin, p.ID)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	_, err = suite.products.GetProduct(suite.ctx(), p.ID)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))
}
