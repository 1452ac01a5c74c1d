package service_test

import (
	"github.com/nikolayk812/shopfront/internal/domain"
)

func (suite *serviceSuite) TestListUsers() {
	users, err := suite.users.ListUsers(suite.ctx(), &suite.admin)
	suite.Require().NoError(err)
	suite.Len(users, 3)

	_, err = suite.users.ListUsers(suite.ctx(), &suite.ana)
	suite.Equal(domain.KindForbidden, suite.kindOf(err))

	_, err = suite.users.ListUsers(suite.ctx(), nil)
	suite.Equal(domain.KindUnauthenticated, suite.kindOf(err))
}

func (suite *serviceSuite) TestGetUser() {
	user, err := suite.users.GetUser(suite.ctx(), &suite.admin, suite.ana.ID)
	suite.Require().NoError(err)
	suite.Equal("ana", user.Username)
	suite.Equal(domain.RoleUser, user.Role)

	_, err = suite.users.GetUser(suite.ctx(), &suite.admin, randomID())
	suite.Equal(domain.KindNotFound, suite.kindOf(err))
}

func (suite *serviceSuite) TestUpdateRole() {
	tests := []struct {
		name     string
		caller   *domain.Identity
		role     string
		wantKind domain.Kind
	}{
		{name: "promote: ok", caller: &suite.admin, role: "admin"},
		{name: "demote: ok", caller: &suite.admin, role: "usuario"},
		{name: "unknown role: error", caller: &suite.admin, role: "root", wantKind: domain.KindBadRequest},
		{name: "not admin: error", caller: &suite.bob, role: "admin", wantKind: domain.KindForbidden},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			user, err := suite.users.UpdateRole(suite.ctx(), tt.caller, suite.ana.ID, tt.role)
			if tt.wantKind != "" {
				suite.Equal(tt.wantKind, suite.kindOf(err))
				return
			}
			suite.Require().NoError(err)
			suite.Equal(domain.Role(tt.role), user.Role)
		})
	}

	_, err := suite.users.UpdateRole(suite.ctx(), &suite.admin, randomID(), "admin")
	suite.Equal(domain.KindNotFound, suite.kindOf(err))
}

func (suite *serviceSuite) TestDeleteUser() {
	a := suite.createProduct("A", "5")

	_, err := suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 1)
	suite.Require().NoError(err)
	order, err := suite.orders.Checkout(suite.ctx(), &suite.ana)
	suite.Require().NoError(err)
	_, err = suite.carts.AddItem(suite.ctx(), &suite.ana, a.ID, 4)
	suite.Require().NoError(err)

	err = suite.users.DeleteUser(suite.ctx(), &suite.admin, suite.admin.ID)
	suite.Equal(domain.KindBadRequest, suite.kindOf(err))
	suite.Equal("you cannot delete yourself", domain.PublicMessage(err))

	err = suite.users.DeleteUser(suite.ctx(), &suite.bob, suite.ana.ID)
	suite.Equal(domain.KindForbidden, suite.kindOf(err))

	suite.Require().NoError(suite.users.DeleteUser(suite.ctx(), &suite.admin, suite.ana.ID))

	_, err = suite.users.GetUser(suite.ctx(), &suite.admin, suite.ana.ID)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	err = suite.users.DeleteUser(suite.ctx(), &suite.admin, suite.ana.ID)
	suite.Equal(domain.KindNotFound, suite.kindOf(err))

	// the cart is gone, the order stays
	_, err = suite.store.Carts().GetCart(suite.ctx(), suite.ana.ID)
	suite.ErrorIs(err, domain.ErrNotFound)

	got, err := suite.orders.GetOrder(suite.ctx(), &suite.admin, order.ID)
	suite.Require().NoError(err)
	suite.Equal("ana", got.Username)
}
