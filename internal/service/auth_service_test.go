package service_test

import (
	"strings"
	"time"

	"github.com/nikolayk812/shopfront/internal/auth"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/service"
)

func (suite *serviceSuite) TestRegister() {
	tests := []struct {
		name     string
		username string
		password string
		wantKind domain.Kind
		wantMsg  string
	}{
		{name: "new user: ok", username: "  carla ", password: "secret"},
		{name: "taken username: error", username: "ana", password: "secret", wantKind: domain.KindBadRequest, wantMsg: "username is already taken"},
		{name: "missing password: error", username: "dora", password: "", wantKind: domain.KindBadRequest, wantMsg: "username and password are required"},
		{name: "short username: error", username: "do", password: "secret", wantKind: domain.KindBadRequest},
		{name: "short password: error", username: "dora", password: "abc", wantKind: domain.KindBadRequest},
		{name: "long password: error", username: "dora", password: strings.Repeat("x", 80), wantKind: domain.KindBadRequest, wantMsg: "password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			session, err := suite.auth.Register(suite.ctx(), tt.username, tt.password)
			if tt.wantKind != "" {
				suite.Equal(tt.wantKind, suite.kindOf(err))
				if tt.wantMsg != "" {
					suite.Equal(tt.wantMsg, domain.PublicMessage(err))
				}
				return
			}
			suite.Require().NoError(err)
			suite.Equal("carla", session.User.Username)
			suite.Equal(domain.RoleUser, session.User.Role)
			suite.NotEmpty(session.Token)
		})
	}

	longest := strings.Repeat("x", service.MaxPasswordBytes)
	_, err := suite.auth.Register(suite.ctx(), "erik", longest)
	suite.Require().NoError(err)

	_, err = suite.auth.Login(suite.ctx(), "erik", longest)
	suite.Require().NoError(err)
}

func (suite *serviceSuite) TestLogin() {
	tokens, err := auth.NewTokens("test-secret", time.Hour)
	suite.Require().NoError(err)

	session, err := suite.auth.Login(suite.ctx(), "ana", "secret")
	suite.Require().NoError(err)
	suite.Equal(suite.ana.ID, session.User.ID)

	id, err := tokens.Parse(session.Token)
	suite.Require().NoError(err)
	suite.Equal(suite.ana, id)

	_, err = suite.auth.Login(suite.ctx(), "ana", "wrong")
	suite.Equal(domain.KindUnauthenticated, suite.kindOf(err))

	_, err = suite.auth.Login(suite.ctx(), "nobody", "secret")
	suite.Equal(domain.KindUnauthenticated, suite.kindOf(err))
	suite.Equal("invalid credentials", domain.PublicMessage(err))

	_, err = suite.auth.Login(suite.ctx(), "", "")
	suite.Equal(domain.KindBadRequest, suite.kindOf(err))
}

func (suite *serviceSuite) TestEnsureAdmin() {
	again, err := suite.auth.EnsureAdmin(suite.ctx(), "admin", "admin123")
	suite.Require().NoError(err)
	suite.Equal(suite.admin.ID, again.ID)

	promoted, err := suite.auth.EnsureAdmin(suite.ctx(), "bob", "ignored")
	suite.Require().NoError(err)
	suite.Equal(suite.bob.ID, promoted.ID)
	suite.Equal(domain.RoleAdmin, promoted.Role)

	// the existing password is kept
	_, err = suite.auth.Login(suite.ctx(), "bob", "secret")
	suite.Require().NoError(err)

	_, err = suite.auth.EnsureAdmin(suite.ctx(), "", "")
	suite.Error(err)
}
