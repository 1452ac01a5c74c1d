package service_test

import (
	"github.com/nikolayk812/shopfront/internal/domain"
)

func (suite *serviceSuite) TestPostMessage() {
	msg, err := suite.chat.PostMessage(suite.ctx(), &suite.ana, "  hola  ")
	suite.Require().NoError(err)
	suite.Equal("hola", msg.Text)
	suite.Equal("ana", msg.Username)
	suite.Equal(suite.ana.ID, msg.UserID)

	sent := suite.broadcaster.sent()
	suite.Require().Len(sent, 1)
	suite.Equal(msg.ID, sent[0].ID)

	_, err = suite.chat.PostMessage(suite.ctx(), &suite.ana, "   ")
	suite.Equal(domain.KindBadRequest, suite.kindOf(err))

	_, err = suite.chat.PostMessage(suite.ctx(), nil, "hi")
	suite.Equal(domain.KindUnauthenticated, suite.kindOf(err))

	suite.Len(suite.broadcaster.sent(), 1)
}

// A broadcast failure does not lose the stored message.
func (suite *serviceSuite) TestPostMessage_BroadcastFails() {
	suite.broadcaster.err = errBroadcastDown

	msg, err := suite.chat.PostMessage(suite.ctx(), &suite.bob, "still saved")
	suite.Require().NoError(err)

	history, err := suite.chat.History(suite.ctx(), &suite.bob)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(msg.ID, history[0].ID)
}

func (suite *serviceSuite) TestHistory() {
	for _, text := range []string{"one", "two", "three", "four"} {
		_, err := suite.chat.PostMessage(suite.ctx(), &suite.ana, text)
		suite.Require().NoError(err)
	}

	history, err := suite.chat.History(suite.ctx(), &suite.bob)
	suite.Require().NoError(err)

	texts := make([]string, 0, len(history))
	for _, msg := range history {
		texts = append(texts, msg.Text)
	}
	suite.Equal([]string{"two", "three", "four"}, texts)

	_, err = suite.chat.History(suite.ctx(), nil)
	suite.Equal(domain.KindUnauthenticated, suite.kindOf(err))
}
