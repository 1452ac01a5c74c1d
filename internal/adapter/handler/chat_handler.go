package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/auth"
	"github.com/nikolayk812/shopfront/internal/domain"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) ChatHistory(c *gin.Context) {
	messages, err := h.chat.History(c.Request.Context(), identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromMessages(messages))
}

// ChatSocket upgrades to a websocket. Browsers cannot set headers on the
// handshake, so the token may also come as ?token=.
func (h *Handler) ChatSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = auth.BearerToken(c.GetHeader("Authorization"))
	}
	if token == "" {
		h.fail(c, domain.Unauthenticated("authentication required"))
		return
	}

	caller, err := h.tokens.Parse(token)
	if err != nil {
		h.fail(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Serve(c.Request.Context(), conn, caller, h.postMessage)
}

func (h *Handler) postMessage(ctx context.Context, caller domain.Identity, text string) error {
	_, err := h.chat.PostMessage(ctx, &caller, text)
	return err
}
