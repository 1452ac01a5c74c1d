package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/service"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string         `json:"token"`
	User  presenter.User `json:"user"`
}

func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	session, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSession(session))
}

func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toSession(session))
}

func toSession(s service.Session) sessionResponse {
	return sessionResponse{Token: s.Token, User: presenter.FromUser(s.User)}
}
