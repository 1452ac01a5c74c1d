package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/domain"
)

type roleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context(), identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromUsers(users))
}

func (h *Handler) GetUser(c *gin.Context) {
	caller, err := domain.RequireAdmin(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	id, err := pathID(c, "id", "user")
	if err != nil {
		h.fail(c, err)
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), &caller, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromUser(user))
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	caller, err := domain.RequireAdmin(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	id, err := pathID(c, "id", "user")
	if err != nil {
		h.fail(c, err)
		return
	}

	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	user, err := h.users.UpdateRole(c.Request.Context(), &caller, id, req.Role)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromUser(user))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	caller, err := domain.RequireAdmin(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	id, err := pathID(c, "id", "user")
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), &caller, id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "user deleted"})
}
