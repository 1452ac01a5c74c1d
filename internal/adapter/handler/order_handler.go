package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/domain"
)

type statusRequest struct {
	Status string `json:"status"`
}

// ListOrders ignores filter values it cannot parse.
func (h *Handler) ListOrders(c *gin.Context) {
	var filter domain.OrderFilter

	if s := c.Query("status"); s != "" {
		if status, err := domain.ParseOrderStatus(s); err == nil {
			filter.Status = &status
		}
	}
	if s := c.Query("userId"); s != "" {
		if userID, err := uuid.Parse(s); err == nil {
			filter.UserID = &userID
		}
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), identity(c), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromOrders(orders))
}

func (h *Handler) GetOrder(c *gin.Context) {
	caller, err := domain.RequireAuthenticated(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	id, err := pathID(c, "id", "order")
	if err != nil {
		h.fail(c, err)
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), &caller, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromOrder(order))
}

func (h *Handler) CreateOrder(c *gin.Context) {
	order, err := h.orders.Checkout(c.Request.Context(), identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, presenter.FromOrder(order))
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	caller, err := domain.RequireAdmin(identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	id, err := pathID(c, "id", "order")
	if err != nil {
		h.fail(c, err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), &caller, id, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromOrder(order))
}
