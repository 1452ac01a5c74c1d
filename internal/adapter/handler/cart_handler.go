package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/domain"
)

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.carts.GetCart(c.Request.Context(), identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromCart(cart))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}

	id, err := requiredProductID(identity(c), req.ProductID)
	if err != nil {
		h.fail(c, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.carts.AddItem(c.Request.Context(), identity(c), id, quantity)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromCart(cart))
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return
	}
	id, err := requiredProductID(identity(c), req.ProductID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if req.Quantity == nil {
		h.fail(c, domain.BadRequest("quantity is required"))
		return
	}

	cart, err := h.carts.SetItemQuantity(c.Request.Context(), identity(c), id, *req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromCart(cart))
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	cart, err := h.carts.RemoveItem(c.Request.Context(), identity(c), productID(c.Param("productId")))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromCart(cart))
}

func (h *Handler) ClearCart(c *gin.Context) {
	cart, err := h.carts.Clear(c.Request.Context(), identity(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromCart(cart))
}

// requiredProductID rejects a missing productId once the caller is known.
func requiredProductID(caller *domain.Identity, raw string) (uuid.UUID, error) {
	if _, err := domain.RequireAuthenticated(caller); err != nil {
		return uuid.Nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, domain.BadRequest("productId is required")
	}

	return productID(raw), nil
}

// productID maps a malformed id to uuid.Nil, which never matches a product.
func productID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}
