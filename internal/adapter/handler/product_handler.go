package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/shopfront/internal/adapter/presenter"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Imagen      *string          `json:"imagen"`
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromProducts(products))
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := pathID(c, "id", "product")
	if err != nil {
		h.fail(c, err)
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromProduct(product))
}

func (h *Handler) CreateProduct(c *gin.Context) {
	in, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), identity(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, presenter.FromProduct(product))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := pathID(c, "id", "product")
	if err != nil {
		h.fail(c, err)
		return
	}

	in, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), identity(c), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.FromProduct(product))
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := pathID(c, "id", "product")
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), identity(c), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "product deleted"})
}

func (h *Handler) bindProduct(c *gin.Context) (domain.ProductInput, bool) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badBody(c, err)
		return domain.ProductInput{}, false
	}
	if req.Price == nil {
		h.fail(c, domain.BadRequest("price is required"))
		return domain.ProductInput{}, false
	}

	return domain.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       domain.NewMoney(*req.Price, h.products.Currency()),
		Image:       req.Imagen,
	}, true
}
