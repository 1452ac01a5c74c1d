package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/shopfront/internal/chat"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/service"
	"go.uber.org/zap"
)

type TokenParser interface {
	Parse(token string) (domain.Identity, error)
}

type Deps struct {
	Auth     *service.AuthService
	Products *service.ProductService
	Carts    *service.CartService
	Orders   *service.OrderService
	Users    *service.UserService
	Chat     *service.ChatService

	Tokens TokenParser
	Hub    *chat.Hub
	Ping   func(ctx context.Context) error

	// GraphQL is mounted on POST /graphql when set.
	GraphQL gin.HandlerFunc

	CORSOrigins []string
	StaticDir   string
	Logger      *zap.Logger
}

type Handler struct {
	auth     *service.AuthService
	products *service.ProductService
	carts    *service.CartService
	orders   *service.OrderService
	users    *service.UserService
	chat     *service.ChatService

	tokens TokenParser
	hub    *chat.Hub
	ping   func(ctx context.Context) error
	logger *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	h := &Handler{
		auth:     d.Auth,
		products: d.Products,
		carts:    d.Carts,
		orders:   d.Orders,
		users:    d.Users,
		chat:     d.Chat,
		tokens:   d.Tokens,
		hub:      d.Hub,
		ping:     d.Ping,
		logger:   d.Logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(Logger(d.Logger))
	router.Use(cors.New(corsConfig(d.CORSOrigins)))

	router.GET("/health", h.Health)
	router.GET("/ws", h.ChatSocket)

	if d.GraphQL != nil {
		router.POST("/graphql", OptionalIdentity(d.Tokens), d.GraphQL)
	}

	api := router.Group("/api", Authenticate(d.Tokens, d.Logger))
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/productos", h.ListProducts)
		api.GET("/productos/:id", h.GetProduct)
		api.POST("/productos", h.CreateProduct)
		api.PUT("/productos/:id", h.UpdateProduct)
		api.DELETE("/productos/:id", h.DeleteProduct)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/add", h.AddToCart)
		api.PUT("/cart/update", h.UpdateCartItem)
		api.DELETE("/cart/remove/:productId", h.RemoveFromCart)
		api.DELETE("/cart/clear", h.ClearCart)

		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders", h.CreateOrder)
		api.PUT("/orders/:id/status", h.UpdateOrderStatus)

		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id/role", h.UpdateUserRole)
		api.DELETE("/users/:id", h.DeleteUser)

		api.GET("/chat", h.ChatHistory)
	}

	if d.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(d.StaticDir))))
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.MaxAge = 12 * time.Hour

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

func (h *Handler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			h.logger.Warn("store ping failed", zap.Error(err))
			status["status"] = "unhealthy"
			status["store"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["store"] = "ok"
	}

	c.JSON(http.StatusOK, status)
}
