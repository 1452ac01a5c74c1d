package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/adapter/gql"
	"github.com/nikolayk812/shopfront/internal/adapter/handler"
	"github.com/nikolayk812/shopfront/internal/auth"
	"github.com/nikolayk812/shopfront/internal/chat"
	"github.com/nikolayk812/shopfront/internal/config"
	"github.com/nikolayk812/shopfront/internal/logger"
	"github.com/nikolayk812/shopfront/internal/migrations"
	"github.com/nikolayk812/shopfront/internal/port"
	"github.com/nikolayk812/shopfront/internal/repository"
	"github.com/nikolayk812/shopfront/internal/repository/memory"
	"github.com/nikolayk812/shopfront/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type stores struct {
	products port.ProductRepository
	carts    port.CartRepository
	orders   port.OrderRepository
	users    port.UserRepository
	messages port.MessageRepository

	ping  func(ctx context.Context) error
	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("openStores: %w", err)
	}
	defer st.close()

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("auth.NewTokens: %w", err)
	}

	hub := chat.NewHub(lg)
	defer hub.Close()

	var (
		broadcaster port.Broadcaster = hub
		wg          sync.WaitGroup
	)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = rdb.Close() }()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("rdb.Ping: %w", err)
		}

		relay := chat.NewRedisBroadcaster(rdb, cfg.ChatChannel, hub, lg)
		broadcaster = relay

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := relay.Run(ctx); err != nil {
				lg.Error("chat relay stopped", zap.Error(err))
			}
		}()
	}

	cur := cfg.Currency()

	authService := service.NewAuthService(st.users, tokens, auth.NewPasswords(cfg.BcryptCost), lg)
	products := service.NewProductService(st.products, cur, lg)
	carts := service.NewCartService(st.carts, st.products, cur, lg)
	orders := service.NewOrderService(st.orders, lg)
	users := service.NewUserService(st.users, st.carts, lg)
	chatService := service.NewChatService(st.messages, broadcaster, cfg.ChatHistoryLimit, lg)

	if cfg.AdminUsername != "" {
		if _, err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return fmt.Errorf("authService.EnsureAdmin: %w", err)
		}
	}

	schema, err := gql.NewSchema(gql.Services{
		Products: products,
		Carts:    carts,
		Orders:   orders,
		Users:    users,
	}, lg)
	if err != nil {
		return fmt.Errorf("gql.NewSchema: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)

	router := handler.NewRouter(handler.Deps{
		Auth:        authService,
		Products:    products,
		Carts:       carts,
		Orders:      orders,
		Users:       users,
		Chat:        chatService,
		Tokens:      tokens,
		Hub:         hub,
		Ping:        st.ping,
		GraphQL:     gql.Handler(schema),
		CORSOrigins: cfg.CORSOrigins,
		StaticDir:   cfg.StaticDir,
		Logger:      lg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("http server listening",
			zap.String("port", cfg.Port),
			zap.String("store", cfg.StoreDriver),
			zap.Bool("redis", cfg.RedisAddr != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
	}

	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("http server shutdown failed", zap.Error(err))
	}

	hub.Close()
	stop()
	wg.Wait()

	lg.Info("server stopped")

	return nil
}

func openStores(ctx context.Context, cfg *config.Config, lg *zap.Logger) (stores, error) {
	if cfg.StoreDriver == config.DriverMemory {
		store := memory.NewStore()
		lg.Warn("using in-memory store, data is lost on restart")

		return stores{
			products: store.Products(),
			carts:    store.Carts(),
			orders:   store.Orders(),
			users:    store.Users(),
			messages: store.Messages(),
			close:    func() {},
		}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return stores{}, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return stores{}, fmt.Errorf("pool.Ping: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := migrations.Apply(ctx, pool, lg); err != nil {
			pool.Close()
			return stores{}, fmt.Errorf("migrations.Apply: %w", err)
		}
	}

	return stores{
		products: repository.NewProduct(pool),
		carts:    repository.NewCart(pool),
		orders:   repository.NewOrder(pool),
		users:    repository.NewUser(pool),
		messages: repository.NewMessage(pool),
		ping:     pool.Ping,
		close:    pool.Close,
	}, nil
}

