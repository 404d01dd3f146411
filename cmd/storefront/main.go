// @title Snackshop Storefront API
// @version 1.0
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/snackshop/internal/admin"
	"github.com/MikeMC777/snackshop/internal/auth"
	"github.com/MikeMC777/snackshop/internal/backend"
	"github.com/MikeMC777/snackshop/internal/cart"
	"github.com/MikeMC777/snackshop/internal/catalog"
	"github.com/MikeMC777/snackshop/internal/config"
	_ "github.com/MikeMC777/snackshop/internal/docs"
	"github.com/MikeMC777/snackshop/internal/events"
	"github.com/MikeMC777/snackshop/internal/httpx"
	"github.com/MikeMC777/snackshop/internal/recent"
	"github.com/MikeMC777/snackshop/internal/session"
)

// app is everything the routes need.
type app struct {
	cfg      config.Config
	src      catalog.Source
	reviews  []catalog.Review
	registry *catalog.Registry
	carts    *cart.Service
	recent   *recent.List
	authc    *auth.Client
	sessions *auth.Sessions
	admin    *admin.Service
}

func newRouter(a *app) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1", httpx.Session(a.cfg.SessionTTL, a.cfg.CookieSecure))
	{
		v1.GET("/categories", listCategoriesHandler(a.src))
		v1.GET("/catalog", catalogStateHandler(a.registry))
		v1.POST("/catalog/category", selectCategoryHandler(a.registry))
		v1.GET("/catalog/page/:page", goToPageHandler(a.registry))
		v1.POST("/catalog/refresh", refreshCatalogHandler(a.registry))
		v1.POST("/catalog/next", nextHandler(a.registry))
		v1.POST("/catalog/prev", prevHandler(a.registry))
		v1.POST("/catalog/feature/:idx", featureHandler(a.registry))
		v1.POST("/catalog/more", loadMoreHandler(a.registry))
		v1.GET("/catalog/featured", featuredHandler(a.registry, a.recent))
		v1.GET("/search", searchHandler(a.src))
		v1.GET("/reviews", reviewsHandler(a.reviews))
		v1.GET("/recent", recentHandler(a.recent))

		v1.GET("/cart", getCartHandler(a.carts))
		v1.POST("/cart/items", addCartItemHandler(a.carts))
		v1.DELETE("/cart/items/:id", removeCartItemHandler(a.carts))
		v1.DELETE("/cart", clearCartHandler(a.carts))

		v1.POST("/auth/login", loginHandler(a.authc, a.sessions))
		v1.POST("/auth/register", registerHandler(a.authc, a.sessions))
		v1.POST("/auth/logout", logoutHandler(a.sessions))
		v1.GET("/auth/me", httpx.RequireAuth(a.sessions), meHandler())

		adm := v1.Group("/admin", httpx.RequireAdmin(a.sessions))
		adm.GET("/products", listAdminProductsHandler(a.admin))
		adm.POST("/products", createProductHandler(a.admin))
		adm.PUT("/products/:id", updateProductHandler(a.admin))
		adm.DELETE("/products/:id", deleteProductHandler(a.admin))
		adm.POST("/categories", createCategoryHandler(a.admin))

		v1.GET("/showcase/variants", variantsHandler())
		v1.GET("/showcase/ring", ringHandler(a.registry))
	}
	return r
}

func openSessionStore(ctx context.Context, cfg config.Config) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case "memory", "":
		st := session.NewMemoryStore()
		go purgeSessions(ctx, st, cfg.SessionTTL)
		return st, func() {}, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		log.Printf("[session] redis at %s", cfg.RedisAddr)
		return session.NewRedisStore(rdb, cfg.SessionTTL), func() { _ = rdb.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres ping: %w", err)
		}
		st := session.NewPGStore(pool)
		if err := st.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		go purgeSessions(ctx, st, cfg.SessionTTL)
		log.Printf("[session] postgres ready")
		return st, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
}

type purger interface {
	Purge(ctx context.Context, ttl time.Duration) (int64, error)
}

// purgeSessions drops sessions idle past ttl once an hour.
func purgeSessions(ctx context.Context, st purger, ttl time.Duration) {
	tick := time.NewTicker(time.Hour)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			n, err := st.Purge(ctx, ttl)
			if err != nil {
				log.Printf("[session] purge: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[session] purged %d", n)
			}
		}
	}
}

func openBus(cfg config.Config) (events.Bus, func()) {
	if cfg.AMQPURL == "" {
		log.Printf("[events] in-process bus")
		return events.NewLocalBus(), func() {}
	}
	b, err := events.DialAMQP(cfg.AMQPURL)
	if err != nil {
		log.Printf("[events] amqp unavailable, falling back to in-process bus: %v", err)
		return events.NewLocalBus(), func() {}
	}
	log.Printf("[events] amqp exchange %s", events.DefaultExchange)
	return b, func() { _ = b.Close() }
}

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := backend.New(cfg.APIBase, cfg.RequestTimeout)
	static, err := catalog.LoadStatic("")
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	var src catalog.Source = catalog.NewAPIClient(api)
	if cfg.CatalogSource == "static" {
		src = static
	}

	store, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer closeStore()

	bus, closeBus := openBus(cfg)
	defer closeBus()

	registry := catalog.NewRegistry(src, cfg.PageSize)
	go registry.Watch(ctx, bus, cfg.SessionTTL)

	sessions := auth.NewSessions(store, auth.NewTokenParser(cfg.JWTSecret))
	a := &app{
		cfg:      cfg,
		src:      src,
		reviews:  static.Reviews(),
		registry: registry,
		carts:    cart.NewService(store),
		recent:   recent.NewList(store, cfg.RecentLimit),
		authc:    auth.NewClient(api),
		sessions: sessions,
		admin:    admin.NewService(api, src, bus),
	}

	// gRPC health
	lis, err := net.Listen("tcp", cfg.HealthGRPCAddr)
	if err != nil {
		log.Fatalf("health listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	go func() {
		log.Printf("health gRPC listening on %s", cfg.HealthGRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("health gRPC stopped: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		log.Printf("storefront listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down storefront...")
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	grpcServer.GracefulStop()
	log.Println("storefront stopped")
}
