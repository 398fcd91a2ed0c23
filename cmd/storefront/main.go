package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rsalazarq/storefront/internal/api/handlers"
	"github.com/rsalazarq/storefront/internal/api/middleware"
	"github.com/rsalazarq/storefront/internal/cache"
	"github.com/rsalazarq/storefront/internal/config"
	"github.com/rsalazarq/storefront/internal/gateways"
	"github.com/rsalazarq/storefront/internal/health"
	"github.com/rsalazarq/storefront/internal/metrics"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/store"
	"github.com/rsalazarq/storefront/pkg/mercadopago"
	"github.com/rsalazarq/storefront/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Clients for the remote backends
	paymentClient := mercadopago.NewClient(cfg.Upstreams.PaymentsURL)
	emailClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	catalogGateway := gateways.NewCatalogGateway(cfg.Upstreams.ProductsURL, cfg.Upstreams.CombosURL)
	ordersGateway := gateways.NewOrdersGateway(cfg.Upstreams.OrdersURL)
	localesGateway := gateways.NewLocalesGateway(cfg.Upstreams.LocalesURL)
	favoritosGateway := gateways.NewFavoritosGateway(cfg.Upstreams.FavoritosURL)

	// Services and handlers
	cartStore := store.NewRedisCartStore(redisClient)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	cartService := service.NewCartService(cartStore)
	cartHandler := handlers.NewCartHandler(cartService)
	catalogService := service.NewCatalogService(catalogGateway, redisCache)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.Checkout.TenantID)
	notificationService := service.NewNotificationService(emailClient)
	checkoutService := service.NewCheckoutService(cartService, cartStore, paymentClient, notificationService, cfg.Checkout)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderService := service.NewOrderStatusService(ordersGateway)
	orderHandler := handlers.NewOrderHandler(orderService, cartStore, cfg.Checkout.TenantID)
	localesService := service.NewLocalesService(localesGateway, redisCache)
	localesHandler := handlers.NewLocalesHandler(localesService)
	favoritosService := service.NewFavoritosService(favoritosGateway)
	favoritosHandler := handlers.NewFavoritosHandler(favoritosService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{name}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/combos", catalogHandler.ListCombos())
	routerMux.HandleFunc("GET /api/v1/combos/{name}", catalogHandler.GetCombo())
	routerMux.HandleFunc("GET /api/v1/locales", localesHandler.List())
	routerMux.HandleFunc("GET /api/v1/locales/{id}", localesHandler.GetByID())
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.OptionalAuthenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.OptionalAuthenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", authMiddleware.OptionalAuthenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.OptionalAuthenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.OptionalAuthenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/cart/toggle", authMiddleware.OptionalAuthenticate(cartHandler.ToggleCart()))
	routerMux.HandleFunc("GET /api/v1/checkout/preview", authMiddleware.Authenticate(checkoutHandler.Preview()))
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(checkoutHandler.Submit()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/last", authMiddleware.OptionalAuthenticate(orderHandler.GetLastOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/favoritos", authMiddleware.Authenticate(favoritosHandler.List()))
	routerMux.HandleFunc("POST /api/v1/favoritos", authMiddleware.Authenticate(favoritosHandler.Add()))
	routerMux.HandleFunc("POST /api/v1/favoritos/toggle", authMiddleware.Authenticate(favoritosHandler.Toggle()))
	routerMux.HandleFunc("DELETE /api/v1/favoritos", authMiddleware.Authenticate(favoritosHandler.Remove()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed")
	}
}
