package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/amit-00/shop-kit/internal/cart"
	"github.com/amit-00/shop-kit/internal/catalog"
	"github.com/amit-00/shop-kit/internal/handler"
	mid "github.com/amit-00/shop-kit/internal/middleware"
	"github.com/amit-00/shop-kit/pkg/config"
	"github.com/amit-00/shop-kit/pkg/database"
	"github.com/amit-00/shop-kit/pkg/logger"
	"github.com/amit-00/shop-kit/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("storefront")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront", appConfig.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Catalog provider: database-backed when configured, otherwise the
	// built-in seed catalogs.
	var catalogs catalog.Provider
	if appConfig.DB.Enabled {
		db, err := database.Connect(appConfig)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		catalogs, err = catalog.LoadFromDB(db, log)
		if err != nil {
			log.Fatal("Failed to load catalogs", zap.Error(err))
		}
	} else {
		catalogs = catalog.NewStaticProvider(catalog.SeedCatalogs())
		log.Info("Using built-in seed catalogs")
	}

	// Cart persistence: Redis when configured, in-memory otherwise.
	var storage cart.Storage
	if appConfig.Redis.Enabled {
		redisStorage, err := cart.NewRedisStorage(
			appConfig.Redis.Addr, appConfig.Redis.Password, appConfig.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisStorage.Close()
		storage = redisStorage
		log.Info("Cart persistence using redis", zap.String("addr", appConfig.Redis.Addr))
	} else {
		storage = cart.NewMemoryStorage()
		log.Warn("Cart persistence using in-process memory, carts do not survive restarts")
	}
	carts := cart.NewManager(storage, log)

	// Handlers
	storefront := handler.NewStorefront(catalogs)
	cartHandler := handler.NewCartHandler(carts, appConfig.Tenant.Default)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(mid.MetricsMiddleware)
	e.Use(mid.TenantMiddleware(appConfig.Tenant.Default))

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Catalog and search API routes
	e.GET("/api/catalogs", storefront.ListCatalogs)
	e.GET("/api/products", storefront.ListProducts)
	e.GET("/api/products/:id", storefront.GetProduct)

	// Cart API routes, scoped to the resolved tenant
	e.GET("/api/cart", cartHandler.GetCart)
	e.POST("/api/cart/items", cartHandler.AddItem)
	e.PUT("/api/cart/items/:id", cartHandler.UpdateItem)
	e.DELETE("/api/cart/items/:id", cartHandler.RemoveItem)
	e.DELETE("/api/cart", cartHandler.ClearCart)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
