package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-admin/internal/cache"
	"go-catalog-admin/internal/config"
	"go-catalog-admin/internal/handler"
	"go-catalog-admin/internal/logger"
	"go-catalog-admin/internal/metrics"
	"go-catalog-admin/internal/middleware"
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/service"
	"go-catalog-admin/internal/ws"
	"go-catalog-admin/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	// 1. Config and logging
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	// 2. Database
	db, err := database.ConnectDB(database.Options{
		DSN:             cfg.DSN(),
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		Log:             zlog,
	})
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			zlog.Fatal("auto migrate failed", zap.Error(err))
		}
	}

	// 3. WebSocket hub, metrics, cache
	wsHub := ws.NewHub(zlog)
	go wsHub.Run()

	m := metrics.New()
	attrCache := cache.NewAttributeCache(cfg.Redis, zlog)
	deps := service.Deps{Log: zlog, Hub: wsHub, Metrics: m}

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	attributeRepo := repository.NewAttributeRepo(db)
	featureRepo := repository.NewFeatureRepo(db)
	combinationRepo := repository.NewCombinationRepo(db)
	weightRepo := repository.NewFeatureWeightRepo(db)
	categoryRepo := repository.NewCRUDRepo[model.Category](db, "position ASC, name ASC")
	brandRepo := repository.NewCRUDRepo[model.Brand](db, "name ASC")
	supplierRepo := repository.NewCRUDRepo[model.Supplier](db, "name ASC")

	productService := service.NewProductService(productRepo, categoryRepo, brandRepo, supplierRepo, deps)
	attributeService := service.NewAttributeService(attributeRepo, attrCache, deps)
	featureService := service.NewFeatureService(featureRepo, deps)
	combinationService := service.NewCombinationService(productRepo, attributeRepo, combinationRepo, cfg.MaxCombinations, deps)
	weightService := service.NewFeatureWeightService(weightRepo, featureRepo, categoryRepo, deps)

	handlers := &handler.Handlers{
		Products:       handler.NewProductHandler(productService, zlog),
		Combinations:   handler.NewCombinationHandler(combinationService, zlog),
		Attributes:     handler.NewGroupHandler[model.AttributeGroup, model.AttributeValue](attributeService, "Attribute group", zlog),
		Features:       handler.NewGroupHandler[model.FeatureGroup, model.FeatureValue](featureService, "Feature group", zlog),
		FeatureWeights: handler.NewFeatureWeightHandler(weightService, zlog),
		Dashboard:      handler.NewDashboardHandler(service.NewDashboardService(repository.NewDashboardRepo(db)), zlog),
		Resources:      buildResources(db, productRepo, deps, zlog),
	}
	healthHandler := handler.NewHealthHandler(db, wsHub)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.ActorHeader,
	}))

	// 6. Routes
	app.Get("/healthz", healthHandler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	api := app.Group("/api/v1", middleware.Actor())
	handlers.Register(api)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Panic("listen failed", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.Port), zap.Bool("redis_cache", cfg.Redis.Enabled()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zlog.Info("server exited")
}
