package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	chatapp "github.com/phetoho/backend/internal/application/chat"
	inventoryapp "github.com/phetoho/backend/internal/application/inventory"
	orderapp "github.com/phetoho/backend/internal/application/order"
	reportapp "github.com/phetoho/backend/internal/application/report"
	"github.com/phetoho/backend/internal/infrastructure/ai"
	"github.com/phetoho/backend/internal/infrastructure/config"
	"github.com/phetoho/backend/internal/infrastructure/logger"
	"github.com/phetoho/backend/internal/infrastructure/persistence"
	"github.com/phetoho/backend/internal/interfaces/http/handler"
	"github.com/phetoho/backend/internal/interfaces/http/middleware"
	"github.com/phetoho/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Phetoho backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if err := persistence.Migrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	chatLogRepo := persistence.NewGormChatLogRepository(db.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)

	// Assistant client serves both chat replies and report insights
	assistant, err := ai.NewOpenAIClient(&ai.Config{
		BaseURL: cfg.OpenAI.BaseURL,
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})
	if err != nil {
		log.Fatal("Failed to initialize assistant client", zap.Error(err))
	}

	// Application services
	inventoryService := inventoryapp.NewInventoryService(productRepo)
	orderService := orderapp.NewOrderService(orderRepo)
	chatService := chatapp.NewChatService(assistant, chatLogRepo, orderRepo, log)
	reportService := reportapp.NewReportService(analyticsRepo, assistant, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSFromHTTPConfig(cfg.HTTP)))

	systemHandler := handler.NewSystemHandler(db)

	r := router.NewRouter(engine)
	r.Health(systemHandler.Health).
		Register(handler.NewCatalogHandler(inventoryService)).
		Register(handler.NewInventoryHandler(inventoryService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewChatHandler(chatService)).
		Register(handler.NewReportHandler(reportService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
