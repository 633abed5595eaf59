package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/kumpul/internal/pkg/config"
	"github.com/prasetya/kumpul/internal/pkg/database"
	"github.com/prasetya/kumpul/internal/pkg/health"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/middleware"
	nsqpkg "github.com/prasetya/kumpul/internal/pkg/nsq"
	"github.com/prasetya/kumpul/internal/pkg/server"
	wspkg "github.com/prasetya/kumpul/internal/pkg/websocket"
	"github.com/prasetya/kumpul/services/location/gateway"
	"github.com/prasetya/kumpul/services/location/handler"
	httpHandler "github.com/prasetya/kumpul/services/location/handler/http"
	nsqHandler "github.com/prasetya/kumpul/services/location/handler/nsq"
	wsHandler "github.com/prasetya/kumpul/services/location/handler/websocket"
	"github.com/prasetya/kumpul/services/location/repository"
	"github.com/prasetya/kumpul/services/location/usecase"
)

func main() {
	appName := "location-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/location.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	shutdown := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.ProducerAddress)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	shutdown.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})

	// Initialize repository
	locationRepo := repository.NewLocationRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	locationGW := gateway.NewLocationGW(producer, configs.Services)

	// Initialize usecase
	locationUC := usecase.NewLocationUC(configs, locationRepo, locationGW)

	// Handlers for HTTP
	locationHandler := httpHandler.NewLocationHandler(locationUC)

	// Handlers for WebSocket
	manager := wspkg.NewManager(configs.JWT)
	channelHandler := wsHandler.NewWebSocketHandler(locationUC, manager)

	// Handlers for NSQ fan-out
	busHandler := nsqHandler.NewNSQHandler(locationUC, manager, configs.NSQ)

	h := handler.NewHandler(locationHandler, channelHandler, busHandler, configs)

	if err := h.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}
	shutdown.Register(func(ctx context.Context) error {
		h.StopConsumers()
		return nil
	})

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	limiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.Client,
		Key:         "rate:limit",
		Limit:       handler.DefaultUpdateLimit,
		Period:      handler.DefaultUpdatePeriod,
	})
	h.RegisterRoutes(e, limiter)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server terminated", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		logger.Error("Component shutdown finished with errors", logger.Err(err))
	}
}
