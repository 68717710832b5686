package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	httpHandler "github.com/workhoops/workhoops-api/internal/adapter/handler/http"
	"github.com/workhoops/workhoops-api/internal/adapter/publisher"
	"github.com/workhoops/workhoops-api/internal/adapter/repository"
	"github.com/workhoops/workhoops-api/internal/config"
	domainrepo "github.com/workhoops/workhoops-api/internal/domain/repository"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database"
	httpServer "github.com/workhoops/workhoops-api/internal/infrastructure/http"
	"github.com/workhoops/workhoops-api/internal/usecase"
	"github.com/workhoops/workhoops-api/pkg/messaging"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := cfg.Logger
	defer log.Sync()
	log.Info("Starting WorkHoops API",
		zap.String("version", cfg.Service.Version),
		zap.String("environment", cfg.Service.Environment))

	ctx := context.Background()

	// 2. MongoDB
	mongoClient, err := database.NewConnection(ctx, cfg.MongoDB, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.MongoDB.Database)
	database.EnsureIndexes(ctx, db, log)

	repos := repository.InitRepositories(db)

	// 3. Event bus
	var (
		eventPublisher domainrepo.EventPublisher = publisher.NewNoopPublisher()
		redisClient    messaging.RedisClient
	)
	if cfg.Events.Enabled {
		redisClient, err = messaging.NewRedisClient(ctx, messaging.RedisOptions{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		metrics := publisher.NewMetrics(prometheus.DefaultRegisterer)
		eventPublisher = publisher.NewRedisPublisher(redisClient, cfg.Events.Channel, metrics, log)
		log.Info("Event publishing enabled", zap.String("channel", cfg.Events.Channel))
	}

	// 4. Use cases and handlers
	useCases := usecase.NewUseCases(repos, eventPublisher, log)
	handlers := httpHandler.NewHandlers(useCases, httpHandler.ServiceInfo{
		Name:    cfg.Service.Name,
		Version: cfg.Service.Version,
	})

	// 5. HTTP server
	srv := httpServer.NewServer(
		httpServer.WithAddress(cfg.Server.Address()),
		httpServer.WithLogger(log),
		httpServer.WithServiceName(cfg.Service.Name),
		httpServer.WithCORSOrigins(cfg.Server.CORSOrigins),
		httpServer.WithValidator(httpHandler.NewValidator()),
	)
	srv.RegisterRoutes(handlers.RegisterRoutes(cfg.Server.BasePath))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// 6. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis client", zap.Error(err))
		}
	}
	if err := database.Close(shutdownCtx, mongoClient, log); err != nil {
		log.Error("Failed to close MongoDB", zap.Error(err))
	}

	log.Info("Shutdown complete")
}
