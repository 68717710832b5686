package database

import (
	"context"
	"fmt"

	"github.com/workhoops/workhoops-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewConnection connects to MongoDB and verifies the connection with a ping
// bounded by cfg.ConnectTimeout.
func NewConnection(ctx context.Context, cfg config.MongoDB, log *zap.Logger) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("MongoDB connection established", zap.String("database", cfg.Database))
	return client, nil
}

// Close disconnects the client.
func Close(ctx context.Context, client *mongo.Client, log *zap.Logger) error {
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close mongodb connection: %w", err)
	}

	log.Info("MongoDB connection closed")
	return nil
}
