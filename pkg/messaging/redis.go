package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient publishes JSON messages on Redis pub/sub channels.
type RedisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// RedisOptions configures NewRedisClient.
type RedisOptions struct {
	Address     string
	Password    string
	DB          int
	DialTimeout time.Duration
}

type redisClient struct {
	client *redis.Client
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, opts RedisOptions) (RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Address,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &redisClient{client: client}, nil
}

// Publish serializes message as JSON and publishes it on channel.
func (r *redisClient) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	return r.client.Publish(ctx, channel, payload).Err()
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
