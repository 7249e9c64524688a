package channelcfg

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const allowedChannelKey = "config:allowed_channel"

// ErrNotConfigured is returned when no allowed channel has been set
var ErrNotConfigured = errors.New("no allowed channel configured")

// Config holds configuration for the Redis channel config repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed channel config repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Set persists the allowed channel ID
func (r *redisRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if err := r.client.Set(ctx, allowedChannelKey, input.ChannelID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save allowed channel: %w", err)
	}

	return nil
}

// Get retrieves the allowed channel ID
func (r *redisRepository) Get(ctx context.Context) (string, error) {
	channelID, err := r.client.Get(ctx, allowedChannelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotConfigured
		}
		return "", fmt.Errorf("failed to get allowed channel: %w", err)
	}

	return channelID, nil
}
