package snapshot

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/digestbot/steamdigest/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Key prefix for Redis
const snapshotKeyPrefix = "snapshot:"

// RedisConfig holds configuration for the Redis snapshot repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Logger for degraded-load warnings
	Logger zerolog.Logger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
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
		logger: cfg.Logger,
	}, nil
}

// Load retrieves a snapshot from Redis. A missing key is the normal
// first-run state and yields an empty snapshot; so does a corrupt value,
// which is logged rather than surfaced.
func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	key := snapshotKeyPrefix + input.Key
	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			r.logger.Info().Str("key", input.Key).
				Msg("No previous snapshot found (this is normal for a first run)")
			return &LoadOutput{Snapshot: models.Snapshot{}}, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		r.logger.Warn().Err(err).Str("key", input.Key).
			Msg("Could not parse stored snapshot, starting from an empty baseline")
		return &LoadOutput{Snapshot: models.Snapshot{}}, nil
	}

	if snap == nil {
		snap = models.Snapshot{}
	}

	return &LoadOutput{Snapshot: snap}, nil
}

// Save persists a snapshot to Redis
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if input.Snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	payload, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := snapshotKeyPrefix + input.Key
	if err := r.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}
