package run

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/montecarlo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	runKeyPrefix = "run:"
	runIndexKey  = "runs" // Sorted set of run IDs scored by creation time
)

// Config holds configuration for the Redis run repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed run repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// SaveRun persists a run to Redis
func (r *redisRepository) SaveRun(ctx context.Context, input *SaveRunInput) error {
	if input == nil || input.Run == nil {
		return errors.New("input and run cannot be nil")
	}

	if input.Run.ID == "" {
		return errors.New("run ID cannot be empty")
	}

	runJSON, err := json.Marshal(input.Run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, runKeyPrefix+input.Run.ID, runJSON, 0)
	pipe.ZAdd(ctx, runIndexKey, redis.Z{
		Score:  float64(input.Run.CreatedAt.UnixNano()),
		Member: input.Run.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// GetRun retrieves a run by ID from Redis
func (r *redisRepository) GetRun(ctx context.Context, input *GetRunInput) (*models.Run, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.New("input and run ID cannot be empty")
	}

	runJSON, err := r.client.Get(ctx, runKeyPrefix+input.RunID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var run models.Run
	if err := json.Unmarshal([]byte(runJSON), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}

	return &run, nil
}

// ListRuns retrieves runs from Redis, newest first
func (r *redisRepository) ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	runIDs, err := r.client.ZRevRange(ctx, runIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list run IDs: %w", err)
	}

	if len(runIDs) == 0 {
		return &ListRunsOutput{
			Runs: []*models.Run{},
		}, nil
	}

	// Fetch all runs in one round trip
	pipe := r.client.Pipeline()
	runCommands := make([]*redis.StringCmd, len(runIDs))
	for i, runID := range runIDs {
		runCommands[i] = pipe.Get(ctx, runKeyPrefix+runID)
	}

	// redis.Nil from a missing key is reported per command, not here
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get runs: %w", err)
	}

	runs := make([]*models.Run, 0, len(runIDs))
	for i, cmd := range runCommands {
		runJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Run was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get run %s: %w", runIDs[i], err)
		}

		var run models.Run
		if err := json.Unmarshal([]byte(runJSON), &run); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run %s: %w", runIDs[i], err)
		}

		runs = append(runs, &run)
	}

	return &ListRunsOutput{
		Runs: runs,
	}, nil
}

// DeleteRun removes a run from Redis
func (r *redisRepository) DeleteRun(ctx context.Context, input *DeleteRunInput) error {
	if input == nil || input.RunID == "" {
		return errors.New("input and run ID cannot be empty")
	}

	runKey := runKeyPrefix + input.RunID
	exists, err := r.client.Exists(ctx, runKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check run: %w", err)
	}
	if exists == 0 {
		return ErrRunNotFound
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, runKey)
	pipe.ZRem(ctx, runIndexKey, input.RunID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	return nil
}
