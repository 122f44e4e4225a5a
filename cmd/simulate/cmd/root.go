package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/montecarlo/internal/common/clock"
	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/config"
	"github.com/KirkDiggler/montecarlo/internal/repositories/run"
	"github.com/KirkDiggler/montecarlo/internal/services/simulation"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	redisAddr string
	maxRolls  int
	maxDice   int
)

var rootCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Roll weighted dice many times and analyze the outcomes",
	Long: `simulate plays Monte Carlo experiments described in YAML files.

Runs are kept in memory unless --redis is given, in which case they are
stored alongside the Discord bot's runs and can be listed with history.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for stored runs (default: in memory)")
	rootCmd.PersistentFlags().IntVar(&maxRolls, "max-rolls", 1000000, "Largest number of rolls allowed per run")
	rootCmd.PersistentFlags().IntVar(&maxDice, "max-dice", 20, "Largest number of dice allowed per run")
}

// newService wires a simulation service to the configured repository.
// The returned func releases the repository's connection.
func newService(ctx context.Context) (simulation.Service, func(), error) {
	repo, closeRepo, err := newRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc, err := simulation.New(&simulation.Config{
		MaxRolls:      maxRolls,
		MaxDice:       maxDice,
		RunRepo:       repo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("failed to create simulation service: %w", err)
	}

	return svc, closeRepo, nil
}

func newRepository(ctx context.Context) (run.Repository, func(), error) {
	if redisAddr == "" {
		return run.NewMemory(), func() {}, nil
	}

	if err := config.LoadDotEnv(); err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadRedis()
	if err != nil {
		return nil, nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisAddr, err)
	}

	repo, err := run.NewRedis(&run.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to create run repository: %w", err)
	}

	return repo, func() { client.Close() }, nil
}

func requireRedis() error {
	if redisAddr == "" {
		return errors.New("runs are only kept across invocations with --redis")
	}
	return nil
}
