package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/montecarlo/internal/common/clock"
	"github.com/KirkDiggler/montecarlo/internal/common/uuid"
	"github.com/KirkDiggler/montecarlo/internal/config"
	"github.com/KirkDiggler/montecarlo/internal/handlers/discord"
	"github.com/KirkDiggler/montecarlo/internal/repositories/run"
	"github.com/KirkDiggler/montecarlo/internal/services/messaging"
	"github.com/KirkDiggler/montecarlo/internal/services/simulation"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	runRepo, err := run.NewRedis(&run.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create run repository: %v", err)
	}

	simulationSvc, err := simulation.New(&simulation.Config{
		MaxRolls:      cfg.MaxRolls,
		MaxDice:       cfg.MaxDice,
		RunRepo:       runRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create simulation service: %v", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		SimulationService: simulationSvc,
		MessagingService:  messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
