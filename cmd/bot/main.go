package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/alphie/internal/config"
	"github.com/KirkDiggler/alphie/internal/handlers/discord"
	"github.com/KirkDiggler/alphie/internal/picker"
	"github.com/KirkDiggler/alphie/internal/repositories/channelcfg"
	"github.com/KirkDiggler/alphie/internal/repositories/score"
	gameService "github.com/KirkDiggler/alphie/internal/services/game"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	// A .env file is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}

	// Initialize repositories
	scoreRepo, err := score.NewRedis(&score.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create score repository")
	}

	channelRepo, err := channelcfg.NewRedis(&channelcfg.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create channel config repository")
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		ScoreRepo: scoreRepo,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create game service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameService:   gameSvc,
		ChannelRepo:   channelRepo,
		Picker:        picker.New(&picker.Config{}),
		PageSize:      cfg.PageSize,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.WithError(err).Error("Error stopping bot")
	}

	log.Info("Bot has been shut down")
}
