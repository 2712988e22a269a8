package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/config"
	"github.com/KirkDiggler/signature-weapons/internal/logging"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/characters"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	file := flag.String("file", cfg.Characters.File, "YAML file with a top-level characters list")
	redisURL := flag.String("redis", cfg.Redis.URL, "Redis URL")
	flag.Parse()

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *file == "" {
		logger.Fatal("no characters file, pass -file or set CHARACTERS_FILE")
	}
	if *redisURL == "" {
		*redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(*redisURL)
	if err != nil {
		logger.Fatal("failed to parse Redis URL", zap.Error(err))
	}
	client := redis.NewClient(opts)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close Redis connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatal("failed to open characters file", zap.Error(err))
	}
	defer f.Close()

	n, err := characters.ImportYAML(ctx, characters.NewRedis(client), f)
	if err != nil {
		logger.Fatal("import failed", zap.Int("imported", n), zap.Error(err))
	}

	logger.Info("imported characters", zap.String("file", *file), zap.Int("count", n))
}
