package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/clients/dnd5e"
	"github.com/KirkDiggler/signature-weapons/internal/config"
	"github.com/KirkDiggler/signature-weapons/internal/handlers/discord"
	"github.com/KirkDiggler/signature-weapons/internal/logging"
	"github.com/KirkDiggler/signature-weapons/internal/narrative"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/characters"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/sessions"
	"github.com/KirkDiggler/signature-weapons/internal/services"
	"github.com/KirkDiggler/signature-weapons/internal/tracing"
	"github.com/KirkDiggler/signature-weapons/internal/weapons"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found")
	}
	logger.Info("starting bot",
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID),
		zap.String("narrative_provider", cfg.Narrative.Provider),
	)

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		logger.Fatal("failed to set up tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	catalog, err := weapons.Load()
	if err != nil {
		return fmt.Errorf("failed to load weapon catalog: %w", err)
	}
	for _, warning := range catalog.Warnings() {
		logger.Warn("weapon catalog", zap.String("warning", warning))
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Create D&D 5e API client
	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: cfg.DND5E.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create D&D 5e client: %w", err)
	}

	providerConfig := &services.ProviderConfig{
		Poster:    discord.NewChannelPoster(dg),
		DNDClient: dndClient,
		Catalog:   catalog,
		Narrator:  newNarrator(cfg.Narrative, logger),
		Cooldown:  cfg.Attack.Cooldown,
		Logger:    logger,
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis.URL, logger)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("error closing Redis connection", zap.Error(err))
			}
		}()
		providerConfig.CharacterRepository = characters.NewRedis(redisClient)
		providerConfig.SessionRepository = sessions.NewRedis(redisClient)
		logger.Info("using Redis for persistence")
	} else {
		providerConfig.CharacterRepository = characters.NewInMemoryRepository()
	}

	if cfg.Characters.File != "" {
		if err := seedCharacters(providerConfig.CharacterRepository, cfg.Characters.File, logger); err != nil {
			return err
		}
	}

	serviceProvider := services.NewProvider(providerConfig)

	handler := discord.NewHandler(&discord.HandlerConfig{
		AttackService: serviceProvider.AttackService,
		Catalog:       serviceProvider.Catalog,
		DND5EClient:   serviceProvider.DNDClient,
		Logger:        logger,
	})

	dg.AddHandler(discord.RecoverMiddleware(logger, handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("failed to close Discord connection", zap.Error(err))
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		return err
	}
	if cfg.Discord.GuildID == "" {
		logger.Info("registered global commands (may take up to 1 hour to propagate)")
	}

	logger.Info("bot is now running, press CTRL-C to exit")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("shutting down")
	return nil
}

// connectRedis returns nil when Redis is not configured or unreachable, in
// which case the bot falls back to in-memory repositories.
func connectRedis(redisURL string, logger *zap.Logger) *redis.Client {
	if redisURL == "" {
		logger.Info("no REDIS_URL found, using in-memory repositories")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("failed to parse Redis URL, falling back to in-memory repositories", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("failed to connect to Redis, falling back to in-memory repositories", zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}

func seedCharacters(repo characters.Repository, path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open characters file: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := characters.ImportYAML(ctx, repo, f)
	if err != nil {
		return fmt.Errorf("failed to import characters: %w", err)
	}
	logger.Info("seeded characters", zap.String("file", path), zap.Int("count", n))
	return nil
}

// newNarrator builds the configured provider. With no usable provider the
// fallback returns static flavor text.
func newNarrator(cfg config.NarrativeConfig, logger *zap.Logger) *narrative.Fallback {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		gen := narrative.NewOpenAI(&narrative.OpenAIConfig{
			APIKey:    cfg.OpenAIAPIKey,
			Model:     cfg.OpenAIModel,
			MaxTokens: cfg.MaxTokens,
		})
		return narrative.NewFallback(gen, narrative.ProviderOpenAI, cfg.Timeout, logger)
	case config.ProviderAnthropic:
		gen := narrative.NewAnthropic(&narrative.AnthropicConfig{
			APIKey:    cfg.AnthropicAPIKey,
			Model:     cfg.AnthropicModel,
			MaxTokens: cfg.MaxTokens,
		})
		return narrative.NewFallback(gen, narrative.ProviderAnthropic, cfg.Timeout, logger)
	default:
		return narrative.NewFallback(nil, "", cfg.Timeout, logger)
	}
}
