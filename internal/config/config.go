// Package config loads the bot's settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Narrative providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// Config holds all configuration for the application
type Config struct {
	Discord    DiscordConfig
	Redis      RedisConfig
	DND5E      DND5EConfig
	Logging    LoggingConfig
	Narrative  NarrativeConfig
	Attack     AttackConfig
	Characters CharactersConfig
	Tracing    TracingConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL means
// in-memory storage.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL string `env:"DND5E_API_URL" envDefault:"https://www.dnd5eapi.co/api"`
}

// LoggingConfig selects the zap level and encoder
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// NarrativeConfig selects and configures the narrative provider
type NarrativeConfig struct {
	Provider        string        `env:"NARRATIVE_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel     string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-haiku-latest"`
	MaxTokens       int64         `env:"NARRATIVE_MAX_TOKENS" envDefault:"150"`
	Timeout         time.Duration `env:"NARRATIVE_TIMEOUT" envDefault:"10s"`
}

// AttackConfig tunes the attack flow
type AttackConfig struct {
	Cooldown time.Duration `env:"ATTACK_COOLDOWN" envDefault:"10s"`
}

// CharactersConfig points at an optional YAML seed file
type CharactersConfig struct {
	File string `env:"CHARACTERS_FILE"`
}

// TracingConfig enables OTLP trace export. Tracing is off without an endpoint.
type TracingConfig struct {
	Endpoint    string `env:"OTEL_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"signature-weapons"`
}

// Load parses configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Narrative.Provider = strings.ToLower(strings.TrimSpace(cfg.Narrative.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values every command depends on
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console: got %q", c.Logging.Format)
	}

	switch c.Narrative.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderNone:
	default:
		return fmt.Errorf("NARRATIVE_PROVIDER must be openai, anthropic or none: got %q", c.Narrative.Provider)
	}

	if c.Narrative.MaxTokens <= 0 {
		return fmt.Errorf("NARRATIVE_MAX_TOKENS must be positive")
	}
	if c.Narrative.Timeout <= 0 {
		return fmt.Errorf("NARRATIVE_TIMEOUT must be positive")
	}
	if c.Attack.Cooldown < 0 {
		return fmt.Errorf("ATTACK_COOLDOWN must not be negative")
	}

	return nil
}

// RequireDiscord checks the credentials only the bot needs
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}
