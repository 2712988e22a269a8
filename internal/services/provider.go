package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/clients/dnd5e"
	"github.com/KirkDiggler/signature-weapons/internal/dice"
	"github.com/KirkDiggler/signature-weapons/internal/narrative"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/characters"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/sessions"
	"github.com/KirkDiggler/signature-weapons/internal/services/attack"
	"github.com/KirkDiggler/signature-weapons/internal/weapons"
)

// Provider holds all service instances
type Provider struct {
	AttackService attack.Service
	Catalog       *weapons.Catalog
	DNDClient     dnd5e.Client
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Poster attack.ChatPoster // Required

	DNDClient           dnd5e.Client
	Catalog             *weapons.Catalog
	CharacterRepository characters.Repository
	SessionRepository   sessions.Repository
	Roller              dice.Roller
	Narrator            *narrative.Fallback
	Cooldown            time.Duration
	Logger              *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = weapons.MustLoad()
	}

	// Use in-memory repositories if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	sessionRepo := cfg.SessionRepository
	if sessionRepo == nil {
		sessionRepo = sessions.NewInMemoryRepository(nil)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewLoggedRoller(dice.NewRandomRoller(), logger)
	}

	attackService := attack.NewService(&attack.ServiceConfig{
		Catalog:    catalog,
		Characters: charRepo,
		Sessions:   sessionRepo,
		Roller:     roller,
		Poster:     cfg.Poster,
		Narrator:   cfg.Narrator,
		Cooldown:   cfg.Cooldown,
		Logger:     logger,
	})

	return &Provider{
		AttackService: attackService,
		Catalog:       catalog,
		DNDClient:     cfg.DNDClient,
	}
}
