// Package discord exposes signature weapon attacks as Discord slash commands.
package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/clients/dnd5e"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
	"github.com/KirkDiggler/signature-weapons/internal/services/attack"
	"github.com/KirkDiggler/signature-weapons/internal/weapons"
)

// commandTimeout bounds one interaction, narrative generation included
const commandTimeout = 30 * time.Second

// Handler handles all Discord interactions
type Handler struct {
	attackService attack.Service
	catalog       *weapons.Catalog
	dnd5eClient   dnd5e.Client
	logger        *zap.Logger
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	AttackService attack.Service   // Required
	Catalog       *weapons.Catalog // Required
	DND5EClient   dnd5e.Client     // Optional, /weapon skips base weapon data without it
	Logger        *zap.Logger
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("handler config is required")
	}
	if cfg.AttackService == nil {
		panic("attack service is required")
	}
	if cfg.Catalog == nil {
		panic("weapon catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		attackService: cfg.AttackService,
		catalog:       cfg.Catalog,
		dnd5eClient:   cfg.DND5EClient,
		logger:        logger,
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	commands := Commands(h.catalog)
	if _, err := s.ApplicationCommandBulkOverwrite(appID, guildID, commands); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	for _, cmd := range commands {
		h.logger.Info("registered command", zap.String("command", cmd.Name))
	}
	return nil
}

// HandleInteraction routes an interaction to its command
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	data := i.ApplicationCommandData()
	opts := newOptionMap(data.Options)
	userID := interactionUserID(i)

	var err error
	switch data.Name {
	case CommandWeapon:
		err = h.handleWeapon(ctx, s, i, userID, opts)
	case CommandAttack:
		err = h.handleAttack(ctx, s, i, userID, opts)
	case CommandAttackSettings:
		err = h.handleSettings(ctx, s, i, userID, opts)
	case CommandNarrativeKey:
		err = h.handleNarrativeKey(ctx, s, i, userID, opts)
	default:
		return
	}

	if err != nil {
		h.logger.Error("command failed",
			zap.String("command", data.Name),
			zap.String("user_id", userID),
			zap.String("code", string(dnderr.GetCode(err))),
			zap.Error(err),
		)
	}
}

func (h *Handler) handleWeapon(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts optionMap) error {
	menu, err := h.attackService.ListAttacks(ctx, &attack.ListAttacksInput{
		UserID:      userID,
		WeaponID:    opts.String(optWeapon),
		CharacterID: opts.String(optCharacter),
	})
	if err != nil {
		return respondEphemeral(s, i, "❌ "+UserMessage(err))
	}

	var base *dnd5e.BaseWeapon
	if h.dnd5eClient != nil && menu.Weapon.BaseWeapon != "" {
		base, err = h.dnd5eClient.GetBaseWeapon(menu.Weapon.BaseWeapon)
		if err != nil {
			h.logger.Warn("base weapon lookup failed",
				zap.String("key", menu.Weapon.BaseWeapon),
				zap.Error(err),
			)
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{WeaponEmbed(menu, base)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func (h *Handler) handleAttack(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts optionMap) error {
	input, err := performInput(userID, i.ChannelID, opts)
	if err != nil {
		return respondEphemeral(s, i, "❌ "+err.Error())
	}

	// Narrative generation can outlast the initial response window
	if err := deferEphemeral(s, i); err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	out, err := h.attackService.Perform(ctx, input)
	if err != nil {
		editErr := editResponse(s, i, "❌ "+UserMessage(err))
		if editErr != nil {
			return editErr
		}
		return err
	}

	return editResponse(s, i, attackReceipt(out))
}

// attackReceipt is the private acknowledgement; the card itself is public
func attackReceipt(out *attack.Outcome) string {
	lines := []string{fmt.Sprintf("✅ %s posted. Next attack <t:%d:R>.", out.Attack.Label, out.LockedUntil.Unix())}
	for _, w := range out.Warnings {
		lines = append(lines, "⚠️ "+w)
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) handleSettings(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts optionMap) error {
	prefs := &attack.Preferences{UseAI: opts.Bool(optAI)}
	if raw := opts.String(optMode); raw != "" {
		mode := engine.RollMode(raw)
		prefs.Mode = &mode
	}

	sess, err := h.attackService.SetPreferences(ctx, userID, prefs)
	if err != nil {
		return respondEphemeral(s, i, "❌ "+UserMessage(err))
	}

	ai := "off"
	if sess.UseAI {
		ai = "on"
	}
	return respondEphemeral(s, i, fmt.Sprintf("⚙️ Roll mode: **%s** • AI narrative: **%s**", sess.RollMode().Label(), ai))
}

func (h *Handler) handleNarrativeKey(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts optionMap) error {
	key := opts.String(optKey)
	if err := h.attackService.SetCredential(ctx, userID, key); err != nil {
		return respondEphemeral(s, i, "❌ "+UserMessage(err))
	}

	if key == "" {
		return respondEphemeral(s, i, "🔑 Narrative key cleared.")
	}
	return respondEphemeral(s, i, "🔑 Narrative key saved. It is only used for your attacks.")
}

// handleAutocomplete suggests attack IDs for the chosen weapon
func (h *Handler) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	opts := newOptionMap(data.Options)
	focused := opts.focused()
	if data.Name != CommandAttack || focused == nil || focused.Name != optAttack {
		return
	}

	choices := attackChoices(h.catalog.Get(opts.String(optWeapon)), focused.StringValue())
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		h.logger.Warn("autocomplete failed", zap.Error(err))
	}
}

// attackChoices filters a weapon's attacks by a typed prefix of label or ID
func attackChoices(weapon *weapons.Weapon, typed string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0)
	if weapon == nil {
		return choices
	}

	typed = strings.ToLower(strings.TrimSpace(typed))
	for _, def := range weapon.Attacks {
		if typed != "" &&
			!strings.Contains(strings.ToLower(def.Label), typed) &&
			!strings.HasPrefix(def.ID, typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (level %d+)", def.Label, def.MinimumLevel),
			Value: def.ID,
		})
		if len(choices) == 25 {
			break
		}
	}
	return choices
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
