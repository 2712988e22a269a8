// Package attack runs a signature weapon attack end to end: session and
// cooldown checks, actor and weapon selection, resolution, special effects,
// narration and posting.
package attack

//go:generate mockgen -destination=mock/mock_service.go -package=mockattack -source=service.go

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/adapters/actor"
	"github.com/KirkDiggler/signature-weapons/internal/dice"
	attackdef "github.com/KirkDiggler/signature-weapons/internal/domain/attack"
	"github.com/KirkDiggler/signature-weapons/internal/domain/character"
	"github.com/KirkDiggler/signature-weapons/internal/domain/session"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
	"github.com/KirkDiggler/signature-weapons/internal/narrative"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/characters"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/sessions"
	"github.com/KirkDiggler/signature-weapons/internal/uuid"
	"github.com/KirkDiggler/signature-weapons/internal/weapons"
)

// DefaultCooldown is the lock applied after each posted attack
const DefaultCooldown = 10 * time.Second

var tracer = otel.Tracer("github.com/KirkDiggler/signature-weapons/internal/services/attack")

// Service defines the attack service interface
type Service interface {
	// Perform resolves and posts one attack
	Perform(ctx context.Context, input *PerformInput) (*Outcome, error)

	// ListAttacks returns the attack menu for a weapon and character
	ListAttacks(ctx context.Context, input *ListAttacksInput) (*ListAttacksOutput, error)

	// GetSession returns the user's attack session
	GetSession(ctx context.Context, userID string) (*session.AttackSession, error)

	// SetPreferences updates roll mode and narrative toggle
	SetPreferences(ctx context.Context, userID string, prefs *Preferences) (*session.AttackSession, error)

	// SetCredential stores the user's narrative API key; empty clears it
	SetCredential(ctx context.Context, userID, key string) error
}

// PerformInput selects the attack to make
type PerformInput struct {
	UserID    string
	ChannelID string
	WeaponID  string
	AttackID  string

	// CharacterID is optional when the user owns exactly one candidate
	CharacterID string

	// Mode overrides the session's roll mode when set
	Mode engine.RollMode

	Customization *narrative.Customization
}

// Outcome is everything the presentation layer needs to render an attack
type Outcome struct {
	Result        *engine.Result
	Character     *character.Character
	Weapon        *weapons.Weapon
	Attack        *attackdef.Definition
	Mode          engine.RollMode
	Customization *narrative.Customization

	Narrative          string
	NarrativeGenerated bool

	Special *SpecialOutcome

	// Warnings are problems the user should see; Notices are informational
	Warnings []string
	Notices  []string

	LockedUntil time.Time
}

// ListAttacksInput selects a weapon menu
type ListAttacksInput struct {
	UserID      string
	WeaponID    string
	CharacterID string
}

// ListAttacksOutput is a weapon menu for one character
type ListAttacksOutput struct {
	Weapon        *weapons.Weapon
	Character     *character.Character
	Level         int
	CritThreshold int
	Entries       []weapons.MenuEntry
}

// Preferences are partial session updates; nil fields are left alone
type Preferences struct {
	Mode  *engine.RollMode
	UseAI *bool
}

type service struct {
	catalog    *weapons.Catalog
	characters characters.Repository
	sessions   sessions.Repository
	engine     *engine.Engine
	roller     dice.Roller
	poster     ChatPoster
	narrator   *narrative.Fallback
	clock      sessions.TimeProvider
	cooldown   time.Duration
	logger     *zap.Logger
	locks      *sessionLocks
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog    *weapons.Catalog      // Required
	Characters characters.Repository // Required
	Sessions   sessions.Repository   // Required
	Roller     dice.Roller           // Required
	Poster     ChatPoster            // Required

	Narrator      *narrative.Fallback // Optional, static flavor only when nil
	UUIDGenerator uuid.Generator
	Clock         sessions.TimeProvider
	Cooldown      time.Duration
	Logger        *zap.Logger
}

// NewService creates a new attack service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config is required")
	}
	if cfg.Catalog == nil {
		panic("weapon catalog is required")
	}
	if cfg.Characters == nil {
		panic("character repository is required")
	}
	if cfg.Sessions == nil {
		panic("session repository is required")
	}
	if cfg.Roller == nil {
		panic("dice roller is required")
	}
	if cfg.Poster == nil {
		panic("chat poster is required")
	}

	svc := &service{
		catalog:    cfg.Catalog,
		characters: cfg.Characters,
		sessions:   cfg.Sessions,
		roller:     cfg.Roller,
		poster:     cfg.Poster,
		narrator:   cfg.Narrator,
		clock:      cfg.Clock,
		cooldown:   cfg.Cooldown,
		logger:     cfg.Logger,
		locks:      newSessionLocks(),
	}
	if svc.clock == nil {
		svc.clock = &sessions.RealTimeProvider{}
	}
	if svc.cooldown <= 0 {
		svc.cooldown = DefaultCooldown
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.narrator == nil {
		svc.narrator = narrative.NewFallback(nil, "", 0, svc.logger)
	}
	svc.engine = engine.New(&engine.Config{
		Roller:        cfg.Roller,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        svc.logger,
	})

	return svc
}

func (s *service) Perform(ctx context.Context, input *PerformInput) (*Outcome, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, dnderr.MissingParam("user_id")
	}

	ctx, span := tracer.Start(ctx, "attack.Perform")
	defer span.End()
	span.SetAttributes(
		attribute.String("attack.weapon", input.WeaponID),
		attribute.String("attack.id", input.AttackID),
	)

	out, err := s.perform(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("attack.natural", out.Result.NaturalRoll),
		attribute.Int("attack.to_hit", out.Result.TotalToHit),
		attribute.Int("attack.damage", out.Result.DamageTotal),
		attribute.Bool("attack.critical_hit", out.Result.IsCriticalHit),
		attribute.Bool("attack.critical_fumble", out.Result.IsCriticalFumble),
	)
	return out, nil
}

func (s *service) perform(ctx context.Context, input *PerformInput) (*Outcome, error) {
	release := s.locks.lock(input.UserID)
	defer release()

	sess, err := s.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load session")
	}
	if now := s.clock.Now(); sess.IsLocked(now) {
		return nil, &CooldownActiveError{Remaining: sess.Remaining(now)}
	}

	weapon := s.catalog.Get(input.WeaponID)
	if weapon == nil {
		return nil, dnderr.NotFoundf("weapon '%s' not found", input.WeaponID).
			WithMeta("weapon_id", input.WeaponID)
	}

	char, err := s.selectCharacter(ctx, input.UserID, input.CharacterID, weapon)
	if err != nil {
		return nil, err
	}

	item := findWeaponItem(char, weapon)
	if item == nil {
		return nil, &WeaponNotEquippedError{CharacterName: char.Name, WeaponName: weapon.Name}
	}

	def := weapon.Attack(input.AttackID)
	if def == nil {
		return nil, dnderr.NotFoundf("attack '%s' not found for %s", input.AttackID, weapon.Name).
			WithMeta("weapon_id", weapon.ID).
			WithMeta("attack_id", input.AttackID)
	}

	mode := input.Mode
	if mode == "" {
		mode = sess.RollMode()
	}

	if ctx.Err() != nil {
		return nil, ErrCancelled
	}

	profile := engine.NewProfile(actor.NewCharacterAdapter(char), engine.WeaponStats{
		AttackBonus: item.AttackBonus,
		DamageBonus: item.DamageBonus,
	})
	result, err := s.engine.Resolve(ctx, def, profile, mode)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrCancelled
		}
		return nil, err
	}

	// Dice are on the table; the rest of the attack completes regardless
	ctx = context.WithoutCancel(ctx)

	out := &Outcome{
		Result:        result,
		Character:     char,
		Weapon:        weapon,
		Attack:        def,
		Mode:          mode,
		Customization: input.Customization,
		Narrative:     def.Flavor,
	}

	if err := s.resolveSpecial(ctx, out, char, input.UserID, def, profile); err != nil {
		return nil, err
	}

	if sess.UseAI {
		s.narrate(ctx, out, sess)
	}

	if err := s.poster.Post(ctx, input.ChannelID, out); err != nil {
		return nil, dnderr.Wrap(err, "failed to post attack")
	}

	out.LockedUntil = s.clock.Now().Add(s.cooldown)
	sess.LockedUntil = out.LockedUntil
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, dnderr.Wrap(err, "failed to save session")
	}

	s.logger.Info("attack resolved",
		zap.String("user_id", input.UserID),
		zap.String("character_id", char.ID),
		zap.Bool("owner", char.IsOwnedBy(input.UserID)),
		zap.String("weapon", weapon.ID),
		zap.String("attack", def.ID),
		zap.String("mode", string(mode)),
		zap.Int("natural", result.NaturalRoll),
		zap.Int("to_hit", result.TotalToHit),
		zap.Int("damage", result.DamageTotal),
		zap.String("outcome", result.Outcome()),
	)

	return out, nil
}

func (s *service) narrate(ctx context.Context, out *Outcome, sess *session.AttackSession) {
	if !s.narrator.Enabled() {
		return
	}

	req := &narrative.Request{
		WeaponName: out.Weapon.Name,
		WeaponType: out.Weapon.Type,
		AttackName: out.Attack.Label,
		Flavor:     out.Attack.Flavor,
		Outcome:    out.Result.Outcome(),
		ActorName:  out.Character.Name,
		Voice: narrative.Voice{
			Character:   out.Weapon.Narrator.Character,
			System:      out.Weapon.Narrator.System,
			Guidance:    out.Weapon.Narrator.Guidance,
			Temperature: out.Weapon.Narrator.Temperature,
		},
		Customization: out.Customization,
		APIKey:        sess.APIKey,
	}
	if !out.Result.Fumbled() {
		damage := out.Result.DamageTotal
		req.Damage = &damage
	}

	narration := s.narrator.Narrate(ctx, req)
	out.Narrative = narration.Text
	out.NarrativeGenerated = narration.Generated

	if narration.Failure != nil {
		out.Warnings = append(out.Warnings, narration.Failure.Warning())
		if narration.Failure.InvalidatesCredential() && sess.HasCredential() {
			// Saved before posting; a failed post must not leave the key stored
			sess.ClearCredential()
			if err := s.sessions.Save(ctx, sess); err != nil {
				s.logger.Warn("failed to clear rejected credential",
					zap.String("session_id", sess.ID),
					zap.Error(err),
				)
			}
		}
	}
}

// selectCharacter resolves the acting character. An explicit ID may name a
// character the user does not own, as a GM running an NPC does; writes to it
// stay owner-only. Without an ID the user's only character is used; with
// several, the only one carrying the weapon.
func (s *service) selectCharacter(ctx context.Context, userID, characterID string, weapon *weapons.Weapon) (*character.Character, error) {
	if characterID != "" {
		return s.characters.Get(ctx, characterID)
	}

	owned, err := s.characters.GetByOwner(ctx, userID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}
	if len(owned) == 1 {
		return owned[0], nil
	}

	if weapon != nil {
		var carrying []*character.Character
		for _, char := range owned {
			if findWeaponItem(char, weapon) != nil {
				carrying = append(carrying, char)
			}
		}
		if len(carrying) == 1 {
			return carrying[0], nil
		}
	}

	return nil, ErrSingleSelectionRequired
}

// findWeaponItem prefers an equipped match over one merely carried
func findWeaponItem(char *character.Character, weapon *weapons.Weapon) *character.Item {
	var carried *character.Item
	for _, item := range char.Inventory {
		if !item.IsWeapon() || !weapon.Matches(item.Name) {
			continue
		}
		if item.Equipped {
			return item
		}
		if carried == nil {
			carried = item
		}
	}
	return carried
}

func (s *service) ListAttacks(ctx context.Context, input *ListAttacksInput) (*ListAttacksOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	weapon := s.catalog.Get(input.WeaponID)
	if weapon == nil {
		return nil, dnderr.NotFoundf("weapon '%s' not found", input.WeaponID).
			WithMeta("weapon_id", input.WeaponID)
	}

	char, err := s.selectCharacter(ctx, input.UserID, input.CharacterID, weapon)
	if err != nil {
		return nil, err
	}

	adapter := actor.NewCharacterAdapter(char)
	profile := engine.NewProfile(adapter, engine.WeaponStats{})

	return &ListAttacksOutput{
		Weapon:        weapon,
		Character:     char,
		Level:         profile.CharacterLevel,
		CritThreshold: engine.ResolveCritThreshold(profile),
		Entries:       weapon.AttacksFor(profile.CharacterLevel),
	}, nil
}

func (s *service) GetSession(ctx context.Context, userID string) (*session.AttackSession, error) {
	if userID == "" {
		return nil, dnderr.MissingParam("user_id")
	}
	return s.sessions.Get(ctx, userID)
}

func (s *service) SetPreferences(ctx context.Context, userID string, prefs *Preferences) (*session.AttackSession, error) {
	if userID == "" {
		return nil, dnderr.MissingParam("user_id")
	}
	if prefs == nil {
		return nil, dnderr.InvalidArgument("preferences are required")
	}

	release := s.locks.lock(userID)
	defer release()

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load session")
	}

	if prefs.Mode != nil {
		mode, err := engine.ParseRollMode(string(*prefs.Mode))
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid roll mode")
		}
		sess.Mode = mode
	}
	if prefs.UseAI != nil {
		sess.UseAI = *prefs.UseAI
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, dnderr.Wrap(err, "failed to save session")
	}
	return sess, nil
}

func (s *service) SetCredential(ctx context.Context, userID, key string) error {
	if userID == "" {
		return dnderr.MissingParam("user_id")
	}

	release := s.locks.lock(userID)
	defer release()

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return dnderr.Wrap(err, "failed to load session")
	}

	sess.APIKey = strings.TrimSpace(key)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}
