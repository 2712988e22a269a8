// Package engine resolves signature weapon attacks: level gating, bonus
// formulas, the to-hit roll under a roll mode, crit and fumble detection and
// damage with dice-only crit doubling.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/dice"
	"github.com/KirkDiggler/signature-weapons/internal/domain/attack"
	"github.com/KirkDiggler/signature-weapons/internal/uuid"
)

// Config holds the engine's collaborators
type Config struct {
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// Engine is stateless between calls; it is safe for concurrent use when its
// roller is.
type Engine struct {
	roller  dice.Roller
	uuidGen uuid.Generator
	logger  *zap.Logger
}

// New creates an engine
func New(cfg *Config) *Engine {
	if cfg == nil {
		panic("engine config is required")
	}
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	e := &Engine{
		roller:  cfg.Roller,
		uuidGen: cfg.UUIDGenerator,
		logger:  cfg.Logger,
	}
	if e.uuidGen == nil {
		e.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// EvaluateBonusFormula evaluates a bonus formula against the actor's roll
// data. Empty input, "0" and every evaluation failure yield 0.
func (e *Engine) EvaluateBonusFormula(expression string, vars dice.Variables) int {
	if expression == "" || expression == "0" {
		return 0
	}

	value, err := dice.EvaluateFormula(e.roller, expression, vars)
	if err != nil {
		e.logger.Debug("bonus formula ignored",
			zap.String("formula", expression),
			zap.Error(err),
		)
		return 0
	}
	return value
}

// RollAttack draws the to-hit d20s for mode
func (e *Engine) RollAttack(mode RollMode) (*D20Roll, error) {
	var (
		result *dice.RollResult
		err    error
	)

	switch mode {
	case RollModeAdvantage:
		result, err = e.roller.RollWithAdvantage(20, 0)
	case RollModeDisadvantage:
		result, err = e.roller.RollWithDisadvantage(20, 0)
	default:
		mode = RollModeNormal
		result, err = e.roller.Roll(1, 20, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to roll attack: %w", err)
	}

	return &D20Roll{
		Mode:    mode,
		Rolls:   result.Rolls,
		Kept:    result.Kept,
		Natural: result.Natural(),
	}, nil
}

// Resolve runs one attack. The level gate and a cancelled context both abort
// before any dice are drawn.
func (e *Engine) Resolve(ctx context.Context, def *attack.Definition, profile *Profile, mode RollMode) (*Result, error) {
	if def == nil {
		return nil, fmt.Errorf("attack definition is required")
	}
	if profile == nil {
		return nil, fmt.Errorf("actor profile is required")
	}

	if profile.CharacterLevel < def.MinimumLevel {
		return nil, &LevelTooLowError{
			AttackID:      def.ID,
			AttackLabel:   def.Label,
			RequiredLevel: def.MinimumLevel,
			CurrentLevel:  profile.CharacterLevel,
		}
	}

	expr, err := def.Expression()
	if err != nil {
		return nil, fmt.Errorf("attack %s has invalid damage: %w", def.ID, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bonusAttack, bonusDamage int
	for _, bonus := range profile.BonusModifiers {
		value := e.EvaluateBonusFormula(bonus.Expression, profile.RollData)
		switch bonus.AppliesTo {
		case BonusTargetAttack:
			bonusAttack += value
		case BonusTargetDamage:
			bonusDamage += value
		}
	}

	attackMods := AttackModifiers{
		Strength:    profile.StrengthModifier,
		Proficiency: profile.ProficiencyBonus,
		Weapon:      profile.WeaponAttackBonus,
		Other:       bonusAttack,
	}
	damageMods := DamageModifiers{
		Strength: profile.StrengthModifier,
		Weapon:   profile.WeaponDamageBonus,
		Other:    bonusDamage,
	}

	roll, err := e.RollAttack(mode)
	if err != nil {
		return nil, err
	}

	baseCrit := ResolveCritThreshold(profile)
	critThreshold := max(1, baseCrit+def.CritHitModifier)
	fumbleThreshold := 1 + def.CritFailModifier

	isCrit := roll.Natural >= critThreshold
	isFumble := roll.Natural <= fumbleThreshold

	if isCrit {
		expr = expr.DoubleDice()
	}
	damage, err := dice.RollExpression(e.roller, expr)
	if err != nil {
		return nil, fmt.Errorf("failed to roll damage: %w", err)
	}

	result := &Result{
		ID:                e.uuidGen.New(),
		AttackID:          def.ID,
		Label:             def.Label,
		Mode:              roll.Mode,
		AttackRoll:        roll,
		NaturalRoll:       roll.Natural,
		TotalToHit:        roll.Natural + attackMods.Total(),
		BaseCritThreshold: baseCrit,
		CritThreshold:     critThreshold,
		FumbleThreshold:   fumbleThreshold,
		IsCriticalHit:     isCrit,
		IsCriticalFumble:  isFumble,
		DamageExpression:  expr,
		Damage:            damage,
		DamageTotal:       damage.Total + damageMods.Total(),
		BonusAttackTotal:  bonusAttack,
		BonusDamageTotal:  bonusDamage,
		AttackModifiers:   attackMods,
		DamageModifiers:   damageMods,
		Special:           def.Special,
	}

	e.logger.Debug("attack resolved",
		zap.String("attack", def.ID),
		zap.String("mode", string(roll.Mode)),
		zap.Ints("d20", roll.Rolls),
		zap.Int("natural", roll.Natural),
		zap.Int("to_hit", result.TotalToHit),
		zap.String("damage_expr", expr.String()),
		zap.Int("damage", result.DamageTotal),
		zap.String("outcome", result.Outcome()),
	)

	return result, nil
}
