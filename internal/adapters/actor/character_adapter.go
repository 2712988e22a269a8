// Package actor adapts stored characters to the engine's typed actor queries.
// The key-matching heuristics for effect changes live here so the engine
// only ever sees typed values.
package actor

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/signature-weapons/internal/dice"
	"github.com/KirkDiggler/signature-weapons/internal/domain/character"
	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
)

// CharacterAdapter implements engine.ActorDataProvider over a Character
type CharacterAdapter struct {
	*character.Character
}

var _ engine.ActorDataProvider = (*CharacterAdapter)(nil)

// NewCharacterAdapter wraps c
func NewCharacterAdapter(c *character.Character) *CharacterAdapter {
	return &CharacterAdapter{Character: c}
}

func (a *CharacterAdapter) AbilityModifier(attr shared.Attribute) int {
	return a.Modifier(attr)
}

func (a *CharacterAdapter) ProficiencyBonus() int {
	return a.GetProficiencyBonus()
}

func (a *CharacterAdapter) CharacterLevel() int {
	return a.GetLevel()
}

// CritThresholdOverrides gathers the innate bonus field, every enabled
// effect change whose key mentions both "crit" and "threshold", and the
// critical threshold flag. Non-numeric values are skipped.
func (a *CharacterAdapter) CritThresholdOverrides() []int {
	var overrides []int

	if v, ok := parseNumber(a.Bonuses.CriticalThreshold); ok {
		overrides = append(overrides, v)
	}

	for _, effect := range a.EnabledEffects() {
		for _, change := range effect.Changes {
			if !isCritThresholdKey(change.Key) {
				continue
			}
			if v, ok := parseNumber(change.Value); ok {
				overrides = append(overrides, v)
			}
		}
	}

	if v, ok := parseNumber(a.Flags[character.FlagCriticalThreshold]); ok {
		overrides = append(overrides, v)
	}

	return overrides
}

// BonusFormulas returns the innate melee bonuses followed by every enabled
// effect change whose key mentions "mwak", "attack" or "damage". A key that
// mentions "attack" adds to the attack roll; anything else adds to damage.
func (a *CharacterAdapter) BonusFormulas() []engine.BonusFormula {
	var formulas []engine.BonusFormula

	if a.Bonuses.MeleeAttack != "" {
		formulas = append(formulas, engine.BonusFormula{AppliesTo: engine.BonusTargetAttack, Expression: a.Bonuses.MeleeAttack})
	}
	if a.Bonuses.MeleeDamage != "" {
		formulas = append(formulas, engine.BonusFormula{AppliesTo: engine.BonusTargetDamage, Expression: a.Bonuses.MeleeDamage})
	}

	for _, effect := range a.EnabledEffects() {
		for _, change := range effect.Changes {
			key := strings.ToLower(change.Key)
			if isCritThresholdKey(key) {
				continue
			}
			if !strings.Contains(key, "mwak") && !strings.Contains(key, "attack") && !strings.Contains(key, "damage") {
				continue
			}

			target := engine.BonusTargetDamage
			if strings.Contains(key, "attack") {
				target = engine.BonusTargetAttack
			}
			formulas = append(formulas, engine.BonusFormula{AppliesTo: target, Expression: change.Value})
		}
	}

	return formulas
}

// RollData exposes @abilities.<abbr>.mod, @abilities.<abbr>.value, @prof and
// @level to bonus formulas.
func (a *CharacterAdapter) RollData() dice.Variables {
	vars := dice.Variables{
		"prof":                a.GetProficiencyBonus(),
		"attributes.prof":     a.GetProficiencyBonus(),
		"level":               a.GetLevel(),
		"details.level":       a.GetLevel(),
		"attributes.hp.temp":  a.TempHitPoints,
		"attributes.hp.value": a.CurrentHitPoints,
	}
	for _, attr := range shared.Attributes {
		score := 10
		if s, ok := a.Attributes[attr]; ok && s != nil {
			score = s.Score
		}
		vars["abilities."+string(attr)+".value"] = score
		vars["abilities."+string(attr)+".mod"] = shared.Modifier(score)
	}
	return vars
}

func isCritThresholdKey(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "crit") && strings.Contains(key, "threshold")
}

// parseNumber accepts integers and decimals; decimals are floored. Empty or
// zero values do not count as overrides.
func parseNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, v != 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	v := int(math.Floor(f))
	return v, v != 0
}
