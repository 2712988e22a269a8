package engine

import (
	"github.com/KirkDiggler/signature-weapons/internal/dice"
	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
)

// BonusTarget says which total a bonus formula contributes to
type BonusTarget string

const (
	BonusTargetAttack BonusTarget = "attack"
	BonusTargetDamage BonusTarget = "damage"
)

// BonusFormula is a best-effort dice/arithmetic bonus sourced from the actor
type BonusFormula struct {
	AppliesTo  BonusTarget
	Expression string
}

// ActorDataProvider exposes the typed actor capabilities the engine reads.
// Implementations own any heuristics for digging values out of actor data.
type ActorDataProvider interface {
	AbilityModifier(attr shared.Attribute) int
	ProficiencyBonus() int
	CharacterLevel() int
	CritThresholdOverrides() []int
	BonusFormulas() []BonusFormula
	RollData() dice.Variables
}

// WeaponStats are the bonuses carried by the equipped weapon item
type WeaponStats struct {
	AttackBonus int
	DamageBonus int
}

// Profile is a snapshot of everything the engine needs from the actor for a
// single resolution.
type Profile struct {
	StrengthModifier  int
	WisdomModifier    int
	ProficiencyBonus  int
	CharacterLevel    int
	WeaponAttackBonus int
	WeaponDamageBonus int

	CritThresholdOverrides []int
	BonusModifiers         []BonusFormula
	RollData               dice.Variables
}

// NewProfile snapshots provider and weapon into a Profile
func NewProfile(provider ActorDataProvider, weapon WeaponStats) *Profile {
	level := provider.CharacterLevel()
	if level < 1 {
		level = 1
	}

	return &Profile{
		StrengthModifier:       provider.AbilityModifier(shared.AttributeStrength),
		WisdomModifier:         provider.AbilityModifier(shared.AttributeWisdom),
		ProficiencyBonus:       provider.ProficiencyBonus(),
		CharacterLevel:         level,
		WeaponAttackBonus:      weapon.AttackBonus,
		WeaponDamageBonus:      weapon.DamageBonus,
		CritThresholdOverrides: provider.CritThresholdOverrides(),
		BonusModifiers:         provider.BonusFormulas(),
		RollData:               provider.RollData(),
	}
}

// ResolveCritThreshold returns the lowest of 20 and every override. Overrides
// below 1 are not valid thresholds and are ignored.
func ResolveCritThreshold(p *Profile) int {
	threshold := 20
	if p == nil {
		return threshold
	}
	for _, override := range p.CritThresholdOverrides {
		if override >= 1 && override < threshold {
			threshold = override
		}
	}
	return threshold
}
