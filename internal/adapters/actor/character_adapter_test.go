package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/signature-weapons/internal/adapters/actor"
	"github.com/KirkDiggler/signature-weapons/internal/domain/character"
	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
)

func newCharacter() *character.Character {
	return &character.Character{
		ID:      "c1",
		OwnerID: "u1",
		Name:    "Brother Quartz",
		Level:   6,
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength: character.NewAbilityScore(16),
			shared.AttributeWisdom:   character.NewAbilityScore(17),
		},
		Bonuses: character.Bonuses{
			MeleeAttack:       "1",
			MeleeDamage:       "1d4",
			CriticalThreshold: "19",
		},
		Effects: []*character.ActiveEffect{
			{
				Name: "Improved Critical",
				Changes: []*character.EffectChange{
					{Key: "flags.dnd5e.weaponCriticalThreshold", Value: "18"},
					{Key: "flags.dnd5e.spellCriticalThreshold", Value: "not a number"},
				},
			},
			{
				Name: "Bless",
				Changes: []*character.EffectChange{
					{Key: "system.bonuses.mwak.attack", Value: "1d4"},
					{Key: "system.bonuses.mwak.damage", Value: "@abilities.wis.mod"},
					{Key: "system.bonuses.mwak.Damage.Extra", Value: "2"},
					{Key: "system.attributes.ac.bonus", Value: "2"},
				},
			},
			{
				Name:     "Suppressed",
				Disabled: true,
				Changes: []*character.EffectChange{
					{Key: "flags.dnd5e.weaponCriticalThreshold", Value: "2"},
					{Key: "system.bonuses.mwak.attack", Value: "10"},
				},
			},
		},
		Flags: map[string]string{character.FlagCriticalThreshold: "17.5"},
	}
}

func TestCharacterAdapter_CritThresholdOverrides(t *testing.T) {
	a := actor.NewCharacterAdapter(newCharacter())

	assert.Equal(t, []int{19, 18, 17}, a.CritThresholdOverrides())

	profile := engine.NewProfile(a, engine.WeaponStats{})
	assert.Equal(t, 17, engine.ResolveCritThreshold(profile))
}

func TestCharacterAdapter_NoOverrides(t *testing.T) {
	a := actor.NewCharacterAdapter(&character.Character{Level: 1})

	assert.Empty(t, a.CritThresholdOverrides())
	assert.Empty(t, a.BonusFormulas())
}

func TestCharacterAdapter_BonusFormulas(t *testing.T) {
	a := actor.NewCharacterAdapter(newCharacter())

	assert.Equal(t, []engine.BonusFormula{
		{AppliesTo: engine.BonusTargetAttack, Expression: "1"},
		{AppliesTo: engine.BonusTargetDamage, Expression: "1d4"},
		{AppliesTo: engine.BonusTargetAttack, Expression: "1d4"},
		{AppliesTo: engine.BonusTargetDamage, Expression: "@abilities.wis.mod"},
		{AppliesTo: engine.BonusTargetDamage, Expression: "2"},
	}, a.BonusFormulas())
}

func TestCharacterAdapter_RollData(t *testing.T) {
	a := actor.NewCharacterAdapter(newCharacter())

	vars := a.RollData()

	assert.Equal(t, 3, vars["abilities.wis.mod"])
	assert.Equal(t, 17, vars["abilities.wis.value"])
	assert.Equal(t, 3, vars["abilities.str.mod"])
	assert.Equal(t, 0, vars["abilities.cha.mod"])
	assert.Equal(t, 3, vars["prof"])
	assert.Equal(t, 6, vars["level"])
}

func TestCharacterAdapter_Profile(t *testing.T) {
	profile := engine.NewProfile(actor.NewCharacterAdapter(newCharacter()), engine.WeaponStats{AttackBonus: 2, DamageBonus: 1})

	assert.Equal(t, 3, profile.StrengthModifier)
	assert.Equal(t, 3, profile.WisdomModifier)
	assert.Equal(t, 3, profile.ProficiencyBonus)
	assert.Equal(t, 6, profile.CharacterLevel)
	assert.Equal(t, 2, profile.WeaponAttackBonus)
	assert.Equal(t, 1, profile.WeaponDamageBonus)
	assert.Len(t, profile.BonusModifiers, 5)
}
