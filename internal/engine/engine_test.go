package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/signature-weapons/internal/dice"
	mockdice "github.com/KirkDiggler/signature-weapons/internal/dice/mock"
	"github.com/KirkDiggler/signature-weapons/internal/domain/attack"
	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
	"github.com/KirkDiggler/signature-weapons/internal/uuid"
)

type stubActor struct {
	mods      map[shared.Attribute]int
	prof      int
	level     int
	overrides []int
	bonuses   []engine.BonusFormula
	vars      dice.Variables
}

func (s *stubActor) AbilityModifier(attr shared.Attribute) int { return s.mods[attr] }
func (s *stubActor) ProficiencyBonus() int                     { return s.prof }
func (s *stubActor) CharacterLevel() int                       { return s.level }
func (s *stubActor) CritThresholdOverrides() []int             { return s.overrides }
func (s *stubActor) BonusFormulas() []engine.BonusFormula      { return s.bonuses }
func (s *stubActor) RollData() dice.Variables                  { return s.vars }

func newDefinition(t require.TestingT, id, damage string, critHit, critFail, level int) *attack.Definition {
	def := &attack.Definition{
		ID:               id,
		Label:            id,
		Damage:           damage,
		CritHitModifier:  critHit,
		CritFailModifier: critFail,
		MinimumLevel:     level,
	}
	require.NoError(t, def.Validate())
	return def
}

type EngineTestSuite struct {
	suite.Suite
	roller  *mockdice.ManualMockRoller
	engine  *engine.Engine
	profile *engine.Profile
	ctx     context.Context
}

func (s *EngineTestSuite) SetupTest() {
	s.roller = mockdice.NewManualMockRoller()
	s.engine = engine.New(&engine.Config{
		Roller:        s.roller,
		UUIDGenerator: uuid.NewSequenceGenerator("res"),
	})
	s.profile = engine.NewProfile(&stubActor{
		mods:  map[shared.Attribute]int{shared.AttributeStrength: 3, shared.AttributeWisdom: 2},
		prof:  2,
		level: 5,
	}, engine.WeaponStats{AttackBonus: 1, DamageBonus: 1})
	s.ctx = context.Background()
}

func (s *EngineTestSuite) TestNormalModeDrawsOneKeptDie() {
	s.roller.SetRolls([]int{11})

	roll, err := s.engine.RollAttack(engine.RollModeNormal)

	s.Require().NoError(err)
	s.Equal(1, s.roller.Draws())
	s.Equal([]int{11}, roll.Rolls)
	s.Equal(0, roll.Kept)
	s.Equal(11, roll.Natural)
}

func (s *EngineTestSuite) TestAdvantageAndDisadvantageKeepRules() {
	s.roller.SetRolls([]int{7, 15, 7, 15})

	adv, err := s.engine.RollAttack(engine.RollModeAdvantage)
	s.Require().NoError(err)
	s.Equal(15, adv.Natural)
	s.Equal(1, adv.Kept)

	dis, err := s.engine.RollAttack(engine.RollModeDisadvantage)
	s.Require().NoError(err)
	s.Equal(7, dis.Natural)
	s.Equal(0, dis.Kept)
	s.Equal([]int{7, 15}, dis.Rolls)
}

func (s *EngineTestSuite) TestDisadvantageNeverUsesHighestDie() {
	s.roller.SetRolls([]int{20, 1, 1})
	def := newDefinition(s.T(), "thrust", "1d10", 0, 0, 1)

	result, err := s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeDisadvantage)

	s.Require().NoError(err)
	s.Equal(1, result.NaturalRoll)
	s.False(result.IsCriticalHit)
	s.True(result.IsCriticalFumble)
	s.True(result.Fumbled())
	s.Equal(engine.OutcomeCriticalFumble, result.Outcome())
}

func (s *EngineTestSuite) TestCritRangeWidenedByModifier() {
	def := newDefinition(s.T(), "rising", "1d10", -1, 1, 1)

	s.roller.SetRolls([]int{19, 4, 6})
	result, err := s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)
	s.Require().NoError(err)
	s.True(result.IsCriticalHit)
	s.Equal(19, result.CritThreshold)

	s.roller.SetRolls([]int{18, 4})
	result, err = s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)
	s.Require().NoError(err)
	s.False(result.IsCriticalHit)
	s.Equal(engine.OutcomeNormalHit, result.Outcome())
}

func (s *EngineTestSuite) TestFumbleRangeWidenedByModifier() {
	def := newDefinition(s.T(), "long", "1d10", 0, 1, 1)

	s.roller.SetRolls([]int{2, 5})
	result, err := s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)
	s.Require().NoError(err)
	s.True(result.IsCriticalFumble)
	s.Equal(2, result.FumbleThreshold)

	s.roller.SetRolls([]int{3, 5})
	result, err = s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)
	s.Require().NoError(err)
	s.False(result.IsCriticalFumble)
}

func (s *EngineTestSuite) TestCritDoublesOnlyDice() {
	def := newDefinition(s.T(), "smash", "1d8", 0, 0, 1)
	s.roller.SetRolls([]int{20, 5, 7})

	result, err := s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)

	s.Require().NoError(err)
	s.True(result.IsCriticalHit)
	s.Equal("2d8", result.DamageExpression.String())
	s.Equal([]int{5, 7}, result.Damage.Rolls())
	// 5 + 7 dice, STR 3 and weapon 1 added once
	s.Equal(16, result.DamageTotal)
	s.Equal(3, s.roller.Draws())
}

func (s *EngineTestSuite) TestToHitTotal() {
	def := newDefinition(s.T(), "pin", "1d10+1d6", 0, 1, 1)
	s.roller.SetRolls([]int{12, 6, 4})

	result, err := s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)

	s.Require().NoError(err)
	// 12 + STR 3 + prof 2 + weapon 1
	s.Equal(18, result.TotalToHit)
	s.Equal(6, result.AttackModifiers.Total())
	s.Equal(10+3+1, result.DamageTotal)
	s.Equal("res-1", result.ID)
}

func (s *EngineTestSuite) TestBonusFormulasFeedTotals() {
	profile := engine.NewProfile(&stubActor{
		mods:  map[shared.Attribute]int{shared.AttributeStrength: 3},
		prof:  2,
		level: 5,
		bonuses: []engine.BonusFormula{
			{AppliesTo: engine.BonusTargetAttack, Expression: "1d4"},
			{AppliesTo: engine.BonusTargetDamage, Expression: "@abilities.wis.mod"},
			{AppliesTo: engine.BonusTargetDamage, Expression: "notaformula"},
			{AppliesTo: engine.BonusTargetAttack, Expression: "0"},
		},
		vars: dice.Variables{"abilities.wis.mod": 2},
	}, engine.WeaponStats{})
	def := newDefinition(s.T(), "smash", "1d8", 0, 0, 1)
	// bonus d4, then d20, then damage
	s.roller.SetRolls([]int{3, 10, 4})

	result, err := s.engine.Resolve(s.ctx, def, profile, engine.RollModeNormal)

	s.Require().NoError(err)
	s.Equal(3, result.BonusAttackTotal)
	s.Equal(2, result.BonusDamageTotal)
	s.Equal(10+3+2+3, result.TotalToHit)
	s.Equal(4+3+2, result.DamageTotal)
}

func (s *EngineTestSuite) TestOversizedBonusDiceContributeNothing() {
	profile := engine.NewProfile(&stubActor{
		mods:  map[shared.Attribute]int{shared.AttributeStrength: 3},
		prof:  2,
		level: 5,
		bonuses: []engine.BonusFormula{
			{AppliesTo: engine.BonusTargetDamage, Expression: "2000000000d6"},
			{AppliesTo: engine.BonusTargetAttack, Expression: "1d99999+4"},
		},
	}, engine.WeaponStats{})
	def := newDefinition(s.T(), "smash", "1d8", 0, 0, 1)
	s.roller.SetRolls([]int{10, 4})

	result, err := s.engine.Resolve(s.ctx, def, profile, engine.RollModeNormal)

	s.Require().NoError(err)
	s.Equal(0, result.BonusAttackTotal)
	s.Equal(0, result.BonusDamageTotal)
	s.Equal(10+3+2, result.TotalToHit)
	s.Equal(4+3, result.DamageTotal)
	s.Equal(2, s.roller.Draws())
}

func (s *EngineTestSuite) TestLevelGateRollsNothing() {
	def := newDefinition(s.T(), "earth", "3d10", 0, 4, 15)
	s.roller.SetRolls([]int{20, 10, 10, 10})

	profile := *s.profile
	profile.CharacterLevel = 3
	_, err := s.engine.Resolve(s.ctx, def, &profile, engine.RollModeNormal)

	var levelErr *engine.LevelTooLowError
	s.Require().ErrorAs(err, &levelErr)
	s.Equal(15, levelErr.RequiredLevel)
	s.Equal(3, levelErr.CurrentLevel)
	s.True(engine.IsLevelTooLow(err))
	s.Equal(0, s.roller.Draws())
}

func (s *EngineTestSuite) TestCancelledContextRollsNothing() {
	def := newDefinition(s.T(), "thrust", "1d10", 0, 0, 1)
	s.roller.SetRolls([]int{15, 5})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.engine.Resolve(ctx, def, s.profile, engine.RollModeNormal)

	s.ErrorIs(err, context.Canceled)
	s.Equal(0, s.roller.Draws())
}

func (s *EngineTestSuite) TestCritWinsOutcomeWhenRangesOverlap() {
	def := newDefinition(s.T(), "wild", "1d6", -19, 0, 1)
	s.roller.SetRolls([]int{1, 3, 4})

	result, err := s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)

	s.Require().NoError(err)
	s.Equal(1, result.CritThreshold)
	s.True(result.IsCriticalHit)
	s.True(result.IsCriticalFumble)
	s.False(result.Fumbled())
	s.Equal(engine.OutcomeCriticalHit, result.Outcome())
}

func (s *EngineTestSuite) TestSpecialSurfaced() {
	def := &attack.Definition{ID: "ward", Label: "Mineral Ward", Damage: "1d4", MinimumLevel: 5, Special: attack.SpecialWard}
	s.Require().NoError(def.Validate())
	s.roller.SetRolls([]int{9, 2})

	result, err := s.engine.Resolve(s.ctx, def, s.profile, engine.RollModeNormal)

	s.Require().NoError(err)
	s.Equal(attack.SpecialWard, result.Special)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func TestEvaluateBonusFormula_NeverFails(t *testing.T) {
	e := engine.New(&engine.Config{Roller: mockdice.NewManualMockRoller()})

	assert.Equal(t, 0, e.EvaluateBonusFormula("", nil))
	assert.Equal(t, 0, e.EvaluateBonusFormula("0", nil))
	assert.Equal(t, 0, e.EvaluateBonusFormula("notaformula", nil))
	assert.Equal(t, 0, e.EvaluateBonusFormula("2000000000d6", nil))
	// no rolls queued, so the dice draw fails and is absorbed
	assert.Equal(t, 0, e.EvaluateBonusFormula("1d4", nil))
	assert.Equal(t, 5, e.EvaluateBonusFormula("@prof+2", dice.Variables{"prof": 3}))
}

func TestParseRollMode(t *testing.T) {
	tests := map[string]engine.RollMode{
		"":             engine.RollModeNormal,
		"normal":       engine.RollModeNormal,
		"adv":          engine.RollModeAdvantage,
		"Advantage":    engine.RollModeAdvantage,
		"dis":          engine.RollModeDisadvantage,
		"disadvantage": engine.RollModeDisadvantage,
	}
	for input, want := range tests {
		got, err := engine.ParseRollMode(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := engine.ParseRollMode("lucky")
	assert.Error(t, err)
}

func TestResolveCritThreshold(t *testing.T) {
	assert.Equal(t, 20, engine.ResolveCritThreshold(nil))
	assert.Equal(t, 20, engine.ResolveCritThreshold(&engine.Profile{}))
	assert.Equal(t, 18, engine.ResolveCritThreshold(&engine.Profile{CritThresholdOverrides: []int{19, 18, 22}}))
	assert.Equal(t, 19, engine.ResolveCritThreshold(&engine.Profile{CritThresholdOverrides: []int{0, -3, 19}}))
}
