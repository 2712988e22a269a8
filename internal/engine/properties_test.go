package engine_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	mockdice "github.com/KirkDiggler/signature-weapons/internal/dice/mock"
	"github.com/KirkDiggler/signature-weapons/internal/domain/attack"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
)

func TestProperty_CritThresholdIsMinimum(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		overrides := rapid.SliceOf(rapid.IntRange(1, 30)).Draw(rt, "overrides")

		got := engine.ResolveCritThreshold(&engine.Profile{CritThresholdOverrides: overrides})

		if got > 20 {
			rt.Fatalf("threshold %d above 20", got)
		}
		for _, o := range overrides {
			if got > o {
				rt.Fatalf("threshold %d above override %d", got, o)
			}
		}
	})
}

func TestProperty_EffectiveCritThresholdAtLeastOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.IntRange(1, 20).Draw(rt, "base")
		critHit := rapid.IntRange(-40, 5).Draw(rt, "crit_hit_mod")
		natural := rapid.IntRange(1, 20).Draw(rt, "natural")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{natural, 1, 1})
		e := engine.New(&engine.Config{Roller: roller})
		def := &attack.Definition{ID: "a", Label: "A", Damage: "1d4", MinimumLevel: 1, CritHitModifier: critHit}
		if err := def.Validate(); err != nil {
			rt.Fatal(err)
		}

		result, err := e.Resolve(context.Background(), def, &engine.Profile{
			CharacterLevel:         1,
			CritThresholdOverrides: []int{base},
		}, engine.RollModeNormal)
		if err != nil {
			rt.Fatal(err)
		}

		if result.CritThreshold < 1 {
			rt.Fatalf("crit threshold %d below 1", result.CritThreshold)
		}
		if result.IsCriticalHit != (natural >= result.CritThreshold) {
			rt.Fatalf("crit flag %v inconsistent with natural %d and threshold %d",
				result.IsCriticalHit, natural, result.CritThreshold)
		}
	})
}

func TestProperty_NaturalIsKeptDie(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		first := rapid.IntRange(1, 20).Draw(rt, "first")
		second := rapid.IntRange(1, 20).Draw(rt, "second")
		mode := rapid.SampledFrom([]engine.RollMode{engine.RollModeAdvantage, engine.RollModeDisadvantage}).Draw(rt, "mode")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{first, second})
		e := engine.New(&engine.Config{Roller: roller})

		roll, err := e.RollAttack(mode)
		if err != nil {
			rt.Fatal(err)
		}

		want := min(first, second)
		if mode == engine.RollModeAdvantage {
			want = max(first, second)
		}
		if roll.Natural != want || roll.Rolls[roll.Kept] != roll.Natural {
			rt.Fatalf("%s of %d,%d kept %d (index %d)", mode, first, second, roll.Natural, roll.Kept)
		}
	})
}

func TestProperty_CritDamageDoublesDiceOnly(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(1, 8).Draw(rt, "a")
		b := rapid.IntRange(1, 8).Draw(rt, "b")
		str := rapid.IntRange(-1, 5).Draw(rt, "str")
		weapon := rapid.IntRange(0, 3).Draw(rt, "weapon")

		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{20, a, b})
		e := engine.New(&engine.Config{Roller: roller})
		def := &attack.Definition{ID: "smash", Label: "Heavy Smash", Damage: "1d8", MinimumLevel: 1}
		if err := def.Validate(); err != nil {
			rt.Fatal(err)
		}

		result, err := e.Resolve(context.Background(), def, &engine.Profile{
			CharacterLevel:    1,
			StrengthModifier:  str,
			WeaponDamageBonus: weapon,
		}, engine.RollModeNormal)
		if err != nil {
			rt.Fatal(err)
		}

		if want := a + b + str + weapon; result.DamageTotal != want {
			rt.Fatalf("damage %d, want %d", result.DamageTotal, want)
		}
	})
}
