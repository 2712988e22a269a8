package engine

import (
	"fmt"

	"github.com/KirkDiggler/signature-weapons/internal/dice"
	"github.com/KirkDiggler/signature-weapons/internal/domain/attack"
)

// Outcome labels used for display and narration
const (
	OutcomeCriticalHit    = "critical hit"
	OutcomeCriticalFumble = "critical fumble/miss"
	OutcomeNormalHit      = "normal hit"
)

// D20Roll is the to-hit draw. Natural is always Rolls[Kept].
type D20Roll struct {
	Mode    RollMode
	Rolls   []int
	Kept    int
	Natural int
}

// AttackModifiers breaks down the to-hit bonus
type AttackModifiers struct {
	Strength    int
	Proficiency int
	Weapon      int
	Other       int
}

// Total is the sum added to the natural roll
func (m AttackModifiers) Total() int {
	return m.Strength + m.Proficiency + m.Weapon + m.Other
}

// DamageModifiers breaks down the flat damage added once to the dice
type DamageModifiers struct {
	Strength int
	Weapon   int
	Other    int
}

// Total is the flat amount added to the dice
func (m DamageModifiers) Total() int {
	return m.Strength + m.Weapon + m.Other
}

// Result is the immutable outcome of one resolution
type Result struct {
	ID       string
	AttackID string
	Label    string
	Mode     RollMode

	AttackRoll  *D20Roll
	NaturalRoll int
	TotalToHit  int

	BaseCritThreshold int
	CritThreshold     int
	FumbleThreshold   int
	IsCriticalHit     bool
	IsCriticalFumble  bool

	DamageExpression dice.Expression // as rolled, doubled on a crit
	Damage           *dice.ExpressionResult
	DamageTotal      int

	BonusAttackTotal int
	BonusDamageTotal int
	AttackModifiers  AttackModifiers
	DamageModifiers  DamageModifiers

	Special attack.SpecialEffect
}

// Fumbled reports a fumble that is not also a crit. Specials and damage are
// suppressed only in this case.
func (r *Result) Fumbled() bool {
	return r.IsCriticalFumble && !r.IsCriticalHit
}

// Outcome returns the display label; a critical hit takes precedence
func (r *Result) Outcome() string {
	switch {
	case r.IsCriticalHit:
		return OutcomeCriticalHit
	case r.IsCriticalFumble:
		return OutcomeCriticalFumble
	default:
		return OutcomeNormalHit
	}
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: natural %d, to hit %d, damage %d (%s)",
		r.Label, r.NaturalRoll, r.TotalToHit, r.DamageTotal, r.Outcome())
}
