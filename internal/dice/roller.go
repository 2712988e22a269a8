// Package dice provides the dice rolling collaborator used by the attack
// engine: a Roller abstraction with advantage/disadvantage keep rules, a typed
// damage expression AST and a best-effort bonus formula evaluator.
package dice

// Limits on a single NdM term. A doubled crit may draw up to twice MaxDiceCount.
const (
	MaxDiceCount = 1000
	MaxDieSides  = 1000
)

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollWithAdvantage rolls with advantage (roll twice, keep higher)
	RollWithAdvantage(sides, bonus int) (*RollResult, error)

	// RollWithDisadvantage rolls with disadvantage (roll twice, keep lower)
	RollWithDisadvantage(sides, bonus int) (*RollResult, error)
}

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Counted dice plus bonus
	Rolls    []int // Individual die results in draw order
	Kept     int   // Index into Rolls of the counted die when Count is 1
	Bonus    int   // Bonus applied
	Count    int   // Number of dice that count toward the total
	Sides    int   // Number of sides on each die
	RawTotal int   // Counted dice without the bonus
}

// Natural returns the face value of the kept die.
//
// For advantage and disadvantage rolls this is the die selected by the keep
// rule, never a max() over every result.
func (r *RollResult) Natural() int {
	if r == nil || len(r.Rolls) == 0 {
		return 0
	}
	if r.Kept < 0 || r.Kept >= len(r.Rolls) {
		return r.Rolls[0]
	}
	return r.Rolls[r.Kept]
}

// keepIndex returns the index of the die to keep from a two-die draw.
// Ties keep the first die.
func keepIndex(rolls []int, highest bool) int {
	kept := 0
	for i, roll := range rolls {
		if highest && roll > rolls[kept] {
			kept = i
		}
		if !highest && roll < rolls[kept] {
			kept = i
		}
	}
	return kept
}
