package dice

import (
	"errors"
	"math/rand/v2"
)

var (
	errInvalidCount = errors.New("invalid dice count")
	errInvalidSides = errors.New("invalid dice size")
)

// randomRoller implements Roller with a uniform random source
type randomRoller struct {
	intn func(n int) int
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{intn: rand.IntN}
}

func (r *randomRoller) draw(count, sides int) ([]int, error) {
	if count < 1 || count > 2*MaxDiceCount {
		return nil, errInvalidCount
	}
	if sides < 1 || sides > MaxDieSides {
		return nil, errInvalidSides
	}

	out := make([]int, count)
	for i := range out {
		out[i] = r.intn(sides) + 1
	}
	return out, nil
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	rolls, err := r.draw(count, sides)
	if err != nil {
		return nil, err
	}

	raw := 0
	for _, roll := range rolls {
		raw += roll
	}

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}, nil
}

// RollWithAdvantage implements Roller.RollWithAdvantage
func (r *randomRoller) RollWithAdvantage(sides, bonus int) (*RollResult, error) {
	return r.rollKeep(sides, bonus, true)
}

// RollWithDisadvantage implements Roller.RollWithDisadvantage
func (r *randomRoller) RollWithDisadvantage(sides, bonus int) (*RollResult, error) {
	return r.rollKeep(sides, bonus, false)
}

func (r *randomRoller) rollKeep(sides, bonus int, highest bool) (*RollResult, error) {
	rolls, err := r.draw(2, sides)
	if err != nil {
		return nil, err
	}

	kept := keepIndex(rolls, highest)
	return &RollResult{
		Total:    rolls[kept] + bonus,
		Rolls:    rolls, // Show both rolls
		Kept:     kept,
		Bonus:    bonus,
		Count:    1,
		Sides:    sides,
		RawTotal: rolls[kept],
	}, nil
}
