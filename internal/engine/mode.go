package engine

import (
	"fmt"
	"strings"
)

// RollMode determines how many d20s are drawn and which one counts
type RollMode string

const (
	RollModeNormal       RollMode = "normal"
	RollModeAdvantage    RollMode = "advantage"
	RollModeDisadvantage RollMode = "disadvantage"
)

// ParseRollMode accepts the long names and the "adv"/"dis" shorthands.
// An empty string is Normal.
func ParseRollMode(s string) (RollMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return RollModeNormal, nil
	case "adv", "advantage":
		return RollModeAdvantage, nil
	case "dis", "disadvantage":
		return RollModeDisadvantage, nil
	default:
		return "", fmt.Errorf("unknown roll mode %q", s)
	}
}

// Label is the short display form
func (m RollMode) Label() string {
	switch m {
	case RollModeAdvantage:
		return "Advantage"
	case RollModeDisadvantage:
		return "Disadvantage"
	default:
		return "Normal"
	}
}
