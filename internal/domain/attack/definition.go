package attack

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/signature-weapons/internal/dice"
)

// Category groups attacks in the menu
type Category string

const (
	CategoryStandard Category = "standard"
	CategorySpecial  Category = "special"
)

// Definition is one named attack of a signature weapon. Definitions are
// static data and are never modified after the catalog is loaded.
type Definition struct {
	ID               string        `yaml:"id" json:"id"`
	Label            string        `yaml:"label" json:"label"`
	Flavor           string        `yaml:"flavor" json:"flavor"`
	Damage           string        `yaml:"damage" json:"damage"`
	CritHitModifier  int           `yaml:"crit_hit_modifier" json:"crit_hit_modifier"`
	CritFailModifier int           `yaml:"crit_fail_modifier" json:"crit_fail_modifier"`
	MinimumLevel     int           `yaml:"minimum_level" json:"minimum_level"`
	Category         Category      `yaml:"category" json:"category"`
	Special          SpecialEffect `yaml:"special" json:"special,omitempty"`

	// Menu and tooltip text
	Description    string   `yaml:"description" json:"description"`
	BestFor        []string `yaml:"best_for" json:"best_for,omitempty"`
	Tactics        string   `yaml:"tactics" json:"tactics"`
	SpecialSummary string   `yaml:"special_summary" json:"special_summary,omitempty"`
	// EffectNote is shown with the result when the special triggers
	EffectNote     string   `yaml:"effect_note" json:"effect_note,omitempty"`

	expression dice.Expression
	parsed     bool
}

// Expression returns the parsed damage expression. Validate must have
// succeeded first; otherwise the string is parsed on demand.
func (d *Definition) Expression() (dice.Expression, error) {
	if d.parsed {
		return d.expression, nil
	}
	return dice.ParseExpression(d.Damage)
}

// Validate checks the definition is usable and caches its parsed damage.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("attack definition missing id")
	}
	if d.Label == "" {
		return fmt.Errorf("attack %q missing label", d.ID)
	}
	if d.MinimumLevel < 1 {
		return fmt.Errorf("attack %q minimum level must be at least 1, got %d", d.ID, d.MinimumLevel)
	}
	if !d.Special.Valid() {
		return fmt.Errorf("attack %q has unknown special %q", d.ID, d.Special)
	}
	switch d.Category {
	case "":
		d.Category = CategoryStandard
		if d.Special != SpecialNone {
			d.Category = CategorySpecial
		}
	case CategoryStandard, CategorySpecial:
	default:
		return fmt.Errorf("attack %q has unknown category %q", d.ID, d.Category)
	}

	expr, err := dice.ParseExpression(d.Damage)
	if err != nil {
		return fmt.Errorf("attack %q damage: %w", d.ID, err)
	}
	d.expression = expr
	d.parsed = true
	return nil
}

// Warnings reports data authoring problems that do not make the attack
// unusable, such as crit and fumble ranges that overlap at the default
// crit threshold.
func (d *Definition) Warnings() []string {
	var warnings []string
	crit := max(1, 20+d.CritHitModifier)
	fumble := 1 + d.CritFailModifier
	if fumble >= crit {
		warnings = append(warnings, fmt.Sprintf(
			"attack %q fumble range 1-%d overlaps crit range %d-20", d.ID, fumble, crit))
	}
	return warnings
}

// CritRange renders the crit range at the default threshold, e.g. "20" or "19-20".
func (d *Definition) CritRange() string {
	return d.CritRangeFrom(20)
}

// CritRangeFrom renders the crit range for an actor's base crit threshold.
func (d *Definition) CritRangeFrom(base int) string {
	threshold := max(1, base+d.CritHitModifier)
	if threshold >= 20 {
		return "20"
	}
	return strconv.Itoa(threshold) + "-20"
}

// FumbleRange renders the fumble range, e.g. "1" or "1-3".
func (d *Definition) FumbleRange() string {
	threshold := 1 + d.CritFailModifier
	switch {
	case threshold < 1:
		return "none"
	case threshold == 1:
		return "1"
	default:
		return "1-" + strconv.Itoa(threshold)
	}
}

// Available reports whether a character of the given level may use the attack.
func (d *Definition) Available(level int) bool {
	return level >= d.MinimumLevel
}
