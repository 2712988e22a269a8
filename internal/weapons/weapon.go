package weapons

import (
	"strings"

	"github.com/KirkDiggler/signature-weapons/internal/domain/attack"
)

// MatchRule controls how inventory item names are compared to ItemKey
type MatchRule string

const (
	MatchContains MatchRule = "contains"
	MatchExact    MatchRule = "exact"
)

// Narrator configures the narrative voice for a weapon
type Narrator struct {
	Character   string   `yaml:"character"`
	System      string   `yaml:"system"`
	Guidance    []string `yaml:"guidance"`
	Temperature float64  `yaml:"temperature"`
}

// Weapon is a signature weapon and its attack table
type Weapon struct {
	ID         string               `yaml:"id"`
	Name       string               `yaml:"name"`
	Type       string               `yaml:"type"`
	BaseWeapon string               `yaml:"base_weapon"`
	Match      MatchRule            `yaml:"match"`
	ItemKey    string               `yaml:"item_key"`
	Color      int                  `yaml:"color"`
	Narrator   Narrator             `yaml:"narrator"`
	Attacks    []*attack.Definition `yaml:"attacks"`

	byID map[string]*attack.Definition
}

// MenuEntry is one line of the attack menu for a given character level
type MenuEntry struct {
	Attack *attack.Definition
	Locked bool
}

// Attack returns the attack with id, or nil
func (w *Weapon) Attack(id string) *attack.Definition {
	if w.byID != nil {
		return w.byID[id]
	}
	for _, a := range w.Attacks {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AttacksFor lists every attack in table order, marking the ones above level
// as locked.
func (w *Weapon) AttacksFor(level int) []MenuEntry {
	entries := make([]MenuEntry, 0, len(w.Attacks))
	for _, a := range w.Attacks {
		entries = append(entries, MenuEntry{Attack: a, Locked: !a.Available(level)})
	}
	return entries
}

// Matches reports whether an inventory item name refers to this weapon.
// Whitespace and case are ignored.
func (w *Weapon) Matches(itemName string) bool {
	normalized := NormalizeItemName(itemName)
	if normalized == "" {
		return false
	}
	if w.Match == MatchExact {
		return normalized == w.ItemKey
	}
	return strings.Contains(normalized, w.ItemKey)
}

// NormalizeItemName strips all whitespace and lowercases name
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
