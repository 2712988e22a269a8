// Package character holds the actor snapshot the attack flow reads from and
// writes temporary hit points to.
package character

import (
	"sync"
	"time"

	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
)

type Character struct {
	ID               string                             `json:"id" yaml:"id"`
	OwnerID          string                             `json:"owner_id" yaml:"owner_id"`
	Name             string                             `json:"name" yaml:"name"`
	Level            int                                `json:"level" yaml:"level"`
	ProficiencyBonus int                                `json:"proficiency_bonus,omitempty" yaml:"proficiency_bonus"`
	Attributes       map[shared.Attribute]*AbilityScore `json:"attributes" yaml:"attributes"`
	Inventory        []*Item                            `json:"inventory" yaml:"inventory"`
	Effects          []*ActiveEffect                    `json:"effects,omitempty" yaml:"effects"`
	Bonuses          Bonuses                            `json:"bonuses" yaml:"bonuses"`
	Flags            map[string]string                  `json:"flags,omitempty" yaml:"flags"`

	MaxHitPoints     int `json:"max_hit_points" yaml:"max_hit_points"`
	CurrentHitPoints int `json:"current_hit_points" yaml:"current_hit_points"`
	TempHitPoints    int `json:"temp_hit_points" yaml:"temp_hit_points"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`

	mu sync.Mutex
}

// GetLevel returns the level, treating unset as 1
func (c *Character) GetLevel() int {
	if c.Level < 1 {
		return 1
	}
	return c.Level
}

// GetProficiencyBonus returns the explicit bonus or derives it from level
func (c *Character) GetProficiencyBonus() int {
	if c.ProficiencyBonus != 0 {
		return c.ProficiencyBonus
	}
	return 2 + (c.GetLevel()-1)/4
}

// Modifier returns the ability modifier, 0 when the score is missing
func (c *Character) Modifier(attr shared.Attribute) int {
	score, ok := c.Attributes[attr]
	if !ok || score == nil {
		return 0
	}
	return shared.Modifier(score.Score)
}

// IsOwnedBy reports whether userID may modify the character
func (c *Character) IsOwnedBy(userID string) bool {
	return userID != "" && c.OwnerID == userID
}

// FindWeapon returns the first weapon item whose name satisfies match
func (c *Character) FindWeapon(match func(name string) bool) *Item {
	for _, item := range c.Inventory {
		if item.IsWeapon() && match(item.Name) {
			return item
		}
	}
	return nil
}

// EnabledEffects returns effects that are not disabled
func (c *Character) EnabledEffects() []*ActiveEffect {
	out := make([]*ActiveEffect, 0, len(c.Effects))
	for _, effect := range c.Effects {
		if effect != nil && !effect.Disabled {
			out = append(out, effect)
		}
	}
	return out
}

// GrantTempHP applies temporary hit points without stacking: the higher of
// the current and granted values is kept. It reports whether the value rose.
func (c *Character) GrantTempHP(amount int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if amount <= c.TempHitPoints {
		return c.TempHitPoints, false
	}
	c.TempHitPoints = amount
	return c.TempHitPoints, true
}

// Clone returns a deep copy safe to hand out of a repository
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := &Character{
		ID:               c.ID,
		OwnerID:          c.OwnerID,
		Name:             c.Name,
		Level:            c.Level,
		ProficiencyBonus: c.ProficiencyBonus,
		Bonuses:          c.Bonuses,
		MaxHitPoints:     c.MaxHitPoints,
		CurrentHitPoints: c.CurrentHitPoints,
		TempHitPoints:    c.TempHitPoints,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}

	if c.Attributes != nil {
		clone.Attributes = make(map[shared.Attribute]*AbilityScore, len(c.Attributes))
		for attr, score := range c.Attributes {
			if score == nil {
				continue
			}
			s := *score
			clone.Attributes[attr] = &s
		}
	}
	// Empty YAML list entries decode as nil and are dropped
	for _, item := range c.Inventory {
		if item == nil {
			continue
		}
		i := *item
		clone.Inventory = append(clone.Inventory, &i)
	}
	for _, effect := range c.Effects {
		if effect == nil {
			continue
		}
		e := &ActiveEffect{ID: effect.ID, Name: effect.Name, Disabled: effect.Disabled}
		for _, change := range effect.Changes {
			if change == nil {
				continue
			}
			ch := *change
			e.Changes = append(e.Changes, &ch)
		}
		clone.Effects = append(clone.Effects, e)
	}
	if c.Flags != nil {
		clone.Flags = make(map[string]string, len(c.Flags))
		for k, v := range c.Flags {
			clone.Flags[k] = v
		}
	}
	return clone
}
