package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	damage := 14
	req := &Request{
		WeaponName: "Mace of the Deepsong",
		WeaponType: "mace",
		AttackName: "Heavy Smash",
		Flavor:     "Raising the mace high overhead.",
		Outcome:    "critical hit",
		Damage:     &damage,
		ActorName:  "Rodnar",
		Voice: Voice{
			Character: "Priest of Shayl, God of Minerals",
			System:    "You narrate ONLY mace attacks.",
			Guidance:  []string{"Describe ONLY a MACE attack."},
		},
		Customization: &Customization{
			CalledShot:   CalledShotBody,
			CalledDetail: "left knee",
			Style:        "reverent",
		},
	}

	system, user := BuildPrompt(req)

	assert.Equal(t, "You narrate ONLY mace attacks.", system)
	assert.Contains(t, user, "Weapon: Mace of the Deepsong (mace)\n")
	assert.Contains(t, user, "Attack: Heavy Smash\n")
	assert.Contains(t, user, "Context: Raising the mace high overhead.\n")
	assert.Contains(t, user, "Character: Rodnar (Priest of Shayl, God of Minerals)\n")
	assert.Contains(t, user, "Result: critical hit\nDamage: 14")
	assert.Contains(t, user, "\nCalled Shot: Targeting body part - left knee")
	assert.Contains(t, user, "\nStyle: reverent")
	assert.Contains(t, user, "- Describe ONLY a MACE attack.")
}

func TestBuildPrompt_Minimal(t *testing.T) {
	req := &Request{
		AttackName: "Giant's Thrust",
		Flavor:     "A straightforward thrust.",
		Outcome:    "critical fumble/miss",
		ActorName:  "Brynja",
	}

	system, user := BuildPrompt(req)

	assert.Equal(t, defaultSystemPrompt, system)
	assert.NotContains(t, user, "Weapon:")
	assert.NotContains(t, user, "Damage:")
	assert.NotContains(t, user, "Called Shot")
	assert.Contains(t, user, "Character: Brynja\n")
	assert.Contains(t, user, "Keep it under 40 words.")
}

func TestCustomContext(t *testing.T) {
	tests := []struct {
		name     string
		custom   *Customization
		expected string
	}{
		{name: "nil", custom: nil, expected: ""},
		{name: "shot without detail", custom: &Customization{CalledShot: CalledShotObject}, expected: ""},
		{name: "object", custom: &Customization{CalledShot: CalledShotObject, CalledDetail: "shield"}, expected: "\nCalled Shot: Targeting object - shield"},
		{name: "creature", custom: &Customization{CalledShot: CalledShotCreature, CalledDetail: "troll"}, expected: "\nCalled Shot: Targeting creature type - troll"},
		{name: "unknown kind", custom: &Customization{CalledShot: "limb", CalledDetail: "arm"}, expected: "\nCalled Shot: Targeting target - arm"},
		{name: "style only", custom: &Customization{Style: "grim"}, expected: "\nStyle: grim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, customContext(tt.custom))
		})
	}
}
