package narrative

import (
	"fmt"
	"strings"
)

const defaultSystemPrompt = "You are a dramatic combat narrator. Be vivid, concise, and exciting. No preamble or meta-commentary."

// BuildPrompt renders the system and user prompts for a request
func BuildPrompt(req *Request) (system, user string) {
	system = strings.TrimSpace(req.Voice.System)
	if system == "" {
		system = defaultSystemPrompt
	}

	var b strings.Builder
	b.WriteString("You are a dramatic combat narrator for a D&D 5e game")
	if req.WeaponName != "" {
		b.WriteString(" using a specific weapon")
	}
	b.WriteString(". Generate a vivid, concise combat description focusing on the attack action, not the result, (2-3 sentences max) for this attack:\n")

	if req.WeaponName != "" {
		if req.WeaponType != "" {
			fmt.Fprintf(&b, "Weapon: %s (%s)\n", req.WeaponName, req.WeaponType)
		} else {
			fmt.Fprintf(&b, "Weapon: %s\n", req.WeaponName)
		}
	}
	fmt.Fprintf(&b, "Attack: %s\n", req.AttackName)
	fmt.Fprintf(&b, "Context: %s\n", req.Flavor)
	if req.Voice.Character != "" {
		fmt.Fprintf(&b, "Character: %s (%s)\n", req.ActorName, req.Voice.Character)
	} else {
		fmt.Fprintf(&b, "Character: %s\n", req.ActorName)
	}
	fmt.Fprintf(&b, "Result: %s", req.Outcome)
	if req.Damage != nil {
		fmt.Fprintf(&b, "\nDamage: %d", *req.Damage)
	}
	b.WriteString(customContext(req.Customization))

	b.WriteString("\n\nRULES:\n")
	guidance := req.Voice.Guidance
	if len(guidance) == 0 {
		guidance = []string{
			"Make it cinematic and specific to the result.",
			"Focus on the action, not the impact. Use vivid action verbs.",
			"Keep it under 40 words.",
		}
	}
	for _, line := range guidance {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	return system, strings.TrimRight(b.String(), "\n")
}

func customContext(c *Customization) string {
	if c.IsEmpty() {
		return ""
	}

	var b strings.Builder
	if c.CalledShot != CalledShotNone && c.CalledDetail != "" {
		fmt.Fprintf(&b, "\nCalled Shot: Targeting %s - %s", c.CalledShot.Target(), c.CalledDetail)
	}
	if c.Style != "" {
		fmt.Fprintf(&b, "\nStyle: %s", c.Style)
	}
	return b.String()
}
