package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/signature-weapons/internal/clients/dnd5e"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
	"github.com/KirkDiggler/signature-weapons/internal/handlers/discord/builders"
	"github.com/KirkDiggler/signature-weapons/internal/narrative"
	"github.com/KirkDiggler/signature-weapons/internal/services/attack"
)

// AttackEmbed renders a resolved attack as a chat card
func AttackEmbed(out *attack.Outcome) *discordgo.MessageEmbed {
	result := out.Result

	var description strings.Builder
	description.WriteString("*" + out.Narrative + "*")
	if text := critText(result); text != "" {
		description.WriteString("\n\n**" + text + "**")
	}
	if text := customizationText(out.Customization); text != "" {
		description.WriteString("\n\n" + text)
	}

	b := builders.NewEmbed().
		Author(out.Character.Name).
		Title("⚔️ " + out.Attack.Label).
		Description(description.String()).
		Color(attackColor(out)).
		Field("Attack Roll", fmt.Sprintf("**%d** (d20: %s)", result.TotalToHit, d20Text(result.AttackRoll)), true).
		Field("Damage Roll", damageText(result), true).
		Field("Attack Modifiers", attackModifierText(result.AttackModifiers), false).
		Field("Damage Modifiers", damageModifierText(result), false)

	if out.Special != nil {
		b.FieldIf(out.Special.Title, out.Special.Text, false)
	}
	b.FieldIf("Notes", bulletList("", out.Notices), false)
	b.FieldIf("Warnings", bulletList("⚠️ ", out.Warnings), false)

	return b.Footer(fmt.Sprintf("%s • %s", out.Weapon.Name, out.Mode.Label())).Build()
}

func critText(result *engine.Result) string {
	switch {
	case result.IsCriticalHit && result.CritThreshold < 20:
		return fmt.Sprintf("Critical Hit (%d+)", result.CritThreshold)
	case result.IsCriticalHit:
		return "Critical Hit (Natural 20)"
	case result.Fumbled():
		return fmt.Sprintf("Critical Failure (Natural %d)", result.NaturalRoll)
	}
	return ""
}

func attackColor(out *attack.Outcome) int {
	switch {
	case out.Result.IsCriticalHit:
		return builders.ColorCritical
	case out.Result.Fumbled():
		return builders.ColorError
	case out.Weapon.Color != 0:
		return out.Weapon.Color
	}
	return builders.ColorPrimary
}

func customizationText(c *narrative.Customization) string {
	if c.IsEmpty() {
		return ""
	}

	var parts []string
	if c.CalledShot != narrative.CalledShotNone && c.CalledDetail != "" {
		label := map[narrative.CalledShot]string{
			narrative.CalledShotBody:     "🎯 Body Part",
			narrative.CalledShotObject:   "🏰 Object",
			narrative.CalledShotCreature: "🐉 Creature",
		}[c.CalledShot]
		if label == "" {
			label = "🎯 Target"
		}
		parts = append(parts, fmt.Sprintf("%s: *%s*", label, c.CalledDetail))
	}
	if c.Style != "" {
		parts = append(parts, fmt.Sprintf("✨ Style: *%s*", c.Style))
	}
	return strings.Join(parts, " • ")
}

// d20Text lists the dice drawn with the kept die in bold
func d20Text(roll *engine.D20Roll) string {
	if roll == nil {
		return "?"
	}
	if len(roll.Rolls) < 2 {
		return strconv.Itoa(roll.Natural)
	}
	parts := make([]string, len(roll.Rolls))
	for i, r := range roll.Rolls {
		if i == roll.Kept {
			parts[i] = "**" + strconv.Itoa(r) + "**"
		} else {
			parts[i] = "~~" + strconv.Itoa(r) + "~~"
		}
	}
	return strings.Join(parts, ", ")
}

func damageText(result *engine.Result) string {
	if result.Damage == nil {
		return fmt.Sprintf("**%d**", result.DamageTotal)
	}
	rolls := make([]string, 0)
	for _, r := range result.Damage.Rolls() {
		rolls = append(rolls, strconv.Itoa(r))
	}
	return fmt.Sprintf("**%d** (%s: %s)", result.DamageTotal, result.DamageExpression, strings.Join(rolls, ", "))
}

func attackModifierText(m engine.AttackModifiers) string {
	return fmt.Sprintf("STR %+d • Prof %+d • Weapon %+d • Other %+d • **Total %+d**",
		m.Strength, m.Proficiency, m.Weapon, m.Other, m.Total())
}

func damageModifierText(result *engine.Result) string {
	m := result.DamageModifiers
	return fmt.Sprintf("Dice %s • STR %+d • Weapon %+d • Other %+d",
		result.DamageExpression, m.Strength, m.Weapon, m.Other)
}

func bulletList(prefix string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(prefix + line)
	}
	return sb.String()
}

// WeaponEmbed renders the attack menu for /weapon. base may be nil when the
// reference lookup failed.
func WeaponEmbed(menu *attack.ListAttacksOutput, base *dnd5e.BaseWeapon) *discordgo.MessageEmbed {
	description := fmt.Sprintf("%s • Level %d • Crit on %d+",
		menu.Character.Name, menu.Level, menu.CritThreshold)
	if base != nil {
		description += "\n" + baseWeaponText(base)
	}

	color := menu.Weapon.Color
	if color == 0 {
		color = builders.ColorPrimary
	}

	b := builders.NewEmbed().
		Title(menu.Weapon.Name).
		Description(description).
		Color(color)

	for _, entry := range menu.Entries {
		def := entry.Attack
		name := fmt.Sprintf("%s (`%s`)", def.Label, def.ID)
		if entry.Locked {
			name = "🔒 " + name
		}

		lines := []string{
			fmt.Sprintf("Damage: %s • Requires: Level %d+ • Crit: %s • Fumble: %s",
				damageOrDash(def.Damage), def.MinimumLevel,
				def.CritRangeFrom(menu.CritThreshold), fumbleText(def.FumbleRange(), def.CritFailModifier)),
		}
		if def.Description != "" {
			lines = append(lines, def.Description)
		}
		if def.SpecialSummary != "" {
			lines = append(lines, "Special: "+def.SpecialSummary)
		}
		if def.Tactics != "" {
			lines = append(lines, "Tactics: "+def.Tactics)
		}
		b.Field(name, strings.Join(lines, "\n"), false)
	}

	return b.Footer("Use /attack to strike").Build()
}

func baseWeaponText(base *dnd5e.BaseWeapon) string {
	text := fmt.Sprintf("Base: %s (%s %s", base.Name, base.Category, base.Range)
	if base.DamageDice != "" {
		text += fmt.Sprintf(", %s %s", base.DamageDice, base.DamageType)
	}
	text += ")"
	if len(base.Properties) > 0 {
		text += " • " + strings.Join(base.Properties, ", ")
	}
	return text
}

// fumbleText marks widened fumble ranges with one warning per extra face
func fumbleText(fumbleRange string, modifier int) string {
	if modifier <= 0 {
		return fumbleRange
	}
	return fumbleRange + " " + strings.Repeat("⚠️", modifier)
}

func damageOrDash(damage string) string {
	if damage == "" {
		return "-"
	}
	return damage
}
