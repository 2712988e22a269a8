package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/signature-weapons/internal/weapons"
)

// Command names
const (
	CommandWeapon         = "weapon"
	CommandAttack         = "attack"
	CommandAttackSettings = "attack-settings"
	CommandNarrativeKey   = "narrative-key"
)

// Option names
const (
	optWeapon       = "weapon"
	optAttack       = "attack"
	optMode         = "mode"
	optCharacter    = "character"
	optCalledShot   = "called_shot"
	optCalledDetail = "called_detail"
	optStyle        = "style"
	optAI           = "ai"
	optKey          = "key"
)

var modeChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Normal", Value: "normal"},
	{Name: "Advantage", Value: "advantage"},
	{Name: "Disadvantage", Value: "disadvantage"},
}

// Commands returns the slash commands for the loaded catalog. Weapon
// choices come from the catalog so new tables show up without code changes.
func Commands(catalog *weapons.Catalog) []*discordgo.ApplicationCommand {
	weaponChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0)
	for _, w := range catalog.List() {
		weaponChoices = append(weaponChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  w.Name,
			Value: w.ID,
		})
	}

	weaponOption := &discordgo.ApplicationCommandOption{
		Name:        optWeapon,
		Description: "Signature weapon",
		Type:        discordgo.ApplicationCommandOptionString,
		Required:    true,
		Choices:     weaponChoices,
	}
	characterOption := &discordgo.ApplicationCommandOption{
		Name:        optCharacter,
		Description: "Character ID, when you have more than one",
		Type:        discordgo.ApplicationCommandOptionString,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandWeapon,
			Description: "Show a signature weapon's attacks",
			Options: []*discordgo.ApplicationCommandOption{
				weaponOption,
				characterOption,
			},
		},
		{
			Name:        CommandAttack,
			Description: "Attack with a signature weapon",
			Options: []*discordgo.ApplicationCommandOption{
				weaponOption,
				{
					Name:         optAttack,
					Description:  "Attack ID, see /weapon",
					Type:         discordgo.ApplicationCommandOptionString,
					Required:     true,
					Autocomplete: true,
				},
				{
					Name:        optMode,
					Description: "Roll mode for this attack",
					Type:        discordgo.ApplicationCommandOptionString,
					Choices:     modeChoices,
				},
				characterOption,
				{
					Name:        optCalledShot,
					Description: "Aim at something specific",
					Type:        discordgo.ApplicationCommandOptionString,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Body Part", Value: "body"},
						{Name: "Object", Value: "object"},
						{Name: "Creature", Value: "creature"},
					},
				},
				{
					Name:        optCalledDetail,
					Description: "What the called shot aims at",
					Type:        discordgo.ApplicationCommandOptionString,
					MaxLength:   100,
				},
				{
					Name:        optStyle,
					Description: "Extra style for the narrative",
					Type:        discordgo.ApplicationCommandOptionString,
					MaxLength:   100,
				},
			},
		},
		{
			Name:        CommandAttackSettings,
			Description: "Set your default roll mode and AI narrative",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optMode,
					Description: "Default roll mode",
					Type:        discordgo.ApplicationCommandOptionString,
					Choices:     modeChoices,
				},
				{
					Name:        optAI,
					Description: "Generate AI narratives",
					Type:        discordgo.ApplicationCommandOptionBoolean,
				},
			},
		},
		{
			Name:        CommandNarrativeKey,
			Description: "Set your own narrative API key (leave empty to clear)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optKey,
					Description: "API key",
					Type:        discordgo.ApplicationCommandOptionString,
				},
			},
		},
	}
}
