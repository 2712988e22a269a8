package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/signature-weapons/internal/engine"
	"github.com/KirkDiggler/signature-weapons/internal/narrative"
	"github.com/KirkDiggler/signature-weapons/internal/services/attack"
)

type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func newOptionMap(options []*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	m := make(optionMap, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func (m optionMap) String(name string) string {
	opt, ok := m[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

// Bool returns nil when the option was not given
func (m optionMap) Bool(name string) *bool {
	opt, ok := m[name]
	if !ok {
		return nil
	}
	v := opt.BoolValue()
	return &v
}

// focused returns the option being autocompleted
func (m optionMap) focused() *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range m {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

// interactionUserID works for guild and direct message interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// performInput maps /attack options onto the service input
func performInput(userID, channelID string, opts optionMap) (*attack.PerformInput, error) {
	input := &attack.PerformInput{
		UserID:      userID,
		ChannelID:   channelID,
		WeaponID:    opts.String(optWeapon),
		AttackID:    strings.ToLower(opts.String(optAttack)),
		CharacterID: opts.String(optCharacter),
	}

	if raw := opts.String(optMode); raw != "" {
		mode, err := engine.ParseRollMode(raw)
		if err != nil {
			return nil, err
		}
		input.Mode = mode
	}

	custom := &narrative.Customization{
		CalledShot:   narrative.CalledShot(opts.String(optCalledShot)),
		CalledDetail: opts.String(optCalledDetail),
		Style:        opts.String(optStyle),
	}
	if !custom.IsEmpty() {
		input.Customization = custom
	}

	return input, nil
}
