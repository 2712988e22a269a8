// Package builders assembles Discord embeds.
package builders

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord limits
const (
	maxTitle       = 256
	maxDescription = 4096
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxFooter      = 2048
	maxFields      = 25
)

// Embed colors
const (
	ColorError    = 0xc0392b // fumbles and failures
	ColorWarning  = 0xffaa00
	ColorInfo     = 0x0099ff
	ColorCritical = 0xf1c40f
	ColorPrimary  = 0x7289da // Discord Blurple
)

// EmbedBuilder provides a fluent API for building Discord embeds. Text is
// clipped to Discord's limits instead of failing the send.
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = clip(title, maxTitle)
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = clip(description, maxDescription)
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Timestamp sets the embed timestamp
func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

// Author sets the embed author line
func (b *EmbedBuilder) Author(name string) *EmbedBuilder {
	b.embed.Author = &discordgo.MessageEmbedAuthor{Name: clip(name, maxTitle)}
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: clip(text, maxFooter)}
	return b
}

// Field adds a field to the embed. Fields past Discord's limit are dropped.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if len(b.embed.Fields) >= maxFields {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   clip(name, maxFieldName),
		Value:  clip(value, maxFieldValue),
		Inline: inline,
	})
	return b
}

// FieldIf adds the field only when value is not empty
func (b *EmbedBuilder) FieldIf(name, value string, inline bool) *EmbedBuilder {
	if value == "" {
		return b
	}
	return b.Field(name, value, inline)
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
