package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/signature-weapons/internal/services/attack"
)

// MessageSender is the part of *discordgo.Session the poster needs
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelPoster posts attack cards to a Discord channel
type ChannelPoster struct {
	sender MessageSender
}

var _ attack.ChatPoster = (*ChannelPoster)(nil)

// NewChannelPoster creates a poster over a Discord session
func NewChannelPoster(sender MessageSender) *ChannelPoster {
	if sender == nil {
		panic("message sender is required")
	}
	return &ChannelPoster{sender: sender}
}

// Post sends the attack card. The request is bound to ctx.
func (p *ChannelPoster) Post(ctx context.Context, channelID string, out *attack.Outcome) error {
	if channelID == "" {
		return fmt.Errorf("channel id is required")
	}
	if out == nil || out.Result == nil {
		return fmt.Errorf("attack outcome is required")
	}

	_, err := p.sender.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{AttackEmbed(out)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send attack card: %w", err)
	}
	return nil
}
