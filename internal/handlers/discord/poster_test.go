package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	channelID string
	sent      *discordgo.MessageSend
	err       error
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channelID = channelID
	f.sent = data
	return &discordgo.Message{ID: "msg-1", ChannelID: channelID}, nil
}

func TestChannelPoster_Post(t *testing.T) {
	sender := &fakeSender{}
	poster := NewChannelPoster(sender)

	err := poster.Post(context.Background(), "channel-1", testOutcome(t, 12))
	require.NoError(t, err)

	assert.Equal(t, "channel-1", sender.channelID)
	require.Len(t, sender.sent.Embeds, 1)
	assert.Equal(t, "⚔️ Giant's Thrust", sender.sent.Embeds[0].Title)
}

func TestChannelPoster_Errors(t *testing.T) {
	failure := errors.New("missing access")
	poster := NewChannelPoster(&fakeSender{err: failure})

	err := poster.Post(context.Background(), "channel-1", testOutcome(t, 12))
	assert.ErrorIs(t, err, failure)

	assert.Error(t, poster.Post(context.Background(), "", testOutcome(t, 12)))
	assert.Error(t, poster.Post(context.Background(), "channel-1", nil))
	assert.Panics(t, func() { NewChannelPoster(nil) })
}
