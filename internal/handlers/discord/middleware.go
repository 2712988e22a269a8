package discord

import (
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// RecoverMiddleware wraps an interaction handler so a panic is logged and
// reported to the user instead of taking the bot down.
func RecoverMiddleware(logger *zap.Logger, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in interaction handler",
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				respondWithError(logger, s, i, "Something went wrong resolving that command.")
			}
		}()

		handler(s, i)
	}
}

// respondWithError tries each response method in turn, since the panic may
// have happened before or after the interaction was acknowledged.
func respondWithError(logger *zap.Logger, s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	content := "❌ " + message
	responses := []func() error{
		func() error {
			return respondEphemeral(s, i, content)
		},
		func() error {
			return editResponse(s, i, content)
		},
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	logger.Warn("failed to send error response", zap.String("message", message))
}
