package attack

//go:generate mockgen -destination=mock/mock_chat_poster.go -package=mockattack -source=poster.go

import (
	"context"
)

// ChatPoster publishes a finished attack to a chat channel
type ChatPoster interface {
	Post(ctx context.Context, channelID string, outcome *Outcome) error
}
