package sessions

import (
	"context"

	"github.com/KirkDiggler/signature-weapons/internal/domain/session"
)

// Repository stores attack sessions. Sessions are keyed by the Discord user
// ID, so a missing session is not an error: Get hands back the defaults.
type Repository interface {
	Get(ctx context.Context, id string) (*session.AttackSession, error)
	Save(ctx context.Context, s *session.AttackSession) error
	Delete(ctx context.Context, id string) error
}
