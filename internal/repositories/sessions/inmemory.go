package sessions

import (
	"context"
	"sync"

	"github.com/KirkDiggler/signature-weapons/internal/domain/session"
	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
)

// InMemoryRepository keeps sessions in process memory
type InMemoryRepository struct {
	mu           sync.RWMutex
	sessions     map[string]*session.AttackSession
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory session repository
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &InMemoryRepository{
		sessions:     make(map[string]*session.AttackSession),
		timeProvider: timeProvider,
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*session.AttackSession, error) {
	if id == "" {
		return nil, dnderr.MissingParam("id")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return session.NewAttackSession(id, id), nil
	}

	out := *s
	return &out, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, s *session.AttackSession) error {
	if s == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if s.ID == "" {
		return dnderr.MissingParam("id")
	}

	s.UpdatedAt = r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *s
	r.sessions[s.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}
