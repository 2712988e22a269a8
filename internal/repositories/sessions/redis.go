package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/signature-weapons/internal/domain/session"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
)

// DefaultTTL bounds how long an idle session is remembered
const DefaultTTL = 24 * time.Hour

// Data is the stored form of an attack session
type Data struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Mode        string    `json:"mode"`
	UseAI       bool      `json:"use_ai"`
	LockedUntil time.Time `json:"locked_until"`
	APIKey      string    `json:"api_key,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RedisConfig holds configuration for the Redis session repository
type RedisConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a Redis-backed session repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, dnderr.MissingParam("Client")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          ttl,
	}, nil
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("attack_session:%s", id)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*session.AttackSession, error) {
	if id == "" {
		return nil, dnderr.MissingParam("id")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.NewAttackSession(id, id), nil
		}
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return toSession(&data), nil
}

func (r *redisRepo) Save(ctx context.Context, s *session.AttackSession) error {
	if s == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if s.ID == "" {
		return dnderr.MissingParam("id")
	}

	s.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(toSessionData(s))
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := r.client.Set(ctx, r.key(s.ID), string(jsonData), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from Redis: %w", err)
	}
	return nil
}

func toSessionData(s *session.AttackSession) *Data {
	return &Data{
		ID:          s.ID,
		UserID:      s.UserID,
		Mode:        string(s.Mode),
		UseAI:       s.UseAI,
		LockedUntil: s.LockedUntil,
		APIKey:      s.APIKey,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSession(data *Data) *session.AttackSession {
	mode, err := engine.ParseRollMode(data.Mode)
	if err != nil {
		mode = engine.RollModeNormal
	}

	return &session.AttackSession{
		ID:          data.ID,
		UserID:      data.UserID,
		Mode:        mode,
		UseAI:       data.UseAI,
		LockedUntil: data.LockedUntil,
		APIKey:      data.APIKey,
		UpdatedAt:   data.UpdatedAt,
	}
}
