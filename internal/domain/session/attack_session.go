// Package session holds the per-user attack state: roll mode preference,
// narrative toggle, the cooldown lock and an optional narrative credential.
package session

import (
	"time"

	"github.com/KirkDiggler/signature-weapons/internal/engine"
)

// AttackSession is scoped to one user across all of their weapons
type AttackSession struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Mode        engine.RollMode `json:"mode"`
	UseAI       bool            `json:"use_ai"`
	LockedUntil time.Time       `json:"locked_until"`
	APIKey      string          `json:"api_key,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewAttackSession returns the defaults: normal rolls, narrative on, unlocked
func NewAttackSession(id, userID string) *AttackSession {
	return &AttackSession{
		ID:     id,
		UserID: userID,
		Mode:   engine.RollModeNormal,
		UseAI:  true,
	}
}

// IsLocked reports whether a cooldown is still running at now
func (s *AttackSession) IsLocked(now time.Time) bool {
	return now.Before(s.LockedUntil)
}

// Remaining is the cooldown time left, zero when unlocked
func (s *AttackSession) Remaining(now time.Time) time.Duration {
	if !s.IsLocked(now) {
		return 0
	}
	return s.LockedUntil.Sub(now)
}

// Lock starts a cooldown of d from now
func (s *AttackSession) Lock(now time.Time, d time.Duration) {
	s.LockedUntil = now.Add(d)
}

// ClearCredential forgets a stored narrative key
func (s *AttackSession) ClearCredential() {
	s.APIKey = ""
}

// HasCredential reports whether the user stored their own key
func (s *AttackSession) HasCredential() bool {
	return s.APIKey != ""
}

// RollMode returns the stored mode, Normal when unset
func (s *AttackSession) RollMode() engine.RollMode {
	if s.Mode == "" {
		return engine.RollModeNormal
	}
	return s.Mode
}
