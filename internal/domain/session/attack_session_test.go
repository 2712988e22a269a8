package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/signature-weapons/internal/engine"
)

func TestNewAttackSession_Defaults(t *testing.T) {
	s := NewAttackSession("sess-1", "user-1")

	assert.Equal(t, "sess-1", s.ID)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, engine.RollModeNormal, s.Mode)
	assert.True(t, s.UseAI)
	assert.False(t, s.IsLocked(time.Now()))
	assert.False(t, s.HasCredential())
}

func TestAttackSession_Lock(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewAttackSession("sess-1", "user-1")

	s.Lock(now, 10*time.Second)

	tests := []struct {
		name      string
		at        time.Time
		locked    bool
		remaining time.Duration
	}{
		{name: "immediately after", at: now, locked: true, remaining: 10 * time.Second},
		{name: "midway", at: now.Add(4 * time.Second), locked: true, remaining: 6 * time.Second},
		{name: "at expiry", at: now.Add(10 * time.Second), locked: false, remaining: 0},
		{name: "long after", at: now.Add(time.Minute), locked: false, remaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.locked, s.IsLocked(tt.at))
			assert.Equal(t, tt.remaining, s.Remaining(tt.at))
		})
	}
}

func TestAttackSession_ClearCredential(t *testing.T) {
	s := NewAttackSession("sess-1", "user-1")
	s.APIKey = "sk-test"
	assert.True(t, s.HasCredential())

	s.ClearCredential()
	assert.False(t, s.HasCredential())
	assert.Empty(t, s.APIKey)
}

func TestAttackSession_RollMode(t *testing.T) {
	s := &AttackSession{}
	assert.Equal(t, engine.RollModeNormal, s.RollMode())

	s.Mode = engine.RollModeAdvantage
	assert.Equal(t, engine.RollModeAdvantage, s.RollMode())
}
