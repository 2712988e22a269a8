package engine

import (
	"errors"
	"fmt"

	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
)

// LevelTooLowError is returned when the actor has not reached the level an
// attack requires. No dice are rolled.
type LevelTooLowError struct {
	AttackID      string
	AttackLabel   string
	RequiredLevel int
	CurrentLevel  int
}

func (e *LevelTooLowError) Error() string {
	return fmt.Sprintf("%s requires level %d (current level %d)", e.AttackLabel, e.RequiredLevel, e.CurrentLevel)
}

func (e *LevelTooLowError) ErrorCode() dnderr.Code {
	return dnderr.CodeFailedPrecondition
}

// IsLevelTooLow reports whether err is or wraps a LevelTooLowError
func IsLevelTooLow(err error) bool {
	var target *LevelTooLowError
	return errors.As(err, &target)
}
