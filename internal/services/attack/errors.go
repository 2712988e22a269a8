package attack

import (
	"fmt"
	"math"
	"time"

	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
)

var (
	// ErrSingleSelectionRequired means the acting character could not be
	// determined: the user owns none, or several without naming one.
	ErrSingleSelectionRequired = dnderr.New(dnderr.CodeFailedPrecondition, "select exactly one character")

	// ErrCancelled means the attack was abandoned before any dice were rolled
	ErrCancelled = dnderr.New(dnderr.CodeCancelled, "attack cancelled")
)

// CooldownActiveError rejects an attack made while the session is locked
type CooldownActiveError struct {
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("attacks are locked, please wait %ds", e.Seconds())
}

func (e *CooldownActiveError) ErrorCode() dnderr.Code {
	return dnderr.CodeResourceExhausted
}

// Seconds is the remaining cooldown rounded up to whole seconds
func (e *CooldownActiveError) Seconds() int {
	return int(math.Ceil(e.Remaining.Seconds()))
}

// WeaponNotEquippedError means the character carries no matching weapon item
type WeaponNotEquippedError struct {
	CharacterName string
	WeaponName    string
}

func (e *WeaponNotEquippedError) Error() string {
	return fmt.Sprintf("%s does not have %s equipped", e.CharacterName, e.WeaponName)
}

func (e *WeaponNotEquippedError) ErrorCode() dnderr.Code {
	return dnderr.CodeFailedPrecondition
}
