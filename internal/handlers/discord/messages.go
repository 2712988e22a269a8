package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/signature-weapons/internal/engine"
	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
	"github.com/KirkDiggler/signature-weapons/internal/services/attack"
)

// UserMessage renders an attack flow error for the person who triggered it.
// Unknown errors get a generic message; the detail goes to the log.
func UserMessage(err error) string {
	var (
		cooldown    *attack.CooldownActiveError
		levelTooLow *engine.LevelTooLowError
		notEquipped *attack.WeaponNotEquippedError
	)

	switch {
	case errors.Is(err, attack.ErrSingleSelectionRequired):
		return "Select exactly one character."
	case errors.Is(err, attack.ErrCancelled):
		return "Attack cancelled."
	case errors.As(err, &cooldown):
		return fmt.Sprintf("Attacks are locked, please wait %ds.", cooldown.Seconds())
	case errors.As(err, &levelTooLow):
		return fmt.Sprintf("%s requires level %d. You are currently level %d.",
			levelTooLow.AttackLabel, levelTooLow.RequiredLevel, levelTooLow.CurrentLevel)
	case errors.As(err, &notEquipped):
		return fmt.Sprintf("%s does not have %s equipped!", notEquipped.CharacterName, notEquipped.WeaponName)
	case dnderr.IsNotFound(err), dnderr.IsInvalidArgument(err):
		var e *dnderr.Error
		if errors.As(err, &e) {
			return e.Message + "."
		}
	}

	return "Something went wrong resolving that attack."
}
