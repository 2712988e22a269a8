package attack

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/dice"
	attackdef "github.com/KirkDiggler/signature-weapons/internal/domain/attack"
	"github.com/KirkDiggler/signature-weapons/internal/domain/character"
	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
)

const (
	// FixedSaveDC is used by specials whose DC does not scale with the wielder
	FixedSaveDC = 15

	wardDice = "1d6"
)

// SpecialOutcome describes what a special attack did beyond damage
type SpecialOutcome struct {
	Effect      attackdef.SpecialEffect
	Title       string
	Text        string
	SaveDC      int
	SaveAbility shared.Attribute
	Condition   string
	TempHP      *TempHPGrant
}

// TempHPGrant records a Mineral Ward roll and whether it was written
type TempHPGrant struct {
	Roll      *dice.ExpressionResult
	Wisdom    int
	Amount    int
	Permitted bool
	Applied   bool
	Current   int
}

// resolveSpecial applies the attack's special effect. It is skipped
// entirely on a fumble.
func (s *service) resolveSpecial(ctx context.Context, out *Outcome, char *character.Character, userID string, def *attackdef.Definition, profile *engine.Profile) error {
	if def.Special == attackdef.SpecialNone || out.Result.Fumbled() {
		return nil
	}

	special := &SpecialOutcome{
		Effect: def.Special,
		Title:  def.Special.Title(),
		Text:   def.EffectNote,
	}
	out.Special = special

	switch def.Special {
	case attackdef.SpecialWard:
		return s.applyWard(ctx, out, char, userID, profile)

	case attackdef.SpecialPetrify:
		special.SaveDC = 8 + profile.ProficiencyBonus + profile.WisdomModifier
		special.SaveAbility = shared.AttributeStrength
		special.Condition = "restrained"
		special.Text = fmt.Sprintf("Target must make a DC %d Strength saving throw or be restrained until the end of your next turn.", special.SaveDC)

	case attackdef.SpecialPin:
		special.SaveDC = FixedSaveDC
		special.SaveAbility = shared.AttributeStrength
		special.Condition = "restrained"
		special.Text = fmt.Sprintf("Target is restrained! DC %d STR check to break free.", FixedSaveDC)

	case attackdef.SpecialQuake:
		special.SaveDC = FixedSaveDC
		special.SaveAbility = shared.AttributeDexterity
		special.Condition = "prone"
		special.Text = fmt.Sprintf("Hits ALL in 15-foot radius! DC %d DEX save or be knocked prone.", FixedSaveDC)
	}

	return nil
}

// applyWard rolls 1d6 + WIS temporary hit points and keeps the higher of the
// current and rolled values. Only the owner may write to the character.
func (s *service) applyWard(ctx context.Context, out *Outcome, char *character.Character, userID string, profile *engine.Profile) error {
	roll, err := dice.RollExpression(s.roller, dice.MustParseExpression(wardDice))
	if err != nil {
		return fmt.Errorf("failed to roll ward: %w", err)
	}

	grant := &TempHPGrant{
		Roll:    roll,
		Wisdom:  profile.WisdomModifier,
		Amount:  roll.Total + profile.WisdomModifier,
		Current: char.TempHitPoints,
	}
	out.Special.TempHP = grant
	out.Special.Text = fmt.Sprintf("Crystalline energy coalesces into protective armor, granting %d temporary hit points.", grant.Amount)

	if !char.IsOwnedBy(userID) {
		out.Warnings = append(out.Warnings, "Mineral Ward rolled temp HP, but you don't have permission to update this actor.")
		return nil
	}
	grant.Permitted = true

	previous := char.TempHitPoints
	current, raised := char.GrantTempHP(grant.Amount)
	grant.Current = current
	if !raised {
		out.Notices = append(out.Notices, fmt.Sprintf("Mineral Ward rolled %d, but current Temp HP (%d) is higher.", grant.Amount, previous))
		return nil
	}

	if err := s.characters.Update(ctx, char); err != nil {
		s.logger.Error("failed to persist temp hp",
			zap.String("character_id", char.ID),
			zap.Error(err),
		)
		out.Warnings = append(out.Warnings, "Mineral Ward rolled temp HP, but it could not be saved.")
		return nil
	}

	grant.Applied = true
	out.Notices = append(out.Notices, fmt.Sprintf("Mineral Ward applied: Temp HP is now %d.", current))
	return nil
}
