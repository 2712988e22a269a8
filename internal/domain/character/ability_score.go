package character

import (
	"fmt"

	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
)

// AbilityScore is a raw score and its derived modifier
type AbilityScore struct {
	Score int `json:"score" yaml:"score"`
	Bonus int `json:"bonus" yaml:"-"`
}

// NewAbilityScore creates a score with its modifier filled in
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{Score: score, Bonus: shared.Modifier(score)}
}

func (a *AbilityScore) String() string {
	return fmt.Sprintf("%d (%+d)", a.Score, a.Bonus)
}
