// Package narrative produces short combat descriptions for attack results.
// Generation is best effort: callers go through Fallback, which always
// returns text and reports why generation failed.
package narrative

//go:generate mockgen -destination=mock/mock_generator.go -package=mocknarrative -source=generator.go

import (
	"context"
)

// Generator turns an attack request into narrative text
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}

// CalledShot names what a called shot aims at
type CalledShot string

const (
	CalledShotNone     CalledShot = ""
	CalledShotBody     CalledShot = "body"
	CalledShotObject   CalledShot = "object"
	CalledShotCreature CalledShot = "creature"
)

// Target is the noun used in the prompt for the called shot
func (c CalledShot) Target() string {
	switch c {
	case CalledShotBody:
		return "body part"
	case CalledShotObject:
		return "object"
	case CalledShotCreature:
		return "creature type"
	default:
		return "target"
	}
}

// Customization is optional user direction for a single attack
type Customization struct {
	CalledShot   CalledShot
	CalledDetail string
	Style        string
}

// IsEmpty reports whether the customization adds anything to the prompt
func (c *Customization) IsEmpty() bool {
	return c == nil || ((c.CalledShot == CalledShotNone || c.CalledDetail == "") && c.Style == "")
}

// Voice is the per-weapon narrator persona
type Voice struct {
	Character   string
	System      string
	Guidance    []string
	Temperature float64
}

// Request carries everything a provider needs to narrate one attack
type Request struct {
	WeaponName    string
	WeaponType    string
	AttackName    string
	Flavor        string
	Outcome       string
	Damage        *int
	ActorName     string
	Voice         Voice
	Customization *Customization

	// APIKey overrides the provider's configured credential
	APIKey string
}
