package character

// EffectChange is one key/value modification carried by an effect. Values
// are formulas or numbers kept as text, as the effect source wrote them.
type EffectChange struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// ActiveEffect is a timed or persistent modifier on the character
type ActiveEffect struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Disabled bool            `json:"disabled" yaml:"disabled"`
	Changes  []*EffectChange `json:"changes" yaml:"changes"`
}

// Bonuses are the innate actor-level bonus fields
type Bonuses struct {
	MeleeAttack       string `json:"melee_attack,omitempty" yaml:"melee_attack"`
	MeleeDamage       string `json:"melee_damage,omitempty" yaml:"melee_damage"`
	CriticalThreshold string `json:"critical_threshold,omitempty" yaml:"critical_threshold"`
}

// Well known flag keys
const (
	FlagCriticalThreshold = "dnd5e.criticalThreshold"
)
