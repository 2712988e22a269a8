package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

// Client looks up SRD reference data for the weapons signature weapons are
// built on.
type Client interface {
	GetBaseWeapon(key string) (*BaseWeapon, error)
}

// BaseWeapon is the SRD entry behind a signature weapon
type BaseWeapon struct {
	Key        string
	Name       string
	Category   string
	Range      string
	DamageDice string
	DamageType string
	Properties []string
}

// IsTwoHanded reports whether the base weapon carries the two-handed property
func (w *BaseWeapon) IsTwoHanded() bool {
	for _, p := range w.Properties {
		if p == "Two-Handed" {
			return true
		}
	}
	return false
}
