package character

// ItemTypeWeapon is the only item type the attack flow inspects
const ItemTypeWeapon = "weapon"

// Item is an inventory entry
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Equipped    bool   `json:"equipped" yaml:"equipped"`
	AttackBonus int    `json:"attack_bonus" yaml:"attack_bonus"`
	DamageBonus int    `json:"damage_bonus" yaml:"damage_bonus"`
}

// IsWeapon reports whether the item is a weapon
func (i *Item) IsWeapon() bool {
	return i != nil && i.Type == ItemTypeWeapon
}
