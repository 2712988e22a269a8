package dnd5e

import (
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

func apiWeaponToBaseWeapon(input *apiEntities.Weapon) *BaseWeapon {
	weapon := &BaseWeapon{
		Key:        input.Key,
		Name:       input.Name,
		Category:   strings.ToLower(input.WeaponCategory),
		Range:      strings.ToLower(input.WeaponRange),
		Properties: apiReferenceItemsToNames(input.Properties),
	}
	if input.Damage != nil {
		weapon.DamageDice = input.Damage.DamageDice
		if input.Damage.DamageType != nil {
			weapon.DamageType = strings.ToLower(input.Damage.DamageType.Name)
		}
	}
	return weapon
}

func apiReferenceItemsToNames(input []*apiEntities.ReferenceItem) []string {
	output := make([]string, 0, len(input))
	for _, item := range input {
		if item == nil {
			continue
		}
		output = append(output, item.Name)
	}
	return output
}
