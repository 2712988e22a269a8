package testutils

import (
	"github.com/KirkDiggler/signature-weapons/internal/domain/character"
	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
)

// CreateTestCharacter builds a level-appropriate fighter with an equipped
// weapon of the given name.
func CreateTestCharacter(id, ownerID, name string, level int, weaponName string) *character.Character {
	return &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Level:   level,
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength:     character.NewAbilityScore(16),
			shared.AttributeDexterity:    character.NewAbilityScore(12),
			shared.AttributeConstitution: character.NewAbilityScore(14),
			shared.AttributeIntelligence: character.NewAbilityScore(10),
			shared.AttributeWisdom:       character.NewAbilityScore(14),
			shared.AttributeCharisma:     character.NewAbilityScore(8),
		},
		Inventory: []*character.Item{
			{
				ID:       id + "-weapon",
				Name:     weaponName,
				Type:     character.ItemTypeWeapon,
				Equipped: true,
			},
		},
		MaxHitPoints:     10 * level,
		CurrentHitPoints: 10 * level,
	}
}

// JotunWielder is a level 5 character carrying the Jotun Spear
func JotunWielder(ownerID string) *character.Character {
	return CreateTestCharacter("jotun-"+ownerID, ownerID, "Brynja Stonehand", 5, "Jotun Spear")
}

// DeepsongWielder is a level 5 character carrying the Mace of the Deepsong
func DeepsongWielder(ownerID string) *character.Character {
	return CreateTestCharacter("deepsong-"+ownerID, ownerID, "Ossian Tidecaller", 5, "Mace of the Deepsong")
}
