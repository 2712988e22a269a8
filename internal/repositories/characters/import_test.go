package characters

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
	dnderr "github.com/KirkDiggler/signature-weapons/internal/errors"
)

const seedYAML = `
characters:
  - id: brynja
    owner_id: "1001"
    name: Brynja Stonehand
    level: 7
    attributes:
      str: {score: 18}
      wis: {score: 13}
    inventory:
      - id: spear
        name: Jotun Spear
        type: weapon
        equipped: true
        attack_bonus: 1
        damage_bonus: 1
    bonuses:
      melee_attack: "1"
    effects:
      - id: bless
        name: Bless
        changes:
          - key: system.bonuses.mwak.attack
            value: 1d4
  - id: ossian
    owner_id: "1002"
    name: Ossian
    level: 3
    attributes:
      str: {score: 12}
      wis: {score: 17}
`

func TestImportYAML_EmptyListEntries(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	seed := `
characters:
  - id: tova
    owner_id: "1003"
    name: Tova
    level: 2
    inventory: [~]
    effects: [~]
`
	_, err := ImportYAML(ctx, repo, strings.NewReader(seed))
	require.NoError(t, err)

	tova, err := repo.Get(ctx, "tova")
	require.NoError(t, err)
	assert.Empty(t, tova.Inventory)
	assert.Empty(t, tova.Effects)
}

func TestImportYAML(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	n, err := ImportYAML(ctx, repo, strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	brynja, err := repo.Get(ctx, "brynja")
	require.NoError(t, err)
	assert.Equal(t, 7, brynja.Level)
	assert.Equal(t, 4, brynja.Attributes[shared.AttributeStrength].Bonus)
	assert.Equal(t, 4, brynja.Modifier(shared.AttributeStrength))
	require.Len(t, brynja.Inventory, 1)
	assert.True(t, brynja.Inventory[0].Equipped)
	require.Len(t, brynja.Effects, 1)
	assert.Equal(t, "1d4", brynja.Effects[0].Changes[0].Value)

	// Importing again updates in place
	n, err = ImportYAML(ctx, repo, strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDecodeYAML_Errors(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("characters:\n  - id: x\n    bogus: 1\n"))
	assert.True(t, dnderr.IsInvalidArgument(err))

	chars, err := DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestImportYAML_InvalidCharacter(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := ImportYAML(context.Background(), repo, strings.NewReader("characters:\n  - id: x\n    name: No Owner\n"))
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}
