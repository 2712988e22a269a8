package weapons_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/signature-weapons/internal/domain/attack"
	"github.com/KirkDiggler/signature-weapons/internal/weapons"
)

func TestLoad_EmbeddedTables(t *testing.T) {
	catalog, err := weapons.Load()
	require.NoError(t, err)

	list := catalog.List()
	require.Len(t, list, 2)
	assert.Equal(t, "deepsong_mace", list[0].ID)
	assert.Equal(t, "jotun_spear", list[1].ID)
	assert.Empty(t, catalog.Warnings())

	spear := catalog.Get("jotun_spear")
	require.NotNil(t, spear)
	assert.Len(t, spear.Attacks, 12)
	assert.InDelta(t, 0.9, spear.Narrator.Temperature, 0.001)

	skewer := spear.Attack("skewer")
	require.NotNil(t, skewer)
	assert.Equal(t, "Giant's Skewer", skewer.Label)
	assert.Equal(t, 13, skewer.MinimumLevel)
	assert.Equal(t, attack.SpecialPenetrate, skewer.Special)
	assert.Equal(t, "19-20", skewer.CritRange())
	expr, err := skewer.Expression()
	require.NoError(t, err)
	assert.Equal(t, "1d10+2d8", expr.String())

	earth := spear.Attack("earth")
	require.NotNil(t, earth)
	assert.Equal(t, "1-5", earth.FumbleRange())

	mace := catalog.Get("deepsong_mace")
	require.NotNil(t, mace)
	assert.Len(t, mace.Attacks, 10)
	assert.Equal(t, attack.SpecialWard, mace.Attack("ward").Special)
	assert.Equal(t, "18-20", mace.Attack("deepsong").CritRange())
	assert.Nil(t, mace.Attack("thrust"))
}

func TestWeapon_Matches(t *testing.T) {
	catalog := weapons.MustLoad()
	spear := catalog.Get("jotun_spear")
	mace := catalog.Get("deepsong_mace")

	assert.True(t, spear.Matches("Jotun Spear"))
	assert.True(t, spear.Matches("Ancestral Jotun  Spear +1"))
	assert.False(t, spear.Matches("Spear"))

	assert.True(t, mace.Matches("Mace of the Deepsong"))
	assert.True(t, mace.Matches("mace OF the   deepsong"))
	assert.False(t, mace.Matches("Mace of the Deepsong +1"))
	assert.False(t, mace.Matches(""))
}

func TestWeapon_AttacksFor(t *testing.T) {
	spear := weapons.MustLoad().Get("jotun_spear")

	entries := spear.AttacksFor(4)

	require.Len(t, entries, 12)
	assert.Equal(t, "thrust", entries[0].Attack.ID)
	locked := 0
	for _, e := range entries {
		if e.Locked {
			locked++
			assert.Greater(t, e.Attack.MinimumLevel, 4)
		}
	}
	// thrust, long, haft, overhead and rising are open at level 4
	assert.Equal(t, 7, locked)
}

func TestLoadFrom_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "bad damage",
			yaml: "id: w\nname: W\nitem_key: w\nattacks:\n  - id: a\n    label: A\n    damage: banana\n    minimum_level: 1\n",
			want: "damage",
		},
		{
			name: "duplicate attack",
			yaml: "id: w\nname: W\nitem_key: w\nattacks:\n  - {id: a, label: A, damage: 1d4, minimum_level: 1}\n  - {id: a, label: B, damage: 1d4, minimum_level: 1}\n",
			want: "duplicate attack",
		},
		{
			name: "no attacks",
			yaml: "id: w\nname: W\nitem_key: w\n",
			want: "no attacks",
		},
		{
			name: "unknown match",
			yaml: "id: w\nname: W\nitem_key: w\nmatch: fuzzy\nattacks:\n  - {id: a, label: A, damage: 1d4, minimum_level: 1}\n",
			want: "match rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := weapons.LoadFrom(fstest.MapFS{
				"w.yaml": &fstest.MapFile{Data: []byte(tt.yaml)},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := weapons.LoadFrom(fstest.MapFS{})
	assert.Error(t, err)
}
