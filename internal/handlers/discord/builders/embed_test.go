package builders_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/signature-weapons/internal/handlers/discord/builders"
)

func TestEmbedBuilder(t *testing.T) {
	embed := builders.NewEmbed().
		Title("Thrust").
		Description("A direct stab.").
		Color(builders.ColorPrimary).
		Author("Brynja Stonehand").
		Footer("Normal").
		Field("Attack", "18", true).
		FieldIf("Special", "", false).
		Build()

	assert.Equal(t, "Thrust", embed.Title)
	assert.Equal(t, "A direct stab.", embed.Description)
	assert.Equal(t, builders.ColorPrimary, embed.Color)
	assert.Equal(t, "Brynja Stonehand", embed.Author.Name)
	assert.Equal(t, "Normal", embed.Footer.Text)
	assert.Len(t, embed.Fields, 1)
}

func TestEmbedBuilder_ClipsToLimits(t *testing.T) {
	long := strings.Repeat("ä", 2000)

	embed := builders.NewEmbed().Field("name", long, false).Build()

	value := embed.Fields[0].Value
	assert.Equal(t, 1024, utf8.RuneCountInString(value))
	assert.True(t, strings.HasSuffix(value, "…"))
}

func TestEmbedBuilder_DropsExtraFields(t *testing.T) {
	b := builders.NewEmbed()
	for i := 0; i < 30; i++ {
		b.Field("f", "v", true)
	}
	assert.Len(t, b.Build().Fields, 25)
}
