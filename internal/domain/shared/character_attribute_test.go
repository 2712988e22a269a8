package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/signature-weapons/internal/domain/shared"
)

func TestModifier(t *testing.T) {
	tests := map[int]int{1: -5, 3: -4, 8: -1, 9: -1, 10: 0, 11: 0, 12: 1, 18: 4, 20: 5, 30: 10}
	for score, want := range tests {
		assert.Equal(t, want, shared.Modifier(score), "score %d", score)
	}
}

func TestParseAttribute(t *testing.T) {
	attr, err := shared.ParseAttribute("WIS")
	require.NoError(t, err)
	assert.Equal(t, shared.AttributeWisdom, attr)

	attr, err = shared.ParseAttribute("strength")
	require.NoError(t, err)
	assert.Equal(t, shared.AttributeStrength, attr)
	assert.Equal(t, "STR", attr.Short())

	_, err = shared.ParseAttribute("luck")
	assert.Error(t, err)
}
