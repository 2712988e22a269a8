package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/signature-weapons/internal/dice"
	mockdice "github.com/KirkDiggler/signature-weapons/internal/dice/mock"
)

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input   string
		want    dice.Expression
		render  string
		wantErr bool
	}{
		{input: "1d10", want: dice.Expression{Terms: []dice.Term{{Count: 1, Sides: 10}}}, render: "1d10"},
		{input: "d20", want: dice.Expression{Terms: []dice.Term{{Count: 1, Sides: 20}}}, render: "1d20"},
		{input: "1d10+1d6", want: dice.Expression{Terms: []dice.Term{{Count: 1, Sides: 10}, {Count: 1, Sides: 6}}}, render: "1d10+1d6"},
		{input: " 2d6 + 3 ", want: dice.Expression{Terms: []dice.Term{{Count: 2, Sides: 6}}, Flat: 3}, render: "2d6+3"},
		{input: "1d8-1d4-1", want: dice.Expression{Terms: []dice.Term{{Count: 1, Sides: 8}, {Count: -1, Sides: 4}}, Flat: -1}, render: "1d8-1d4-1"},
		{input: "1d14", want: dice.Expression{Terms: []dice.Term{{Count: 1, Sides: 14}}}, render: "1d14"},
		{input: "5", want: dice.Expression{Flat: 5}, render: "5"},
		{input: "", wantErr: true},
		{input: "1001d6", wantErr: true},
		{input: "1d99999", wantErr: true},
		{input: "1d0", wantErr: true},
		{input: "1d", wantErr: true},
		{input: "2d6+", wantErr: true},
		{input: "2d6*2", wantErr: true},
		{input: "fireball", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := dice.ParseExpression(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr)
			assert.Equal(t, tt.render, expr.String())
		})
	}
}

func TestExpression_DoubleDice(t *testing.T) {
	expr := dice.MustParseExpression("1d10+2d8+3")

	doubled := expr.DoubleDice()

	assert.Equal(t, "2d10+4d8+3", doubled.String())
	assert.Equal(t, "1d10+2d8+3", expr.String(), "original is not modified")
}

func TestRollExpression(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{7, 2, 5, 1})

	result, err := dice.RollExpression(roller, dice.MustParseExpression("1d10+2d8-1d4+2"))

	require.NoError(t, err)
	require.Len(t, result.Terms, 3)
	assert.Equal(t, []int{7}, result.Terms[0].Rolls)
	assert.Equal(t, []int{2, 5}, result.Terms[1].Rolls)
	assert.Equal(t, -1, result.Terms[2].Subtotal)
	assert.Equal(t, 13, result.DiceTotal)
	assert.Equal(t, 2, result.Flat)
	assert.Equal(t, 15, result.Total)
	assert.Equal(t, []int{7, 2, 5, 1}, result.Rolls())
}

func TestRollExpression_PropagatesRollerError(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4})

	_, err := dice.RollExpression(roller, dice.MustParseExpression("2d6"))

	assert.Error(t, err)
}
