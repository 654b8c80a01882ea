package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/dice"
)

func TestParseExpression(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want dice.Expression
	}{
		{
			name: "simple",
			expr: "2d6",
			want: dice.Expression{Count: 2, Sides: 6},
		},
		{
			name: "with positive bonus",
			expr: "2d6+3",
			want: dice.Expression{Count: 2, Sides: 6, Bonus: 3},
		},
		{
			name: "with negative bonus",
			expr: "1d4-1",
			want: dice.Expression{Count: 1, Sides: 4, Bonus: -1},
		},
		{
			name: "spaces around bonus",
			expr: "1d8 + 2",
			want: dice.Expression{Count: 1, Sides: 8, Bonus: 2},
		},
		{
			name: "uppercase D",
			expr: "1D20",
			want: dice.Expression{Count: 1, Sides: 20},
		},
		{
			name: "garbage",
			expr: "fire breath",
			want: dice.Expression{},
		},
		{
			name: "missing count",
			expr: "d6",
			want: dice.Expression{},
		},
		{
			name: "zero dice",
			expr: "0d6",
			want: dice.Expression{},
		},
		{
			name: "empty",
			expr: "",
			want: dice.Expression{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dice.ParseExpression(tt.expr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpression_ZeroValueSignalsFailure(t *testing.T) {
	got := dice.ParseExpression("not dice")
	assert.True(t, got.IsZero())

	got = dice.ParseExpression("3d6+2")
	assert.False(t, got.IsZero())
}

func TestRoll_Bounds(t *testing.T) {
	// 3d6+2 always lands in [5, 20]
	for i := 0; i < 200; i++ {
		result, err := dice.Roll(3, 6, 2)
		require.NoError(t, err)

		assert.Len(t, result.Rolls, 3)
		assert.GreaterOrEqual(t, result.Total, 5)
		assert.LessOrEqual(t, result.Total, 20)
		assert.Equal(t, result.RawTotal+result.Bonus, result.Total)

		for _, r := range result.Rolls {
			assert.GreaterOrEqual(t, r, 1)
			assert.LessOrEqual(t, r, 6)
		}
	}
}

func TestRoll_InvalidInput(t *testing.T) {
	_, err := dice.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = dice.Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestRollString(t *testing.T) {
	result, err := dice.RollString("2d4+1")
	require.NoError(t, err)
	assert.Len(t, result.Rolls, 2)
	assert.Equal(t, 1, result.Bonus)

	_, err = dice.RollString("claw attack")
	assert.Error(t, err)
}

func TestRollResult_Description(t *testing.T) {
	result := &dice.RollResult{
		Total:    12,
		Rolls:    []int{4, 5},
		Bonus:    3,
		Count:    2,
		Sides:    6,
		RawTotal: 9,
	}

	assert.Equal(t, "2d6+3: [4 5] = 12", result.Description())

	// Description must reflect the same rolls and modifier on repeat calls
	assert.Equal(t, result.Description(), result.Description())
}

func TestExpression_String(t *testing.T) {
	assert.Equal(t, "1d8", dice.Expression{Count: 1, Sides: 8}.String())
	assert.Equal(t, "2d6+3", dice.Expression{Count: 2, Sides: 6, Bonus: 3}.String())
	assert.Equal(t, "1d4-1", dice.Expression{Count: 1, Sides: 4, Bonus: -1}.String())
}
