package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/dice"
	mockdice "github.com/KirkDiggler/character-vault/internal/dice/mock"
)

func TestRandomRoller_Advantage(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 100; i++ {
		result, err := roller.RollWithAdvantage(20, 0)
		require.NoError(t, err)

		// Both rolls retained, higher one kept
		require.Len(t, result.Rolls, 2)
		kept := result.Rolls[0]
		if result.Rolls[1] > kept {
			kept = result.Rolls[1]
		}
		assert.Equal(t, kept, result.RawTotal)
		assert.Equal(t, dice.ModeAdvantage, result.Mode)
	}
}

func TestRandomRoller_Disadvantage(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 100; i++ {
		result, err := roller.RollWithDisadvantage(20, 2)
		require.NoError(t, err)

		require.Len(t, result.Rolls, 2)
		kept := result.Rolls[0]
		if result.Rolls[1] < kept {
			kept = result.Rolls[1]
		}
		assert.Equal(t, kept, result.RawTotal)
		assert.Equal(t, kept+2, result.Total)
	}
}

func TestRollWithMode_AdvantageOnlyAppliesToSingleD20(t *testing.T) {
	roller := mockdice.NewManualMockRoller()

	// 1d20 with advantage consumes two rolls and keeps the higher
	roller.SetRolls([]int{8, 15})
	result, err := dice.RollWithMode(roller, 1, 20, 0, dice.ModeAdvantage)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 15}, result.Rolls)
	assert.Equal(t, 15, result.RawTotal)

	// Damage dice ignore the ambient mode: 2d6 rolls exactly two dice
	roller.SetRolls([]int{3, 4})
	result, err = dice.RollWithMode(roller, 2, 6, 0, dice.ModeAdvantage)
	require.NoError(t, err)
	assert.Len(t, result.Rolls, 2)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, dice.ModeNormal, result.Mode)

	// A d12 is not a d20 even when rolled alone
	roller.SetRolls([]int{9})
	result, err = dice.RollWithMode(roller, 1, 12, 0, dice.ModeDisadvantage)
	require.NoError(t, err)
	assert.Len(t, result.Rolls, 1)
	assert.Equal(t, dice.ModeNormal, result.Mode)
}

func TestManualMockRoller_ScriptedRolls(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4, 5})

	result, err := roller.Roll(2, 6, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, []int{4, 5}, result.Rolls)

	// Running out of scripted rolls is an error
	_, err = roller.Roll(1, 6, 0)
	assert.Error(t, err)
}

func TestManualMockRoller_RejectsOutOfRangeRoll(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{7})

	_, err := roller.Roll(1, 6, 0)
	assert.Error(t, err)
}

func TestRoll_CritAndFumbleOnlyOnD20(t *testing.T) {
	roller := mockdice.NewManualMockRoller()

	roller.SetRolls([]int{20})
	result, err := roller.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.True(t, result.IsCrit)
	assert.False(t, result.IsFumble)

	roller.SetRolls([]int{1})
	result, err = roller.Roll(1, 20, 5)
	require.NoError(t, err)
	assert.True(t, result.IsFumble)

	roller.SetRolls([]int{6})
	result, err = roller.Roll(1, 6, 0)
	require.NoError(t, err)
	assert.False(t, result.IsCrit)
}
