package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
)

func findByName(sheet *character.Sheet, name string) *equipment.EquippedItem {
	for idx := range sheet.Equipment {
		if sheet.Equipment[idx].Name == name {
			return &sheet.Equipment[idx]
		}
	}
	return nil
}

func TestAddItem_NewLine(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.AddItem(ctx, id, "longsword", 1)
	require.NoError(t, err)

	require.Len(t, sheet.Equipment, 1)
	line := sheet.Equipment[0]
	assert.NotEmpty(t, line.InstanceID)
	assert.Equal(t, "longsword", line.DefinitionID)
	assert.Equal(t, 1, line.Quantity)
	assert.False(t, line.Equipped)
	require.NotNil(t, line.Weapon)
	assert.Equal(t, "1d8", line.Weapon.DamageDice)
}

func TestAddItem_StacksUnequippedLines(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, id, "torch", 3)
	require.NoError(t, err)

	sheet, err := svc.AddItem(ctx, id, "torch", 2)
	require.NoError(t, err)

	require.Len(t, sheet.Equipment, 1)
	assert.Equal(t, 5, sheet.Equipment[0].Quantity)
}

func TestAddItem_EquippedLineDoesNotStack(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.AddItem(ctx, id, "longsword", 1)
	require.NoError(t, err)

	_, err = svc.EquipItem(ctx, id, sheet.Equipment[0].InstanceID)
	require.NoError(t, err)

	sheet, err = svc.AddItem(ctx, id, "longsword", 1)
	require.NoError(t, err)

	assert.Len(t, sheet.Equipment, 2, "a spare must be a separate line from the worn one")
}

func TestAddItem_UnknownKey(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)

	_, err := svc.AddItem(context.Background(), id, "vorpal-sword", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vorpal-sword")
}

func TestRemoveItem(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.AddItem(ctx, id, "torch", 5)
	require.NoError(t, err)
	instanceID := sheet.Equipment[0].InstanceID

	sheet, err = svc.RemoveItem(ctx, id, instanceID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, sheet.Equipment[0].Quantity)

	sheet, err = svc.RemoveItem(ctx, id, instanceID, 3)
	require.NoError(t, err)
	assert.Empty(t, sheet.Equipment)

	_, err = svc.RemoveItem(ctx, id, instanceID, 1)
	assert.Error(t, err)
}

func TestEquipItem_RecomputesArmorClass(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.AddItem(ctx, id, "leather-armor", 1)
	require.NoError(t, err)
	assert.Equal(t, 12, sheet.ArmorClass, "carried armor contributes nothing")

	sheet, err = svc.EquipItem(ctx, id, sheet.Equipment[0].InstanceID)
	require.NoError(t, err)
	assert.Equal(t, 13, sheet.ArmorClass, "11 base plus full Dex")

	sheet, err = svc.AddItem(ctx, id, "shield", 1)
	require.NoError(t, err)
	shield := findByName(sheet, "Shield")
	require.NotNil(t, shield)

	sheet, err = svc.EquipItem(ctx, id, shield.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, 15, sheet.ArmorClass)

	sheet, err = svc.UnequipItem(ctx, id, shield.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, 13, sheet.ArmorClass)
}

func TestEquipItem_TwoHanderDisplacesShield(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.AddItem(ctx, id, "shield", 1)
	require.NoError(t, err)
	shieldID := sheet.Equipment[0].InstanceID

	_, err = svc.EquipItem(ctx, id, shieldID)
	require.NoError(t, err)

	sheet, err = svc.AddItem(ctx, id, "greatsword", 1)
	require.NoError(t, err)
	greatsword := findByName(sheet, "Greatsword")
	require.NotNil(t, greatsword)

	sheet, err = svc.EquipItem(ctx, id, greatsword.InstanceID)
	require.NoError(t, err)

	assert.True(t, findByName(sheet, "Greatsword").Equipped)
	assert.False(t, findByName(sheet, "Shield").Equipped)
	assert.Equal(t, 12, sheet.ArmorClass, "shield bonus gone once displaced")
}

func TestEquipItem_UnknownInstance(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)

	_, err := svc.EquipItem(context.Background(), id, "nope")
	assert.Error(t, err)

	_, err = svc.UnequipItem(context.Background(), id, "nope")
	assert.Error(t, err)
}

func TestInventorySurvivesReload(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.AddItem(ctx, id, "leather-armor", 1)
	require.NoError(t, err)

	_, err = svc.EquipItem(ctx, id, sheet.Equipment[0].InstanceID)
	require.NoError(t, err)

	sheet, err = svc.GetCharacter(ctx, id)
	require.NoError(t, err)
	require.Len(t, sheet.Equipment, 1)
	assert.True(t, sheet.Equipment[0].Equipped)
	assert.Equal(t, 13, sheet.ArmorClass)
}
