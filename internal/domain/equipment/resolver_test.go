package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func weapon(id, name string, props ...equipment.WeaponProperty) equipment.EquippedItem {
	return equipment.EquippedItem{
		InstanceID:   id,
		DefinitionID: "def-" + id,
		Name:         name,
		Category:     equipment.CategoryWeapon,
		Quantity:     1,
		Weapon: &equipment.WeaponDetails{
			DamageDice: "1d8",
			DamageType: "slashing",
			Properties: props,
		},
		Source: shared.SourceUser,
	}
}

func bodyArmor(id, name string, armorType equipment.ArmorType, baseAC int) equipment.EquippedItem {
	return equipment.EquippedItem{
		InstanceID:   id,
		DefinitionID: "def-" + id,
		Name:         name,
		Category:     equipment.CategoryArmor,
		Quantity:     1,
		Armor: &equipment.ArmorDetails{
			BaseAC:         baseAC,
			AddDexModifier: armorType != equipment.ArmorTypeHeavy,
			ArmorType:      armorType,
		},
		Source: shared.SourceUser,
	}
}

func shield(id string) equipment.EquippedItem {
	return equipment.EquippedItem{
		InstanceID:   id,
		DefinitionID: "def-" + id,
		Name:         "Shield",
		Category:     equipment.CategoryArmor,
		Quantity:     1,
		Armor:        &equipment.ArmorDetails{BaseAC: 2},
		Source:       shared.SourceUser,
	}
}

func equipped(item equipment.EquippedItem) equipment.EquippedItem {
	item.Equipped = true
	return item
}

func equippedIDs(items []equipment.EquippedItem) []string {
	var ids []string
	for _, item := range items {
		if item.Equipped {
			ids = append(ids, item.InstanceID)
		}
	}
	return ids
}

func TestEquip_UnknownInstanceIDIsNoop(t *testing.T) {
	items := []equipment.EquippedItem{weapon("sword", "Longsword")}

	result := equipment.Equip(items, "nope")
	assert.Equal(t, items, result)
}

func TestEquip_BodyArmorDisplacesOtherBodyArmorOnly(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(bodyArmor("leather", "Leather Armor", equipment.ArmorTypeLight, 11)),
		bodyArmor("chain", "Chain Mail", equipment.ArmorTypeHeavy, 16),
		equipped(shield("shield")),
		equipped(weapon("sword", "Longsword")),
	}

	result := equipment.Equip(items, "chain")
	assert.ElementsMatch(t, []string{"chain", "shield", "sword"}, equippedIDs(result))
}

func TestEquip_TwoHandedDisplacesWeaponsAndShield(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("sword", "Longsword")),
		equipped(shield("shield")),
		weapon("greatsword", "Greatsword", equipment.PropertyTwoHanded, equipment.PropertyHeavy),
	}

	result := equipment.Equip(items, "greatsword")

	// Exactly one equipped weapon (the new one), zero shields
	assert.Equal(t, []string{"greatsword"}, equippedIDs(result))
}

func TestEquip_ShieldDisplacesTwoHandedWeapon(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("greataxe", "Greataxe", equipment.PropertyTwoHanded)),
		shield("shield"),
	}

	result := equipment.Equip(items, "shield")
	assert.Equal(t, []string{"shield"}, equippedIDs(result))
}

func TestEquip_ShieldDisplacesOtherShield(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(shield("shield1")),
		shield("shield2"),
		equipped(weapon("sword", "Longsword")),
	}

	result := equipment.Equip(items, "shield2")
	assert.ElementsMatch(t, []string{"shield2", "sword"}, equippedIDs(result))
}

func TestEquip_OneHanderWithShieldDisplacesOtherOneHanders(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(shield("shield")),
		equipped(weapon("dagger", "Dagger", equipment.PropertyLight, equipment.PropertyFinesse)),
		weapon("longsword", "Longsword", equipment.PropertyVersatile),
	}

	result := equipment.Equip(items, "longsword")
	assert.ElementsMatch(t, []string{"shield", "longsword"}, equippedIDs(result))
}

func TestEquip_SecondNonLightOneHanderDisplacesFirst(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("longsword", "Longsword")),
		equipped(weapon("dagger", "Dagger", equipment.PropertyLight)),
		weapon("warhammer", "Warhammer", equipment.PropertyVersatile),
	}

	result := equipment.Equip(items, "warhammer")

	// Light weapon survives; the other non-Light one-hander does not
	assert.ElementsMatch(t, []string{"warhammer", "dagger"}, equippedIDs(result))
}

func TestEquip_LightDualWieldAllowsTwo(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("dagger", "Dagger", equipment.PropertyLight)),
		weapon("handaxe", "Handaxe", equipment.PropertyLight),
	}

	result := equipment.Equip(items, "handaxe")
	assert.ElementsMatch(t, []string{"dagger", "handaxe"}, equippedIDs(result))
}

func TestEquip_ThirdLightWeaponEvictsOldest(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("dagger", "Dagger", equipment.PropertyLight)),
		equipped(weapon("handaxe", "Handaxe", equipment.PropertyLight)),
		weapon("sickle", "Sickle", equipment.PropertyLight),
	}

	result := equipment.Equip(items, "sickle")

	// Exactly two equipped Light weapons, oldest evicted
	assert.ElementsMatch(t, []string{"handaxe", "sickle"}, equippedIDs(result))
}

func TestEquip_LightWeaponWithShieldIsExclusive(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(shield("shield")),
		equipped(weapon("dagger", "Dagger", equipment.PropertyLight)),
		weapon("handaxe", "Handaxe", equipment.PropertyLight),
	}

	result := equipment.Equip(items, "handaxe")

	// Shield + one Light weapon only
	assert.ElementsMatch(t, []string{"shield", "handaxe"}, equippedIDs(result))
}

func TestEquip_LightWeaponDisplacesNonLightOneHander(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("longsword", "Longsword")),
		weapon("dagger", "Dagger", equipment.PropertyLight),
	}

	result := equipment.Equip(items, "dagger")
	assert.Equal(t, []string{"dagger"}, equippedIDs(result))
}

func TestEquip_DoesNotMutateInput(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("sword", "Longsword")),
		weapon("greatsword", "Greatsword", equipment.PropertyTwoHanded),
	}

	_ = equipment.Equip(items, "greatsword")

	assert.True(t, items[0].Equipped)
	assert.False(t, items[1].Equipped)
}

func TestEquip_NeverChangesQuantityOrLineCount(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(weapon("sword", "Longsword")),
		equipped(shield("shield")),
		weapon("greatsword", "Greatsword", equipment.PropertyTwoHanded),
	}

	result := equipment.Equip(items, "greatsword")

	require.Len(t, result, len(items))
	for idx := range result {
		assert.Equal(t, items[idx].InstanceID, result[idx].InstanceID)
		assert.Equal(t, items[idx].Quantity, result[idx].Quantity)
	}
}

func TestUnequip_NoCascade(t *testing.T) {
	items := []equipment.EquippedItem{
		equipped(shield("shield")),
		equipped(weapon("sword", "Longsword")),
	}

	result := equipment.Unequip(items, "shield")
	assert.Equal(t, []string{"sword"}, equippedIDs(result))

	// Unknown id is a no-op
	result = equipment.Unequip(items, "nope")
	assert.Equal(t, items, result)
}
