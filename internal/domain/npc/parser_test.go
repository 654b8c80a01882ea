package npc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func TestParseAttackText_MeleeAttack(t *testing.T) {
	result := npc.ParseAttackText(
		"Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) slashing damage.")

	require.NotNil(t, result)
	require.NotNil(t, result.Attack)
	assert.Equal(t, 4, result.Attack.Bonus)
	assert.Equal(t, 5, result.Attack.Reach)
	assert.Equal(t, 0, result.Attack.Range)
	assert.Equal(t, "one target", result.Attack.Target)

	require.NotNil(t, result.Hit)
	assert.Equal(t, "1d6+2", result.Hit.DiceString)
	assert.Equal(t, "slashing", result.Hit.DamageType)
	assert.Contains(t, result.Hit.FullText, "1d6 + 2")

	assert.Nil(t, result.Versatile)
	assert.Nil(t, result.SavingThrow)
}

func TestParseAttackText_RangedAttack(t *testing.T) {
	result := npc.ParseAttackText(
		"Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target. Hit: 5 (1d6 + 2) piercing damage.")

	require.NotNil(t, result)
	require.NotNil(t, result.Attack)
	assert.Equal(t, 4, result.Attack.Bonus)
	assert.Equal(t, 80, result.Attack.Range)
	assert.Equal(t, 0, result.Attack.Reach)

	require.NotNil(t, result.Hit)
	assert.Equal(t, "piercing", result.Hit.DamageType)
}

func TestParseAttackText_VersatileWeapon(t *testing.T) {
	result := npc.ParseAttackText(
		"Melee Weapon Attack: +5 to hit, reach 5 ft., one target. " +
			"Hit: 7 (1d8 + 3) slashing damage, or 8 (1d10 + 3) slashing damage if used with two hands.")

	require.NotNil(t, result)
	require.NotNil(t, result.Hit)
	assert.Equal(t, "1d8+3", result.Hit.DiceString)

	require.NotNil(t, result.Versatile)
	assert.Equal(t, "1d10+3", result.Versatile.DiceString)
	assert.Equal(t, "slashing", result.Versatile.DamageType)
}

func TestParseAttackText_SavingThrowEffect(t *testing.T) {
	result := npc.ParseAttackText(
		"Each creature in a 15-foot cone must make a DC 13 Dexterity saving throw, " +
			"taking 24 (7d6) fire damage on a failed save, or half as much damage on a successful one.")

	require.NotNil(t, result)
	assert.Nil(t, result.Attack)

	require.NotNil(t, result.SavingThrow)
	assert.Equal(t, 13, result.SavingThrow.DC)
	assert.Equal(t, shared.AttributeDexterity, result.SavingThrow.Ability)

	require.NotNil(t, result.Hit)
	assert.Equal(t, "7d6", result.Hit.DiceString)
	assert.Equal(t, "fire", result.Hit.DamageType)
}

func TestParseAttackText_AttackWithRiderSave(t *testing.T) {
	result := npc.ParseAttackText(
		"Melee Weapon Attack: +5 to hit, reach 5 ft., one target. Hit: 6 (1d6 + 3) bludgeoning damage. " +
			"If the target is a creature, it must succeed on a DC 13 Strength saving throw or be knocked prone.")

	require.NotNil(t, result)
	require.NotNil(t, result.Attack)
	assert.Equal(t, 5, result.Attack.Bonus)

	require.NotNil(t, result.SavingThrow)
	assert.Equal(t, 13, result.SavingThrow.DC)
	assert.Equal(t, shared.AttributeStrength, result.SavingThrow.Ability)

	// The attack damage stays on Hit; the rider save carries none
	require.NotNil(t, result.Hit)
	assert.Equal(t, "1d6+3", result.Hit.DiceString)
}

func TestParseAttackText_NoBonusDamageClause(t *testing.T) {
	result := npc.ParseAttackText("Melee Weapon Attack: +4 to hit, reach 5 ft., one creature.")

	require.NotNil(t, result)
	require.NotNil(t, result.Attack)
	assert.Equal(t, "one creature", result.Attack.Target)
	assert.Nil(t, result.Hit)
}

func TestParseAttackText_FlavorTextReturnsNil(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "pure flavor", text: "The goblin shrieks and waves its arms wildly."},
		{name: "passive ability", text: "The wolf has advantage on attack rolls against a creature if at least one of the wolf's allies is within 5 feet of the creature."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, npc.ParseAttackText(tt.text))
		})
	}
}

func TestParseAttackText_UnknownSaveAbilityIgnored(t *testing.T) {
	result := npc.ParseAttackText("The target must make a DC 10 Luck saving throw.")
	assert.Nil(t, result)
}

func TestAugmentActions(t *testing.T) {
	authored := &shared.ParsedAttack{
		Attack: &shared.AttackInfo{Bonus: 99},
	}
	goblin := &npc.NPCData{
		Name: "Goblin",
		Actions: []shared.Trait{
			{
				Name:        "Scimitar",
				Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) slashing damage.",
			},
			{
				Name:         "Shortbow",
				Description:  "Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target. Hit: 5 (1d6 + 2) piercing damage.",
				ParsedAttack: authored,
			},
			{
				Name:        "Nimble Escape",
				Description: "The goblin can take the Disengage or Hide action as a bonus action.",
			},
		},
	}

	goblin.AugmentActions()

	require.NotNil(t, goblin.Actions[0].ParsedAttack)
	assert.Equal(t, 4, goblin.Actions[0].ParsedAttack.Attack.Bonus)

	// Authored payloads are never replaced
	assert.Same(t, authored, goblin.Actions[1].ParsedAttack)

	assert.Nil(t, goblin.Actions[2].ParsedAttack)
}

func TestNPCData_Bonuses(t *testing.T) {
	orc := &npc.NPCData{
		Name: "Orc",
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeStrength:  16,
			shared.AttributeDexterity: 12,
			shared.AttributeWisdom:    11,
		},
		SavingThrows: map[shared.Attribute]int{
			shared.AttributeStrength: 5,
		},
		Skills: map[shared.SkillKey]int{
			shared.SkillIntimidation: 2,
		},
	}

	assert.Equal(t, 3, orc.AbilityModifier(shared.AttributeStrength))
	assert.Equal(t, 0, orc.AbilityModifier(shared.AttributeConstitution), "missing score defaults to 10")

	assert.Equal(t, 5, orc.SavingThrowBonus(shared.AttributeStrength), "explicit override wins")
	assert.Equal(t, 1, orc.SavingThrowBonus(shared.AttributeDexterity), "falls back to modifier")

	assert.Equal(t, 2, orc.SkillBonus(shared.SkillIntimidation))
	assert.Equal(t, 0, orc.SkillBonus(shared.SkillPerception), "falls back to Wis modifier")

	assert.Equal(t, 1, orc.InitiativeBonus())
}

func TestNPCData_Clone(t *testing.T) {
	original := &npc.NPCData{
		Name:          "Wolf",
		AbilityScores: map[shared.Attribute]int{shared.AttributeDexterity: 15},
		Actions: []shared.Trait{
			{
				Name:         "Bite",
				ParsedAttack: &shared.ParsedAttack{Attack: &shared.AttackInfo{Bonus: 4}},
			},
		},
	}

	clone := original.Clone()
	clone.AbilityScores[shared.AttributeDexterity] = 1
	clone.Actions[0].ParsedAttack.Attack.Bonus = 99

	assert.Equal(t, 15, original.AbilityScores[shared.AttributeDexterity])
	assert.Equal(t, 4, original.Actions[0].ParsedAttack.Attack.Bonus)
}
