package dnd5e

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

func apiReferenceItemToClass(input *apiEntities.ReferenceItem) *rulebook.Class {
	return &rulebook.Class{
		Key:  input.Key,
		Name: input.Name,
	}
}

func apiReferenceItemsToClasses(input []*apiEntities.ReferenceItem) []*rulebook.Class {
	output := make([]*rulebook.Class, len(input))
	for i, apiClass := range input {
		output[i] = apiReferenceItemToClass(apiClass)
	}
	return output
}

func apiReferenceItemToSpecies(input *apiEntities.ReferenceItem) *rulebook.Species {
	return &rulebook.Species{
		Key:  input.Key,
		Name: input.Name,
	}
}

func apiReferenceItemsToSpecies(input []*apiEntities.ReferenceItem) []*rulebook.Species {
	output := make([]*rulebook.Species, len(input))
	for i, apiRace := range input {
		output[i] = apiReferenceItemToSpecies(apiRace)
	}
	return output
}

func apiClassToClass(input *apiEntities.Class) *rulebook.Class {
	return &rulebook.Class{
		Key:    input.Key,
		Name:   input.Name,
		HitDie: input.HitDie,
	}
}

func apiRaceToSpecies(input *apiEntities.Race) *rulebook.Species {
	return &rulebook.Species{
		Key:            input.Key,
		Name:           input.Name,
		Speed:          input.Speed,
		AbilityBonuses: apiAbilityBonusesToAbilityBonuses(input.AbilityBonuses),
	}
}

func apiAbilityBonusesToAbilityBonuses(input []*apiEntities.AbilityBonus) []rulebook.AbilityBonus {
	var output []rulebook.AbilityBonus
	for _, bonus := range input {
		if bonus == nil || bonus.AbilityScore == nil {
			continue
		}
		attr := shared.ParseAttribute(bonus.AbilityScore.Key)
		if attr == shared.AttributeNone {
			continue
		}
		output = append(output, rulebook.AbilityBonus{
			Attribute: attr,
			Bonus:     bonus.Bonus,
		})
	}
	return output
}

func apiEquipmentInterfaceToDefinition(input dnd5e.EquipmentInterface) *equipment.Definition {
	if input == nil {
		return nil
	}

	switch equip := input.(type) {
	case *apiEntities.Equipment:
		return apiEquipmentToDefinition(equip)
	case *apiEntities.Weapon:
		return apiWeaponToDefinition(equip)
	case *apiEntities.Armor:
		return apiArmorToDefinition(equip)
	default:
		// Unknown equipment shapes are skipped
		return nil
	}
}

func apiEquipmentToDefinition(input *apiEntities.Equipment) *equipment.Definition {
	return &equipment.Definition{
		ID:       input.Key,
		Name:     input.Name,
		Category: equipment.CategoryMiscellaneous,
		Weight:   float32(input.Weight),
		CostGold: apiCostToGold(input.Cost),
	}
}

func apiWeaponToDefinition(input *apiEntities.Weapon) *equipment.Definition {
	details := &equipment.WeaponDetails{
		Properties: apiPropertiesToWeaponProperties(input.Properties),
	}
	if input.Damage != nil {
		details.DamageDice = input.Damage.DamageDice
		details.DamageType = apiDamageTypeName(input.Damage.DamageType)
	}
	if input.TwoHandedDamage != nil {
		details.VersatileDamage = input.TwoHandedDamage.DamageDice
	}

	return &equipment.Definition{
		ID:       input.Key,
		Name:     input.Name,
		Category: equipment.CategoryWeapon,
		Weapon:   details,
		Weight:   float32(input.Weight),
		CostGold: apiCostToGold(input.Cost),
	}
}

func apiArmorToDefinition(input *apiEntities.Armor) *equipment.Definition {
	details := &equipment.ArmorDetails{
		StealthDisadvantage: input.StealthDisadvantage,
	}

	switch strings.ToLower(input.ArmorCategory) {
	case "light":
		details.ArmorType = equipment.ArmorTypeLight
	case "medium":
		details.ArmorType = equipment.ArmorTypeMedium
	case "heavy":
		details.ArmorType = equipment.ArmorTypeHeavy
	default:
		// Shields and generic pieces carry no armor type
		details.ArmorType = equipment.ArmorTypeNone
	}

	if input.ArmorClass != nil {
		details.BaseAC = input.ArmorClass.Base
		details.AddDexModifier = input.ArmorClass.DexBonus
	}

	return &equipment.Definition{
		ID:       input.Key,
		Name:     input.Name,
		Category: equipment.CategoryArmor,
		Armor:    details,
		Weight:   float32(input.Weight),
		CostGold: apiCostToGold(input.Cost),
	}
}

func apiPropertiesToWeaponProperties(input []*apiEntities.ReferenceItem) []equipment.WeaponProperty {
	var output []equipment.WeaponProperty
	for _, prop := range input {
		if prop == nil || prop.Key == "" {
			continue
		}
		output = append(output, equipment.WeaponProperty(strings.ToLower(prop.Key)))
	}
	return output
}

func apiDamageTypeName(input *apiEntities.ReferenceItem) string {
	if input == nil {
		return ""
	}
	return strings.ToLower(input.Key)
}

func apiCostToGold(input *apiEntities.Cost) int {
	if input == nil {
		return 0
	}
	switch input.Unit {
	case "gp":
		return input.Quantity
	case "sp":
		return input.Quantity / 10
	case "cp":
		return input.Quantity / 100
	default:
		return 0
	}
}

func apiMonsterToNPCData(input *apiEntities.Monster) *npc.NPCData {
	if input == nil {
		return nil
	}

	return &npc.NPCData{
		ID:              input.Key,
		Key:             input.Key,
		Name:            input.Name,
		Type:            input.Type,
		ArmorClass:      input.ArmorClass,
		HitPoints:       input.HitPoints,
		HitDice:         input.HitDice,
		ChallengeRating: float64(input.ChallengeRating),
		Actions:         apiMonsterActionsToTraits(input.MonsterActions),
	}
}

func apiMonsterActionsToTraits(input []*apiEntities.MonsterAction) []shared.Trait {
	var output []shared.Trait
	for _, action := range input {
		if action == nil {
			continue
		}
		trait := shared.Trait{
			Name:        action.Name,
			Description: action.Description,
		}
		// Structured attack data from the API takes precedence over
		// anything the text parser would extract later.
		if parsed := apiMonsterActionToParsedAttack(action); parsed != nil {
			trait.ParsedAttack = parsed
		}
		output = append(output, trait)
	}
	return output
}

func apiMonsterActionToParsedAttack(input *apiEntities.MonsterAction) *shared.ParsedAttack {
	if input.AttackBonus == 0 && len(input.Damage) == 0 {
		return nil
	}

	parsed := &shared.ParsedAttack{}
	if input.AttackBonus != 0 {
		parsed.Attack = &shared.AttackInfo{Bonus: input.AttackBonus}
	}
	for _, dmg := range input.Damage {
		if dmg == nil || dmg.DamageDice == "" {
			continue
		}
		parsed.Hit = &shared.DamageInfo{
			DiceString: strings.ReplaceAll(dmg.DamageDice, " ", ""),
			DamageType: apiDamageTypeName(dmg.DamageType),
			FullText:   fmt.Sprintf("%s %s damage", dmg.DamageDice, apiDamageTypeName(dmg.DamageType)),
		}
		break
	}
	return parsed
}
