package dnd5e

import (
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"

	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// staticClient serves a bundled slice of SRD content without network
// access. It backs tests and deployments where the public API is
// unreachable or preloading is disabled.
type staticClient struct {
	classes     map[string]*rulebook.Class
	species     map[string]*rulebook.Species
	backgrounds map[string]*rulebook.Background
	items       map[string]*equipment.Definition
	monsters    map[string]*npc.NPCData
	classKeys   []string
}

// NewStatic returns a Client serving the bundled default content
func NewStatic() Client {
	c := &staticClient{
		classes:     make(map[string]*rulebook.Class),
		species:     make(map[string]*rulebook.Species),
		backgrounds: make(map[string]*rulebook.Background),
		items:       make(map[string]*equipment.Definition),
		monsters:    make(map[string]*npc.NPCData),
	}
	for _, class := range defaultClasses() {
		c.classes[class.Key] = class
		c.classKeys = append(c.classKeys, class.Key)
	}
	for _, sp := range defaultSpecies() {
		c.species[sp.Key] = sp
	}
	for _, bg := range defaultBackgrounds() {
		c.backgrounds[bg.Key] = bg
	}
	for _, item := range defaultItems() {
		c.items[item.ID] = item
	}
	for _, monster := range defaultMonsters() {
		c.monsters[monster.Key] = monster
	}
	return c
}

func (c *staticClient) ListClasses() ([]*rulebook.Class, error) {
	out := make([]*rulebook.Class, 0, len(c.classKeys))
	for _, key := range c.classKeys {
		out = append(out, c.classes[key])
	}
	return out, nil
}

func (c *staticClient) GetClass(key string) (*rulebook.Class, error) {
	class, ok := c.classes[key]
	if !ok {
		return nil, dnderr.NotFoundf("class '%s' not found", key)
	}
	return class, nil
}

func (c *staticClient) ListSpecies() ([]*rulebook.Species, error) {
	out := make([]*rulebook.Species, 0, len(c.species))
	for _, sp := range c.species {
		out = append(out, sp)
	}
	return out, nil
}

func (c *staticClient) GetSpecies(key string) (*rulebook.Species, error) {
	sp, ok := c.species[key]
	if !ok {
		return nil, dnderr.NotFoundf("species '%s' not found", key)
	}
	return sp, nil
}

func (c *staticClient) ListBackgrounds() ([]*rulebook.Background, error) {
	out := make([]*rulebook.Background, 0, len(c.backgrounds))
	for _, bg := range c.backgrounds {
		out = append(out, bg)
	}
	return out, nil
}

func (c *staticClient) GetBackground(key string) (*rulebook.Background, error) {
	bg, ok := c.backgrounds[key]
	if !ok {
		return nil, dnderr.NotFoundf("background '%s' not found", key)
	}
	return bg, nil
}

func (c *staticClient) GetEquipment(key string) (*equipment.Definition, error) {
	item, ok := c.items[key]
	if !ok {
		return nil, dnderr.NotFoundf("equipment '%s' not found", key)
	}
	return item, nil
}

func (c *staticClient) ListEquipment() ([]*equipment.Definition, error) {
	out := make([]*equipment.Definition, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	return out, nil
}

func (c *staticClient) GetMonster(key string) (*npc.NPCData, error) {
	monster, ok := c.monsters[key]
	if !ok {
		return nil, dnderr.NotFoundf("monster '%s' not found", key)
	}
	return monster.Clone(), nil
}

func (c *staticClient) ListMonstersByCR(minCR, maxCR float64) ([]*npc.NPCData, error) {
	var out []*npc.NPCData
	for _, monster := range c.monsters {
		if monster.ChallengeRating >= minCR && monster.ChallengeRating <= maxCR {
			out = append(out, monster.Clone())
		}
	}
	return out, nil
}

func defaultClasses() []*rulebook.Class {
	return []*rulebook.Class{
		{
			Key:          "barbarian",
			Name:         "Barbarian",
			HitDie:       12,
			SavingThrows: []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
			Features: []rulebook.ClassFeature{
				{
					Key:         rulebook.FeatureKeyUnarmoredDefenseCon,
					Name:        "Unarmored Defense",
					Description: "While not wearing armor, your AC equals 10 + your Dexterity modifier + your Constitution modifier. You can use a shield and still gain this benefit.",
				},
				{
					Key:         "rage",
					Name:        "Rage",
					Description: "In battle, you fight with primal ferocity.",
				},
			},
		},
		{
			Key:          "monk",
			Name:         "Monk",
			HitDie:       8,
			SavingThrows: []shared.Attribute{shared.AttributeStrength, shared.AttributeDexterity},
			Features: []rulebook.ClassFeature{
				{
					Key:         rulebook.FeatureKeyUnarmoredDefenseWis,
					Name:        "Unarmored Defense",
					Description: "While you are wearing no armor and not wielding a shield, your AC equals 10 + your Dexterity modifier + your Wisdom modifier.",
				},
				{
					Key:         "martial-arts",
					Name:        "Martial Arts",
					Description: "You can use Dexterity instead of Strength for unarmed strikes and monk weapons.",
				},
			},
		},
		{
			Key:          "fighter",
			Name:         "Fighter",
			HitDie:       10,
			SavingThrows: []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
			Features: []rulebook.ClassFeature{
				{
					Key:         "second-wind",
					Name:        "Second Wind",
					Description: "You have a limited well of stamina you can draw on to protect yourself from harm.",
				},
			},
		},
		{
			Key:          "rogue",
			Name:         "Rogue",
			HitDie:       8,
			SavingThrows: []shared.Attribute{shared.AttributeDexterity, shared.AttributeIntelligence},
			Features: []rulebook.ClassFeature{
				{
					Key:         "sneak-attack",
					Name:        "Sneak Attack",
					Description: "Once per turn, you can deal extra damage to one creature you hit with advantage.",
				},
			},
		},
		{
			Key:          "bard",
			Name:         "Bard",
			HitDie:       8,
			SavingThrows: []shared.Attribute{shared.AttributeDexterity, shared.AttributeCharisma},
			Spellcasting: &rulebook.Spellcasting{Ability: shared.AttributeCharisma},
			Features: []rulebook.ClassFeature{
				{
					Key:         "bardic-inspiration",
					Name:        "Bardic Inspiration",
					Description: "You can inspire others through stirring words or music.",
				},
			},
		},
		{
			Key:          "wizard",
			Name:         "Wizard",
			HitDie:       6,
			SavingThrows: []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
			Spellcasting: &rulebook.Spellcasting{Ability: shared.AttributeIntelligence},
			Features: []rulebook.ClassFeature{
				{
					Key:         "arcane-recovery",
					Name:        "Arcane Recovery",
					Description: "You can regain some of your magical energy by studying your spellbook.",
				},
			},
		},
	}
}

func defaultSpecies() []*rulebook.Species {
	return []*rulebook.Species{
		{
			Key:   "human",
			Name:  "Human",
			Speed: 30,
			AbilityBonuses: []rulebook.AbilityBonus{
				{Attribute: shared.AttributeStrength, Bonus: 1},
				{Attribute: shared.AttributeDexterity, Bonus: 1},
				{Attribute: shared.AttributeConstitution, Bonus: 1},
				{Attribute: shared.AttributeIntelligence, Bonus: 1},
				{Attribute: shared.AttributeWisdom, Bonus: 1},
				{Attribute: shared.AttributeCharisma, Bonus: 1},
			},
			Languages: []string{"Common"},
		},
		{
			Key:   "dwarf",
			Name:  "Dwarf",
			Speed: 25,
			AbilityBonuses: []rulebook.AbilityBonus{
				{Attribute: shared.AttributeConstitution, Bonus: 2},
			},
			Languages: []string{"Common", "Dwarvish"},
			Traits: []rulebook.ClassFeature{
				{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
				{Key: "dwarven-resilience", Name: "Dwarven Resilience", Description: "You have advantage on saving throws against poison."},
			},
		},
		{
			Key:   "elf",
			Name:  "Elf",
			Speed: 30,
			AbilityBonuses: []rulebook.AbilityBonus{
				{Attribute: shared.AttributeDexterity, Bonus: 2},
			},
			Languages: []string{"Common", "Elvish"},
			Traits: []rulebook.ClassFeature{
				{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
				{Key: "fey-ancestry", Name: "Fey Ancestry", Description: "You have advantage on saving throws against being charmed."},
			},
		},
		{
			Key:   "halfling",
			Name:  "Halfling",
			Speed: 25,
			AbilityBonuses: []rulebook.AbilityBonus{
				{Attribute: shared.AttributeDexterity, Bonus: 2},
			},
			Languages: []string{"Common", "Halfling"},
			Traits: []rulebook.ClassFeature{
				{Key: "lucky", Name: "Lucky", Description: "When you roll a 1 on a d20, you can reroll the die and must use the new roll."},
			},
		},
	}
}

func defaultItems() []*equipment.Definition {
	return []*equipment.Definition{
		{
			ID:       "dagger",
			Name:     "Dagger",
			Category: equipment.CategoryWeapon,
			Weapon: &equipment.WeaponDetails{
				DamageDice: "1d4",
				DamageType: "piercing",
				Properties: []equipment.WeaponProperty{equipment.PropertyFinesse, equipment.PropertyLight, equipment.PropertyThrown},
			},
			CostGold: 2,
			Weight:   1,
		},
		{
			ID:       "shortsword",
			Name:     "Shortsword",
			Category: equipment.CategoryWeapon,
			Weapon: &equipment.WeaponDetails{
				DamageDice: "1d6",
				DamageType: "piercing",
				Properties: []equipment.WeaponProperty{equipment.PropertyFinesse, equipment.PropertyLight},
			},
			CostGold: 10,
			Weight:   2,
		},
		{
			ID:       "longsword",
			Name:     "Longsword",
			Category: equipment.CategoryWeapon,
			Weapon: &equipment.WeaponDetails{
				DamageDice:      "1d8",
				DamageType:      "slashing",
				Properties:      []equipment.WeaponProperty{equipment.PropertyVersatile},
				VersatileDamage: "1d10",
			},
			CostGold: 15,
			Weight:   3,
		},
		{
			ID:       "greatsword",
			Name:     "Greatsword",
			Category: equipment.CategoryWeapon,
			Weapon: &equipment.WeaponDetails{
				DamageDice: "2d6",
				DamageType: "slashing",
				Properties: []equipment.WeaponProperty{equipment.PropertyHeavy, equipment.PropertyTwoHanded},
			},
			CostGold: 50,
			Weight:   6,
		},
		{
			ID:       "shortbow",
			Name:     "Shortbow",
			Category: equipment.CategoryWeapon,
			Weapon: &equipment.WeaponDetails{
				DamageDice:  "1d6",
				DamageType:  "piercing",
				Properties:  []equipment.WeaponProperty{equipment.PropertyAmmunition, equipment.PropertyRange, equipment.PropertyTwoHanded},
				RangeNormal: 80,
				RangeLong:   320,
			},
			CostGold: 25,
			Weight:   2,
		},
		{
			ID:       "shield",
			Name:     "Shield",
			Category: equipment.CategoryArmor,
			Armor: &equipment.ArmorDetails{
				BaseAC: 2,
			},
			CostGold: 10,
			Weight:   6,
		},
		{
			ID:       "leather-armor",
			Name:     "Leather Armor",
			Category: equipment.CategoryArmor,
			Armor: &equipment.ArmorDetails{
				BaseAC:         11,
				AddDexModifier: true,
				ArmorType:      equipment.ArmorTypeLight,
			},
			CostGold: 10,
			Weight:   10,
		},
		{
			ID:       "breastplate",
			Name:     "Breastplate",
			Category: equipment.CategoryArmor,
			Armor: &equipment.ArmorDetails{
				BaseAC:         14,
				AddDexModifier: true,
				MaxDexBonus:    2,
				ArmorType:      equipment.ArmorTypeMedium,
			},
			CostGold: 400,
			Weight:   20,
		},
		{
			ID:       "chain-mail",
			Name:     "Chain Mail",
			Category: equipment.CategoryArmor,
			Armor: &equipment.ArmorDetails{
				BaseAC:              16,
				ArmorType:           equipment.ArmorTypeHeavy,
				StrengthRequirement: 13,
				StealthDisadvantage: true,
			},
			CostGold: 75,
			Weight:   55,
		},
		{
			ID:       "torch",
			Name:     "Torch",
			Category: equipment.CategoryMiscellaneous,
			CostGold: 0,
			Weight:   1,
		},
	}
}

func defaultMonsters() []*npc.NPCData {
	return []*npc.NPCData{
		{
			ID:         "goblin",
			Key:        "goblin",
			Name:       "Goblin",
			Size:       "Small",
			Type:       "humanoid",
			Alignment:  "neutral evil",
			ArmorClass: 15,
			ACType:     "leather armor, shield",
			HitPoints:  7,
			HitDice:    "2d6",
			Speed:      "30 ft.",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     8,
				shared.AttributeDexterity:    14,
				shared.AttributeConstitution: 10,
				shared.AttributeIntelligence: 10,
				shared.AttributeWisdom:       8,
				shared.AttributeCharisma:     8,
			},
			Skills:          map[shared.SkillKey]int{shared.SkillStealth: 6},
			ChallengeRating: 0.25,
			XP:              50,
			SpecialAbilities: []shared.Trait{
				{Name: "Nimble Escape", Description: "The goblin can take the Disengage or Hide action as a bonus action on each of its turns."},
			},
			Actions: []shared.Trait{
				{Name: "Scimitar", Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) slashing damage."},
				{Name: "Shortbow", Description: "Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target. Hit: 5 (1d6 + 2) piercing damage."},
			},
		},
		{
			ID:         "wolf",
			Key:        "wolf",
			Name:       "Wolf",
			Size:       "Medium",
			Type:       "beast",
			Alignment:  "unaligned",
			ArmorClass: 13,
			ACType:     "natural armor",
			HitPoints:  11,
			HitDice:    "2d8",
			Speed:      "40 ft.",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     12,
				shared.AttributeDexterity:    15,
				shared.AttributeConstitution: 12,
				shared.AttributeIntelligence: 3,
				shared.AttributeWisdom:       12,
				shared.AttributeCharisma:     6,
			},
			Skills:          map[shared.SkillKey]int{shared.SkillPerception: 3, shared.SkillStealth: 4},
			ChallengeRating: 0.25,
			XP:              50,
			SpecialAbilities: []shared.Trait{
				{Name: "Pack Tactics", Description: "The wolf has advantage on attack rolls against a creature if at least one of the wolf's allies is within 5 feet of the creature and the ally isn't incapacitated."},
			},
			Actions: []shared.Trait{
				{Name: "Bite", Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 7 (2d4 + 2) piercing damage. If the target is a creature, it must succeed on a DC 11 Strength saving throw or be knocked prone."},
			},
		},
		{
			ID:         "orc",
			Key:        "orc",
			Name:       "Orc",
			Size:       "Medium",
			Type:       "humanoid",
			Alignment:  "chaotic evil",
			ArmorClass: 13,
			ACType:     "hide armor",
			HitPoints:  15,
			HitDice:    "2d8+6",
			Speed:      "30 ft.",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     16,
				shared.AttributeDexterity:    12,
				shared.AttributeConstitution: 16,
				shared.AttributeIntelligence: 7,
				shared.AttributeWisdom:       11,
				shared.AttributeCharisma:     10,
			},
			Skills:          map[shared.SkillKey]int{shared.SkillIntimidation: 2},
			ChallengeRating: 0.5,
			XP:              100,
			SpecialAbilities: []shared.Trait{
				{Name: "Aggressive", Description: "As a bonus action, the orc can move up to its speed toward a hostile creature that it can see."},
			},
			Actions: []shared.Trait{
				{Name: "Greataxe", Description: "Melee Weapon Attack: +5 to hit, reach 5 ft., one target. Hit: 9 (1d12 + 3) slashing damage."},
				{Name: "Javelin", Description: "Melee or Ranged Weapon Attack: +5 to hit, reach 5 ft. or range 30/120 ft., one target. Hit: 6 (1d6 + 3) piercing damage."},
			},
		},
		{
			ID:         "skeleton",
			Key:        "skeleton",
			Name:       "Skeleton",
			Size:       "Medium",
			Type:       "undead",
			Alignment:  "lawful evil",
			ArmorClass: 13,
			ACType:     "armor scraps",
			HitPoints:  13,
			HitDice:    "2d8+4",
			Speed:      "30 ft.",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     10,
				shared.AttributeDexterity:    14,
				shared.AttributeConstitution: 15,
				shared.AttributeIntelligence: 6,
				shared.AttributeWisdom:       8,
				shared.AttributeCharisma:     5,
			},
			Immunities:      []string{"poison"},
			Resistances:     []string{"piercing"},
			ChallengeRating: 0.25,
			XP:              50,
			Actions: []shared.Trait{
				{Name: "Shortsword", Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) piercing damage."},
				{Name: "Shortbow", Description: "Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target. Hit: 5 (1d6 + 2) piercing damage."},
			},
		},
	}
}
