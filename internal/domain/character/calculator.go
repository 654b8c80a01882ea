package character

import (
	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

const (
	defaultProficiencyBonus = 2
	defaultSpeed            = 30
	baseUnarmoredAC         = 10
)

// Recompute derives every computed value on the sheet from its base
// state and returns a new sheet. It is total and idempotent: it never
// fails on a structurally valid sheet, missing optional pieces degrade
// to documented defaults, and recomputing a recomputed sheet changes
// nothing. It must run after every mutation; nothing recomputes
// implicitly.
func Recompute(s *Sheet) *Sheet {
	if s == nil {
		return nil
	}

	out := s.Clone()

	// 1. Ability modifiers
	out.AbilityModifiers = make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		out.AbilityModifiers[attr] = shared.Modifier(scoreOf(out, attr))
	}

	// 2. Proficiency bonus is an input, defaulted for fresh sheets
	if out.ProficiencyBonus == 0 {
		out.ProficiencyBonus = defaultProficiencyBonus
	}

	// 3. Skills, overwriting all prior values
	out.Skills = make(map[shared.SkillKey]Skill, len(shared.SkillAbilities))
	for key, ability := range shared.SkillAbilities {
		value := out.AbilityModifiers[ability]
		proficient := out.HasProficiency(string(key), shared.ProficiencyKindSkill)
		if proficient {
			value += out.ProficiencyBonus
		}
		out.Skills[key] = Skill{Value: value, Proficient: proficient, Ability: ability}
	}

	// 4. Saving throws
	out.SavingThrows = make(map[shared.Attribute]SavingThrow, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		value := out.AbilityModifiers[attr]
		proficient := out.HasProficiency(string(attr), shared.ProficiencyKindSavingThrow)
		if proficient {
			value += out.ProficiencyBonus
		}
		out.SavingThrows[attr] = SavingThrow{Value: value, Proficient: proficient}
	}

	// 5. Hit points (level-1 model: hit die + Con, no per-level accrual)
	recomputeHitPoints(out)

	// 6. Initiative is the flat Dex modifier
	out.Initiative = out.AbilityModifiers[shared.AttributeDexterity]

	// 7/8 depend on skills and armor; AC before passive perception is
	// arbitrary, neither reads the other
	out.ArmorClass = computeArmorClass(out)

	if perception, ok := out.Skills[shared.SkillPerception]; ok {
		out.PassivePerception = 10 + perception.Value
	} else {
		out.PassivePerception = 10 + out.AbilityModifiers[shared.AttributeWisdom]
	}

	// 9. Spell stats only for casting classes
	if out.Class != nil && out.Class.Spellcasting != nil {
		mod := out.AbilityModifiers[out.Class.Spellcasting.Ability]
		out.Spellcasting = &SpellStats{
			Ability:     out.Class.Spellcasting.Ability,
			SaveDC:      8 + out.ProficiencyBonus + mod,
			AttackBonus: out.ProficiencyBonus + mod,
		}
	} else {
		out.Spellcasting = nil
	}

	// 10. Speed: species, else previous value, else the walking default
	if out.Species != nil && out.Species.Speed > 0 {
		out.Speed = out.Species.Speed
	} else if out.Speed == 0 {
		out.Speed = defaultSpeed
	}

	return out
}

func scoreOf(s *Sheet, attr shared.Attribute) int {
	if s.AbilityScores == nil {
		return 10
	}
	if score, ok := s.AbilityScores[attr]; ok {
		return score
	}
	return 10
}

func recomputeHitPoints(s *Sheet) {
	if s.Class == nil {
		s.MaxHP = 0
		if s.CurrentHP > 0 {
			s.CurrentHP = 0
		}
		return
	}

	s.MaxHP = s.Class.HitDie + s.AbilityModifiers[shared.AttributeConstitution]

	// Current HP is never raised by recomputation except from zero
	// (a fresh character); above-max values clamp down.
	if s.CurrentHP == 0 || s.CurrentHP > s.MaxHP {
		s.CurrentHP = s.MaxHP
	}
}

// computeArmorClass walks the AC precedence ladder. Exactly one base
// formula applies; earlier candidates are discarded, never summed.
// The shield interaction is asymmetric between the two unarmored
// defense variants and that asymmetry is kept on purpose: the
// Constitution variant stacks with a shield, the Wisdom variant is
// voided entirely by one.
func computeArmorClass(s *Sheet) int {
	dex := s.AbilityModifiers[shared.AttributeDexterity]
	bodyArmor := equippedBodyArmor(s.Equipment)
	shieldAC, shieldUp := equippedShieldAC(s.Equipment)

	if bodyArmor != nil {
		ac := bodyArmor.BaseAC
		if bodyArmor.AddDexModifier {
			bonus := dex
			if bodyArmor.ArmorType == equipment.ArmorTypeMedium {
				maxBonus := bodyArmor.MaxDexBonus
				if maxBonus == 0 {
					maxBonus = 2
				}
				if bonus > maxBonus {
					bonus = maxBonus
				}
			}
			if bodyArmor.ArmorType == equipment.ArmorTypeHeavy {
				bonus = 0
			}
			ac += bonus
		}
		if shieldUp {
			ac += shieldAC
		}
		return ac
	}

	if s.HasTrait(rulebook.FeatureKeyUnarmoredDefenseCon) {
		ac := baseUnarmoredAC + dex + s.AbilityModifiers[shared.AttributeConstitution]
		if shieldUp {
			ac += shieldAC
		}
		return ac
	}

	if s.HasTrait(rulebook.FeatureKeyUnarmoredDefenseWis) && !shieldUp {
		return baseUnarmoredAC + dex + s.AbilityModifiers[shared.AttributeWisdom]
	}

	ac := baseUnarmoredAC + dex
	if shieldUp {
		ac += shieldAC
	}
	return ac
}

func equippedBodyArmor(items []equipment.EquippedItem) *equipment.ArmorDetails {
	for idx := range items {
		if items[idx].Equipped && items[idx].IsBodyArmor() {
			return items[idx].Armor
		}
	}
	return nil
}

func equippedShieldAC(items []equipment.EquippedItem) (int, bool) {
	for idx := range items {
		if items[idx].Equipped && items[idx].IsShield() {
			return items[idx].Armor.BaseAC, true
		}
	}
	return 0, false
}
