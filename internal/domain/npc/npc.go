package npc

import (
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// NPCData is an authored monster/NPC statblock. Unlike character sheets
// these numbers are written directly and never run through the derived
// stats pipeline.
type NPCData struct {
	ID              string                   `json:"id"`
	Key             string                   `json:"key,omitempty"`
	Name            string                   `json:"name"`
	Size            string                   `json:"size,omitempty"`
	Type            string                   `json:"type,omitempty"`
	Alignment       string                   `json:"alignment,omitempty"`
	ArmorClass      int                      `json:"armor_class"`
	ACType          string                   `json:"ac_type,omitempty"`
	HitPoints       int                      `json:"hit_points"`
	HitDice         string                   `json:"hit_dice,omitempty"`
	Speed           string                   `json:"speed,omitempty"`
	AbilityScores   map[shared.Attribute]int `json:"ability_scores"`
	SavingThrows    map[shared.Attribute]int `json:"saving_throws,omitempty"`
	Skills          map[shared.SkillKey]int  `json:"skills,omitempty"`
	Resistances     []string                 `json:"resistances,omitempty"`
	Immunities      []string                 `json:"immunities,omitempty"`
	ChallengeRating float64                  `json:"challenge_rating"`
	XP              int                      `json:"xp"`

	SpecialAbilities []shared.Trait `json:"special_abilities,omitempty"`
	Actions          []shared.Trait `json:"actions,omitempty"`
	Reactions        []shared.Trait `json:"reactions,omitempty"`
	LegendaryActions []shared.Trait `json:"legendary_actions,omitempty"`
}

// AbilityModifier returns the modifier for one of the NPC's ability
// scores, treating a missing score as 10.
func (n *NPCData) AbilityModifier(attr shared.Attribute) int {
	score, ok := n.AbilityScores[attr]
	if !ok {
		score = 10
	}
	return shared.Modifier(score)
}

// SavingThrowBonus returns the explicit saving throw override when one
// is authored, falling back to the plain ability modifier.
func (n *NPCData) SavingThrowBonus(attr shared.Attribute) int {
	if bonus, ok := n.SavingThrows[attr]; ok {
		return bonus
	}
	return n.AbilityModifier(attr)
}

// SkillBonus returns the explicit skill override when one is authored,
// falling back to the governing ability's modifier.
func (n *NPCData) SkillBonus(key shared.SkillKey) int {
	if bonus, ok := n.Skills[key]; ok {
		return bonus
	}
	return n.AbilityModifier(shared.SkillAbilities[key])
}

// InitiativeBonus is the NPC's Dexterity modifier. NPCs have no
// computed initiative value of their own.
func (n *NPCData) InitiativeBonus() int {
	return n.AbilityModifier(shared.AttributeDexterity)
}

// AugmentActions fills in ParsedAttack on every action-like trait that
// does not already carry one, by running the attack text parser over
// the description. Explicitly authored payloads are left alone.
func (n *NPCData) AugmentActions() {
	augment(n.Actions)
	augment(n.Reactions)
	augment(n.LegendaryActions)
}

func augment(traits []shared.Trait) {
	for i := range traits {
		if traits[i].ParsedAttack != nil {
			continue
		}
		traits[i].ParsedAttack = ParseAttackText(traits[i].Description)
	}
}

// Clone returns a deep copy so combat snapshots cannot be mutated
// through the bestiary entry.
func (n *NPCData) Clone() *NPCData {
	if n == nil {
		return nil
	}
	clone := *n
	clone.AbilityScores = copyIntMap(n.AbilityScores)
	clone.SavingThrows = copyIntMap(n.SavingThrows)
	clone.Skills = copySkillMap(n.Skills)
	clone.Resistances = append([]string(nil), n.Resistances...)
	clone.Immunities = append([]string(nil), n.Immunities...)
	clone.SpecialAbilities = cloneTraits(n.SpecialAbilities)
	clone.Actions = cloneTraits(n.Actions)
	clone.Reactions = cloneTraits(n.Reactions)
	clone.LegendaryActions = cloneTraits(n.LegendaryActions)
	return &clone
}

func copyIntMap(src map[shared.Attribute]int) map[shared.Attribute]int {
	if src == nil {
		return nil
	}
	dst := make(map[shared.Attribute]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copySkillMap(src map[shared.SkillKey]int) map[shared.SkillKey]int {
	if src == nil {
		return nil
	}
	dst := make(map[shared.SkillKey]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneTraits(src []shared.Trait) []shared.Trait {
	if src == nil {
		return nil
	}
	dst := make([]shared.Trait, len(src))
	copy(dst, src)
	for i := range dst {
		if dst[i].ParsedAttack != nil {
			pa := *dst[i].ParsedAttack
			if pa.Attack != nil {
				attack := *pa.Attack
				pa.Attack = &attack
			}
			if pa.Hit != nil {
				hit := *pa.Hit
				pa.Hit = &hit
			}
			if pa.Versatile != nil {
				versatile := *pa.Versatile
				pa.Versatile = &versatile
			}
			if pa.SavingThrow != nil {
				save := *pa.SavingThrow
				pa.SavingThrow = &save
			}
			dst[i].ParsedAttack = &pa
		}
	}
	return dst
}
