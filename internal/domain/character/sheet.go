package character

import (
	"time"

	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// SavingThrow is one computed saving-throw entry on a sheet
type SavingThrow struct {
	Value      int  `json:"value"`
	Proficient bool `json:"proficient"`
}

// Skill is one computed skill entry on a sheet
type Skill struct {
	Value      int              `json:"value"`
	Proficient bool             `json:"proficient"`
	Ability    shared.Attribute `json:"ability"`
}

// SpellStats holds the derived spellcasting numbers for casting classes
type SpellStats struct {
	Ability     shared.Attribute `json:"ability"`
	SaveDC      int              `json:"save_dc"`
	AttackBonus int              `json:"attack_bonus"`
}

// Sheet is the full computed state of a player character. Base state
// (scores, proficiencies, equipment, class selection) is mutated by
// commands; every derived field is overwritten by Recompute, which must
// run after every mutation.
type Sheet struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
	Name    string `json:"name"`
	Level   int    `json:"level"`

	Class      *rulebook.Class      `json:"class,omitempty"`
	Species    *rulebook.Species    `json:"species,omitempty"`
	Background *rulebook.Background `json:"background,omitempty"`

	AbilityScores    map[shared.Attribute]int `json:"ability_scores"`
	AbilityModifiers map[shared.Attribute]int `json:"ability_modifiers"`

	ProficiencyBonus  int `json:"proficiency_bonus"`
	MaxHP             int `json:"max_hp"`
	CurrentHP         int `json:"current_hp"`
	TemporaryHP       int `json:"temporary_hp"`
	ArmorClass        int `json:"armor_class"`
	Initiative        int `json:"initiative"`
	Speed             int `json:"speed"`
	PassivePerception int `json:"passive_perception"`

	Proficiencies []shared.Proficiency             `json:"proficiencies"`
	SavingThrows  map[shared.Attribute]SavingThrow `json:"saving_throws"`
	Skills        map[shared.SkillKey]Skill        `json:"skills"`
	Equipment     []equipment.EquippedItem         `json:"equipment"`
	Gold          int                              `json:"gold"`
	Traits        []shared.Trait                   `json:"traits"`
	Spellcasting  *SpellStats                      `json:"spellcasting,omitempty"`
}

// CoreData is the flat, serializable snapshot a character is persisted
// as. Derived fields are absent: a sheet is reconstructed from core data
// plus static definitions and then recomputed.
type CoreData struct {
	ID            string                   `json:"id"`
	OwnerID       string                   `json:"owner_id,omitempty"`
	Name          string                   `json:"name"`
	Level         int                      `json:"level"`
	ClassKey      string                   `json:"class_key,omitempty"`
	SpeciesKey    string                   `json:"species_key,omitempty"`
	BackgroundKey string                   `json:"background_key,omitempty"`
	AbilityScores map[shared.Attribute]int `json:"ability_scores"`
	Proficiencies []shared.Proficiency     `json:"proficiencies"`
	CurrentHP     int                      `json:"current_hp"`
	TemporaryHP   int                      `json:"temporary_hp"`
	Gold          int                      `json:"gold"`
	Equipment     []equipment.EquippedItem `json:"equipment"`
	Traits        []shared.Trait           `json:"traits"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// HasProficiency reports whether any proficiency record matches the
// given name and kind, regardless of source
func (s *Sheet) HasProficiency(name string, kind shared.ProficiencyKind) bool {
	for _, prof := range s.Proficiencies {
		if prof.Kind == kind && prof.Name == name {
			return true
		}
	}
	return false
}

// HasTrait reports whether a trait with the given key-like name exists
func (s *Sheet) HasTrait(name string) bool {
	for _, trait := range s.Traits {
		if trait.Name == name {
			return true
		}
	}
	return false
}

// RemoveBySource drops proficiencies and traits granted by the given
// source. Used when a class/background/species selection changes.
func (s *Sheet) RemoveBySource(source shared.Source) {
	profs := s.Proficiencies[:0]
	for _, prof := range s.Proficiencies {
		if prof.Source != source {
			profs = append(profs, prof)
		}
	}
	s.Proficiencies = profs

	traits := s.Traits[:0]
	for _, trait := range s.Traits {
		if trait.Source != source {
			traits = append(traits, trait)
		}
	}
	s.Traits = traits
}

// ToCoreData flattens the sheet into its persisted form
func (s *Sheet) ToCoreData() *CoreData {
	core := &CoreData{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Name:          s.Name,
		Level:         s.Level,
		AbilityScores: copyScores(s.AbilityScores),
		Proficiencies: append([]shared.Proficiency(nil), s.Proficiencies...),
		CurrentHP:     s.CurrentHP,
		TemporaryHP:   s.TemporaryHP,
		Gold:          s.Gold,
		Equipment:     cloneEquipment(s.Equipment),
		Traits:        cloneTraits(s.Traits),
	}

	if s.Class != nil {
		core.ClassKey = s.Class.Key
	}
	if s.Species != nil {
		core.SpeciesKey = s.Species.Key
	}
	if s.Background != nil {
		core.BackgroundKey = s.Background.Key
	}

	return core
}

// Clone creates a deep copy of the snapshot
func (d *CoreData) Clone() *CoreData {
	if d == nil {
		return nil
	}
	clone := *d
	clone.AbilityScores = copyScores(d.AbilityScores)
	clone.Proficiencies = append([]shared.Proficiency(nil), d.Proficiencies...)
	clone.Equipment = cloneEquipment(d.Equipment)
	clone.Traits = cloneTraits(d.Traits)
	return &clone
}

// Clone creates a deep copy of the sheet
func (s *Sheet) Clone() *Sheet {
	clone := &Sheet{
		ID:                s.ID,
		OwnerID:           s.OwnerID,
		Name:              s.Name,
		Level:             s.Level,
		ProficiencyBonus:  s.ProficiencyBonus,
		MaxHP:             s.MaxHP,
		CurrentHP:         s.CurrentHP,
		TemporaryHP:       s.TemporaryHP,
		ArmorClass:        s.ArmorClass,
		Initiative:        s.Initiative,
		Speed:             s.Speed,
		PassivePerception: s.PassivePerception,
		Gold:              s.Gold,
	}

	if s.Class != nil {
		classCopy := *s.Class
		clone.Class = &classCopy
	}
	if s.Species != nil {
		speciesCopy := *s.Species
		clone.Species = &speciesCopy
	}
	if s.Background != nil {
		backgroundCopy := *s.Background
		clone.Background = &backgroundCopy
	}

	clone.AbilityScores = copyScores(s.AbilityScores)
	clone.AbilityModifiers = copyScores(s.AbilityModifiers)

	if s.SavingThrows != nil {
		clone.SavingThrows = make(map[shared.Attribute]SavingThrow, len(s.SavingThrows))
		for k, v := range s.SavingThrows {
			clone.SavingThrows[k] = v
		}
	}
	if s.Skills != nil {
		clone.Skills = make(map[shared.SkillKey]Skill, len(s.Skills))
		for k, v := range s.Skills {
			clone.Skills[k] = v
		}
	}

	clone.Proficiencies = append([]shared.Proficiency(nil), s.Proficiencies...)
	clone.Equipment = cloneEquipment(s.Equipment)
	clone.Traits = cloneTraits(s.Traits)

	if s.Spellcasting != nil {
		spellCopy := *s.Spellcasting
		clone.Spellcasting = &spellCopy
	}

	return clone
}

func copyScores(scores map[shared.Attribute]int) map[shared.Attribute]int {
	if scores == nil {
		return nil
	}
	out := make(map[shared.Attribute]int, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	return out
}

func cloneEquipment(items []equipment.EquippedItem) []equipment.EquippedItem {
	if items == nil {
		return nil
	}
	out := make([]equipment.EquippedItem, len(items))
	copy(out, items)
	for idx := range out {
		if out[idx].Weapon != nil {
			weaponCopy := *out[idx].Weapon
			weaponCopy.Properties = append([]equipment.WeaponProperty(nil), out[idx].Weapon.Properties...)
			out[idx].Weapon = &weaponCopy
		}
		if out[idx].Armor != nil {
			armorCopy := *out[idx].Armor
			out[idx].Armor = &armorCopy
		}
	}
	return out
}

func cloneTraits(traits []shared.Trait) []shared.Trait {
	if traits == nil {
		return nil
	}
	out := make([]shared.Trait, len(traits))
	copy(out, traits)
	for idx := range out {
		if out[idx].ParsedAttack != nil {
			attackCopy := *out[idx].ParsedAttack
			out[idx].ParsedAttack = &attackCopy
		}
	}
	return out
}
