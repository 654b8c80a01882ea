package rulebook

import "github.com/KirkDiggler/character-vault/internal/domain/shared"

// Spellcasting describes a class's casting ability, when it has one
type Spellcasting struct {
	Ability shared.Attribute `json:"ability"`
}

// Class is a static class definition from the content store
type Class struct {
	Key                string             `json:"key"`
	Name               string             `json:"name"`
	HitDie             int                `json:"hit_die"`
	SavingThrows       []shared.Attribute `json:"saving_throws"`
	SkillProficiencies []shared.SkillKey  `json:"skill_proficiencies"`
	Spellcasting       *Spellcasting      `json:"spellcasting,omitempty"`
	Features           []ClassFeature     `json:"features,omitempty"`
}

// ClassFeature is a level-1 class feature granted on class selection
type ClassFeature struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Unarmored defense feature keys. The two variants use different
// formulas and interact differently with shields; the asymmetry is
// deliberate and must not be unified.
const (
	FeatureKeyUnarmoredDefenseCon = "unarmored-defense-con" // 10 + Dex + Con, shield stacks
	FeatureKeyUnarmoredDefenseWis = "unarmored-defense-wis" // 10 + Dex + Wis, void with a shield
)
