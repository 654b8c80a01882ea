package rulebook

import "github.com/KirkDiggler/character-vault/internal/domain/shared"

// AbilityBonus is a fixed bonus a species or background grants to one ability
type AbilityBonus struct {
	Attribute shared.Attribute `json:"attribute"`
	Bonus     int              `json:"bonus"`
}

// Species is a static species definition from the content store
type Species struct {
	Key            string         `json:"key"`
	Name           string         `json:"name"`
	Speed          int            `json:"speed"`
	AbilityBonuses []AbilityBonus `json:"ability_bonuses,omitempty"`
	Languages      []string       `json:"languages,omitempty"`
	Traits         []ClassFeature `json:"traits,omitempty"`
}

// Background is a static background definition from the content store
type Background struct {
	Key                string            `json:"key"`
	Name               string            `json:"name"`
	SkillProficiencies []shared.SkillKey `json:"skill_proficiencies,omitempty"`
	ToolProficiencies  []string          `json:"tool_proficiencies,omitempty"`
	AbilityBonuses     []AbilityBonus    `json:"ability_bonuses,omitempty"`
	Feature            *ClassFeature     `json:"feature,omitempty"`
	StartingGold       int               `json:"starting_gold,omitempty"`
}
