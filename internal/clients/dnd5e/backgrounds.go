package dnd5e

import (
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// The public API has no useful background endpoint, so both client
// implementations serve backgrounds from this bundled table.
func defaultBackgrounds() []*rulebook.Background {
	return []*rulebook.Background{
		{
			Key:  "acolyte",
			Name: "Acolyte",
			SkillProficiencies: []shared.SkillKey{
				shared.SkillInsight,
				shared.SkillReligion,
			},
			Feature: &rulebook.ClassFeature{
				Key:         "shelter-of-the-faithful",
				Name:        "Shelter of the Faithful",
				Description: "You command the respect of those who share your faith and can receive free healing at temples of your deity.",
			},
			StartingGold: 15,
		},
		{
			Key:  "criminal",
			Name: "Criminal",
			SkillProficiencies: []shared.SkillKey{
				shared.SkillDeception,
				shared.SkillStealth,
			},
			ToolProficiencies: []string{"thieves' tools", "dice set"},
			Feature: &rulebook.ClassFeature{
				Key:         "criminal-contact",
				Name:        "Criminal Contact",
				Description: "You have a reliable and trustworthy contact who acts as your liaison to a network of other criminals.",
			},
			StartingGold: 15,
		},
		{
			Key:  "folk-hero",
			Name: "Folk Hero",
			SkillProficiencies: []shared.SkillKey{
				shared.SkillAnimalHandling,
				shared.SkillSurvival,
			},
			ToolProficiencies: []string{"smith's tools", "vehicles (land)"},
			Feature: &rulebook.ClassFeature{
				Key:         "rustic-hospitality",
				Name:        "Rustic Hospitality",
				Description: "Commoners will shelter you from the law or anyone searching for you, though they will not risk their lives.",
			},
			StartingGold: 10,
		},
		{
			Key:  "sage",
			Name: "Sage",
			SkillProficiencies: []shared.SkillKey{
				shared.SkillArcana,
				shared.SkillHistory,
			},
			Feature: &rulebook.ClassFeature{
				Key:         "researcher",
				Name:        "Researcher",
				Description: "When you attempt to learn or recall a piece of lore, you often know where and from whom you can obtain it.",
			},
			StartingGold: 10,
		},
		{
			Key:  "soldier",
			Name: "Soldier",
			SkillProficiencies: []shared.SkillKey{
				shared.SkillAthletics,
				shared.SkillIntimidation,
			},
			ToolProficiencies: []string{"dice set", "vehicles (land)"},
			Feature: &rulebook.ClassFeature{
				Key:         "military-rank",
				Name:        "Military Rank",
				Description: "Soldiers loyal to your former organization recognize your authority and defer to you when they are of lower rank.",
			},
			StartingGold: 10,
		},
	}
}
