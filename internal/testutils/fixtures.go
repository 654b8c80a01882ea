package testutils

import (
	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// CreateTestCharacterData creates a minimal stored character for tests
func CreateTestCharacterData(id, ownerID, name string) *character.CoreData {
	return &character.CoreData{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Level:   1,
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeStrength:     10,
			shared.AttributeDexterity:    14,
			shared.AttributeConstitution: 12,
			shared.AttributeIntelligence: 10,
			shared.AttributeWisdom:       12,
			shared.AttributeCharisma:     8,
		},
	}
}

// CreateTestGoblin creates a bestiary entry with one parseable attack
func CreateTestGoblin(id string) *npc.NPCData {
	return &npc.NPCData{
		ID:         id,
		Key:        "goblin",
		Name:       "Goblin",
		Size:       "Small",
		Type:       "humanoid",
		ArmorClass: 15,
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
		ChallengeRating: 0.25,
		XP:              50,
		Actions: []shared.Trait{
			{
				Name:        "Scimitar",
				Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) slashing damage.",
			},
		},
	}
}
