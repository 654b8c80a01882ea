package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
)

// Client is the read-only content store backed by the public 5e API.
// Nothing in the application ever writes through it.
type Client interface {
	ListClasses() ([]*rulebook.Class, error)
	GetClass(key string) (*rulebook.Class, error)
	ListSpecies() ([]*rulebook.Species, error)
	GetSpecies(key string) (*rulebook.Species, error)
	ListBackgrounds() ([]*rulebook.Background, error)
	GetBackground(key string) (*rulebook.Background, error)
	GetEquipment(key string) (*equipment.Definition, error)
	ListEquipment() ([]*equipment.Definition, error)
	GetMonster(key string) (*npc.NPCData, error)
	ListMonstersByCR(minCR, maxCR float64) ([]*npc.NPCData, error)
}
