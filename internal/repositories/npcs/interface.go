package npcs

//go:generate mockgen -destination=mock/mock.go -package=mocknpcs -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/character-vault/internal/domain/npc"
)

// Repository defines the interface for bestiary persistence. Entries
// are authored statblocks keyed by id.
type Repository interface {
	// Create stores a new bestiary entry
	Create(ctx context.Context, data *npc.NPCData) error

	// Get retrieves a bestiary entry by ID
	Get(ctx context.Context, id string) (*npc.NPCData, error)

	// List retrieves every bestiary entry
	List(ctx context.Context) ([]*npc.NPCData, error)

	// Update replaces an existing bestiary entry
	Update(ctx context.Context, data *npc.NPCData) error

	// Delete removes a bestiary entry
	Delete(ctx context.Context, id string) error
}
