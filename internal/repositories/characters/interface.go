package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
)

// Repository defines the interface for character persistence. Only the
// flat core snapshot is stored; full sheets are reconstructed from it
// plus content definitions.
type Repository interface {
	// Create stores a new character snapshot
	Create(ctx context.Context, data *character.CoreData) error

	// Get retrieves a character snapshot by ID
	Get(ctx context.Context, id string) (*character.CoreData, error)

	// GetByOwner retrieves all character snapshots for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.CoreData, error)

	// Update replaces an existing character snapshot
	Update(ctx context.Context, data *character.CoreData) error

	// Delete removes a character snapshot
	Delete(ctx context.Context, id string) error
}
