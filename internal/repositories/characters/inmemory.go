package characters

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.CoreData
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*character.CoreData),
	}
}

// Create stores a new character snapshot
func (r *InMemoryRepository) Create(ctx context.Context, data *character.CoreData) error {
	if data == nil {
		return dnderr.InvalidArgument("character data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[data.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", data.ID).
			WithMeta("character_id", data.ID)
	}

	stored := data.Clone()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.characters[data.ID] = stored

	return nil
}

// Get retrieves a character snapshot by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.CoreData, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.characters[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return data.Clone(), nil
}

// GetByOwner retrieves all character snapshots for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.CoreData, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*character.CoreData
	for _, data := range r.characters {
		if data.OwnerID == ownerID {
			result = append(result, data.Clone())
		}
	}

	return result, nil
}

// Update replaces an existing character snapshot
func (r *InMemoryRepository) Update(ctx context.Context, data *character.CoreData) error {
	if data == nil {
		return dnderr.InvalidArgument("character data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.characters[data.ID]
	if !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", data.ID).
			WithMeta("character_id", data.ID)
	}

	stored := data.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	r.characters[data.ID] = stored

	return nil
}

// Delete removes a character snapshot
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}
