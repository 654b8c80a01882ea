package npcs

import (
	"context"
	"sync"

	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the bestiary
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*npc.NPCData
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		entries: make(map[string]*npc.NPCData),
	}
}

// Create stores a new bestiary entry
func (r *InMemoryRepository) Create(ctx context.Context, data *npc.NPCData) error {
	if data == nil {
		return dnderr.InvalidArgument("npc data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("npc ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[data.ID]; exists {
		return dnderr.AlreadyExistsf("npc with ID '%s' already exists", data.ID).
			WithMeta("npc_id", data.ID)
	}

	r.entries[data.ID] = data.Clone()
	return nil
}

// Get retrieves a bestiary entry by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*npc.NPCData, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("npc ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.entries[id]
	if !exists {
		return nil, dnderr.NotFoundf("npc with ID '%s' not found", id).
			WithMeta("npc_id", id)
	}

	return data.Clone(), nil
}

// List retrieves every bestiary entry
func (r *InMemoryRepository) List(ctx context.Context) ([]*npc.NPCData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*npc.NPCData, 0, len(r.entries))
	for _, data := range r.entries {
		result = append(result, data.Clone())
	}
	return result, nil
}

// Update replaces an existing bestiary entry
func (r *InMemoryRepository) Update(ctx context.Context, data *npc.NPCData) error {
	if data == nil {
		return dnderr.InvalidArgument("npc data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("npc ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[data.ID]; !exists {
		return dnderr.NotFoundf("npc with ID '%s' not found", data.ID).
			WithMeta("npc_id", data.ID)
	}

	r.entries[data.ID] = data.Clone()
	return nil
}

// Delete removes a bestiary entry
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("npc ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return dnderr.NotFoundf("npc with ID '%s' not found", id).
			WithMeta("npc_id", id)
	}

	delete(r.entries, id)
	return nil
}
