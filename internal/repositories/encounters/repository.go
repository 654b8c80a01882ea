package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/character-vault/internal/domain/game/combat"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// Repository defines the interface for encounter storage. Trackers are
// live in-memory state machines, so they are stored by reference and
// never serialized mid-combat.
type Repository interface {
	// Create stores a new tracker
	Create(ctx context.Context, tracker *combat.Tracker) error

	// Get retrieves a tracker by ID
	Get(ctx context.Context, id string) (*combat.Tracker, error)

	// List retrieves every stored tracker
	List(ctx context.Context) ([]*combat.Tracker, error)

	// Delete removes a tracker
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository is the in-memory implementation of the encounter
// repository
type InMemoryRepository struct {
	mu       sync.RWMutex
	trackers map[string]*combat.Tracker
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		trackers: make(map[string]*combat.Tracker),
	}
}

// Create stores a new tracker
func (r *InMemoryRepository) Create(ctx context.Context, tracker *combat.Tracker) error {
	if tracker == nil {
		return dnderr.InvalidArgument("tracker cannot be nil")
	}
	if tracker.ID == "" {
		return dnderr.InvalidArgument("tracker ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trackers[tracker.ID]; exists {
		return dnderr.AlreadyExistsf("encounter with ID '%s' already exists", tracker.ID).
			WithMeta("encounter_id", tracker.ID)
	}

	r.trackers[tracker.ID] = tracker
	return nil
}

// Get retrieves a tracker by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*combat.Tracker, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("tracker ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tracker, exists := r.trackers[id]
	if !exists {
		return nil, dnderr.NotFoundf("encounter with ID '%s' not found", id).
			WithMeta("encounter_id", id)
	}

	return tracker, nil
}

// List retrieves every stored tracker
func (r *InMemoryRepository) List(ctx context.Context) ([]*combat.Tracker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*combat.Tracker, 0, len(r.trackers))
	for _, tracker := range r.trackers {
		result = append(result, tracker)
	}
	return result, nil
}

// Delete removes a tracker
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("tracker ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trackers[id]; !exists {
		return dnderr.NotFoundf("encounter with ID '%s' not found", id).
			WithMeta("encounter_id", id)
	}

	delete(r.trackers, id)
	return nil
}
