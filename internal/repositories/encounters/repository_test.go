package encounters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/game/combat"
	"github.com/KirkDiggler/character-vault/internal/uuid"
)

func newTracker(id string) *combat.Tracker {
	return combat.NewTracker(id, "Goblin Ambush", uuid.NewGoogleUUIDGenerator())
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	tracker := newTracker("enc-1")
	require.NoError(t, repo.Create(ctx, tracker))

	got, err := repo.Get(ctx, "enc-1")
	require.NoError(t, err)

	// Live state, not a copy. Mutations through one reference must be
	// visible through the other.
	assert.Same(t, tracker, got)
}

func TestInMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTracker("enc-1")))

	err := repo.Create(ctx, newTracker("enc-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInMemoryRepository_CreateValidation(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	assert.Error(t, repo.Create(ctx, nil))
	assert.Error(t, repo.Create(ctx, newTracker("")))
}

func TestInMemoryRepository_GetMissing(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInMemoryRepository_List(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTracker("enc-1")))
	require.NoError(t, repo.Create(ctx, newTracker("enc-2")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTracker("enc-1")))
	require.NoError(t, repo.Delete(ctx, "enc-1"))

	_, err := repo.Get(ctx, "enc-1")
	assert.Error(t, err)

	assert.Error(t, repo.Delete(ctx, "enc-1"))
}
