package npcs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/repositories/npcs"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := npcs.NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, goblin()))

	loaded, err := repo.Get(ctx, "goblin")
	require.NoError(t, err)
	assert.Equal(t, "Goblin", loaded.Name)

	loaded.HitPoints = 99
	loaded.Actions[0].Name = "Mutated"

	again, err := repo.Get(ctx, "goblin")
	require.NoError(t, err)
	assert.Equal(t, 7, again.HitPoints, "stored entry should not share memory with callers")
	assert.Equal(t, "Scimitar", again.Actions[0].Name)

	updated := goblin()
	updated.HitPoints = 12
	require.NoError(t, repo.Update(ctx, updated))

	again, err = repo.Get(ctx, "goblin")
	require.NoError(t, err)
	assert.Equal(t, 12, again.HitPoints)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, "goblin"))
	_, err = repo.Get(ctx, "goblin")
	assert.Error(t, err)
}

func TestInMemoryRepository_Validation(t *testing.T) {
	ctx := context.Background()
	repo := npcs.NewInMemoryRepository()

	assert.Error(t, repo.Create(ctx, nil))
	assert.Error(t, repo.Create(ctx, &npc.NPCData{}))
	assert.Error(t, repo.Update(ctx, &npc.NPCData{ID: "missing"}))
	assert.Error(t, repo.Delete(ctx, "missing"))

	require.NoError(t, repo.Create(ctx, goblin()))
	err := repo.Create(ctx, goblin())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
