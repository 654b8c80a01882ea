package npcs_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	"github.com/KirkDiggler/character-vault/internal/repositories/npcs"
	"github.com/KirkDiggler/character-vault/internal/testutils"
)

func setupRedisRepo(t *testing.T) (npcs.Repository, *miniredis.Miniredis) {
	t.Helper()

	client, mr := testutils.SetupTestRedis(t)
	repo := npcs.NewRedisRepository(&npcs.RedisRepoConfig{Client: client})
	return repo, mr
}

func goblin() *npc.NPCData {
	return testutils.CreateTestGoblin("goblin")
}

func TestRedisRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRedisRepo(t)

	require.NoError(t, repo.Create(ctx, goblin()))
	assert.True(t, mr.Exists("npc:goblin"))

	loaded, err := repo.Get(ctx, "goblin")
	require.NoError(t, err)
	assert.Equal(t, "Goblin", loaded.Name)
	assert.Equal(t, 7, loaded.HitPoints)
	require.Len(t, loaded.Actions, 1)
	assert.Equal(t, "Scimitar", loaded.Actions[0].Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRedisRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisRepo(t)

	require.NoError(t, repo.Create(ctx, goblin()))
	err := repo.Create(ctx, goblin())
	require.Error(t, err)
	assert.True(t, dnderr.Is(err, dnderr.CodeAlreadyExists))
}

func TestRedisRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRedisRepo(t)

	entry := goblin()
	require.NoError(t, repo.Create(ctx, entry))

	entry.HitPoints = 12
	require.NoError(t, repo.Update(ctx, entry))

	loaded, err := repo.Get(ctx, "goblin")
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.HitPoints)

	require.NoError(t, repo.Delete(ctx, "goblin"))
	assert.False(t, mr.Exists("npc:goblin"))
	_, err = repo.Get(ctx, "goblin")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestRedisRepository_MissingEntries(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisRepo(t)

	_, err := repo.Get(ctx, "ghost")
	assert.True(t, dnderr.IsNotFound(err))
	assert.Error(t, repo.Update(ctx, goblin()))
	assert.Error(t, repo.Delete(ctx, "ghost"))
}
