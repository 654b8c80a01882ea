package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	"github.com/KirkDiggler/character-vault/internal/repositories/characters"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	data := &character.CoreData{
		ID:      "char-1",
		OwnerID: "owner-1",
		Name:    "Grog",
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeStrength: 18,
		},
	}

	require.NoError(t, repo.Create(ctx, data))

	err := repo.Create(ctx, data)
	require.Error(t, err)
	assert.True(t, dnderr.Is(err, dnderr.CodeAlreadyExists))

	loaded, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Grog", loaded.Name)

	loaded.Name = "Changed"
	again, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Grog", again.Name, "stored copy must not be mutable from outside")

	data.CurrentHP = 3
	require.NoError(t, repo.Update(ctx, data))
	updated, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.CurrentHP)

	require.NoError(t, repo.Delete(ctx, "char-1"))
	_, err = repo.Get(ctx, "char-1")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemoryRepository_GetByOwner(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, &character.CoreData{ID: "a", OwnerID: "owner-1", Name: "A"}))
	require.NoError(t, repo.Create(ctx, &character.CoreData{ID: "b", OwnerID: "owner-1", Name: "B"}))
	require.NoError(t, repo.Create(ctx, &character.CoreData{ID: "c", OwnerID: "owner-2", Name: "C"}))

	result, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestInMemoryRepository_Validation(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	assert.Error(t, repo.Create(ctx, nil))
	assert.Error(t, repo.Create(ctx, &character.CoreData{}))
	_, err := repo.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, repo.Delete(ctx, "missing"))
}
