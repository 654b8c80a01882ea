package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	npcsRepo "github.com/KirkDiggler/character-vault/internal/repositories/npcs"
	"github.com/KirkDiggler/character-vault/internal/services/content"
)

func setup(t *testing.T) (content.Service, npcsRepo.Repository) {
	t.Helper()
	bestiary := npcsRepo.NewInMemoryRepository()
	svc := content.NewService(&content.ServiceConfig{
		DNDClient: dnd5e.NewStatic(),
		Bestiary:  bestiary,
	})
	return svc, bestiary
}

func validStatblock() *npc.NPCData {
	return &npc.NPCData{
		ID:         "bugbear",
		Key:        "bugbear",
		Name:       "Bugbear",
		ArmorClass: 16,
		HitPoints:  27,
		HitDice:    "5d8+5",
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeStrength:  15,
			shared.AttributeDexterity: 14,
		},
		ChallengeRating: 1,
		Actions: []shared.Trait{
			{
				Name:        "Morningstar",
				Description: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 11 (2d8 + 2) piercing damage.",
			},
		},
	}
}

func TestValidateNPC_Clean(t *testing.T) {
	svc, _ := setup(t)
	assert.Empty(t, svc.ValidateNPC(validStatblock()))
}

func TestValidateNPC_CollectsEveryProblem(t *testing.T) {
	svc, _ := setup(t)

	bad := &npc.NPCData{
		ArmorClass:      0,
		HitPoints:       0,
		HitDice:         "lots",
		ChallengeRating: -1,
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeStrength: 99,
		},
		Actions: []shared.Trait{
			{Name: ""},
			{Name: "Stare"},
		},
	}

	diags := svc.ValidateNPC(bad)
	require.NotEmpty(t, diags)

	fields := make(map[string]bool)
	for _, d := range diags {
		fields[d.Field] = true
	}
	assert.True(t, fields["id"])
	assert.True(t, fields["name"])
	assert.True(t, fields["armor_class"])
	assert.True(t, fields["hit_points"])
	assert.True(t, fields["hit_dice"])
	assert.True(t, fields["challenge_rating"])
	assert.True(t, fields["ability_scores.Str"])
	assert.True(t, fields["actions"])
}

func TestCreateNPC_ParsesAttackText(t *testing.T) {
	svc, bestiary := setup(t)
	ctx := context.Background()

	created, err := svc.CreateNPC(ctx, validStatblock())
	require.NoError(t, err)

	require.NotNil(t, created.Actions[0].ParsedAttack)
	assert.Equal(t, 4, created.Actions[0].ParsedAttack.Attack.Bonus)
	assert.Equal(t, "2d8+2", created.Actions[0].ParsedAttack.Hit.DiceString)

	stored, err := bestiary.Get(ctx, "bugbear")
	require.NoError(t, err)
	require.NotNil(t, stored.Actions[0].ParsedAttack)
}

func TestCreateNPC_RejectsInvalid(t *testing.T) {
	svc, _ := setup(t)

	bad := validStatblock()
	bad.HitPoints = 0

	_, err := svc.CreateNPC(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))
}

func TestCreateNPC_DoesNotMutateInput(t *testing.T) {
	svc, _ := setup(t)

	input := validStatblock()
	_, err := svc.CreateNPC(context.Background(), input)
	require.NoError(t, err)

	assert.Nil(t, input.Actions[0].ParsedAttack, "parsing happens on the stored copy")
}

func TestUpdateNPC(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.CreateNPC(ctx, validStatblock())
	require.NoError(t, err)

	changed := validStatblock()
	changed.HitPoints = 40
	updated, err := svc.UpdateNPC(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, 40, updated.HitPoints)

	missing := validStatblock()
	missing.ID = "unknown"
	_, err = svc.UpdateNPC(ctx, missing)
	assert.Error(t, err)
}

func TestImportMonsters(t *testing.T) {
	svc, bestiary := setup(t)
	ctx := context.Background()

	// The bundled content carries goblin, wolf, and skeleton at CR 1/4
	// and orc at CR 1/2
	count, err := svc.ImportMonsters(ctx, 0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	goblin, err := bestiary.Get(ctx, "goblin")
	require.NoError(t, err)
	assert.NotNil(t, goblin.Actions[0].ParsedAttack, "imports are parsed on the way in")

	// Re-importing a wider band skips what is already there
	count, err = svc.ImportMonsters(ctx, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the orc is new")

	_, err = svc.ImportMonsters(ctx, 2, 1)
	assert.Error(t, err)
}
