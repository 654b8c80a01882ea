package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/character-vault/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	charactersRepo "github.com/KirkDiggler/character-vault/internal/repositories/characters"
	characterService "github.com/KirkDiggler/character-vault/internal/services/character"
)

func setupService(t *testing.T) characterService.Service {
	t.Helper()
	return characterService.NewService(&characterService.ServiceConfig{
		DNDClient:  dnd5e.NewStatic(),
		Repository: charactersRepo.NewInMemoryRepository(),
	})
}

func createTestCharacter(t *testing.T, svc characterService.Service) string {
	t.Helper()
	sheet, err := svc.CreateCharacter(context.Background(), &characterService.CreateCharacterInput{
		OwnerID: "user-1",
		Name:    "Vex",
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeStrength:     10,
			shared.AttributeDexterity:    14,
			shared.AttributeConstitution: 14,
			shared.AttributeIntelligence: 10,
			shared.AttributeWisdom:       12,
			shared.AttributeCharisma:     8,
		},
	})
	require.NoError(t, err)
	return sheet.ID
}

func TestCreateCharacter(t *testing.T) {
	svc := setupService(t)

	sheet, err := svc.CreateCharacter(context.Background(), &characterService.CreateCharacterInput{
		OwnerID: "user-1",
		Name:    "Vex",
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeDexterity: 14,
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sheet.ID)
	assert.Equal(t, "Vex", sheet.Name)
	assert.Equal(t, 1, sheet.Level)

	// Unspecified scores default to 10
	assert.Equal(t, 10, sheet.AbilityScores[shared.AttributeStrength])
	assert.Equal(t, 14, sheet.AbilityScores[shared.AttributeDexterity])

	// Derived values are present from the start
	assert.Equal(t, 12, sheet.ArmorClass)
	assert.Equal(t, 2, sheet.Initiative)
	assert.Equal(t, 0, sheet.MaxHP, "no class means no hit points yet")
}

func TestCreateCharacter_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateCharacter(ctx, nil)
	assert.Error(t, err)

	_, err = svc.CreateCharacter(ctx, &characterService.CreateCharacterInput{OwnerID: "user-1"})
	assert.Error(t, err, "name is required")

	_, err = svc.CreateCharacter(ctx, &characterService.CreateCharacterInput{Name: "Vex"})
	assert.Error(t, err, "owner is required")

	_, err = svc.CreateCharacter(ctx, &characterService.CreateCharacterInput{
		OwnerID: "user-1",
		Name:    "Vex",
		AbilityScores: map[shared.Attribute]int{
			shared.AttributeStrength: 45,
		},
	})
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestSetClass(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.SetClass(ctx, id, "fighter")
	require.NoError(t, err)

	require.NotNil(t, sheet.Class)
	assert.Equal(t, "fighter", sheet.Class.Key)
	assert.Equal(t, 12, sheet.MaxHP, "d10 plus Con modifier")
	assert.Equal(t, 12, sheet.CurrentHP)
	assert.True(t, sheet.SavingThrows[shared.AttributeStrength].Proficient)
	assert.True(t, sheet.SavingThrows[shared.AttributeConstitution].Proficient)
}

func TestSetClass_SwapReplacesGrants(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	_, err := svc.SetClass(ctx, id, "fighter")
	require.NoError(t, err)

	sheet, err := svc.SetClass(ctx, id, "rogue")
	require.NoError(t, err)

	assert.Equal(t, "rogue", sheet.Class.Key)
	assert.False(t, sheet.SavingThrows[shared.AttributeStrength].Proficient,
		"fighter saves must not survive the swap")
	assert.True(t, sheet.SavingThrows[shared.AttributeDexterity].Proficient)

	for _, trait := range sheet.Traits {
		assert.NotEqual(t, "Second Wind", trait.Name, "fighter features must not survive the swap")
	}
}

func TestSetSpecies_BonusesApplyAndUnwind(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.SetSpecies(ctx, id, "dwarf")
	require.NoError(t, err)
	assert.Equal(t, 16, sheet.AbilityScores[shared.AttributeConstitution], "14 base plus 2 species")
	assert.Equal(t, 25, sheet.Speed)

	sheet, err = svc.SetSpecies(ctx, id, "elf")
	require.NoError(t, err)
	assert.Equal(t, 14, sheet.AbilityScores[shared.AttributeConstitution], "dwarf bonus must unwind")
	assert.Equal(t, 16, sheet.AbilityScores[shared.AttributeDexterity], "14 base plus 2 species")
	assert.Equal(t, 30, sheet.Speed)
}

func TestSetBackground(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	sheet, err := svc.SetBackground(ctx, id, "acolyte")
	require.NoError(t, err)

	require.NotNil(t, sheet.Background)
	assert.True(t, sheet.Skills[shared.SkillInsight].Proficient)
	assert.True(t, sheet.Skills[shared.SkillReligion].Proficient)
	assert.True(t, sheet.HasTrait("Shelter of the Faithful"))

	sheet, err = svc.SetBackground(ctx, id, "soldier")
	require.NoError(t, err)
	assert.False(t, sheet.Skills[shared.SkillInsight].Proficient, "acolyte skills must not survive the swap")
	assert.True(t, sheet.Skills[shared.SkillAthletics].Proficient)
}

func TestSetAbilityScore_RecomputesDerived(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	_, err := svc.SetClass(ctx, id, "fighter")
	require.NoError(t, err)

	sheet, err := svc.SetAbilityScore(ctx, id, shared.AttributeDexterity, 18)
	require.NoError(t, err)
	assert.Equal(t, 4, sheet.Initiative)
	assert.Equal(t, 14, sheet.ArmorClass)

	_, err = svc.SetAbilityScore(ctx, id, shared.AttributeDexterity, 0)
	assert.Error(t, err)

	_, err = svc.SetAbilityScore(ctx, id, "Luck", 12)
	assert.Error(t, err)
}

func TestSetCurrentHP_Clamps(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	_, err := svc.SetClass(ctx, id, "fighter")
	require.NoError(t, err)

	sheet, err := svc.SetCurrentHP(ctx, id, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, sheet.CurrentHP)

	sheet, err = svc.SetCurrentHP(ctx, id, 999)
	require.NoError(t, err)
	assert.Equal(t, sheet.MaxHP, sheet.CurrentHP)

	sheet, err = svc.SetCurrentHP(ctx, id, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, sheet.CurrentHP)
}

func TestDamageSurvivesRebuild(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	_, err := svc.SetClass(ctx, id, "fighter")
	require.NoError(t, err)

	_, err = svc.SetCurrentHP(ctx, id, 4)
	require.NoError(t, err)

	sheet, err := svc.GetCharacter(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, sheet.CurrentHP, "loading a wounded character must not heal it")
}

func TestListCharacters(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	createTestCharacter(t, svc)
	createTestCharacter(t, svc)

	sheets, err := svc.ListCharacters(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, sheets, 2)

	sheets, err = svc.ListCharacters(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, sheets)
}

func TestDeleteCharacter(t *testing.T) {
	svc := setupService(t)
	id := createTestCharacter(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.DeleteCharacter(ctx, id))

	_, err := svc.GetCharacter(ctx, id)
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestSetClass_ContentLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mockdnd5e.NewMockClient(ctrl)

	svc := characterService.NewService(&characterService.ServiceConfig{
		DNDClient:  mockClient,
		Repository: charactersRepo.NewInMemoryRepository(),
	})

	mockClient.EXPECT().
		GetClass("mystic").
		Return(nil, dnderr.NotFound("class 'mystic' not found"))

	_, err := svc.SetClass(context.Background(), "char-1", "mystic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystic")
}

func TestNewService_RequiresDeps(t *testing.T) {
	assert.Panics(t, func() {
		characterService.NewService(&characterService.ServiceConfig{
			Repository: charactersRepo.NewInMemoryRepository(),
		})
	})
	assert.Panics(t, func() {
		characterService.NewService(&characterService.ServiceConfig{
			DNDClient: dnd5e.NewStatic(),
		})
	})
}
