package character

import (
	"context"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	characterRepo "github.com/KirkDiggler/character-vault/internal/repositories/characters"
	"github.com/KirkDiggler/character-vault/internal/uuid"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter . Service

// Repository is an alias for the character repository interface
type Repository = characterRepo.Repository

// Service manages character lifecycle: creation, build choices,
// inventory, and the recompute-after-every-mutation contract. Every
// mutating call persists the updated snapshot and returns the fully
// recomputed sheet.
type Service interface {
	// CreateCharacter creates a new level-1 character
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Sheet, error)

	// GetCharacter retrieves a character by ID as a recomputed sheet
	GetCharacter(ctx context.Context, characterID string) (*character.Sheet, error)

	// ListCharacters lists all characters owned by a user
	ListCharacters(ctx context.Context, ownerID string) ([]*character.Sheet, error)

	// DeleteCharacter removes a character permanently
	DeleteCharacter(ctx context.Context, characterID string) error

	// SetAbilityScore sets one base ability score
	SetAbilityScore(ctx context.Context, characterID string, attr shared.Attribute, score int) (*character.Sheet, error)

	// SetClass assigns a class, replacing all class-sourced grants
	SetClass(ctx context.Context, characterID, classKey string) (*character.Sheet, error)

	// SetSpecies assigns a species, replacing all species-sourced grants
	SetSpecies(ctx context.Context, characterID, speciesKey string) (*character.Sheet, error)

	// SetBackground assigns a background, replacing all background-sourced grants
	SetBackground(ctx context.Context, characterID, backgroundKey string) (*character.Sheet, error)

	// AddItem adds an item from the content store to the inventory
	AddItem(ctx context.Context, characterID, itemKey string, quantity int) (*character.Sheet, error)

	// RemoveItem removes quantity from an inventory line, dropping the
	// line when it reaches zero
	RemoveItem(ctx context.Context, characterID, instanceID string, quantity int) (*character.Sheet, error)

	// EquipItem equips an inventory line, applying slot rules
	EquipItem(ctx context.Context, characterID, instanceID string) (*character.Sheet, error)

	// UnequipItem unequips an inventory line
	UnequipItem(ctx context.Context, characterID, instanceID string) (*character.Sheet, error)

	// SetCurrentHP sets current hit points, clamped to [0, MaxHP]
	SetCurrentHP(ctx context.Context, characterID string, hp int) (*character.Sheet, error)
}

// CreateCharacterInput contains the data needed to create a character
type CreateCharacterInput struct {
	OwnerID       string
	Name          string
	AbilityScores map[shared.Attribute]int
}

type service struct {
	dndClient     dnd5e.Client
	repository    Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the character service
type ServiceConfig struct {
	DNDClient     dnd5e.Client
	Repository    Repository
	UUIDGenerator uuid.Generator // Optional, defaults to google uuid
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.DNDClient == nil {
		panic("dnd client is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		dndClient:  cfg.DNDClient,
		repository: cfg.Repository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Sheet, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	for attr, score := range input.AbilityScores {
		if score < 1 || score > 30 {
			return nil, dnderr.InvalidArgumentf("ability score %s must be between 1 and 30, got %d", attr, score).
				WithMeta("attribute", string(attr))
		}
	}

	scores := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		scores[attr] = 10
	}
	for attr, score := range input.AbilityScores {
		scores[attr] = score
	}

	core := &character.CoreData{
		ID:            s.uuidGenerator.New(),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		Level:         1,
		AbilityScores: scores,
	}

	if err := s.repository.Create(ctx, core); err != nil {
		return nil, dnderr.Wrap(err, "failed to store character").
			WithMeta("character_name", input.Name)
	}

	return s.rebuildSheet(core)
}

func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Sheet, error) {
	core, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return s.rebuildSheet(core)
}

func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*character.Sheet, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	cores, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sheets := make([]*character.Sheet, 0, len(cores))
	for _, core := range cores {
		sheet, err := s.rebuildSheet(core)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func (s *service) DeleteCharacter(ctx context.Context, characterID string) error {
	return s.repository.Delete(ctx, characterID)
}

func (s *service) SetAbilityScore(ctx context.Context, characterID string, attr shared.Attribute, score int) (*character.Sheet, error) {
	if score < 1 || score > 30 {
		return nil, dnderr.InvalidArgumentf("ability score must be between 1 and 30, got %d", score).
			WithMeta("attribute", string(attr))
	}
	if shared.ParseAttribute(string(attr)) == shared.AttributeNone {
		return nil, dnderr.InvalidArgumentf("unknown ability '%s'", attr)
	}

	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		if sheet.AbilityScores == nil {
			sheet.AbilityScores = make(map[shared.Attribute]int)
		}
		sheet.AbilityScores[attr] = score
		return nil
	})
}

func (s *service) SetClass(ctx context.Context, characterID, classKey string) (*character.Sheet, error) {
	class, err := s.dndClient.GetClass(classKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class '%s'", classKey).
			WithMeta("class_key", classKey)
	}

	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		sheet.RemoveBySource(shared.SourceClass)
		sheet.Class = class

		for _, attr := range class.SavingThrows {
			sheet.Proficiencies = append(sheet.Proficiencies, shared.Proficiency{
				Name:   string(attr),
				Kind:   shared.ProficiencyKindSavingThrow,
				Source: shared.SourceClass,
			})
		}
		for _, skill := range class.SkillProficiencies {
			sheet.Proficiencies = append(sheet.Proficiencies, shared.Proficiency{
				Name:   string(skill),
				Kind:   shared.ProficiencyKindSkill,
				Source: shared.SourceClass,
			})
		}
		for _, feature := range class.Features {
			sheet.Traits = append(sheet.Traits, shared.Trait{
				Name:        feature.Name,
				Description: feature.Description,
				Source:      shared.SourceClass,
			})
		}
		return nil
	})
}

func (s *service) SetSpecies(ctx context.Context, characterID, speciesKey string) (*character.Sheet, error) {
	species, err := s.dndClient.GetSpecies(speciesKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get species '%s'", speciesKey).
			WithMeta("species_key", speciesKey)
	}

	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		// Back out the old species before applying the new one so
		// fixed bonuses never stack across a swap.
		if sheet.Species != nil {
			for _, bonus := range sheet.Species.AbilityBonuses {
				sheet.AbilityScores[bonus.Attribute] -= bonus.Bonus
			}
		}
		sheet.RemoveBySource(shared.SourceSpecies)
		sheet.Species = species

		if sheet.AbilityScores == nil {
			sheet.AbilityScores = make(map[shared.Attribute]int)
		}
		for _, bonus := range species.AbilityBonuses {
			sheet.AbilityScores[bonus.Attribute] += bonus.Bonus
		}
		for _, trait := range species.Traits {
			sheet.Traits = append(sheet.Traits, shared.Trait{
				Name:        trait.Name,
				Description: trait.Description,
				Source:      shared.SourceSpecies,
			})
		}
		for _, language := range species.Languages {
			sheet.Proficiencies = append(sheet.Proficiencies, shared.Proficiency{
				Name:   language,
				Kind:   shared.ProficiencyKindLanguage,
				Source: shared.SourceSpecies,
			})
		}
		return nil
	})
}

func (s *service) SetBackground(ctx context.Context, characterID, backgroundKey string) (*character.Sheet, error) {
	background, err := s.dndClient.GetBackground(backgroundKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get background '%s'", backgroundKey).
			WithMeta("background_key", backgroundKey)
	}

	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		if sheet.Background != nil {
			for _, bonus := range sheet.Background.AbilityBonuses {
				sheet.AbilityScores[bonus.Attribute] -= bonus.Bonus
			}
		}
		sheet.RemoveBySource(shared.SourceBackground)
		sheet.Background = background

		if sheet.AbilityScores == nil {
			sheet.AbilityScores = make(map[shared.Attribute]int)
		}
		for _, bonus := range background.AbilityBonuses {
			sheet.AbilityScores[bonus.Attribute] += bonus.Bonus
		}
		for _, skill := range background.SkillProficiencies {
			sheet.Proficiencies = append(sheet.Proficiencies, shared.Proficiency{
				Name:   string(skill),
				Kind:   shared.ProficiencyKindSkill,
				Source: shared.SourceBackground,
			})
		}
		for _, tool := range background.ToolProficiencies {
			sheet.Proficiencies = append(sheet.Proficiencies, shared.Proficiency{
				Name:   tool,
				Kind:   shared.ProficiencyKindTool,
				Source: shared.SourceBackground,
			})
		}
		if background.Feature != nil {
			sheet.Traits = append(sheet.Traits, shared.Trait{
				Name:        background.Feature.Name,
				Description: background.Feature.Description,
				Source:      shared.SourceBackground,
			})
		}
		return nil
	})
}

func (s *service) SetCurrentHP(ctx context.Context, characterID string, hp int) (*character.Sheet, error) {
	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		if hp < 0 {
			hp = 0
		}
		if hp > sheet.MaxHP {
			hp = sheet.MaxHP
		}
		sheet.CurrentHP = hp
		return nil
	})
}

// mutate runs one load-modify-recompute-store cycle. The mutation sees
// a fully recomputed sheet so it can read derived values like MaxHP.
func (s *service) mutate(ctx context.Context, characterID string, fn func(*character.Sheet) error) (*character.Sheet, error) {
	core, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	sheet, err := s.rebuildSheet(core)
	if err != nil {
		return nil, err
	}

	if err := fn(sheet); err != nil {
		return nil, err
	}

	sheet = character.Recompute(sheet)

	updated := sheet.ToCoreData()
	updated.CreatedAt = core.CreatedAt
	if err := s.repository.Update(ctx, updated); err != nil {
		return nil, dnderr.Wrap(err, "failed to store character").
			WithMeta("character_id", characterID)
	}

	return sheet, nil
}

// rebuildSheet inflates a stored snapshot back into a computed sheet,
// resolving class, species, and background keys against the content
// store
func (s *service) rebuildSheet(core *character.CoreData) (*character.Sheet, error) {
	sheet := &character.Sheet{
		ID:            core.ID,
		OwnerID:       core.OwnerID,
		Name:          core.Name,
		Level:         core.Level,
		AbilityScores: core.AbilityScores,
		Proficiencies: core.Proficiencies,
		CurrentHP:     core.CurrentHP,
		TemporaryHP:   core.TemporaryHP,
		Gold:          core.Gold,
		Equipment:     core.Equipment,
		Traits:        core.Traits,
	}

	if core.ClassKey != "" {
		class, err := s.dndClient.GetClass(core.ClassKey)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to resolve class '%s'", core.ClassKey).
				WithMeta("character_id", core.ID)
		}
		sheet.Class = class
	}
	if core.SpeciesKey != "" {
		species, err := s.dndClient.GetSpecies(core.SpeciesKey)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to resolve species '%s'", core.SpeciesKey).
				WithMeta("character_id", core.ID)
		}
		sheet.Species = species
	}
	if core.BackgroundKey != "" {
		background, err := s.dndClient.GetBackground(core.BackgroundKey)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to resolve background '%s'", core.BackgroundKey).
				WithMeta("character_id", core.ID)
		}
		sheet.Background = background
	}

	return character.Recompute(sheet), nil
}
