package encounter

import (
	"context"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-vault/internal/dice"
	"github.com/KirkDiggler/character-vault/internal/domain/game/combat"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	"github.com/KirkDiggler/character-vault/internal/repositories/encounters"
	npcsRepo "github.com/KirkDiggler/character-vault/internal/repositories/npcs"
	charService "github.com/KirkDiggler/character-vault/internal/services/character"
	"github.com/KirkDiggler/character-vault/internal/uuid"
)

// Service runs encounters: roster assembly, initiative, turn order,
// and attack resolution. The tracker is the single source of combat
// truth; this service loads it, applies one command, and leaves it in
// the repository.
type Service interface {
	// CreateEncounter creates a new encounter in the setup state
	CreateEncounter(ctx context.Context, name string) (*combat.Tracker, error)

	// GetEncounter retrieves an encounter by ID
	GetEncounter(ctx context.Context, encounterID string) (*combat.Tracker, error)

	// ListEncounters retrieves every encounter
	ListEncounters(ctx context.Context) ([]*combat.Tracker, error)

	// DeleteEncounter removes an encounter permanently
	DeleteEncounter(ctx context.Context, encounterID string) error

	// AddPlayer snapshots a stored character into the roster
	AddPlayer(ctx context.Context, encounterID, characterID string) (*combat.Combatant, error)

	// AddMonster adds a monster from the bestiary, falling back to the
	// content store for unknown keys
	AddMonster(ctx context.Context, encounterID, monsterKey string) (*combat.Combatant, error)

	// RollInitiative rolls initiative for every combatant
	RollInitiative(ctx context.Context, encounterID string) error

	// StartEncounter begins combat, returning a non-empty warning when
	// some combatants start without an initiative roll
	StartEncounter(ctx context.Context, encounterID string) (string, error)

	// NextTurn advances the active-turn pointer
	NextTurn(ctx context.Context, encounterID string) error

	// ApplyDamage reduces a combatant's hit points
	ApplyDamage(ctx context.Context, encounterID, combatantID string, damage int) error

	// HealCombatant restores a combatant's hit points
	HealCombatant(ctx context.Context, encounterID, combatantID string, amount int) error

	// RemoveCombatant drops a combatant from the roster
	RemoveCombatant(ctx context.Context, encounterID, combatantID string) error

	// EndEncounter resets the encounter back to setup
	EndEncounter(ctx context.Context, encounterID string) error

	// PerformAttack resolves one attack action against a target
	PerformAttack(ctx context.Context, input *AttackInput) (*AttackResult, error)

	// ResolveSave rolls a target's saving throw against a save effect
	// and applies damage on a failure
	ResolveSave(ctx context.Context, input *SaveInput) (*SaveResult, error)
}

type service struct {
	repository       encounters.Repository
	bestiary         npcsRepo.Repository
	dndClient        dnd5e.Client
	characterService charService.Service
	roller           dice.Roller
	uuidGenerator    uuid.Generator
}

// ServiceConfig holds configuration for the encounter service
type ServiceConfig struct {
	Repository       encounters.Repository
	Bestiary         npcsRepo.Repository // Optional, content store covers missing keys
	DNDClient        dnd5e.Client
	CharacterService charService.Service
	Roller           dice.Roller    // Optional, defaults to a seeded random roller
	UUIDGenerator    uuid.Generator // Optional, defaults to google uuid
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.DNDClient == nil {
		panic("dnd client is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}

	svc := &service{
		repository:       cfg.Repository,
		bestiary:         cfg.Bestiary,
		dndClient:        cfg.DNDClient,
		characterService: cfg.CharacterService,
	}

	if cfg.Roller != nil {
		svc.roller = cfg.Roller
	} else {
		svc.roller = dice.NewRandomRoller()
	}
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) CreateEncounter(ctx context.Context, name string) (*combat.Tracker, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("encounter name is required")
	}

	tracker := combat.NewTracker(s.uuidGenerator.New(), name, s.uuidGenerator)
	if err := s.repository.Create(ctx, tracker); err != nil {
		return nil, err
	}
	return tracker, nil
}

func (s *service) GetEncounter(ctx context.Context, encounterID string) (*combat.Tracker, error) {
	return s.repository.Get(ctx, encounterID)
}

func (s *service) ListEncounters(ctx context.Context) ([]*combat.Tracker, error) {
	return s.repository.List(ctx)
}

func (s *service) DeleteEncounter(ctx context.Context, encounterID string) error {
	return s.repository.Delete(ctx, encounterID)
}

func (s *service) AddPlayer(ctx context.Context, encounterID, characterID string) (*combat.Combatant, error) {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return nil, err
	}

	sheet, err := s.characterService.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load character '%s'", characterID).
			WithMeta("character_id", characterID)
	}

	combatant := tracker.AddPC(sheet)
	if combatant == nil {
		return nil, dnderr.InvalidArgument("combatants can only be added during setup").
			WithMeta("encounter_id", encounterID)
	}
	return combatant, nil
}

func (s *service) AddMonster(ctx context.Context, encounterID, monsterKey string) (*combat.Combatant, error) {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return nil, err
	}

	data, err := s.lookupMonster(ctx, monsterKey)
	if err != nil {
		return nil, err
	}
	data.AugmentActions()

	combatant := tracker.AddNPC(data)
	if combatant == nil {
		return nil, dnderr.InvalidArgument("combatants can only be added during setup").
			WithMeta("encounter_id", encounterID)
	}
	return combatant, nil
}

// lookupMonster prefers homebrew bestiary entries over the content
// store so a custom goblin shadows the stock one
func (s *service) lookupMonster(ctx context.Context, monsterKey string) (*npc.NPCData, error) {
	if monsterKey == "" {
		return nil, dnderr.InvalidArgument("monster key is required")
	}

	if s.bestiary != nil {
		data, err := s.bestiary.Get(ctx, monsterKey)
		if err == nil {
			return data, nil
		}
		if !dnderr.IsNotFound(err) {
			return nil, err
		}
	}

	data, err := s.dndClient.GetMonster(monsterKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get monster '%s'", monsterKey).
			WithMeta("monster_key", monsterKey)
	}
	return data, nil
}

func (s *service) RollInitiative(ctx context.Context, encounterID string) error {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return err
	}
	return tracker.RollInitiativeForAll(s.roller)
}

func (s *service) StartEncounter(ctx context.Context, encounterID string) (string, error) {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return "", err
	}

	warning, ok := tracker.StartCombat()
	if !ok {
		return "", dnderr.InvalidArgument("encounter cannot start without combatants").
			WithMeta("encounter_id", encounterID)
	}
	return warning, nil
}

func (s *service) NextTurn(ctx context.Context, encounterID string) error {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return err
	}
	tracker.NextTurn()
	return nil
}

func (s *service) ApplyDamage(ctx context.Context, encounterID, combatantID string, damage int) error {
	if damage < 0 {
		return dnderr.InvalidArgumentf("damage must not be negative, got %d", damage)
	}

	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return err
	}
	tracker.UpdateHP(combatantID, -damage)
	return nil
}

func (s *service) HealCombatant(ctx context.Context, encounterID, combatantID string, amount int) error {
	if amount < 0 {
		return dnderr.InvalidArgumentf("healing must not be negative, got %d", amount)
	}

	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return err
	}
	tracker.UpdateHP(combatantID, amount)
	return nil
}

func (s *service) RemoveCombatant(ctx context.Context, encounterID, combatantID string) error {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return err
	}
	tracker.RemoveCombatant(combatantID)
	return nil
}

func (s *service) EndEncounter(ctx context.Context, encounterID string) error {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return err
	}
	tracker.EndCombat()
	return nil
}
