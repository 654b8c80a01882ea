package content

import (
	"context"
	"log"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-vault/internal/dice"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	npcsRepo "github.com/KirkDiggler/character-vault/internal/repositories/npcs"
)

// Diagnostic is one problem found in a submitted statblock
type Diagnostic struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Service manages homebrew bestiary content. Submitted statblocks are
// validated as a whole so an author sees every problem in one pass, and
// attack text is parsed on the way in so encounters never re-parse.
type Service interface {
	// ValidateNPC returns every problem in a statblock, empty when clean
	ValidateNPC(data *npc.NPCData) []Diagnostic

	// CreateNPC validates and stores a homebrew statblock
	CreateNPC(ctx context.Context, data *npc.NPCData) (*npc.NPCData, error)

	// UpdateNPC validates and replaces a stored statblock
	UpdateNPC(ctx context.Context, data *npc.NPCData) (*npc.NPCData, error)

	// GetNPC retrieves a stored statblock
	GetNPC(ctx context.Context, id string) (*npc.NPCData, error)

	// ListNPCs retrieves every stored statblock
	ListNPCs(ctx context.Context) ([]*npc.NPCData, error)

	// DeleteNPC removes a stored statblock
	DeleteNPC(ctx context.Context, id string) error

	// ImportMonsters copies content-store monsters in a challenge
	// rating band into the bestiary, skipping entries that already
	// exist. Returns the number imported.
	ImportMonsters(ctx context.Context, minCR, maxCR float64) (int, error)
}

type service struct {
	dndClient dnd5e.Client
	bestiary  npcsRepo.Repository
}

// ServiceConfig holds configuration for the content service
type ServiceConfig struct {
	DNDClient dnd5e.Client
	Bestiary  npcsRepo.Repository
}

// NewService creates a new content service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.DNDClient == nil {
		panic("dnd client is required")
	}
	if cfg.Bestiary == nil {
		panic("bestiary repository is required")
	}

	return &service{
		dndClient: cfg.DNDClient,
		bestiary:  cfg.Bestiary,
	}
}

func (s *service) ValidateNPC(data *npc.NPCData) []Diagnostic {
	if data == nil {
		return []Diagnostic{{Field: "", Message: "statblock is required"}}
	}

	var diags []Diagnostic
	if data.ID == "" {
		diags = append(diags, Diagnostic{Field: "id", Message: "id is required"})
	}
	if data.Name == "" {
		diags = append(diags, Diagnostic{Field: "name", Message: "name is required"})
	}
	if data.ArmorClass < 1 || data.ArmorClass > 30 {
		diags = append(diags, Diagnostic{Field: "armor_class", Message: "armor class must be between 1 and 30"})
	}
	if data.HitPoints < 1 {
		diags = append(diags, Diagnostic{Field: "hit_points", Message: "hit points must be positive"})
	}
	if data.HitDice != "" && dice.ParseExpression(data.HitDice).IsZero() {
		diags = append(diags, Diagnostic{Field: "hit_dice", Message: "hit dice must be a dice expression like 2d8+2"})
	}
	if data.ChallengeRating < 0 {
		diags = append(diags, Diagnostic{Field: "challenge_rating", Message: "challenge rating must not be negative"})
	}
	for attr, score := range data.AbilityScores {
		if score < 1 || score > 30 {
			diags = append(diags, Diagnostic{
				Field:   "ability_scores." + string(attr),
				Message: "ability scores must be between 1 and 30",
			})
		}
	}
	diags = append(diags, validateTraits("actions", data.Actions)...)
	diags = append(diags, validateTraits("reactions", data.Reactions)...)
	diags = append(diags, validateTraits("legendary_actions", data.LegendaryActions)...)

	return diags
}

func validateTraits(field string, traits []shared.Trait) []Diagnostic {
	var diags []Diagnostic
	for _, trait := range traits {
		if trait.Name == "" {
			diags = append(diags, Diagnostic{
				Field:   field,
				Message: "every action needs a name",
			})
			continue
		}
		if trait.Description == "" && trait.ParsedAttack == nil {
			diags = append(diags, Diagnostic{
				Field:   field,
				Message: trait.Name + " has neither text nor attack data",
			})
		}
	}
	return diags
}

func (s *service) CreateNPC(ctx context.Context, data *npc.NPCData) (*npc.NPCData, error) {
	if err := s.check(data); err != nil {
		return nil, err
	}

	stored := data.Clone()
	stored.AugmentActions()
	if err := s.bestiary.Create(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *service) UpdateNPC(ctx context.Context, data *npc.NPCData) (*npc.NPCData, error) {
	if err := s.check(data); err != nil {
		return nil, err
	}

	stored := data.Clone()
	stored.AugmentActions()
	if err := s.bestiary.Update(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *service) GetNPC(ctx context.Context, id string) (*npc.NPCData, error) {
	return s.bestiary.Get(ctx, id)
}

func (s *service) ListNPCs(ctx context.Context) ([]*npc.NPCData, error) {
	return s.bestiary.List(ctx)
}

func (s *service) DeleteNPC(ctx context.Context, id string) error {
	return s.bestiary.Delete(ctx, id)
}

func (s *service) ImportMonsters(ctx context.Context, minCR, maxCR float64) (int, error) {
	if minCR > maxCR {
		return 0, dnderr.InvalidArgumentf("invalid challenge rating band %.3g..%.3g", minCR, maxCR)
	}

	monsters, err := s.dndClient.ListMonstersByCR(minCR, maxCR)
	if err != nil {
		return 0, dnderr.Wrap(err, "failed to list monsters")
	}

	imported := 0
	for _, monster := range monsters {
		if monster.ID == "" {
			monster.ID = monster.Key
		}
		monster.AugmentActions()

		err := s.bestiary.Create(ctx, monster)
		if err != nil {
			if dnderr.Is(err, dnderr.CodeAlreadyExists) {
				continue
			}
			log.Printf("Failed to import monster %s: %v", monster.Key, err)
			continue
		}
		imported++
	}

	return imported, nil
}

// check turns diagnostics into one validation error carrying the full
// list in metadata
func (s *service) check(data *npc.NPCData) error {
	diags := s.ValidateNPC(data)
	if len(diags) == 0 {
		return nil
	}
	return dnderr.Validationf("statblock has %d problem(s)", len(diags)).
		WithMeta("diagnostics", diags)
}
