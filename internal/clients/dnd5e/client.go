package dnd5e

import (
	"log"
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	dnderr "github.com/KirkDiggler/character-vault/internal/errors"

	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
)

type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) ListClasses() ([]*rulebook.Class, error) {
	response, err := c.client.ListClasses()
	if err != nil {
		return nil, err
	}

	return apiReferenceItemsToClasses(response), nil
}

func (c *client) GetClass(key string) (*rulebook.Class, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetClass.key is required")
	}

	response, err := c.client.GetClass(key)
	if err != nil {
		return nil, err
	}

	return apiClassToClass(response), nil
}

func (c *client) ListSpecies() ([]*rulebook.Species, error) {
	response, err := c.client.ListRaces()
	if err != nil {
		return nil, err
	}

	return apiReferenceItemsToSpecies(response), nil
}

func (c *client) GetSpecies(key string) (*rulebook.Species, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetSpecies.key is required")
	}

	response, err := c.client.GetRace(key)
	if err != nil {
		return nil, err
	}

	return apiRaceToSpecies(response), nil
}

func (c *client) ListBackgrounds() ([]*rulebook.Background, error) {
	return defaultBackgrounds(), nil
}

func (c *client) GetBackground(key string) (*rulebook.Background, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetBackground.key is required")
	}

	for _, bg := range defaultBackgrounds() {
		if bg.Key == key {
			return bg, nil
		}
	}
	return nil, dnderr.NotFoundf("background '%s' not found", key)
}

func (c *client) GetEquipment(key string) (*equipment.Definition, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetEquipment.key is required")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, err
	}

	return apiEquipmentInterfaceToDefinition(response), nil
}

func (c *client) ListEquipment() ([]*equipment.Definition, error) {
	refs, err := c.client.ListEquipment()
	if err != nil {
		return nil, err
	}

	definitions := make([]*equipment.Definition, 0, len(refs))
	for _, ref := range refs {
		if ref.Key == "" {
			continue
		}
		def, err := c.GetEquipment(ref.Key)
		if err != nil {
			log.Printf("Failed to get equipment %s: %v", ref.Key, err)
			continue
		}
		if def != nil {
			definitions = append(definitions, def)
		}
	}

	return definitions, nil
}

func (c *client) GetMonster(key string) (*npc.NPCData, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetMonster.key is required")
	}

	monster, err := c.client.GetMonster(key)
	if err != nil {
		return nil, err
	}

	return apiMonsterToNPCData(monster), nil
}

// ListMonstersByCR returns monsters within a challenge rating range.
// The API filters by exact CR only, so each standard CR value in the
// range is fetched in turn.
func (c *client) ListMonstersByCR(minCR, maxCR float64) ([]*npc.NPCData, error) {
	monsters := make([]*npc.NPCData, 0)
	seen := make(map[string]bool)

	for _, cr := range crValuesInRange(minCR, maxCR) {
		crValue := cr
		refs, err := c.client.ListMonstersWithFilter(&dnd5e.ListMonstersInput{
			ChallengeRating: &crValue,
		})
		if err != nil {
			log.Printf("Failed to list monsters for CR %g: %v", cr, err)
			continue
		}

		for _, ref := range refs {
			if ref.Key == "" || seen[ref.Key] {
				continue
			}
			monster, err := c.client.GetMonster(ref.Key)
			if err != nil {
				log.Printf("Failed to get monster %s: %v", ref.Key, err)
				continue
			}
			if data := apiMonsterToNPCData(monster); data != nil {
				monsters = append(monsters, data)
				seen[ref.Key] = true
			}
		}
	}

	return monsters, nil
}

// crValuesInRange returns the standard CR values within [minCR, maxCR]
func crValuesInRange(minCR, maxCR float64) []float64 {
	allCRs := []float64{0, 0.125, 0.25, 0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30}

	var result []float64
	for _, cr := range allCRs {
		if cr >= minCR && cr <= maxCR {
			result = append(result, cr)
		}
	}
	return result
}
