package character

import (
	"context"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

func (s *service) AddItem(ctx context.Context, characterID, itemKey string, quantity int) (*character.Sheet, error) {
	if quantity < 1 {
		return nil, dnderr.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}

	definition, err := s.dndClient.GetEquipment(itemKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get equipment '%s'", itemKey).
			WithMeta("item_key", itemKey)
	}

	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		// Unequipped user-sourced lines of the same definition stack;
		// equipped lines stay distinct so a worn set and a spare set
		// never merge.
		for idx := range sheet.Equipment {
			line := &sheet.Equipment[idx]
			if line.DefinitionID == definition.ID && line.Source == shared.SourceUser && !line.Equipped {
				line.Quantity += quantity
				return nil
			}
		}

		sheet.Equipment = append(sheet.Equipment, equipment.EquippedItem{
			InstanceID:   s.uuidGenerator.New(),
			DefinitionID: definition.ID,
			Name:         definition.Name,
			Category:     definition.Category,
			Quantity:     quantity,
			Weapon:       definition.Weapon,
			Armor:        definition.Armor,
			Source:       shared.SourceUser,
		})
		return nil
	})
}

func (s *service) RemoveItem(ctx context.Context, characterID, instanceID string, quantity int) (*character.Sheet, error) {
	if quantity < 1 {
		return nil, dnderr.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}

	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		for idx := range sheet.Equipment {
			if sheet.Equipment[idx].InstanceID != instanceID {
				continue
			}

			if sheet.Equipment[idx].Quantity > quantity {
				sheet.Equipment[idx].Quantity -= quantity
				return nil
			}
			sheet.Equipment = append(sheet.Equipment[:idx], sheet.Equipment[idx+1:]...)
			return nil
		}
		return dnderr.NotFoundf("inventory line '%s' not found", instanceID).
			WithMeta("instance_id", instanceID)
	})
}

func (s *service) EquipItem(ctx context.Context, characterID, instanceID string) (*character.Sheet, error) {
	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		if findLine(sheet.Equipment, instanceID) == nil {
			return dnderr.NotFoundf("inventory line '%s' not found", instanceID).
				WithMeta("instance_id", instanceID)
		}
		sheet.Equipment = equipment.Equip(sheet.Equipment, instanceID)
		return nil
	})
}

func (s *service) UnequipItem(ctx context.Context, characterID, instanceID string) (*character.Sheet, error) {
	return s.mutate(ctx, characterID, func(sheet *character.Sheet) error {
		if findLine(sheet.Equipment, instanceID) == nil {
			return dnderr.NotFoundf("inventory line '%s' not found", instanceID).
				WithMeta("instance_id", instanceID)
		}
		sheet.Equipment = equipment.Unequip(sheet.Equipment, instanceID)
		return nil
	})
}

func findLine(items []equipment.EquippedItem, instanceID string) *equipment.EquippedItem {
	for idx := range items {
		if items[idx].InstanceID == instanceID {
			return &items[idx]
		}
	}
	return nil
}
