package encounter

import (
	"context"
	"strings"

	"github.com/KirkDiggler/character-vault/internal/dice"
	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/equipment"
	"github.com/KirkDiggler/character-vault/internal/domain/game/combat"
	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// AttackInput describes one attack action. ActionName selects an NPC
// statblock action and is ignored for player attackers, who swing with
// their equipped weapon.
type AttackInput struct {
	EncounterID string
	AttackerID  string
	TargetID    string
	ActionName  string
	Mode        dice.Mode
	TwoHanded   bool
}

// AttackResult is the full resolution of one attack
type AttackResult struct {
	AttackerName string
	TargetName   string
	ActionName   string
	AttackRoll   *dice.RollResult
	TargetAC     int
	Hit          bool
	Crit         bool
	Damage       int
	DamageType   string
	DamageRoll   *dice.RollResult
	TargetHP     int
}

// SaveInput selects a save-forcing NPC action and a target to suffer it
type SaveInput struct {
	EncounterID string
	AttackerID  string
	TargetID    string
	ActionName  string
}

// SaveResult is the resolution of one forced saving throw
type SaveResult struct {
	TargetName string
	Ability    shared.Attribute
	DC         int
	SaveRoll   *dice.RollResult
	Saved      bool
	Damage     int
	DamageType string
	DamageRoll *dice.RollResult
	TargetHP   int
}

func (s *service) PerformAttack(ctx context.Context, input *AttackInput) (*AttackResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	tracker, attacker, target, err := s.loadParticipants(ctx, input.EncounterID, input.AttackerID, input.TargetID)
	if err != nil {
		return nil, err
	}

	bonus, hitDamage, damageType, err := s.resolveAttackProfile(attacker, input.ActionName, input.TwoHanded)
	if err != nil {
		return nil, err
	}

	attackRoll, err := dice.RollWithMode(s.roller, 1, 20, bonus, input.Mode)
	if err != nil {
		return nil, err
	}

	targetAC := combatantAC(target)
	result := &AttackResult{
		AttackerName: attacker.Name,
		TargetName:   target.Name,
		ActionName:   input.ActionName,
		AttackRoll:   attackRoll,
		TargetAC:     targetAC,
		Crit:         attackRoll.IsCrit,
	}

	// Natural 1 always misses, natural 20 always hits and crits
	hit := attackRoll.Total >= targetAC
	if attackRoll.IsFumble {
		hit = false
	}
	if attackRoll.IsCrit {
		hit = true
	}
	result.Hit = hit
	if !hit {
		result.TargetHP = target.CurrentHP
		return result, nil
	}

	damageRoll, err := s.rollDamage(hitDamage, attackRoll.IsCrit)
	if err != nil {
		return nil, err
	}
	result.DamageRoll = damageRoll
	result.Damage = damageRoll.Total
	result.DamageType = damageType

	tracker.UpdateHP(target.ID, -result.Damage)
	result.TargetHP = target.CurrentHP
	return result, nil
}

func (s *service) ResolveSave(ctx context.Context, input *SaveInput) (*SaveResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	tracker, attacker, target, err := s.loadParticipants(ctx, input.EncounterID, input.AttackerID, input.TargetID)
	if err != nil {
		return nil, err
	}

	if attacker.NPC == nil {
		return nil, dnderr.InvalidArgument("only statblock actions force saving throws")
	}

	parsed := findParsedAction(attacker, input.ActionName)
	if parsed == nil || parsed.SavingThrow == nil {
		return nil, dnderr.InvalidArgumentf("action '%s' does not force a saving throw", input.ActionName).
			WithMeta("action_name", input.ActionName)
	}
	save := parsed.SavingThrow

	saveRoll, err := s.roller.Roll(1, 20, saveBonus(target, save.Ability))
	if err != nil {
		return nil, err
	}

	result := &SaveResult{
		TargetName: target.Name,
		Ability:    save.Ability,
		DC:         save.DC,
		SaveRoll:   saveRoll,
		Saved:      saveRoll.Total >= save.DC,
		TargetHP:   target.CurrentHP,
	}
	if result.Saved || parsed.Hit == nil {
		return result, nil
	}

	damageRoll, err := s.rollDamage(parsed.Hit.DiceString, false)
	if err != nil {
		return nil, err
	}
	result.DamageRoll = damageRoll
	result.Damage = damageRoll.Total
	result.DamageType = parsed.Hit.DamageType

	tracker.UpdateHP(target.ID, -result.Damage)
	result.TargetHP = target.CurrentHP
	return result, nil
}

func (s *service) loadParticipants(ctx context.Context, encounterID, attackerID, targetID string) (*combat.Tracker, *combat.Combatant, *combat.Combatant, error) {
	tracker, err := s.repository.Get(ctx, encounterID)
	if err != nil {
		return nil, nil, nil, err
	}
	if tracker.State != combat.StateActive {
		return nil, nil, nil, dnderr.InvalidArgument("attacks require active combat").
			WithMeta("encounter_id", encounterID)
	}

	attacker := tracker.FindCombatant(attackerID)
	if attacker == nil {
		return nil, nil, nil, dnderr.NotFoundf("combatant '%s' not found", attackerID)
	}
	if !attacker.IsAlive() {
		return nil, nil, nil, dnderr.InvalidArgumentf("%s is down and cannot act", attacker.Name)
	}

	target := tracker.FindCombatant(targetID)
	if target == nil {
		return nil, nil, nil, dnderr.NotFoundf("combatant '%s' not found", targetID)
	}

	return tracker, attacker, target, nil
}

// resolveAttackProfile returns the to-hit bonus, damage dice, and
// damage type for the attacker's chosen action
func (s *service) resolveAttackProfile(attacker *combat.Combatant, actionName string, twoHanded bool) (int, string, string, error) {
	if attacker.NPC != nil {
		parsed := findParsedAction(attacker, actionName)
		if parsed == nil || parsed.Attack == nil || parsed.Hit == nil {
			return 0, "", "", dnderr.InvalidArgumentf("action '%s' is not a usable attack", actionName).
				WithMeta("action_name", actionName)
		}

		diceString := parsed.Hit.DiceString
		damageType := parsed.Hit.DamageType
		if twoHanded && parsed.Versatile != nil {
			diceString = parsed.Versatile.DiceString
			damageType = parsed.Versatile.DamageType
		}
		return parsed.Attack.Bonus, diceString, damageType, nil
	}

	return weaponProfile(attacker.Sheet, twoHanded)
}

// weaponProfile derives a player attack from the first equipped weapon.
// With nothing equipped the attack is an unarmed strike.
func weaponProfile(sheet *character.Sheet, twoHanded bool) (int, string, string, error) {
	if sheet == nil {
		return 0, "", "", dnderr.Internal("player combatant has no sheet")
	}

	strMod := sheet.AbilityModifiers[shared.AttributeStrength]
	dexMod := sheet.AbilityModifiers[shared.AttributeDexterity]

	var weapon *equipment.WeaponDetails
	for idx := range sheet.Equipment {
		line := &sheet.Equipment[idx]
		if line.Equipped && line.IsWeapon() {
			weapon = line.Weapon
			break
		}
	}

	if weapon == nil {
		// Unarmed strike: 1 + Strength, modeled as a one-sided die so
		// the damage path stays uniform
		unarmed := dice.Expression{Count: 1, Sides: 1, Bonus: strMod}
		return strMod + sheet.ProficiencyBonus, unarmed.String(), "bludgeoning", nil
	}

	mod := strMod
	if weapon.RangeNormal > 0 || (weapon.HasProperty(equipment.PropertyFinesse) && dexMod > strMod) {
		mod = dexMod
	}

	diceString := weapon.DamageDice
	if twoHanded && weapon.VersatileDamage != "" {
		diceString = weapon.VersatileDamage
	}

	expr := dice.ParseExpression(diceString)
	expr.Bonus += mod

	return mod + sheet.ProficiencyBonus, expr.String(), weapon.DamageType, nil
}

func findParsedAction(attacker *combat.Combatant, actionName string) *shared.ParsedAttack {
	for idx := range attacker.NPC.Actions {
		action := &attacker.NPC.Actions[idx]
		if strings.EqualFold(action.Name, actionName) {
			return action.ParsedAttack
		}
	}
	return nil
}

func combatantAC(c *combat.Combatant) int {
	if c.Sheet != nil {
		return c.Sheet.ArmorClass
	}
	if c.NPC != nil {
		return c.NPC.ArmorClass
	}
	return 10
}

func saveBonus(c *combat.Combatant, ability shared.Attribute) int {
	if c.Sheet != nil {
		return c.Sheet.SavingThrows[ability].Value
	}
	if c.NPC != nil {
		return c.NPC.SavingThrowBonus(ability)
	}
	return 0
}

// rollDamage rolls a damage expression. Damage is always rolled
// straight; advantage is a d20 mechanic. A crit doubles the dice,
// never the bonus.
func (s *service) rollDamage(diceString string, crit bool) (*dice.RollResult, error) {
	expr := dice.ParseExpression(diceString)
	if expr.IsZero() {
		return &dice.RollResult{}, nil
	}

	count := expr.Count
	if crit {
		count *= 2
	}
	return s.roller.Roll(count, expr.Sides, expr.Bonus)
}
