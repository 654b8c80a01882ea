package combat

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/character-vault/internal/dice"
	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	"github.com/KirkDiggler/character-vault/internal/uuid"
)

// State represents the current phase of a combat tracker
type State string

const (
	StateSetup  State = "setup"  // roster being assembled, no turn order
	StateActive State = "active" // turn order fixed, one combatant active
)

// CombatantKind distinguishes player characters from NPCs
type CombatantKind string

const (
	CombatantKindPC  CombatantKind = "pc"
	CombatantKindNPC CombatantKind = "npc"
)

// Combatant is one participant in the tracker. PCs carry a sheet
// snapshot taken at add time; later edits to the source character do
// not propagate. NPCs carry their statblock.
type Combatant struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Kind            CombatantKind    `json:"kind"`
	Sheet           *character.Sheet `json:"sheet,omitempty"`
	NPC             *npc.NPCData     `json:"npc,omitempty"`
	Initiative      int              `json:"initiative"`
	InitiativeBonus int              `json:"initiative_bonus"`
	CurrentHP       int              `json:"current_hp"`
	MaxHP           int              `json:"max_hp"`
	IsActiveTurn    bool             `json:"is_active_turn"`
}

// IsAlive returns true while the combatant has hit points left
func (c *Combatant) IsAlive() bool {
	return c.CurrentHP > 0
}

// Tracker is the combat turn state machine. It owns the roster,
// initiative order, active-turn pointer, and round counter. Commands
// issued in the wrong state are silent no-ops rather than errors.
type Tracker struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	State      State        `json:"state"`
	Round      int          `json:"round"`
	Turn       int          `json:"turn"`
	Combatants []*Combatant `json:"combatants"`

	npcCounts map[string]int
	idGen     uuid.Generator
}

// NewTracker creates an empty tracker in the setup state
func NewTracker(id, name string, idGen uuid.Generator) *Tracker {
	return &Tracker{
		ID:        id,
		Name:      name,
		State:     StateSetup,
		npcCounts: make(map[string]int),
		idGen:     idGen,
	}
}

// AddPC snapshots a computed character sheet into the roster. Only
// valid during setup; returns nil once combat is active.
func (t *Tracker) AddPC(sheet *character.Sheet) *Combatant {
	if t.State != StateSetup || sheet == nil {
		return nil
	}

	combatant := &Combatant{
		ID:              t.idGen.New(),
		Name:            sheet.Name,
		Kind:            CombatantKindPC,
		Sheet:           sheet.Clone(),
		InitiativeBonus: sheet.Initiative,
		CurrentHP:       sheet.MaxHP,
		MaxHP:           sheet.MaxHP,
	}
	t.Combatants = append(t.Combatants, combatant)
	return combatant
}

// AddNPC adds an instance of a statblock to the roster. Instances of
// the same definition get a sequence number appended to the display
// name so multiple goblins stay tellable apart. Only valid during
// setup; returns nil once combat is active.
func (t *Tracker) AddNPC(data *npc.NPCData) *Combatant {
	if t.State != StateSetup || data == nil {
		return nil
	}

	if t.npcCounts == nil {
		t.npcCounts = make(map[string]int)
	}
	t.npcCounts[data.Name]++
	combatant := &Combatant{
		ID:              t.idGen.New(),
		Name:            fmt.Sprintf("%s %d", data.Name, t.npcCounts[data.Name]),
		Kind:            CombatantKindNPC,
		NPC:             data.Clone(),
		InitiativeBonus: data.InitiativeBonus(),
		CurrentHP:       data.HitPoints,
		MaxHP:           data.HitPoints,
	}
	t.Combatants = append(t.Combatants, combatant)
	return combatant
}

// RollInitiativeForAll rolls 1d20 plus each combatant's initiative
// bonus in normal mode and re-sorts the roster. Only valid during
// setup.
func (t *Tracker) RollInitiativeForAll(roller dice.Roller) error {
	if t.State != StateSetup {
		return nil
	}

	for _, c := range t.Combatants {
		result, err := roller.Roll(1, 20, c.InitiativeBonus)
		if err != nil {
			return err
		}
		c.Initiative = result.Total
	}
	t.sortRoster()
	return nil
}

// StartCombat locks the turn order and activates the first combatant.
// At least one combatant is required. A mixed roster where some have
// rolled initiative and others still sit at zero is allowed but
// produces a warning string. Returns false if the transition is
// invalid.
func (t *Tracker) StartCombat() (string, bool) {
	if t.State != StateSetup || len(t.Combatants) == 0 {
		return "", false
	}

	warning := ""
	if t.hasMixedInitiative() {
		warning = "some combatants have no initiative rolled"
	}

	t.sortRoster()
	t.State = StateActive
	t.Round = 1
	t.Turn = 0
	t.markActiveTurn()
	return warning, true
}

// NextTurn advances the active-turn pointer, incrementing the round
// when it wraps. Only valid while combat is active.
func (t *Tracker) NextTurn() {
	if t.State != StateActive || len(t.Combatants) == 0 {
		return
	}

	t.Turn++
	if t.Turn >= len(t.Combatants) {
		t.Turn = 0
		t.Round++
	}
	t.markActiveTurn()
}

// UpdateHP applies a hit point delta to a combatant, clamped to
// [0, maxHp]. Valid in either state. Unknown ids are ignored.
func (t *Tracker) UpdateHP(id string, delta int) {
	c := t.FindCombatant(id)
	if c == nil {
		return
	}

	c.CurrentHP += delta
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
}

// RemoveCombatant drops a combatant from the roster, keeping the
// active-turn pointer on the same logical combatant. Removing the
// active combatant hands the turn to the next survivor, wrapping to
// index 0 and incrementing the round if needed. An emptied roster
// forces the tracker back to setup.
func (t *Tracker) RemoveCombatant(id string) {
	idx := -1
	for i, c := range t.Combatants {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	t.Combatants = append(t.Combatants[:idx], t.Combatants[idx+1:]...)

	if len(t.Combatants) == 0 {
		t.EndCombat()
		return
	}

	if t.State != StateActive {
		return
	}

	switch {
	case idx < t.Turn:
		t.Turn--
	case idx == t.Turn:
		if t.Turn >= len(t.Combatants) {
			t.Turn = 0
			t.Round++
		}
	}
	t.markActiveTurn()
}

// EndCombat clears the roster and returns the tracker to setup
func (t *Tracker) EndCombat() {
	t.State = StateSetup
	t.Round = 0
	t.Turn = 0
	t.Combatants = nil
	t.npcCounts = make(map[string]int)
}

// ActiveCombatant returns the combatant whose turn it is, or nil
// outside active combat.
func (t *Tracker) ActiveCombatant() *Combatant {
	if t.State != StateActive || t.Turn >= len(t.Combatants) {
		return nil
	}
	return t.Combatants[t.Turn]
}

// FindCombatant looks a combatant up by id
func (t *Tracker) FindCombatant(id string) *Combatant {
	for _, c := range t.Combatants {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// sortRoster orders by initiative descending with ties broken by name
// ascending, so ordering is stable and testable.
func (t *Tracker) sortRoster() {
	sort.SliceStable(t.Combatants, func(i, j int) bool {
		if t.Combatants[i].Initiative != t.Combatants[j].Initiative {
			return t.Combatants[i].Initiative > t.Combatants[j].Initiative
		}
		return t.Combatants[i].Name < t.Combatants[j].Name
	})
}

// markActiveTurn flags exactly one combatant as active
func (t *Tracker) markActiveTurn() {
	for i, c := range t.Combatants {
		c.IsActiveTurn = i == t.Turn && t.State == StateActive
	}
}

func (t *Tracker) hasMixedInitiative() bool {
	zeros := 0
	for _, c := range t.Combatants {
		if c.Initiative == 0 {
			zeros++
		}
	}
	return zeros > 0 && zeros < len(t.Combatants)
}
