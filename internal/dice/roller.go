package dice

// Mode selects how a d20 roll resolves
type Mode string

const (
	ModeNormal       Mode = "normal"
	ModeAdvantage    Mode = "advantage"
	ModeDisadvantage Mode = "disadvantage"
)

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollWithAdvantage rolls with advantage (roll twice, take higher)
	RollWithAdvantage(sides, bonus int) (*RollResult, error)

	// RollWithDisadvantage rolls with disadvantage (roll twice, take lower)
	RollWithDisadvantage(sides, bonus int) (*RollResult, error)
}

// RollWithMode rolls through the given roller, applying advantage or
// disadvantage only for a single d20. Advantage is a d20 mechanic; for
// any other die shape the mode is ignored and the roll is normal.
func RollWithMode(r Roller, count, sides, bonus int, mode Mode) (*RollResult, error) {
	if count == 1 && sides == 20 {
		switch mode {
		case ModeAdvantage:
			return r.RollWithAdvantage(sides, bonus)
		case ModeDisadvantage:
			return r.RollWithDisadvantage(sides, bonus)
		}
	}

	return r.Roll(count, sides, bonus)
}
