package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Expression is the parsed form of a dice string like "2d6+3".
// The zero value means the input was not a dice expression.
type Expression struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
	Bonus int `json:"bonus"`
}

// IsZero reports whether the expression failed to parse.
// Callers should surface a parse failure instead of rolling nothing.
func (e Expression) IsZero() bool {
	return e.Count == 0 && e.Sides == 0 && e.Bonus == 0
}

func (e Expression) String() string {
	if e.Bonus > 0 {
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Sides, e.Bonus)
	}
	if e.Bonus < 0 {
		return fmt.Sprintf("%dd%d%d", e.Count, e.Sides, e.Bonus)
	}
	return fmt.Sprintf("%dd%d", e.Count, e.Sides)
}

var exprPattern = regexp.MustCompile(`^\s*(\d+)[dD](\d+)\s*(?:([+-])\s*(\d+))?\s*$`)

// ParseExpression parses dice strings of the form NdM, NdM+B, or NdM-B.
// Unparseable input yields the zero Expression rather than an error.
func ParseExpression(expr string) Expression {
	m := exprPattern.FindStringSubmatch(expr)
	if m == nil {
		return Expression{}
	}

	count, err := strconv.Atoi(m[1])
	if err != nil {
		return Expression{}
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Expression{}
	}

	bonus := 0
	if m[4] != "" {
		bonus, err = strconv.Atoi(m[4])
		if err != nil {
			return Expression{}
		}
		if m[3] == "-" {
			bonus = -bonus
		}
	}

	if count < 1 || sides < 1 {
		return Expression{}
	}

	return Expression{Count: count, Sides: sides, Bonus: bonus}
}

// RollResult holds the outcome of a single roll request
type RollResult struct {
	Total    int   `json:"total"`
	Rolls    []int `json:"rolls"`
	Bonus    int   `json:"bonus"`
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	RawTotal int   `json:"raw_total"`
	IsCrit   bool  `json:"is_crit,omitempty"`
	IsFumble bool  `json:"is_fumble,omitempty"`
	Mode     Mode  `json:"mode,omitempty"`
}

// Description renders the roll for display, e.g. "2d6+3: [4 5] = 12".
// It is deterministic over Rolls and Bonus.
func (r *RollResult) Description() string {
	expr := Expression{Count: r.Count, Sides: r.Sides, Bonus: r.Bonus}
	rolls := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", " ")
	return fmt.Sprintf("%s: %s = %d", expr, rolls, r.Total)
}

func (r *RollResult) String() string {
	return r.Description()
}

// Roll rolls count dice with the given number of sides and adds a bonus
func Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	total := 0
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		total += roll
		rolls[i] = roll
	}

	result := &RollResult{
		Total:    total + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: total,
		Mode:     ModeNormal,
	}

	if count == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result, nil
}

// RollString parses and rolls a dice expression like "2d6+3"
func RollString(diceString string) (*RollResult, error) {
	expr := ParseExpression(diceString)
	if expr.IsZero() {
		return nil, fmt.Errorf("invalid dice string %q", diceString)
	}

	return Roll(expr.Count, expr.Sides, expr.Bonus)
}
