package shared

// Attribute identifies one of the six ability scores
type Attribute string

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

// Attributes lists the six abilities in display order
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// ParseAttribute maps common short and long ability names to an Attribute
func ParseAttribute(name string) Attribute {
	switch name {
	case "Str", "str", "strength", "Strength", "STR":
		return AttributeStrength
	case "Dex", "dex", "dexterity", "Dexterity", "DEX":
		return AttributeDexterity
	case "Con", "con", "constitution", "Constitution", "CON":
		return AttributeConstitution
	case "Int", "int", "intelligence", "Intelligence", "INT":
		return AttributeIntelligence
	case "Wis", "wis", "wisdom", "Wisdom", "WIS":
		return AttributeWisdom
	case "Cha", "cha", "charisma", "Charisma", "CHA":
		return AttributeCharisma
	default:
		return AttributeNone
	}
}

// Modifier returns the ability modifier for a score: floor((score-10)/2).
// Integer division in Go truncates toward zero, so negative halves need
// the explicit floor.
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}
