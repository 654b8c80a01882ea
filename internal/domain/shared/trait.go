package shared

// Trait is a named feature on a character sheet or NPC statblock.
// ParsedAttack is optional structured combat data, attached either by
// explicit authoring or by running the attack-text parser over the
// description. An explicitly authored ParsedAttack always wins over a
// parsed one.
type Trait struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Source       Source        `json:"source,omitempty"`
	ParsedAttack *ParsedAttack `json:"parsed_attack,omitempty"`
}

// ParsedAttack is structured attack/damage/save data extracted from a
// trait. At most one of Attack (a direct attack) or SavingThrow (a save
// effect) is meaningfully populated; Hit and Versatile describe damage
// conditioned on whichever applies.
type ParsedAttack struct {
	Attack      *AttackInfo `json:"attack,omitempty"`
	Hit         *DamageInfo `json:"hit,omitempty"`
	Versatile   *DamageInfo `json:"versatile,omitempty"`
	SavingThrow *SaveEffect `json:"saving_throw,omitempty"`
}

// AttackInfo is the to-hit side of a parsed attack
type AttackInfo struct {
	Bonus  int    `json:"bonus"`
	Reach  int    `json:"reach,omitempty"`
	Range  int    `json:"range,omitempty"`
	Target string `json:"target,omitempty"`
}

// DamageInfo is one damage clause of a parsed attack
type DamageInfo struct {
	DiceString string `json:"dice_string"`
	DamageType string `json:"damage_type"`
	FullText   string `json:"full_text"`
}

// SaveEffect is the saving-throw side of a parsed trait
type SaveEffect struct {
	DC      int       `json:"dc"`
	Ability Attribute `json:"ability"`
}
