package shared

// SkillKey identifies one of the eighteen skills
type SkillKey string

const (
	SkillAcrobatics     SkillKey = "acrobatics"
	SkillAnimalHandling SkillKey = "animal-handling"
	SkillArcana         SkillKey = "arcana"
	SkillAthletics      SkillKey = "athletics"
	SkillDeception      SkillKey = "deception"
	SkillHistory        SkillKey = "history"
	SkillInsight        SkillKey = "insight"
	SkillIntimidation   SkillKey = "intimidation"
	SkillInvestigation  SkillKey = "investigation"
	SkillMedicine       SkillKey = "medicine"
	SkillNature         SkillKey = "nature"
	SkillPerception     SkillKey = "perception"
	SkillPerformance    SkillKey = "performance"
	SkillPersuasion     SkillKey = "persuasion"
	SkillReligion       SkillKey = "religion"
	SkillSleightOfHand  SkillKey = "sleight-of-hand"
	SkillStealth        SkillKey = "stealth"
	SkillSurvival       SkillKey = "survival"
)

// SkillAbilities maps each skill to the ability it keys off
var SkillAbilities = map[SkillKey]Attribute{
	SkillAcrobatics:     AttributeDexterity,
	SkillAnimalHandling: AttributeWisdom,
	SkillArcana:         AttributeIntelligence,
	SkillAthletics:      AttributeStrength,
	SkillDeception:      AttributeCharisma,
	SkillHistory:        AttributeIntelligence,
	SkillInsight:        AttributeWisdom,
	SkillIntimidation:   AttributeCharisma,
	SkillInvestigation:  AttributeIntelligence,
	SkillMedicine:       AttributeWisdom,
	SkillNature:         AttributeIntelligence,
	SkillPerception:     AttributeWisdom,
	SkillPerformance:    AttributeCharisma,
	SkillPersuasion:     AttributeCharisma,
	SkillReligion:       AttributeIntelligence,
	SkillSleightOfHand:  AttributeDexterity,
	SkillStealth:        AttributeDexterity,
	SkillSurvival:       AttributeWisdom,
}
