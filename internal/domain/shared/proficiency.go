package shared

// ProficiencyKind categorizes what a proficiency applies to
type ProficiencyKind string

const (
	ProficiencyKindSkill       ProficiencyKind = "skill"
	ProficiencyKindTool        ProficiencyKind = "tool"
	ProficiencyKindWeapon      ProficiencyKind = "weapon"
	ProficiencyKindArmor       ProficiencyKind = "armor"
	ProficiencyKindSavingThrow ProficiencyKind = "saving-throw"
	ProficiencyKindLanguage    ProficiencyKind = "language"
)

// Source is the provenance tag on proficiencies, traits, and inventory
// lines. A closed set so bulk-removal on a class/background/species change
// can be exhaustive.
type Source string

const (
	SourceClass       Source = "class"
	SourceBackground  Source = "background"
	SourceSpecies     Source = "species"
	SourceClassChoice Source = "class-choice"
	SourceOrigin      Source = "origin"
	SourceUser        Source = "user"
)

// Proficiency is a single named proficiency with provenance.
// A skill or save is proficient if any matching record exists,
// regardless of how many sources granted it.
type Proficiency struct {
	Name   string          `json:"name"`
	Kind   ProficiencyKind `json:"kind"`
	Source Source          `json:"source"`
}
