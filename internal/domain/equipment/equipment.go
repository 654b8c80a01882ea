package equipment

import "github.com/KirkDiggler/character-vault/internal/domain/shared"

// Category buckets inventory lines for display and equip rules
type Category string

const (
	CategoryWeapon        Category = "weapon"
	CategoryArmor         Category = "armor"
	CategoryMiscellaneous Category = "miscellaneous"
)

// WeaponProperty is a 5e weapon property tag
type WeaponProperty string

const (
	PropertyAmmunition WeaponProperty = "ammunition"
	PropertyFinesse    WeaponProperty = "finesse"
	PropertyHeavy      WeaponProperty = "heavy"
	PropertyLight      WeaponProperty = "light"
	PropertyLoading    WeaponProperty = "loading"
	PropertyRange      WeaponProperty = "range"
	PropertyReach      WeaponProperty = "reach"
	PropertySpecial    WeaponProperty = "special"
	PropertyThrown     WeaponProperty = "thrown"
	PropertyTwoHanded  WeaponProperty = "two-handed"
	PropertyVersatile  WeaponProperty = "versatile"
)

// ArmorType distinguishes body armor weights. The empty value means the
// item is a shield or generic armor piece, not body armor.
type ArmorType string

const (
	ArmorTypeNone   ArmorType = ""
	ArmorTypeLight  ArmorType = "light"
	ArmorTypeMedium ArmorType = "medium"
	ArmorTypeHeavy  ArmorType = "heavy"
)

// WeaponDetails carries the weapon-specific fields of an item
type WeaponDetails struct {
	DamageDice      string           `json:"damage_dice"`
	DamageType      string           `json:"damage_type"`
	Properties      []WeaponProperty `json:"properties,omitempty"`
	RangeNormal     int              `json:"range_normal,omitempty"`
	RangeLong       int              `json:"range_long,omitempty"`
	VersatileDamage string           `json:"versatile_damage,omitempty"`
}

// HasProperty checks if the weapon has a specific property
func (w *WeaponDetails) HasProperty(prop WeaponProperty) bool {
	for _, p := range w.Properties {
		if p == prop {
			return true
		}
	}
	return false
}

// ArmorDetails carries the armor-specific fields of an item
type ArmorDetails struct {
	BaseAC              int       `json:"base_ac"`
	AddDexModifier      bool      `json:"add_dex_modifier"`
	MaxDexBonus         int       `json:"max_dex_bonus,omitempty"`
	ArmorType           ArmorType `json:"armor_type,omitempty"`
	StrengthRequirement int       `json:"strength_requirement,omitempty"`
	StealthDisadvantage bool      `json:"stealth_disadvantage,omitempty"`
}

// Definition is a reusable item definition in the content store
type Definition struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category Category       `json:"category"`
	Weapon   *WeaponDetails `json:"weapon,omitempty"`
	Armor    *ArmorDetails  `json:"armor,omitempty"`
	CostGold int            `json:"cost_gold,omitempty"`
	Weight   float32        `json:"weight,omitempty"`
}

// EquippedItem is one inventory line on a character sheet. InstanceID is
// unique per line and never reused; two lines with the same DefinitionID
// stay distinct unless explicitly stacked.
type EquippedItem struct {
	InstanceID   string         `json:"instance_id"`
	DefinitionID string         `json:"definition_id"`
	Name         string         `json:"name"`
	Category     Category       `json:"category"`
	Quantity     int            `json:"quantity"`
	Weapon       *WeaponDetails `json:"weapon,omitempty"`
	Armor        *ArmorDetails  `json:"armor,omitempty"`
	Equipped     bool           `json:"equipped"`
	Attunement   bool           `json:"attunement"`
	Source       shared.Source  `json:"source"`
}

// IsWeapon reports whether the line is a weapon with weapon details
func (i *EquippedItem) IsWeapon() bool {
	return i.Category == CategoryWeapon && i.Weapon != nil
}

// IsBodyArmor reports whether the line is wearable body armor (light,
// medium, or heavy)
func (i *EquippedItem) IsBodyArmor() bool {
	return i.Category == CategoryArmor && i.Armor != nil && i.Armor.ArmorType != ArmorTypeNone
}

// IsShield reports whether the line is a shield: an armor item with no
// armor type
func (i *EquippedItem) IsShield() bool {
	return i.Category == CategoryArmor && i.Armor != nil && i.Armor.ArmorType == ArmorTypeNone
}

// IsTwoHanded reports whether the line is a two-handed weapon
func (i *EquippedItem) IsTwoHanded() bool {
	return i.IsWeapon() && i.Weapon.HasProperty(PropertyTwoHanded)
}

// IsLightWeapon reports whether the line is a Light one-handed weapon
func (i *EquippedItem) IsLightWeapon() bool {
	return i.IsWeapon() && !i.IsTwoHanded() && i.Weapon.HasProperty(PropertyLight)
}

// IsOneHanded reports whether the line is a weapon wielded in one hand
func (i *EquippedItem) IsOneHanded() bool {
	return i.IsWeapon() && !i.IsTwoHanded()
}
