package equipment

import "strings"

// Category is the closed set of equipment families the catalog stores.
type Category int

const (
	CategoryWeapon Category = iota
	CategoryAmmunition
	CategoryElectronics
	CategoryMiscellaneous
)

func (c Category) String() string {
	switch c {
	case CategoryWeapon:
		return "Weapon"
	case CategoryAmmunition:
		return "Ammunition"
	case CategoryElectronics:
		return "Electronics"
	case CategoryMiscellaneous:
		return "Miscellaneous"
	}
	return "Miscellaneous"
}

// ParseCategory maps a source-file category string to a Category.
// Unknown strings fall back to Miscellaneous.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weapon", "weapons":
		return CategoryWeapon
	case "ammunition", "ammo":
		return CategoryAmmunition
	case "electronics", "electronic":
		return CategoryElectronics
	default:
		return CategoryMiscellaneous
	}
}

// TechBase is the binary technology lineage of an item or unit.
type TechBase int

const (
	TechInnerSphere TechBase = iota
	TechClan
)

func (t TechBase) String() string {
	if t == TechClan {
		return "Clan"
	}
	return "Inner Sphere"
}

// ParseTechBase accepts the string variations found in source data
// ("Inner Sphere", "IS", "IS Level 2", "Clan", "CL", ...). Anything
// unrecognized defaults to Inner Sphere.
func ParseTechBase(s string) TechBase {
	clean := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(clean, "clan") || clean == "cl" || clean == "1" {
		return TechClan
	}
	return TechInnerSphere
}

// RulesLevel ranks how official an item is.
type RulesLevel int

const (
	RulesIntroductory RulesLevel = iota
	RulesStandard
	RulesAdvanced
	RulesExperimental
)

func (r RulesLevel) String() string {
	switch r {
	case RulesIntroductory:
		return "Introductory"
	case RulesAdvanced:
		return "Advanced"
	case RulesExperimental:
		return "Experimental"
	}
	return "Standard"
}

var rulesLevelNames = map[string]RulesLevel{
	"introductory": RulesIntroductory,
	"0":            RulesIntroductory,
	"standard":     RulesStandard,
	"1":            RulesStandard,
	"advanced":     RulesAdvanced,
	"2":            RulesAdvanced,
	"experimental": RulesExperimental,
	"3":            RulesExperimental,
}

// ParseRulesLevel accepts both the text and numeric forms used by source
// files, defaulting to Standard.
func ParseRulesLevel(s string) RulesLevel {
	clean := strings.ToLower(strings.TrimSpace(s))
	if lvl, ok := rulesLevelNames[clean]; ok {
		return lvl
	}
	for _, ch := range clean {
		if ch >= '0' && ch <= '9' {
			if lvl, ok := rulesLevelNames[string(ch)]; ok {
				return lvl
			}
			break
		}
	}
	return RulesStandard
}

// UnitType names a unit chassis family for compatibility filtering.
type UnitType string

const (
	UnitMech      UnitType = "Mech"
	UnitVehicle   UnitType = "Vehicle"
	UnitAerospace UnitType = "Aerospace"
	UnitInfantry  UnitType = "Infantry"
)

// DefaultUnitTypes is the compatibility set assumed for items whose data
// declares no allowed_unit_types.
var DefaultUnitTypes = []UnitType{UnitMech, UnitVehicle, UnitAerospace}
