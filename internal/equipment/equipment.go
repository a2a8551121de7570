// Package equipment defines the canonical in-memory equipment model shared
// by the catalog, resolver, validator and calculators.
package equipment

// RangeProfile holds weapon range brackets in hexes.
type RangeProfile struct {
	Minimum int `json:"minimum,omitempty"`
	Short   int `json:"short,omitempty"`
	Medium  int `json:"medium,omitempty"`
	Long    int `json:"long,omitempty"`
	Extreme int `json:"extreme,omitempty"`
}

// Item is a catalog entry. Items are created once at load time and never
// mutated afterward; callers share pointers freely.
type Item struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      Category   `json:"category"`
	TechBase      TechBase   `json:"tech_base"`
	RulesLevel    RulesLevel `json:"rules_level"`
	Weight        float64    `json:"weight"`
	CriticalSlots int        `json:"critical_slots"`
	Cost          float64    `json:"cost"`
	BattleValue   int        `json:"battle_value"`

	// Weapon-only fields.
	Heat   int          `json:"heat,omitempty"`
	Damage float64      `json:"damage,omitempty"`
	Ranges RangeProfile `json:"ranges,omitempty"`

	// Ammunition-only fields.
	RackSize int `json:"rack_size,omitempty"`
	Shots    int `json:"shots,omitempty"`

	IntroductionYear int        `json:"introduction_year,omitempty"`
	Flags            []string   `json:"flags,omitempty"`
	AllowedUnitTypes []UnitType `json:"allowed_unit_types,omitempty"`
	AllowedLocations []string   `json:"allowed_locations,omitempty"`
}

// HasFlag reports whether the item carries the given flag.
func (i *Item) HasFlag(flag string) bool {
	for _, f := range i.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// CompatibleWith reports whether the item may be mounted on the given unit
// type. Items with no declared unit types default to mechs, vehicles and
// aerospace units.
func (i *Item) CompatibleWith(ut UnitType) bool {
	allowed := i.AllowedUnitTypes
	if len(allowed) == 0 {
		allowed = DefaultUnitTypes
	}
	for _, a := range allowed {
		if a == ut {
			return true
		}
	}
	return false
}

// IsWeapon reports whether the item is a weapon.
func (i *Item) IsWeapon() bool { return i.Category == CategoryWeapon }

// IsAmmo reports whether the item is ammunition.
func (i *Item) IsAmmo() bool { return i.Category == CategoryAmmunition }

// Common equipment flags used across the engine.
const (
	FlagJumpJet           = "jump-jet"
	FlagHeatSink          = "heat-sink"
	FlagCASE              = "case"
	FlagDefensive         = "defensive"
	FlagExplosive         = "explosive"
	FlagTargetingComputer = "targeting-computer"
	FlagMASC              = "masc"
	FlagTSM               = "tsm"
	FlagOneShot           = "one-shot"
)
