package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"weapon", CategoryWeapon},
		{"Weapons", CategoryWeapon},
		{"ammo", CategoryAmmunition},
		{"ammunition", CategoryAmmunition},
		{"Electronics", CategoryElectronics},
		{"gear", CategoryMiscellaneous},
		{"", CategoryMiscellaneous},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.in), "ParseCategory(%q)", tt.in)
	}
}

func TestParseTechBase(t *testing.T) {
	tests := []struct {
		in   string
		want TechBase
	}{
		{"Inner Sphere", TechInnerSphere},
		{"IS", TechInnerSphere},
		{"IS Level 2", TechInnerSphere},
		{"Clan", TechClan},
		{"clan level 3", TechClan},
		{"CL", TechClan},
		{"", TechInnerSphere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTechBase(tt.in), "ParseTechBase(%q)", tt.in)
	}
}

func TestParseRulesLevel(t *testing.T) {
	tests := []struct {
		in   string
		want RulesLevel
	}{
		{"introductory", RulesIntroductory},
		{"0", RulesIntroductory},
		{"Standard", RulesStandard},
		{"Level 2", RulesAdvanced},
		{"experimental", RulesExperimental},
		{"", RulesStandard},
		{"tournament legal", RulesStandard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRulesLevel(tt.in), "ParseRulesLevel(%q)", tt.in)
	}
}

func TestHasFlag(t *testing.T) {
	item := &Item{ID: "case", Flags: []string{FlagCASE, FlagDefensive}}
	assert.True(t, item.HasFlag(FlagCASE))
	assert.True(t, item.HasFlag(FlagDefensive))
	assert.False(t, item.HasFlag(FlagJumpJet))
}

func TestCompatibleWith(t *testing.T) {
	unrestricted := &Item{ID: "medium-laser"}
	assert.True(t, unrestricted.CompatibleWith(UnitMech))
	assert.True(t, unrestricted.CompatibleWith(UnitVehicle))
	assert.True(t, unrestricted.CompatibleWith(UnitAerospace))
	assert.False(t, unrestricted.CompatibleWith(UnitInfantry))

	mechOnly := &Item{ID: "hatchet", AllowedUnitTypes: []UnitType{UnitMech}}
	assert.True(t, mechOnly.CompatibleWith(UnitMech))
	assert.False(t, mechOnly.CompatibleWith(UnitVehicle))
}
