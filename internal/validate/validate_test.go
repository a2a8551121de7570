package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

func codes(findings []Finding) []string {
	var out []string
	for _, f := range findings {
		out = append(out, f.Code)
	}
	return out
}

// baseConfig is a legal 50-ton walker with modest armor.
func baseConfig(t *testing.T) mech.Configuration {
	t.Helper()
	cfg, err := mech.NewBuilder().
		Name("Testbed").
		Tonnage(50).
		TechBase(equipment.TechInnerSphere).
		Engine(mech.EngineFusion, 250).
		WalkMP(5).
		Armor(mech.ArmorAllocation{
			Head: 9, CenterTorso: 20, CenterTorsoRear: 6,
			LeftTorso: 16, LeftTorsoRear: 4, RightTorso: 16, RightTorsoRear: 4,
			LeftArm: 12, RightArm: 12, LeftLeg: 16, RightLeg: 16,
		}).
		Build()
	require.NoError(t, err)
	return cfg
}

func TestValidateCleanBuild(t *testing.T) {
	res := Validate(baseConfig(t), nil)
	assert.True(t, res.IsValid())
	assert.Empty(t, res.Errors)
}

// assaultConfig is a 100-ton walker carrying 177 points of armor spread
// across every location within its per-location caps.
func assaultConfig(t *testing.T) mech.Configuration {
	t.Helper()
	cfg, err := mech.NewBuilder().
		Name("Atlas Testbed").
		Tonnage(100).
		TechBase(equipment.TechInnerSphere).
		Engine(mech.EngineFusion, 300).
		WalkMP(3).
		Armor(mech.ArmorAllocation{
			Head: 9, CenterTorso: 36, CenterTorsoRear: 10,
			LeftTorso: 20, LeftTorsoRear: 6, RightTorso: 20, RightTorsoRear: 6,
			LeftArm: 17, RightArm: 17, LeftLeg: 18, RightLeg: 18,
		}).
		Build()
	require.NoError(t, err)
	return cfg
}

func TestValidateAssaultArmorSpread(t *testing.T) {
	res := Validate(assaultConfig(t), nil)
	assert.True(t, res.IsValid())
	assert.Empty(t, res.Errors)
}

func TestValidateOverweight(t *testing.T) {
	cfg := baseConfig(t)
	heavy := &equipment.Item{ID: "gauss-rifle", Name: "Gauss Rifle", Category: equipment.CategoryWeapon, TechBase: equipment.TechInnerSphere, Weight: 15, CriticalSlots: 7}
	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "gauss-rifle", Location: mech.RightTorso})
	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "gauss-rifle", Location: mech.LeftTorso})
	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "gauss-rifle", Location: mech.CenterTorso})

	res := Validate(cfg, []*equipment.Item{heavy, heavy, heavy})
	assert.False(t, res.IsValid())
	assert.Contains(t, codes(res.Errors), CodeOverweight)
}

func TestValidateArmorOverflow(t *testing.T) {
	cfg := baseConfig(t)
	armor := cfg.Armor
	armor.LeftArm = 99
	cfg = cfg.WithArmor(armor)

	res := Validate(cfg, nil)
	assert.False(t, res.IsValid())

	var found *Finding
	for i, f := range res.Errors {
		if f.Code == CodeArmorOverflow {
			found = &res.Errors[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, mech.LeftArm, found.Location)
}

func TestValidateHeadArmorCap(t *testing.T) {
	cfg := baseConfig(t)
	armor := cfg.Armor
	armor.Head = 10
	cfg = cfg.WithArmor(armor)

	res := Validate(cfg, nil)
	assert.Contains(t, codes(res.Errors), CodeArmorOverflow)

	armor.Head = 9
	res = Validate(cfg.WithArmor(armor), nil)
	assert.NotContains(t, codes(res.Errors), CodeArmorOverflow)
}

func TestValidateTorsoCapCoversRear(t *testing.T) {
	cfg := baseConfig(t)
	armor := cfg.Armor
	// 50 tons: CT structure 16, cap 32. Front 30 + rear 6 overflows even
	// though each facing alone fits.
	armor.CenterTorso = 30
	armor.CenterTorsoRear = 6
	cfg = cfg.WithArmor(armor)

	res := Validate(cfg, nil)
	assert.Contains(t, codes(res.Errors), CodeArmorOverflow)
}

func TestValidateNoArmorWarns(t *testing.T) {
	cfg := baseConfig(t)
	armor := cfg.Armor
	armor.LeftLeg = 0
	cfg = cfg.WithArmor(armor)

	res := Validate(cfg, nil)
	assert.True(t, res.IsValid())
	assert.Contains(t, codes(res.Warnings), CodeNoArmor)
}

func TestValidateSlotOverflow(t *testing.T) {
	cfg := baseConfig(t)
	big := &equipment.Item{ID: "ac-20", Name: "Autocannon/20", Category: equipment.CategoryWeapon, TechBase: equipment.TechInnerSphere, Weight: 14, CriticalSlots: 10}
	// Head holds 6 slots; a 10-slot weapon cannot fit.
	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "ac-20", Location: mech.Head})

	res := Validate(cfg, []*equipment.Item{big})
	assert.Contains(t, codes(res.Errors), CodeSlotOverflow)
}

func TestValidateTechBaseMismatch(t *testing.T) {
	cfg := baseConfig(t)
	clanLaser := &equipment.Item{ID: "clan-er-medium-laser", Name: "ER Medium Laser", Category: equipment.CategoryWeapon, TechBase: equipment.TechClan, Weight: 1, CriticalSlots: 1}
	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "clan-er-medium-laser", Location: mech.RightArm})

	res := Validate(cfg, []*equipment.Item{clanLaser})
	assert.Contains(t, codes(res.Errors), CodeTechBaseMismatch)
}

func TestValidateUnresolvedEquipment(t *testing.T) {
	cfg := baseConfig(t)
	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "mystery-box", Location: mech.LeftTorso})

	res := Validate(cfg, []*equipment.Item{nil})
	assert.Contains(t, codes(res.Errors), CodeUnresolvedEquipment)
}

func TestValidateEngineRating(t *testing.T) {
	tests := []struct {
		rating int
		codes  []string
	}{
		{10, nil},
		{400, nil},
		{250, nil},
		{5, []string{CodeEngineRatingRange}},
		{405, []string{CodeEngineRatingRange}},
		{103, []string{CodeEngineRatingStep}},
		{7, []string{CodeEngineRatingRange, CodeEngineRatingStep}},
	}
	for _, tt := range tests {
		cfg := baseConfig(t)
		cfg.Engine.Rating = tt.rating
		res := Validate(cfg, nil)
		for _, want := range tt.codes {
			assert.Contains(t, codes(res.Errors), want, "rating %d", tt.rating)
		}
		if tt.codes == nil {
			assert.NotContains(t, codes(res.Errors), CodeEngineRatingRange, "rating %d", tt.rating)
			assert.NotContains(t, codes(res.Errors), CodeEngineRatingStep, "rating %d", tt.rating)
		}
	}
}

func TestValidateHeatSinkMinimum(t *testing.T) {
	cfg := baseConfig(t)
	cfg = cfg.WithHeatSinks(mech.HeatSinkSingle, 9)

	res := Validate(cfg, nil)
	assert.Contains(t, codes(res.Errors), CodeInsufficientHeatSinks)

	res = Validate(cfg.WithHeatSinks(mech.HeatSinkSingle, 10), nil)
	assert.NotContains(t, codes(res.Errors), CodeInsufficientHeatSinks)
}

func TestValidateAggregatesFindings(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Engine.Rating = 403
	cfg = cfg.WithHeatSinks(mech.HeatSinkSingle, 4)
	armor := cfg.Armor
	armor.Head = 12
	cfg = cfg.WithArmor(armor)

	res := Validate(cfg, nil)
	got := codes(res.Errors)
	assert.Contains(t, got, CodeEngineRatingRange)
	assert.Contains(t, got, CodeEngineRatingStep)
	assert.Contains(t, got, CodeInsufficientHeatSinks)
	assert.Contains(t, got, CodeArmorOverflow)
}
