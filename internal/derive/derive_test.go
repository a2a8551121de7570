package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

var (
	mediumLaser = &equipment.Item{
		ID: "medium-laser", Name: "Medium Laser",
		Category: equipment.CategoryWeapon, TechBase: equipment.TechInnerSphere,
		Weight: 1, CriticalSlots: 1, Cost: 40000, BattleValue: 46, Heat: 3,
	}
	acFive = &equipment.Item{
		ID: "ac-5", Name: "Autocannon/5",
		Category: equipment.CategoryWeapon, TechBase: equipment.TechInnerSphere,
		Weight: 8, CriticalSlots: 4, Cost: 125000, BattleValue: 70, Heat: 1,
	}
	acFiveAmmo = &equipment.Item{
		ID: "ac-5-ammo", Name: "AC/5 Ammo",
		Category: equipment.CategoryAmmunition, TechBase: equipment.TechInnerSphere,
		Weight: 1, CriticalSlots: 1, Cost: 4500, BattleValue: 9, Shots: 20,
		Flags: []string{"explosive"},
	}
	jumpJet = &equipment.Item{
		ID: "jump-jet", Name: "Jump Jet",
		Category: equipment.CategoryMiscellaneous, TechBase: equipment.TechInnerSphere,
		Weight: 0.5, CriticalSlots: 1, Cost: 200,
		Flags: []string{"jump-jet"},
	}
	caseItem = &equipment.Item{
		ID: "case", Name: "CASE",
		Category: equipment.CategoryMiscellaneous, TechBase: equipment.TechInnerSphere,
		Weight: 0.5, CriticalSlots: 1, Cost: 50000,
		Flags: []string{"case"},
	}
	lrmTen = &equipment.Item{
		ID: "lrm-10", Name: "LRM 10",
		Category: equipment.CategoryWeapon, TechBase: equipment.TechInnerSphere,
		Weight: 5, CriticalSlots: 2, Cost: 100000, BattleValue: 90, Heat: 4,
		RackSize: 10,
	}
	artemisFour = &equipment.Item{
		ID: "artemis-iv-fcs", Name: "Artemis IV FCS",
		Category: equipment.CategoryElectronics, TechBase: equipment.TechInnerSphere,
		Weight: 1, CriticalSlots: 1, Cost: 100000,
	}
	artemisFive = &equipment.Item{
		ID: "clan-artemis-v-fcs", Name: "Artemis V FCS",
		Category: equipment.CategoryElectronics, TechBase: equipment.TechClan,
		Weight: 1.5, CriticalSlots: 2, Cost: 250000,
	}
	ecmSuite = &equipment.Item{
		ID: "guardian-ecm-suite", Name: "Guardian ECM Suite",
		Category: equipment.CategoryElectronics, TechBase: equipment.TechInnerSphere,
		Weight: 1.5, CriticalSlots: 2, Cost: 200000, BattleValue: 61,
		Flags: []string{"defensive"},
	}
)

func testConfig(t *testing.T) mech.Configuration {
	t.Helper()
	cfg, err := mech.NewBuilder().
		Name("Hoplite").
		Tonnage(50).
		TechBase(equipment.TechInnerSphere).
		Engine(mech.EngineFusion, 250).
		WalkMP(5).
		Armor(mech.ArmorAllocation{
			Head: 9, CenterTorso: 20, CenterTorsoRear: 6,
			LeftTorso: 16, LeftTorsoRear: 4, RightTorso: 16, RightTorsoRear: 4,
			LeftArm: 12, RightArm: 12, LeftLeg: 16, RightLeg: 16,
		}).
		Mount("medium-laser", mech.RightArm, 0).
		Mount("ac-5", mech.RightTorso, 0).
		Mount("ac-5-ammo", mech.RightTorso, 4).
		Build()
	require.NoError(t, err)
	return cfg
}

func testResolved() []*equipment.Item {
	return []*equipment.Item{mediumLaser, acFive, acFiveAmmo}
}

func TestCalculateTotals(t *testing.T) {
	cfg := testConfig(t)
	totals := CalculateTotals(cfg, testResolved())

	assert.Equal(t, 5.0, totals.StructureWeight)
	assert.Equal(t, 12.5, totals.EngineWeight)
	assert.Equal(t, 3.0, totals.GyroWeight)
	assert.Equal(t, 3.0, totals.CockpitWeight)
	assert.Equal(t, 8.5, totals.ArmorWeight)
	assert.Equal(t, 0.0, totals.HeatSinkWeight)
	assert.Equal(t, 10.0, totals.EquipmentWeight)
	assert.Equal(t, 42.0, totals.TotalWeight)
	assert.Equal(t, 8.0, totals.RemainingWeight)

	assert.Equal(t, 131, totals.TotalArmorPoints)
	assert.Equal(t, 9, totals.MaxArmorPoints[mech.Head])
	assert.Equal(t, 32, totals.MaxArmorPoints[mech.CenterTorso])
}

func TestCalculateTotalsAssaultArmorSpread(t *testing.T) {
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

	totals := CalculateTotals(cfg, nil)
	assert.Equal(t, 177, totals.TotalArmorPoints)
	assert.LessOrEqual(t, totals.TotalWeight, 100.0)
}

func TestCalculateTotalsSkipsUnresolved(t *testing.T) {
	cfg := testConfig(t)
	resolved := testResolved()
	resolved[1] = nil

	totals := CalculateTotals(cfg, resolved)
	assert.Equal(t, 2.0, totals.EquipmentWeight)
}

func TestCalculateMovement(t *testing.T) {
	cfg := testConfig(t)
	mv := CalculateMovement(cfg, testResolved())

	assert.Equal(t, 5, mv.WalkMP)
	assert.Equal(t, 7, mv.RunMP)
	assert.Equal(t, 0, mv.JumpMP)
}

func TestRunMPRoundsDown(t *testing.T) {
	tests := []struct {
		walk, run int
	}{
		{1, 1}, {2, 3}, {3, 4}, {4, 6}, {5, 7}, {6, 9}, {8, 12},
	}
	for _, tt := range tests {
		cfg := testConfig(t).WithWalkMP(tt.walk)
		mv := CalculateMovement(cfg, nil)
		assert.Equal(t, tt.run, mv.RunMP, "walk %d", tt.walk)
	}
}

func TestJumpJetsCounted(t *testing.T) {
	cfg := testConfig(t).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.LeftLeg}).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.RightLeg}).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.CenterTorso})
	resolved := append(testResolved(), jumpJet, jumpJet, jumpJet)

	mv := CalculateMovement(cfg, resolved)
	assert.Equal(t, 3, mv.JumpMP)
}

func TestCalculateHeatProfile(t *testing.T) {
	cfg := testConfig(t)
	hp := CalculateHeatProfile(cfg, testResolved())

	// 10 single sinks against 4 weapon heat plus 2 running heat.
	assert.Equal(t, 10, hp.Dissipation)
	assert.Equal(t, 6, hp.Generation)
	assert.Equal(t, -4, hp.Net)
	assert.Equal(t, 4, hp.AlphaStrike)
}

func TestHeatProfileDoubleSinks(t *testing.T) {
	cfg := testConfig(t).WithHeatSinks(mech.HeatSinkDouble, 12)
	hp := CalculateHeatProfile(cfg, testResolved())
	assert.Equal(t, 24, hp.Dissipation)
}

func TestHeatProfileJumpHeat(t *testing.T) {
	cfg := testConfig(t).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.LeftLeg}).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.RightLeg}).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.LeftTorso}).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.RightTorso}).
		WithEquipment(mech.EquipmentRef{Ref: "jump-jet", Location: mech.CenterTorso})
	resolved := append(testResolved(), jumpJet, jumpJet, jumpJet, jumpJet, jumpJet)

	hp := CalculateHeatProfile(cfg, resolved)
	// Five jump MP of movement heat replaces the running 2.
	assert.Equal(t, 4+5, hp.Generation)
}

func TestCalculateCost(t *testing.T) {
	cfg := testConfig(t)
	cost := CalculateCost(cfg, testResolved())

	// 5 tons of standard structure at 400 C-bills per ton.
	assert.Equal(t, 2000.0, cost.Structure)
	// Fusion: 5000 x 250 x 50 / 75.
	assert.InDelta(t, 833333.33, cost.Engine, 0.5)
	// 3-ton standard gyro at 300000 per ton.
	assert.Equal(t, 900000.0, cost.Gyro)
	assert.Equal(t, 200000.0, cost.Cockpit)
	// 8.5 tons of standard armor at 10000 per ton.
	assert.Equal(t, 85000.0, cost.Armor)
	// All ten sinks ride inside the 250-rated engine.
	assert.Equal(t, 0.0, cost.HeatSinks)
	assert.Equal(t, 169500.0, cost.Equipment)

	sum := cost.Structure + cost.Engine + cost.Gyro + cost.Cockpit + cost.Armor + cost.HeatSinks + cost.Equipment
	assert.InDelta(t, sum*1.1, cost.Total, 1.0)
}

func TestCalculateCostExternalHeatSinks(t *testing.T) {
	cfg := testConfig(t).WithHeatSinks(mech.HeatSinkSingle, 14)
	cost := CalculateCost(cfg, nil)
	// Rating 250 houses ten sinks; four are external at 2000 apiece.
	assert.Equal(t, 8000.0, cost.HeatSinks)

	cfg = cfg.WithHeatSinks(mech.HeatSinkDouble, 14)
	cost = CalculateCost(cfg, nil)
	assert.Equal(t, 24000.0, cost.HeatSinks)
}

func TestCalculateBattleValue(t *testing.T) {
	cfg := testConfig(t)
	r := CalculateBattleValue(cfg, testResolved())

	assert.Positive(t, r.FinalBV)
	assert.Positive(t, r.DefensiveBR)
	assert.Positive(t, r.OffensiveBR)
	// One unprotected explosive ammo ton in the right torso.
	assert.Equal(t, 15.0, r.ExplosivePen)
	assert.Equal(t, 46.0+70.0, r.WeaponBV)
	assert.Equal(t, 9.0, r.AmmoBV)
}

func TestBattleValueCASEProtection(t *testing.T) {
	cfg := testConfig(t)
	without := CalculateBattleValue(cfg, testResolved())

	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "case", Location: mech.RightTorso})
	with := CalculateBattleValue(cfg, append(testResolved(), caseItem))

	assert.Equal(t, 0.0, with.ExplosivePen)
	assert.Greater(t, with.FinalBV, without.FinalBV)
}

func TestBattleValueDefensiveEquipment(t *testing.T) {
	cfg := testConfig(t)
	plain := CalculateBattleValue(cfg, testResolved())

	cfg = cfg.WithEquipment(mech.EquipmentRef{Ref: "guardian-ecm-suite", Location: mech.LeftTorso})
	shielded := CalculateBattleValue(cfg, append(testResolved(), ecmSuite))

	assert.Greater(t, shielded.DefensiveBR, plain.DefensiveBR)
}

func TestBattleValueArtemisFireControl(t *testing.T) {
	base := testConfig(t).
		WithEquipment(mech.EquipmentRef{Ref: "lrm-10", Location: mech.LeftTorso})

	plain := CalculateBattleValue(base, append(testResolved(), lrmTen))
	assert.InDelta(t, 46+70+90, plain.WeaponBV, 0.01)

	// Artemis IV in the launcher's location lifts its BV by 20 percent.
	four := base.WithEquipment(mech.EquipmentRef{Ref: "artemis-iv-fcs", Location: mech.LeftTorso})
	withFour := CalculateBattleValue(four, append(testResolved(), lrmTen, artemisFour))
	assert.InDelta(t, 46+70+90*1.2, withFour.WeaponBV, 0.01)

	// Artemis V lifts it by 30 percent instead.
	five := base.WithEquipment(mech.EquipmentRef{Ref: "clan-artemis-v-fcs", Location: mech.LeftTorso})
	withFive := CalculateBattleValue(five, append(testResolved(), lrmTen, artemisFive))
	assert.InDelta(t, 46+70+90*1.3, withFive.WeaponBV, 0.01)

	// Fire control in another location leaves the launcher alone.
	elsewhere := base.WithEquipment(mech.EquipmentRef{Ref: "artemis-iv-fcs", Location: mech.RightArm})
	unpaired := CalculateBattleValue(elsewhere, append(testResolved(), lrmTen, artemisFour))
	assert.InDelta(t, 46+70+90, unpaired.WeaponBV, 0.01)
}

func TestBattleValueRearMount(t *testing.T) {
	cfg := testConfig(t)
	forward := CalculateBattleValue(cfg, testResolved())

	rear := cfg.WithEquipment(mech.EquipmentRef{Ref: "medium-laser (R)", Location: mech.CenterTorso})
	rearResolved := append(testResolved(), mediumLaser)
	mixed := CalculateBattleValue(rear, rearResolved)

	// The rear laser counts at half BV.
	assert.InDelta(t, forward.WeaponBV+23, mixed.WeaponBV, 0.01)
}
