package bvcalc

import (
	"math"
	"testing"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

func TestSpeedFactor(t *testing.T) {
	tests := []struct {
		runMP, jumpMP int
		want          float64
	}{
		{6, 0, 1.12},
		{5, 0, 1.0},
		{8, 0, 1.37},
		{6, 6, 1.50},
		{4, 0, 0.88},
	}
	for _, tt := range tests {
		got := SpeedFactor(tt.runMP, tt.jumpMP)
		if math.Abs(got-tt.want) > 0.02 {
			t.Errorf("SpeedFactor(%d,%d) = %.4f, want ~%.2f", tt.runMP, tt.jumpMP, got, tt.want)
		}
	}
}

func TestTMM(t *testing.T) {
	tests := []struct {
		mp   int
		want int
	}{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 2}, {7, 3}, {9, 3}, {10, 4}, {18, 6}, {30, 7},
	}
	for _, tt := range tests {
		if got := TMM(tt.mp); got != tt.want {
			t.Errorf("TMM(%d) = %d, want %d", tt.mp, got, tt.want)
		}
	}
}

func TestDefensiveFactor(t *testing.T) {
	tests := []struct {
		tmm  int
		want float64
	}{
		{0, 1.0}, {1, 1.1}, {2, 1.2}, {4, 1.4},
	}
	for _, tt := range tests {
		if got := DefensiveFactor(tt.tmm); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DefensiveFactor(%d) = %f, want %f", tt.tmm, got, tt.want)
		}
	}
}

func TestMovementHeat(t *testing.T) {
	tests := []struct {
		runMP, jumpMP int
		stealth       bool
		want          int
	}{
		{5, 0, false, 2},
		{5, 1, false, 3},
		{5, 3, false, 3},
		{5, 5, false, 5},
		{5, 0, true, 12},
	}
	for _, tt := range tests {
		got := MovementHeat(tt.runMP, tt.jumpMP, tt.stealth)
		if got != tt.want {
			t.Errorf("MovementHeat(%d,%d,%v) = %d, want %d", tt.runMP, tt.jumpMP, tt.stealth, got, tt.want)
		}
	}
}

func TestFallbackAmmoBV(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"IS Ammo LRM-20", 23},
		{"IS Ammo LRM-5", 6},
		{"Clan Ammo SRM-6", 7},
		{"IS Ammo AC/20", 22},
		{"IS Ammo AC/2", 5},
		{"IS Gauss Ammo", 40},
		{"Clan Ultra AC/5 Ammo", 14},
		{"IS LB 10-X AC Ammo", 19},
		{"Anti-Missile System Ammo", 11},
	}
	for _, tt := range tests {
		if got := fallbackAmmoBV(tt.name); got != tt.want {
			t.Errorf("fallbackAmmoBV(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestAmmoKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"IS Ammo AC/5", "ac/5"},
		{"Clan Ultra AC/5 Ammo", "ultra ac/5"},
		{"LRM 20 Ammo", "lrm 20"},
		{"Gauss Rifle Ammo", "gauss rifle"},
		{"Autocannon/10 Ammo", "ac/10"},
	}
	for _, tt := range tests {
		if got := ammoKey(tt.in); got != tt.want {
			t.Errorf("ammoKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func baseParams() Params {
	return Params{
		Tonnage:       50,
		ArmorPoints:   160,
		HeatSinkCount: 10,
		HeatSinkType:  mech.HeatSinkSingle,
		WalkMP:        5,
		RunMP:         7,
		Weapons: []Weapon{
			{Name: "Medium Laser", Location: mech.RightArm, BV: 46, Heat: 3, DirectFire: true},
			{Name: "Medium Laser", Location: mech.LeftArm, BV: 46, Heat: 3, DirectFire: true},
			{Name: "AC/5", Location: mech.RightTorso, BV: 70, Heat: 1, DirectFire: true},
		},
		Ammo: []Ammo{
			{Name: "AC/5 Ammo", Location: mech.RightTorso, BV: 9, Explosive: true},
		},
		CASELocations: map[mech.Location]bool{},
		GaussCrits:    map[mech.Location]int{},
	}
}

func TestCalculateBreakdown(t *testing.T) {
	r := Calculate(baseParams())

	if r.ArmorBV != 400 {
		t.Errorf("ArmorBV = %f, want 400", r.ArmorBV)
	}
	// 50 tons: 3 + 16 + 2x12 + 2x8 + 2x12 = 83 structure points.
	if want := 83 * 1.5; r.StructureBV != want {
		t.Errorf("StructureBV = %f, want %f", r.StructureBV, want)
	}
	if r.GyroBV != 25 {
		t.Errorf("GyroBV = %f, want 25", r.GyroBV)
	}
	if r.ExplosivePen != 15 {
		t.Errorf("ExplosivePen = %f, want 15", r.ExplosivePen)
	}
	// Run 7 gives TMM 3 and defensive factor 1.3.
	if r.DefFactor != 1.3 {
		t.Errorf("DefFactor = %f, want 1.3", r.DefFactor)
	}
	if r.FinalBV <= 0 {
		t.Errorf("FinalBV = %d, want positive", r.FinalBV)
	}
}

func TestCalculateCASERemovesPenalty(t *testing.T) {
	without := Calculate(baseParams())

	p := baseParams()
	p.CASELocations[mech.RightTorso] = true
	with := Calculate(p)

	if with.ExplosivePen != 0 {
		t.Errorf("ExplosivePen with CASE = %f, want 0", with.ExplosivePen)
	}
	if with.FinalBV <= without.FinalBV {
		t.Errorf("FinalBV with CASE = %d, want > %d", with.FinalBV, without.FinalBV)
	}
}

func TestCalculateTargetingComputer(t *testing.T) {
	plain := Calculate(baseParams())

	p := baseParams()
	p.HasTargetingComputer = true
	boosted := Calculate(p)

	if boosted.WeaponBV <= plain.WeaponBV {
		t.Errorf("WeaponBV with TC = %f, want > %f", boosted.WeaponBV, plain.WeaponBV)
	}
}

func TestCalculateRearWeaponsHalved(t *testing.T) {
	front := Calculate(baseParams())

	p := baseParams()
	p.Weapons[1].Rear = true
	rear := Calculate(p)

	if rear.WeaponBV >= front.WeaponBV {
		t.Errorf("WeaponBV with rear mount = %f, want < %f", rear.WeaponBV, front.WeaponBV)
	}
}

func TestCalculateSmallCockpit(t *testing.T) {
	std := Calculate(baseParams())

	p := baseParams()
	p.CockpitType = mech.CockpitSmall
	small := Calculate(p)

	want := int(math.Round(float64(std.DefensiveBR+std.OffensiveBR) * 0.95))
	if small.FinalBV != want {
		t.Errorf("FinalBV with small cockpit = %d, want %d", small.FinalBV, want)
	}
}

func TestCalculateAmmoCappedByWeaponBV(t *testing.T) {
	p := baseParams()
	// Nine tons of AC/5 ammo far exceeds the single AC/5's 70 BV.
	for i := 0; i < 9; i++ {
		p.Ammo = append(p.Ammo, Ammo{Name: "AC/5 Ammo", Location: mech.LeftTorso, BV: 9, Explosive: true})
	}
	r := Calculate(p)
	if r.AmmoBV > 70 {
		t.Errorf("AmmoBV = %f, want <= 70 (capped at weapon BV)", r.AmmoBV)
	}
}
