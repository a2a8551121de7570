// Package bvcalc is the single source of truth for the published Battle
// Value formula. Callers assemble a Params record from a configuration
// and its resolved equipment; nothing here re-derives construction data.
package bvcalc

import (
	"math"
	"sort"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// Weapon is one mounted weapon with its formula inputs.
type Weapon struct {
	Name     string
	Location mech.Location
	Rear     bool
	BV       int
	Heat     int

	// DirectFire weapons benefit from a targeting computer.
	DirectFire bool
	// ArtemisIV / ArtemisV mark missile launchers paired with fire
	// control in their location.
	ArtemisIV bool
	ArtemisV  bool
	// OneShot launchers fire once and generate a quarter of their heat
	// for efficiency purposes.
	OneShot bool
}

// Ammo is one ton of mounted ammunition.
type Ammo struct {
	Name      string
	Location  mech.Location
	BV        int
	Explosive bool
	AMS       bool
}

// Params is the assembled input record for one BV calculation.
type Params struct {
	Tonnage int
	Clan    bool

	ArmorPoints   int
	ArmorType     mech.ArmorType
	StructureType mech.StructureType
	EngineType    mech.EngineType
	GyroType      mech.GyroType
	CockpitType   mech.CockpitType

	HeatSinkCount int
	HeatSinkType  mech.HeatSinkType

	WalkMP int
	RunMP  int
	JumpMP int

	HasTargetingComputer bool
	HasMASC              bool
	HasTSM               bool

	Weapons []Weapon
	Ammo    []Ammo

	// DefensiveEquipBV is the summed BV of ECM, probes, AMS and similar
	// defensive gear.
	DefensiveEquipBV float64
	// AMSWeaponBV caps AMS ammo BV.
	AMSWeaponBV int

	// CASELocations marks locations protected by CASE.
	CASELocations map[mech.Location]bool
	// GaussCrits counts gauss weapon critical slots per location for the
	// per-crit explosive penalty.
	GaussCrits map[mech.Location]int
}

// Result is the calculated BV breakdown.
type Result struct {
	FinalBV      int
	DefensiveBR  float64
	OffensiveBR  float64
	ArmorBV      float64
	StructureBV  float64
	GyroBV       float64
	DefEquipBV   float64
	ExplosivePen float64
	DefFactor    float64
	WeaponBV     float64
	AmmoBV       float64
	SpeedFactor  float64
	HeatEff      int
}

// Calculate computes the Battle Value for the assembled parameters.
func Calculate(p Params) Result {
	var r Result

	// ===== Defensive battle rating =====

	r.ArmorBV = float64(p.ArmorPoints) * 2.5 * armorMod(p.ArmorType)
	r.StructureBV = float64(mech.TotalStructurePoints(p.Tonnage)) * 1.5 *
		structureMod(p.StructureType) * engineTypeModifier(p.EngineType, p.Clan)
	r.GyroBV = float64(p.Tonnage) * gyroModifier(p.GyroType)

	// Defensive equipment, with AMS ammo capped at AMS weapon BV.
	amsAmmoBV := 0
	for _, a := range p.Ammo {
		if a.AMS {
			amsAmmoBV += ammoValue(a)
		}
	}
	if amsAmmoBV > p.AMSWeaponBV {
		amsAmmoBV = p.AMSWeaponBV
	}
	r.DefEquipBV = p.DefensiveEquipBV + float64(amsAmmoBV)

	// Explosive penalties: 15 per unprotected explosive ammo ton, 1 per
	// unprotected gauss crit.
	for _, a := range p.Ammo {
		if a.Explosive && !a.AMS && penaltyApplies(a.Location, p) {
			r.ExplosivePen += 15
		}
	}
	for loc, crits := range p.GaussCrits {
		if penaltyApplies(loc, p) {
			r.ExplosivePen += float64(crits)
		}
	}

	defSubtotal := r.ArmorBV + r.StructureBV + r.GyroBV + r.DefEquipBV - r.ExplosivePen
	if defSubtotal < 1 {
		defSubtotal = 1
	}

	runMP := p.RunMP
	if p.HasMASC {
		if masc := int(math.Ceil(float64(p.WalkMP) * 2.0)); masc > runMP {
			runMP = masc
		}
	}
	if p.HasTSM {
		tsm := (p.WalkMP + 1) + int(math.Ceil(float64(p.WalkMP+1)*0.5))
		if tsm > runMP {
			runMP = tsm
		}
	}

	bestTMM := TMM(runMP)
	if jumpTMM := TMM(p.JumpMP); jumpTMM > bestTMM {
		bestTMM = jumpTMM
	}
	r.DefFactor = DefensiveFactor(bestTMM)
	r.DefensiveBR = defSubtotal * r.DefFactor

	// ===== Offensive battle rating =====

	type modWeapon struct {
		modBV float64
		heat  int
	}

	var front, rear []modWeapon
	frontBV, rearBV := 0.0, 0.0
	for _, w := range p.Weapons {
		bv := float64(w.BV)
		if bv == 0 {
			continue
		}
		if w.ArtemisIV {
			bv *= 1.2
		}
		if w.ArtemisV {
			bv *= 1.3
		}
		if p.HasTargetingComputer && w.DirectFire {
			bv *= 1.25
		}

		heat := adjustedHeat(w)
		mw := modWeapon{modBV: bv, heat: heat}
		if w.Rear {
			rearBV += bv
			rear = append(rear, mw)
		} else {
			frontBV += bv
			front = append(front, mw)
		}
	}

	// The heavier arc counts as front; the lighter arc is halved.
	if rearBV > frontBV {
		front, rear = rear, front
	}
	for i := range rear {
		rear[i].modBV *= 0.5
	}
	all := append(front, rear...)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].modBV != all[j].modBV {
			return all[i].modBV > all[j].modBV
		}
		return all[i].heat < all[j].heat
	})

	capacity := p.HeatSinkCount * p.HeatSinkType.Capacity()
	movHeat := MovementHeat(p.RunMP, p.JumpMP, p.ArmorType == mech.ArmorStealth)
	r.HeatEff = 6 + capacity - movHeat

	// Weapons past the heat efficiency line count at half BV. The weapon
	// that crosses the line still counts in full.
	heatUsed := 0
	exceeded := false
	for _, w := range all {
		if !exceeded {
			heatUsed += w.heat
			if heatUsed > r.HeatEff {
				exceeded = true
			}
			r.WeaponBV += w.modBV
		} else {
			r.WeaponBV += w.modBV * 0.5
		}
	}

	// Ammo BV capped per weapon family at that family's weapon BV.
	weaponBVByKey := map[string]float64{}
	for _, w := range p.Weapons {
		weaponBVByKey[ammoKey(w.Name)] += float64(w.BV)
	}
	ammoBVByKey := map[string]float64{}
	for _, a := range p.Ammo {
		if a.AMS {
			continue
		}
		ammoBVByKey[ammoKey(a.Name)] += float64(ammoValue(a))
	}
	for key, abv := range ammoBVByKey {
		if wbv := weaponBVByKey[key]; wbv > 0 && abv > wbv {
			abv = wbv
		}
		r.AmmoBV += abv
	}

	tonnageBV := float64(p.Tonnage)
	if p.HasTSM {
		tonnageBV *= 1.5
	}

	r.SpeedFactor = SpeedFactor(runMP, p.JumpMP)
	r.OffensiveBR = (r.WeaponBV + r.AmmoBV + tonnageBV) * r.SpeedFactor

	// ===== Final =====

	baseBV := r.DefensiveBR + r.OffensiveBR
	if p.CockpitType == mech.CockpitSmall {
		baseBV *= 0.95
	}
	r.FinalBV = int(math.Round(baseBV))
	return r
}

func armorMod(t mech.ArmorType) float64 {
	if m, ok := armorTypeModifier[t]; ok {
		return m
	}
	return 1.0
}

func structureMod(t mech.StructureType) float64 {
	if m, ok := structureTypeModifier[t]; ok {
		return m
	}
	return 1.0
}

// ammoValue prefers the catalog's battle value, falling back to the
// published per-family table.
func ammoValue(a Ammo) int {
	if a.BV > 0 {
		return a.BV
	}
	return fallbackAmmoBV(a.Name)
}

// adjustedHeat applies the per-family heat adjustments used when ordering
// weapons against heat efficiency.
func adjustedHeat(w Weapon) int {
	heat := w.Heat
	name := strings.ToLower(w.Name)
	switch {
	case strings.Contains(name, "ultra"):
		heat *= 2
	case strings.Contains(name, "rotary"):
		heat *= 6
	case strings.Contains(name, "streak"):
		heat = int(math.Ceil(float64(heat) * 0.5))
	}
	if w.OneShot {
		heat = int(math.Ceil(float64(heat) * 0.25))
	}
	return heat
}

// penaltyApplies reports whether explosive contents in a location draw
// the BV penalty. CT, head and legs always do; Clan units have built-in
// CASE elsewhere; XL and XXL engines void side-torso and arm protection
// unless CASE is mounted there.
func penaltyApplies(loc mech.Location, p Params) bool {
	critical := loc == mech.CenterTorso || loc == mech.Head ||
		loc == mech.LeftLeg || loc == mech.RightLeg
	if critical {
		return true
	}
	if p.Clan {
		return false
	}
	return !p.CASELocations[loc]
}
