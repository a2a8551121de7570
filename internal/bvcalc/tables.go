package bvcalc

import (
	"math"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// armorTypeModifier scales the defensive armor term. Commercial armor is
// the only type penalized under the published formula.
var armorTypeModifier = map[mech.ArmorType]float64{
	mech.ArmorStandard:          1.0,
	mech.ArmorFerroFibrous:      1.0,
	mech.ArmorFerroFibrousClan:  1.0,
	mech.ArmorLightFerroFibrous: 1.0,
	mech.ArmorHeavyFerroFibrous: 1.0,
	mech.ArmorStealth:           1.0,
	mech.ArmorReactive:          1.0,
	mech.ArmorReflective:        1.0,
	mech.ArmorHardened:          1.0,
	mech.ArmorPrimitive:         1.0,
	mech.ArmorIndustrial:        1.0,
	mech.ArmorCommercial:        0.5,
}

// structureTypeModifier scales the defensive structure term.
var structureTypeModifier = map[mech.StructureType]float64{
	mech.StructureStandard:      1.0,
	mech.StructureEndoSteel:     1.0,
	mech.StructureEndoSteelClan: 1.0,
	mech.StructureEndoComposite: 1.0,
	mech.StructureComposite:     0.5,
	mech.StructureIndustrial:    0.5,
	mech.StructureReinforced:    2.0,
}

// engineTypeModifier scales the structure term by engine fragility.
func engineTypeModifier(t mech.EngineType, clan bool) float64 {
	switch t {
	case mech.EngineXL, mech.EngineXXL:
		if clan {
			return 0.75
		}
		return 0.5
	case mech.EngineClanXL:
		return 0.75
	case mech.EngineLight:
		return 0.75
	default:
		return 1.0
	}
}

// gyroModifier returns the defensive gyro term multiplier on tonnage.
func gyroModifier(t mech.GyroType) float64 {
	if t == mech.GyroHeavyDuty {
		return 1.0
	}
	return 0.5
}

// TMM returns the target movement modifier for the given MP.
func TMM(mp int) int {
	switch {
	case mp <= 2:
		return 0
	case mp <= 4:
		return 1
	case mp <= 6:
		return 2
	case mp <= 9:
		return 3
	case mp <= 12:
		return 4
	case mp <= 17:
		return 5
	case mp <= 24:
		return 6
	default:
		return 7
	}
}

// DefensiveFactor returns 1 + TMM/10.
func DefensiveFactor(tmm int) float64 {
	return 1.0 + float64(tmm)/10.0
}

// SpeedFactor returns the offensive speed factor: the greater of runMP
// and runMP+ceil(jumpMP/2) feeds ((speed-5)/10 + 1)^1.2, rounded to two
// decimals.
func SpeedFactor(runMP, jumpMP int) float64 {
	speedMP := runMP
	if jumpMP > 0 {
		if candidate := runMP + int(math.Ceil(float64(jumpMP)/2.0)); candidate > speedMP {
			speedMP = candidate
		}
	}
	base := 1.0 + float64(speedMP-5)/10.0
	if base < 0.1 {
		base = 0.1
	}
	sf := math.Pow(base, 1.2)
	return math.Round(sf*100) / 100
}

// MovementHeat returns the movement heat used for heat efficiency:
// 2 for running, jump heat at minimum 3 when jump-capable, +10 for
// stealth armor.
func MovementHeat(runMP, jumpMP int, hasStealth bool) int {
	heat := 2
	if jumpMP > 0 {
		jumpHeat := jumpMP
		if jumpHeat < 3 {
			jumpHeat = 3
		}
		if jumpHeat > heat {
			heat = jumpHeat
		}
	}
	if hasStealth {
		heat += 10
	}
	return heat
}
