package mech

import "math"

// fusionEngineWeight is the published standard fusion engine weight in
// tons by rating, ratings 10 through 400 in steps of 5.
var fusionEngineWeight = map[int]float64{
	10: 0.5, 15: 0.5, 20: 0.5, 25: 0.5, 30: 1.0, 35: 1.0, 40: 1.0, 45: 1.0,
	50: 1.5, 55: 1.5, 60: 1.5, 65: 2.0, 70: 2.0, 75: 2.0, 80: 2.5, 85: 2.5,
	90: 3.0, 95: 3.0, 100: 3.0, 105: 3.5, 110: 3.5, 115: 4.0, 120: 4.0,
	125: 4.0, 130: 4.5, 135: 4.5, 140: 5.0, 145: 5.0, 150: 5.5, 155: 5.5,
	160: 6.0, 165: 6.0, 170: 6.0, 175: 7.0, 180: 7.0, 185: 7.5, 190: 7.5,
	195: 8.0, 200: 8.5, 205: 8.5, 210: 9.0, 215: 9.5, 220: 10.0, 225: 10.0,
	230: 10.5, 235: 11.0, 240: 11.5, 245: 12.0, 250: 12.5, 255: 13.0,
	260: 13.5, 265: 14.0, 270: 14.5, 275: 15.5, 280: 16.0, 285: 16.5,
	290: 17.5, 295: 18.0, 300: 19.0, 305: 19.5, 310: 20.5, 315: 21.5,
	320: 22.5, 325: 23.5, 330: 24.5, 335: 25.5, 340: 27.0, 345: 28.5,
	350: 29.5, 355: 31.5, 360: 33.0, 365: 34.5, 370: 36.5, 375: 38.5,
	380: 41.0, 385: 43.5, 390: 46.0, 395: 49.0, 400: 52.5,
}

// roundUpHalfTon rounds a weight up to the next half ton.
func roundUpHalfTon(w float64) float64 {
	return math.Ceil(w*2) / 2
}

// EngineWeight returns the engine weight for the given plant. Ratings off
// the table yield zero; the validator reports those instead of guessing.
func EngineWeight(e Engine) float64 {
	base, ok := fusionEngineWeight[e.Rating]
	if !ok {
		return 0
	}
	mult := 1.0
	switch e.Type {
	case EngineXL, EngineClanXL:
		mult = 0.5
	case EngineXXL:
		mult = 0.33
	case EngineLight:
		mult = 0.75
	case EngineCompact:
		mult = 1.5
	case EngineICE:
		mult = 2.0
	case EngineFuelCell:
		mult = 1.2
	case EngineFission:
		mult = 1.75
	}
	return roundUpHalfTon(base * mult)
}

// structureWeightFraction is the fraction of unit tonnage the internal
// structure weighs, by material.
var structureWeightFraction = map[StructureType]float64{
	StructureStandard:      0.10,
	StructureEndoSteel:     0.05,
	StructureEndoSteelClan: 0.05,
	StructureEndoComposite: 0.075,
	StructureComposite:     0.05,
	StructureReinforced:    0.20,
	StructureIndustrial:    0.20,
}

// StructureWeight returns the internal structure weight in tons.
func StructureWeight(tonnage int, t StructureType) float64 {
	frac, ok := structureWeightFraction[t]
	if !ok {
		frac = 0.10
	}
	return roundUpHalfTon(float64(tonnage) * frac)
}

// GyroWeight returns the gyro weight for the given engine rating.
func GyroWeight(engineRating int, t GyroType) float64 {
	base := math.Ceil(float64(engineRating) / 100)
	mult := 1.0
	switch t {
	case GyroXL:
		mult = 0.5
	case GyroCompact:
		mult = 1.5
	case GyroHeavyDuty:
		mult = 2.0
	}
	return roundUpHalfTon(base * mult)
}

// CockpitWeight returns the cockpit weight in tons.
func CockpitWeight(t CockpitType) float64 {
	switch t {
	case CockpitSmall:
		return 2
	case CockpitCommandConsole:
		return 6
	case CockpitTorsoMounted:
		return 4
	case CockpitPrimitive:
		return 5
	}
	return 3
}

// armorPointsPerTon is the multiplier on the base 16 points per ton.
var armorPointsPerTon = map[ArmorType]float64{
	ArmorStandard:          1.0,
	ArmorFerroFibrous:      1.12,
	ArmorFerroFibrousClan:  1.2,
	ArmorLightFerroFibrous: 1.06,
	ArmorHeavyFerroFibrous: 1.24,
	ArmorStealth:           1.0,
	ArmorReactive:          1.0,
	ArmorReflective:        1.0,
	ArmorHardened:          0.5,
	ArmorPrimitive:         0.67,
	ArmorIndustrial:        0.67,
	ArmorCommercial:        1.5,
}

// ArmorWeight returns the weight of the allocated armor points in tons.
func ArmorWeight(points int, t ArmorType) float64 {
	mult, ok := armorPointsPerTon[t]
	if !ok {
		mult = 1.0
	}
	return roundUpHalfTon(float64(points) / (16 * mult))
}

// HeatSinkWeight returns the weight of heat sinks beyond the ten free
// ones. Singles and doubles both weigh one ton apiece.
func HeatSinkWeight(count int) float64 {
	if count <= 10 {
		return 0
	}
	return float64(count - 10)
}

// IntegralHeatSinks returns how many heat sinks the engine houses at no
// cost: one per 25 points of rating, capped at the mounted count.
func IntegralHeatSinks(engineRating, count int) int {
	integral := engineRating / 25
	if integral > count {
		return count
	}
	return integral
}
