package mech

import "strings"

// EngineType classifies a mech's power plant.
type EngineType int

const (
	EngineFusion EngineType = iota
	EngineXL
	EngineClanXL
	EngineLight
	EngineCompact
	EngineXXL
	EngineICE
	EngineFuelCell
	EngineFission
)

func (e EngineType) String() string {
	switch e {
	case EngineXL:
		return "XL"
	case EngineClanXL:
		return "Clan XL"
	case EngineLight:
		return "Light"
	case EngineCompact:
		return "Compact"
	case EngineXXL:
		return "XXL"
	case EngineICE:
		return "ICE"
	case EngineFuelCell:
		return "Fuel Cell"
	case EngineFission:
		return "Fission"
	}
	return "Fusion"
}

// ParseEngineType accepts the engine strings found in unit data, e.g.
// "XL Engine(Clan)", "Fusion Engine", "ICE". Unknowns default to Fusion.
func ParseEngineType(s string) EngineType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "XXL"):
		return EngineXXL
	case strings.Contains(upper, "XL") && strings.Contains(upper, "CLAN"):
		return EngineClanXL
	case strings.Contains(upper, "XL"):
		return EngineXL
	case strings.Contains(upper, "LIGHT"):
		return EngineLight
	case strings.Contains(upper, "COMPACT"):
		return EngineCompact
	case strings.Contains(upper, "ICE") || strings.Contains(upper, "COMBUSTION"):
		return EngineICE
	case strings.Contains(upper, "FUEL") || strings.Contains(upper, "CELL"):
		return EngineFuelCell
	case strings.Contains(upper, "FISSION"):
		return EngineFission
	}
	return EngineFusion
}

// GyroType classifies the gyroscope.
type GyroType int

const (
	GyroStandard GyroType = iota
	GyroXL
	GyroCompact
	GyroHeavyDuty
)

func (g GyroType) String() string {
	switch g {
	case GyroXL:
		return "XL"
	case GyroCompact:
		return "Compact"
	case GyroHeavyDuty:
		return "Heavy-Duty"
	}
	return "Standard"
}

// ParseGyroType maps gyro strings, defaulting to Standard.
func ParseGyroType(s string) GyroType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "XL") || strings.Contains(upper, "EXTRA"):
		return GyroXL
	case strings.Contains(upper, "COMPACT"):
		return GyroCompact
	case strings.Contains(upper, "HEAVY"):
		return GyroHeavyDuty
	}
	return GyroStandard
}

// CockpitType classifies the cockpit.
type CockpitType int

const (
	CockpitStandard CockpitType = iota
	CockpitSmall
	CockpitCommandConsole
	CockpitTorsoMounted
	CockpitIndustrial
	CockpitPrimitive
)

func (c CockpitType) String() string {
	switch c {
	case CockpitSmall:
		return "Small"
	case CockpitCommandConsole:
		return "Command Console"
	case CockpitTorsoMounted:
		return "Torso-Mounted"
	case CockpitIndustrial:
		return "Industrial"
	case CockpitPrimitive:
		return "Primitive"
	}
	return "Standard"
}

// ParseCockpitType maps cockpit strings, defaulting to Standard.
func ParseCockpitType(s string) CockpitType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "SMALL"):
		return CockpitSmall
	case strings.Contains(upper, "COMMAND"):
		return CockpitCommandConsole
	case strings.Contains(upper, "TORSO"):
		return CockpitTorsoMounted
	case strings.Contains(upper, "INDUSTRIAL"):
		return CockpitIndustrial
	case strings.Contains(upper, "PRIMITIVE"):
		return CockpitPrimitive
	}
	return CockpitStandard
}

// StructureType classifies the internal structure material.
type StructureType int

const (
	StructureStandard StructureType = iota
	StructureEndoSteel
	StructureEndoSteelClan
	StructureEndoComposite
	StructureComposite
	StructureReinforced
	StructureIndustrial
)

func (s StructureType) String() string {
	switch s {
	case StructureEndoSteel:
		return "Endo Steel"
	case StructureEndoSteelClan:
		return "Clan Endo Steel"
	case StructureEndoComposite:
		return "Endo-Composite"
	case StructureComposite:
		return "Composite"
	case StructureReinforced:
		return "Reinforced"
	case StructureIndustrial:
		return "Industrial"
	}
	return "Standard"
}

// ParseStructureType maps structure strings, defaulting to Standard.
func ParseStructureType(s string) StructureType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "ENDO") && strings.Contains(upper, "COMPOSITE"):
		return StructureEndoComposite
	case strings.Contains(upper, "ENDO") && strings.Contains(upper, "CLAN"):
		return StructureEndoSteelClan
	case strings.Contains(upper, "ENDO"):
		return StructureEndoSteel
	case strings.Contains(upper, "REINFORCED"):
		return StructureReinforced
	case strings.Contains(upper, "COMPOSITE"):
		return StructureComposite
	case strings.Contains(upper, "INDUSTRIAL"):
		return StructureIndustrial
	}
	return StructureStandard
}

// ArmorType classifies the armor material.
type ArmorType int

const (
	ArmorStandard ArmorType = iota
	ArmorFerroFibrous
	ArmorFerroFibrousClan
	ArmorLightFerroFibrous
	ArmorHeavyFerroFibrous
	ArmorStealth
	ArmorReactive
	ArmorReflective
	ArmorHardened
	ArmorPrimitive
	ArmorIndustrial
	ArmorCommercial
)

func (a ArmorType) String() string {
	switch a {
	case ArmorFerroFibrous:
		return "Ferro-Fibrous"
	case ArmorFerroFibrousClan:
		return "Clan Ferro-Fibrous"
	case ArmorLightFerroFibrous:
		return "Light Ferro-Fibrous"
	case ArmorHeavyFerroFibrous:
		return "Heavy Ferro-Fibrous"
	case ArmorStealth:
		return "Stealth"
	case ArmorReactive:
		return "Reactive"
	case ArmorReflective:
		return "Reflective"
	case ArmorHardened:
		return "Hardened"
	case ArmorPrimitive:
		return "Primitive"
	case ArmorIndustrial:
		return "Industrial"
	case ArmorCommercial:
		return "Commercial"
	}
	return "Standard"
}

// ParseArmorType maps armor strings, defaulting to Standard.
func ParseArmorType(s string) ArmorType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "STEALTH"):
		return ArmorStealth
	case strings.Contains(upper, "REACTIVE"):
		return ArmorReactive
	case strings.Contains(upper, "REFLECT"):
		return ArmorReflective
	case strings.Contains(upper, "HARDENED"):
		return ArmorHardened
	case strings.Contains(upper, "HEAVY") && strings.Contains(upper, "FERRO"):
		return ArmorHeavyFerroFibrous
	case strings.Contains(upper, "LIGHT") && strings.Contains(upper, "FERRO"):
		return ArmorLightFerroFibrous
	case strings.Contains(upper, "FERRO") && strings.Contains(upper, "CLAN"):
		return ArmorFerroFibrousClan
	case strings.Contains(upper, "FERRO"):
		return ArmorFerroFibrous
	case strings.Contains(upper, "PRIMITIVE"):
		return ArmorPrimitive
	case strings.Contains(upper, "COMMERCIAL"):
		return ArmorCommercial
	case strings.Contains(upper, "INDUSTRIAL"):
		return ArmorIndustrial
	}
	return ArmorStandard
}

// HeatSinkType classifies heat sinks.
type HeatSinkType int

const (
	HeatSinkSingle HeatSinkType = iota
	HeatSinkDouble
	HeatSinkDoubleClan
)

func (h HeatSinkType) String() string {
	switch h {
	case HeatSinkDouble:
		return "Double"
	case HeatSinkDoubleClan:
		return "Clan Double"
	}
	return "Single"
}

// Capacity returns heat dissipated per sink.
func (h HeatSinkType) Capacity() int {
	if h == HeatSinkDouble || h == HeatSinkDoubleClan {
		return 2
	}
	return 1
}

// ParseHeatSinkType maps heat sink strings, defaulting to Single.
func ParseHeatSinkType(s string) HeatSinkType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "DOUBLE") && strings.Contains(upper, "CLAN"):
		return HeatSinkDoubleClan
	case strings.Contains(upper, "DOUBLE"):
		return HeatSinkDouble
	}
	return HeatSinkSingle
}
