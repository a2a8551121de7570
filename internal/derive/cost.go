package derive

import (
	"math"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// finalCostMultiplier is the global construction multiplier applied to
// the summed component costs.
const finalCostMultiplier = 1.1

// structureCostPerTon is C-bills per ton of structure weight.
var structureCostPerTon = map[mech.StructureType]float64{
	mech.StructureStandard:      400,
	mech.StructureEndoSteel:     1600,
	mech.StructureEndoSteelClan: 1600,
	mech.StructureEndoComposite: 3200,
	mech.StructureComposite:     1600,
	mech.StructureReinforced:    6400,
	mech.StructureIndustrial:    300,
}

// engineCostFactor feeds cost = factor x rating x tonnage / 75.
var engineCostFactor = map[mech.EngineType]float64{
	mech.EngineFusion:   5000,
	mech.EngineXL:       20000,
	mech.EngineClanXL:   20000,
	mech.EngineLight:    15000,
	mech.EngineCompact:  10000,
	mech.EngineXXL:      100000,
	mech.EngineICE:      1250,
	mech.EngineFuelCell: 3500,
	mech.EngineFission:  7500,
}

// gyroCostPerTon is C-bills per ton of gyro weight.
var gyroCostPerTon = map[mech.GyroType]float64{
	mech.GyroStandard:  300000,
	mech.GyroXL:        750000,
	mech.GyroCompact:   400000,
	mech.GyroHeavyDuty: 500000,
}

var cockpitCost = map[mech.CockpitType]float64{
	mech.CockpitStandard:       200000,
	mech.CockpitSmall:          175000,
	mech.CockpitCommandConsole: 500000,
	mech.CockpitTorsoMounted:   750000,
	mech.CockpitIndustrial:     100000,
	mech.CockpitPrimitive:      100000,
}

// armorCostPerTon is C-bills per ton of armor.
var armorCostPerTon = map[mech.ArmorType]float64{
	mech.ArmorStandard:          10000,
	mech.ArmorFerroFibrous:      20000,
	mech.ArmorFerroFibrousClan:  20000,
	mech.ArmorLightFerroFibrous: 15000,
	mech.ArmorHeavyFerroFibrous: 25000,
	mech.ArmorStealth:           50000,
	mech.ArmorReactive:          30000,
	mech.ArmorReflective:        30000,
	mech.ArmorHardened:          15000,
	mech.ArmorPrimitive:         5000,
	mech.ArmorIndustrial:        5000,
	mech.ArmorCommercial:        3000,
}

// heatSinkCost is C-bills per external (non-engine-integral) sink.
var heatSinkCost = map[mech.HeatSinkType]float64{
	mech.HeatSinkSingle:     2000,
	mech.HeatSinkDouble:     6000,
	mech.HeatSinkDoubleClan: 6000,
}

// CostBreakdown itemizes the construction cost in C-bills.
type CostBreakdown struct {
	Structure float64 `json:"structure"`
	Engine    float64 `json:"engine"`
	Gyro      float64 `json:"gyro"`
	Cockpit   float64 `json:"cockpit"`
	Armor     float64 `json:"armor"`
	HeatSinks float64 `json:"heat_sinks"`
	Equipment float64 `json:"equipment"`
	Total     float64 `json:"total"`
}

// CalculateCost composes the construction cost: per-component costs
// scaled by their type multiplier tables, summed, scaled by the global
// construction multiplier, and rounded to the nearest C-bill. Only heat
// sinks outside the engine are billed.
func CalculateCost(cfg mech.Configuration, resolved []*equipment.Item) CostBreakdown {
	var b CostBreakdown

	b.Structure = mech.StructureWeight(cfg.Tonnage, cfg.StructureType) * costOr(structureCostPerTon, cfg.StructureType, 400)
	b.Engine = costOr(engineCostFactor, cfg.Engine.Type, 5000) * float64(cfg.Engine.Rating) * float64(cfg.Tonnage) / 75
	b.Gyro = mech.GyroWeight(cfg.Engine.Rating, cfg.GyroType) * costOr(gyroCostPerTon, cfg.GyroType, 300000)
	b.Cockpit = costOr(cockpitCost, cfg.CockpitType, 200000)
	b.Armor = mech.ArmorWeight(cfg.Armor.Total(), cfg.ArmorType) * costOr(armorCostPerTon, cfg.ArmorType, 10000)

	external := cfg.HeatSinkCount - mech.IntegralHeatSinks(cfg.Engine.Rating, cfg.HeatSinkCount)
	b.HeatSinks = float64(external) * costOr(heatSinkCost, cfg.HeatSinkType, 2000)

	for _, item := range resolved {
		if item != nil {
			b.Equipment += item.Cost
		}
	}

	sum := b.Structure + b.Engine + b.Gyro + b.Cockpit + b.Armor + b.HeatSinks + b.Equipment
	b.Total = math.Round(sum * finalCostMultiplier)
	return b
}

func costOr[K comparable](table map[K]float64, key K, fallback float64) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}
