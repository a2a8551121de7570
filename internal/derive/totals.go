// Package derive computes derived values (weights, movement, heat, cost,
// battle value) from a configuration and its resolved equipment. All
// functions are pure; unresolved items contribute nothing, so a caller
// racing an async catalog load gets partial rather than failing results.
package derive

import (
	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// Totals is the weight and armor summary of a configuration.
type Totals struct {
	StructureWeight float64 `json:"structure_weight"`
	EngineWeight    float64 `json:"engine_weight"`
	GyroWeight      float64 `json:"gyro_weight"`
	CockpitWeight   float64 `json:"cockpit_weight"`
	ArmorWeight     float64 `json:"armor_weight"`
	HeatSinkWeight  float64 `json:"heat_sink_weight"`
	EquipmentWeight float64 `json:"equipment_weight"`

	TotalWeight     float64 `json:"total_weight"`
	RemainingWeight float64 `json:"remaining_weight"`

	TotalArmorPoints int                   `json:"total_armor_points"`
	MaxArmorPoints   map[mech.Location]int `json:"max_armor_points"`
}

// CalculateTotals sums component weights by the fixed per-type rules and
// reports armor totals and caps. resolved is parallel to cfg.Equipment;
// nil entries are skipped.
func CalculateTotals(cfg mech.Configuration, resolved []*equipment.Item) Totals {
	t := Totals{
		StructureWeight:  mech.StructureWeight(cfg.Tonnage, cfg.StructureType),
		EngineWeight:     mech.EngineWeight(cfg.Engine),
		GyroWeight:       mech.GyroWeight(cfg.Engine.Rating, cfg.GyroType),
		CockpitWeight:    mech.CockpitWeight(cfg.CockpitType),
		ArmorWeight:      mech.ArmorWeight(cfg.Armor.Total(), cfg.ArmorType),
		HeatSinkWeight:   mech.HeatSinkWeight(cfg.HeatSinkCount),
		TotalArmorPoints: cfg.Armor.Total(),
		MaxArmorPoints:   make(map[mech.Location]int, len(mech.Locations)),
	}
	for _, item := range resolved {
		if item != nil {
			t.EquipmentWeight += item.Weight
		}
	}
	t.TotalWeight = t.StructureWeight + t.EngineWeight + t.GyroWeight +
		t.CockpitWeight + t.ArmorWeight + t.HeatSinkWeight + t.EquipmentWeight
	t.RemainingWeight = float64(cfg.Tonnage) - t.TotalWeight

	for _, loc := range mech.Locations {
		t.MaxArmorPoints[loc] = mech.MaxArmorPoints(cfg.Tonnage, loc)
	}
	return t
}
