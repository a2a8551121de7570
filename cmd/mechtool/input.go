package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// rawConfig is the on-disk configuration document. Component types are
// free-form strings mapped through the tolerant parsers, so exported
// unit files from other tools load without preprocessing.
type rawConfig struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tonnage  int    `json:"tonnage"`
	TechBase string `json:"tech_base"`
	Engine   struct {
		Type   string `json:"type"`
		Rating int    `json:"rating"`
	} `json:"engine"`
	Structure string `json:"structure"`
	Gyro      string `json:"gyro"`
	Cockpit   string `json:"cockpit"`
	ArmorType string `json:"armor_type"`

	Armor mech.ArmorAllocation `json:"armor"`

	HeatSinks struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	} `json:"heat_sinks"`

	WalkMP    int                 `json:"walk_mp"`
	Equipment []rawEquipmentRef   `json:"equipment"`
	Criticals map[string][]string `json:"criticals"`
}

type rawEquipmentRef struct {
	Ref      string `json:"ref"`
	Location string `json:"location"`
	Slot     int    `json:"slot"`
}

// loadConfiguration reads a configuration document from path.
func loadConfiguration(path string) (mech.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mech.Configuration{}, fmt.Errorf("reading configuration: %w", err)
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return mech.Configuration{}, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	cfg := mech.Configuration{
		ID:            raw.ID,
		Name:          raw.Name,
		Tonnage:       raw.Tonnage,
		TechBase:      equipment.ParseTechBase(raw.TechBase),
		Engine:        mech.Engine{Type: mech.ParseEngineType(raw.Engine.Type), Rating: raw.Engine.Rating},
		StructureType: mech.ParseStructureType(raw.Structure),
		GyroType:      mech.ParseGyroType(raw.Gyro),
		CockpitType:   mech.ParseCockpitType(raw.Cockpit),
		ArmorType:     mech.ParseArmorType(raw.ArmorType),
		Armor:         raw.Armor,
		HeatSinkType:  mech.ParseHeatSinkType(raw.HeatSinks.Type),
		HeatSinkCount: raw.HeatSinks.Count,
		WalkMP:        raw.WalkMP,
	}
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	for _, ref := range raw.Equipment {
		loc, ok := mech.ParseLocation(ref.Location)
		if !ok {
			return mech.Configuration{}, fmt.Errorf("equipment %q: unknown location %q", ref.Ref, ref.Location)
		}
		cfg.Equipment = append(cfg.Equipment, mech.EquipmentRef{
			Ref:       ref.Ref,
			Location:  loc,
			SlotIndex: ref.Slot,
		})
	}

	if len(raw.Criticals) > 0 {
		cfg.CritTokens = make(map[mech.Location][]string, len(raw.Criticals))
		for name, tokens := range raw.Criticals {
			loc, ok := mech.ParseLocation(name)
			if !ok {
				return mech.Configuration{}, fmt.Errorf("criticals: unknown location %q", name)
			}
			cfg.CritTokens[loc] = tokens
		}
	}

	return cfg, nil
}
