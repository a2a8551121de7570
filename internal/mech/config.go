// Package mech models a mech configuration under construction and the
// fixed structural tables the rules operate on.
package mech

import "github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"

// EquipmentRef is a raw equipment reference as supplied by an importer.
// Ref may be a canonical ID, a display name, or a legacy concatenated ID.
type EquipmentRef struct {
	Ref       string   `json:"ref"`
	Location  Location `json:"location"`
	SlotIndex int      `json:"slot_index"`
}

// ArmorAllocation holds per-location armor points. Torsos carry separate
// rear facings.
type ArmorAllocation struct {
	Head            int `json:"head"`
	CenterTorso     int `json:"center_torso"`
	CenterTorsoRear int `json:"center_torso_rear"`
	LeftTorso       int `json:"left_torso"`
	LeftTorsoRear   int `json:"left_torso_rear"`
	RightTorso      int `json:"right_torso"`
	RightTorsoRear  int `json:"right_torso_rear"`
	LeftArm         int `json:"left_arm"`
	RightArm        int `json:"right_arm"`
	LeftLeg         int `json:"left_leg"`
	RightLeg        int `json:"right_leg"`
}

// Total returns the summed armor points across every facing, rear included.
func (a ArmorAllocation) Total() int {
	return a.Head + a.CenterTorso + a.CenterTorsoRear +
		a.LeftTorso + a.LeftTorsoRear + a.RightTorso + a.RightTorsoRear +
		a.LeftArm + a.RightArm + a.LeftLeg + a.RightLeg
}

// At returns front and rear points for a location. Rear is zero for
// non-torso locations.
func (a ArmorAllocation) At(loc Location) (front, rear int) {
	switch loc {
	case Head:
		return a.Head, 0
	case CenterTorso:
		return a.CenterTorso, a.CenterTorsoRear
	case LeftTorso:
		return a.LeftTorso, a.LeftTorsoRear
	case RightTorso:
		return a.RightTorso, a.RightTorsoRear
	case LeftArm:
		return a.LeftArm, 0
	case RightArm:
		return a.RightArm, 0
	case LeftLeg:
		return a.LeftLeg, 0
	case RightLeg:
		return a.RightLeg, 0
	}
	return 0, 0
}

// values returns every armor field for range checks.
func (a ArmorAllocation) values() []int {
	return []int{a.Head, a.CenterTorso, a.CenterTorsoRear,
		a.LeftTorso, a.LeftTorsoRear, a.RightTorso, a.RightTorsoRear,
		a.LeftArm, a.RightArm, a.LeftLeg, a.RightLeg}
}

// Engine pairs a power plant type with its rating.
type Engine struct {
	Type   EngineType `json:"type"`
	Rating int        `json:"rating"`
}

// Configuration is an immutable mech build. Transform methods return
// modified copies; the original is never written after construction.
type Configuration struct {
	ID            string             `json:"id"`
	Name          string             `json:"name,omitempty"`
	Tonnage       int                `json:"tonnage"`
	TechBase      equipment.TechBase `json:"tech_base"`
	Engine        Engine             `json:"engine"`
	StructureType StructureType      `json:"structure_type"`
	GyroType      GyroType           `json:"gyro_type"`
	CockpitType   CockpitType        `json:"cockpit_type"`
	ArmorType     ArmorType          `json:"armor_type"`
	Armor         ArmorAllocation    `json:"armor"`
	HeatSinkType  HeatSinkType       `json:"heat_sink_type"`
	HeatSinkCount int                `json:"heat_sink_count"`
	WalkMP        int                `json:"walk_mp"`
	Equipment     []EquipmentRef     `json:"equipment,omitempty"`

	// CritTokens preserves the raw per-location critical slot labels from
	// the source document. The resolver scans these for tech-base markers
	// on mixed-tech units.
	CritTokens map[Location][]string `json:"crit_tokens,omitempty"`
}

// clone deep-copies the configuration's reference fields.
func (c Configuration) clone() Configuration {
	out := c
	if c.Equipment != nil {
		out.Equipment = make([]EquipmentRef, len(c.Equipment))
		copy(out.Equipment, c.Equipment)
	}
	if c.CritTokens != nil {
		out.CritTokens = make(map[Location][]string, len(c.CritTokens))
		for loc, tokens := range c.CritTokens {
			cp := make([]string, len(tokens))
			copy(cp, tokens)
			out.CritTokens[loc] = cp
		}
	}
	return out
}

// WithArmor returns a copy with the given armor allocation.
func (c Configuration) WithArmor(a ArmorAllocation) Configuration {
	out := c.clone()
	out.Armor = a
	return out
}

// WithWalkMP returns a copy with the given walking speed.
func (c Configuration) WithWalkMP(mp int) Configuration {
	out := c.clone()
	out.WalkMP = mp
	return out
}

// WithHeatSinks returns a copy with the given heat sink loadout.
func (c Configuration) WithHeatSinks(t HeatSinkType, count int) Configuration {
	out := c.clone()
	out.HeatSinkType = t
	out.HeatSinkCount = count
	return out
}

// WithEquipment returns a copy with one more equipment reference mounted.
func (c Configuration) WithEquipment(ref EquipmentRef) Configuration {
	out := c.clone()
	out.Equipment = append(out.Equipment, ref)
	return out
}

// WithoutEquipment returns a copy with the equipment at index i removed.
// Out-of-range indices return an unchanged copy.
func (c Configuration) WithoutEquipment(i int) Configuration {
	out := c.clone()
	if i < 0 || i >= len(out.Equipment) {
		return out
	}
	out.Equipment = append(out.Equipment[:i], out.Equipment[i+1:]...)
	return out
}

// EquipmentAt returns the refs mounted in one location.
func (c Configuration) EquipmentAt(loc Location) []EquipmentRef {
	var refs []EquipmentRef
	for _, ref := range c.Equipment {
		if ref.Location == loc {
			refs = append(refs, ref)
		}
	}
	return refs
}
