// Package validate runs construction rule checks over a mech
// configuration and its resolved equipment. Checks never short-circuit:
// one call surfaces every finding.
package validate

import (
	"fmt"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// Severity ranks a finding.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return "error"
}

// Finding codes.
const (
	CodeOverweight            = "OVERWEIGHT"
	CodeArmorOverflow         = "ARMOR_OVERFLOW"
	CodeNoArmor               = "NO_ARMOR"
	CodeSlotOverflow          = "SLOT_OVERFLOW"
	CodeTechBaseMismatch      = "TECH_BASE_MISMATCH"
	CodeEngineRatingRange     = "ENGINE_RATING_RANGE"
	CodeEngineRatingStep      = "ENGINE_RATING_STEP"
	CodeInsufficientHeatSinks = "INSUFFICIENT_HEAT_SINKS"
	CodeUnresolvedEquipment   = "UNRESOLVED_EQUIPMENT"
)

// Finding is one rule violation or observation.
type Finding struct {
	Code     string        `json:"code"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Location mech.Location `json:"location,omitempty"`
}

// Result partitions findings by severity.
type Result struct {
	Errors   []Finding `json:"errors,omitempty"`
	Warnings []Finding `json:"warnings,omitempty"`
	Info     []Finding `json:"info,omitempty"`
}

// IsValid reports whether the configuration has no error-severity
// findings.
func (r Result) IsValid() bool { return len(r.Errors) == 0 }

func (r *Result) add(f Finding) {
	switch f.Severity {
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	case SeverityInfo:
		r.Info = append(r.Info, f)
	default:
		r.Errors = append(r.Errors, f)
	}
}

// Validate runs every construction check over the configuration.
// resolved must be parallel to cfg.Equipment; nil entries are reported as
// unresolved and skipped by the per-item checks.
func Validate(cfg mech.Configuration, resolved []*equipment.Item) Result {
	var res Result
	checkWeight(&res, cfg, resolved)
	checkArmor(&res, cfg)
	checkSlots(&res, cfg, resolved)
	checkTechBase(&res, cfg, resolved)
	checkEngine(&res, cfg)
	checkHeatSinks(&res, cfg)
	return res
}

// checkWeight verifies the summed component weights fit the tonnage and
// reports the exact overage.
func checkWeight(res *Result, cfg mech.Configuration, resolved []*equipment.Item) {
	total := mech.StructureWeight(cfg.Tonnage, cfg.StructureType) +
		mech.EngineWeight(cfg.Engine) +
		mech.GyroWeight(cfg.Engine.Rating, cfg.GyroType) +
		mech.CockpitWeight(cfg.CockpitType) +
		mech.ArmorWeight(cfg.Armor.Total(), cfg.ArmorType) +
		mech.HeatSinkWeight(cfg.HeatSinkCount)
	for _, item := range resolved {
		if item != nil {
			total += item.Weight
		}
	}
	if total > float64(cfg.Tonnage) {
		res.add(Finding{
			Code:     CodeOverweight,
			Severity: SeverityError,
			Message:  fmt.Sprintf("build weighs %.1f tons, %.1f over the %d-ton limit", total, total-float64(cfg.Tonnage), cfg.Tonnage),
		})
	}
}

// checkArmor enforces per-location caps (front plus rear for torsos,
// head fixed at 9) and warns on unarmored locations.
func checkArmor(res *Result, cfg mech.Configuration) {
	for _, loc := range mech.Locations {
		front, rear := cfg.Armor.At(loc)
		points := front + rear
		max := mech.MaxArmorPoints(cfg.Tonnage, loc)
		if points > max {
			res.add(Finding{
				Code:     CodeArmorOverflow,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s armor %d exceeds maximum %d", loc, points, max),
				Location: loc,
			})
		}
		if points == 0 {
			res.add(Finding{
				Code:     CodeNoArmor,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s has no armor", loc),
				Location: loc,
			})
		}
	}
}

// checkSlots enforces per-location critical slot capacity.
func checkSlots(res *Result, cfg mech.Configuration, resolved []*equipment.Item) {
	used := make(map[mech.Location]int)
	for i, ref := range cfg.Equipment {
		slots := 1
		if i < len(resolved) && resolved[i] != nil {
			slots = resolved[i].CriticalSlots
		}
		used[ref.Location] += slots
	}
	for _, loc := range mech.Locations {
		if cap := loc.SlotCapacity(); used[loc] > cap {
			res.add(Finding{
				Code:     CodeSlotOverflow,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s uses %d critical slots of %d", loc, used[loc], cap),
				Location: loc,
			})
		}
	}
}

// checkTechBase requires each item's tech base to match the unit's
// declared component tech base. Mixed-tech exceptions are resolved
// upstream by the resolver's hinting, not here.
func checkTechBase(res *Result, cfg mech.Configuration, resolved []*equipment.Item) {
	for i, ref := range cfg.Equipment {
		if i >= len(resolved) {
			break
		}
		item := resolved[i]
		if item == nil {
			res.add(Finding{
				Code:     CodeUnresolvedEquipment,
				Severity: SeverityError,
				Message:  fmt.Sprintf("equipment %q in %s could not be resolved", ref.Ref, ref.Location),
				Location: ref.Location,
			})
			continue
		}
		if item.TechBase != cfg.TechBase {
			res.add(Finding{
				Code:     CodeTechBaseMismatch,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s is %s equipment on a %s unit", item.Name, item.TechBase, cfg.TechBase),
				Location: ref.Location,
			})
		}
	}
}

// checkEngine enforces the legal rating range and step.
func checkEngine(res *Result, cfg mech.Configuration) {
	rating := cfg.Engine.Rating
	if rating < 10 || rating > 400 {
		res.add(Finding{
			Code:     CodeEngineRatingRange,
			Severity: SeverityError,
			Message:  fmt.Sprintf("engine rating %d outside [10, 400]", rating),
		})
	}
	if rating%5 != 0 {
		res.add(Finding{
			Code:     CodeEngineRatingStep,
			Severity: SeverityError,
			Message:  fmt.Sprintf("engine rating %d is not a multiple of 5", rating),
		})
	}
}

// checkHeatSinks enforces the ten heat sink minimum.
func checkHeatSinks(res *Result, cfg mech.Configuration) {
	if cfg.HeatSinkCount < 10 {
		res.add(Finding{
			Code:     CodeInsufficientHeatSinks,
			Severity: SeverityError,
			Message:  fmt.Sprintf("%d heat sinks mounted, minimum is 10", cfg.HeatSinkCount),
		})
	}
}
