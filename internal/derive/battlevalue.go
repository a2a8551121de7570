package derive

import (
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// indirectFireFragments mark weapons that do not benefit from a
// targeting computer.
var indirectFireFragments = []string{"lrm", "srm", "mml", "atm", "mrm", "narc"}

// CalculateBattleValue assembles the formula inputs from a configuration
// and its resolved equipment and hands off to the calculator. resolved
// must be parallel to cfg.Equipment; unresolved entries are nil and
// contribute nothing.
func CalculateBattleValue(cfg mech.Configuration, resolved []*equipment.Item) bvcalc.Result {
	mv := CalculateMovement(cfg, resolved)

	p := bvcalc.Params{
		Tonnage:       cfg.Tonnage,
		Clan:          cfg.TechBase == equipment.TechClan,
		ArmorPoints:   cfg.Armor.Total(),
		ArmorType:     cfg.ArmorType,
		StructureType: cfg.StructureType,
		EngineType:    cfg.Engine.Type,
		GyroType:      cfg.GyroType,
		CockpitType:   cfg.CockpitType,
		HeatSinkCount: cfg.HeatSinkCount,
		HeatSinkType:  cfg.HeatSinkType,
		WalkMP:        mv.WalkMP,
		RunMP:         mv.RunMP,
		JumpMP:        mv.JumpMP,
		CASELocations: map[mech.Location]bool{},
		GaussCrits:    map[mech.Location]int{},
	}

	// Artemis V supersedes Artemis IV where both somehow share a location.
	artemisIVLocs := map[mech.Location]bool{}
	artemisVLocs := map[mech.Location]bool{}
	for i, ref := range cfg.Equipment {
		if i >= len(resolved) {
			break
		}
		item := resolved[i]
		if item == nil {
			continue
		}
		switch {
		case strings.Contains(item.ID, "artemis-v"):
			artemisVLocs[ref.Location] = true
		case strings.Contains(item.ID, "artemis"):
			artemisIVLocs[ref.Location] = true
		}
	}

	for i, ref := range cfg.Equipment {
		if i >= len(resolved) {
			break
		}
		item := resolved[i]
		if item == nil {
			continue
		}
		switch {
		case item.IsWeapon():
			lower := strings.ToLower(item.ID)
			// AMS defends rather than attacks: its BV counts with the
			// defensive equipment, never in the weapon list.
			if strings.Contains(lower, "anti-missile") {
				p.DefensiveEquipBV += float64(item.BattleValue)
				p.AMSWeaponBV += item.BattleValue
				continue
			}
			w := bvcalc.Weapon{
				Name:       item.Name,
				Location:   ref.Location,
				Rear:       rearMounted(cfg, ref),
				BV:         item.BattleValue,
				Heat:       item.Heat,
				DirectFire: directFire(lower),
				ArtemisIV:  isMissileLauncher(lower) && artemisIVLocs[ref.Location] && !artemisVLocs[ref.Location],
				ArtemisV:   isMissileLauncher(lower) && artemisVLocs[ref.Location],
				OneShot:    item.HasFlag(equipment.FlagOneShot) || strings.Contains(lower, "(os)"),
			}
			p.Weapons = append(p.Weapons, w)
			if strings.Contains(lower, "gauss") {
				p.GaussCrits[ref.Location] += item.CriticalSlots
			}
		case item.IsAmmo():
			lower := strings.ToLower(item.ID)
			p.Ammo = append(p.Ammo, bvcalc.Ammo{
				Name:      item.Name,
				Location:  ref.Location,
				BV:        item.BattleValue,
				Explosive: explosiveAmmo(item, lower),
				AMS:       strings.Contains(lower, "anti-missile"),
			})
		default:
			if item.HasFlag(equipment.FlagDefensive) {
				p.DefensiveEquipBV += float64(item.BattleValue)
			}
			if item.HasFlag(equipment.FlagCASE) {
				p.CASELocations[ref.Location] = true
			}
			if item.HasFlag(equipment.FlagTargetingComputer) {
				p.HasTargetingComputer = true
			}
			if item.HasFlag(equipment.FlagMASC) {
				p.HasMASC = true
			}
			if item.HasFlag(equipment.FlagTSM) {
				p.HasTSM = true
			}
		}
	}

	return bvcalc.Calculate(p)
}

// rearMounted checks the raw crit tokens at the ref's slot for a rear
// facing marker.
func rearMounted(cfg mech.Configuration, ref mech.EquipmentRef) bool {
	tokens := cfg.CritTokens[ref.Location]
	if ref.SlotIndex >= 0 && ref.SlotIndex < len(tokens) {
		return strings.Contains(tokens[ref.SlotIndex], "(R)")
	}
	return strings.Contains(ref.Ref, "(R)")
}

func directFire(id string) bool {
	for _, frag := range indirectFireFragments {
		if strings.Contains(id, frag) {
			return false
		}
	}
	return true
}

func isMissileLauncher(id string) bool {
	for _, frag := range []string{"lrm", "srm", "mml"} {
		if strings.Contains(id, frag) {
			return true
		}
	}
	return false
}

// explosiveAmmo treats all ammunition as explosive except gauss rounds,
// which are inert slugs. The explicit flag overrides either way.
func explosiveAmmo(item *equipment.Item, id string) bool {
	if item.HasFlag(equipment.FlagExplosive) {
		return true
	}
	return !strings.Contains(id, "gauss")
}
