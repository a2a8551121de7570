package mech

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
)

// ConfigError reports every structural constraint a caller-supplied
// configuration violates. It is returned only from the construction
// boundary; rule checks past that point are the validator's job.
type ConfigError struct {
	Violations []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Violations, "; "))
}

// Builder assembles a Configuration. Build fails fast with a ConfigError
// listing every violated constraint, so callers can surface all problems
// at once.
type Builder struct {
	cfg Configuration
}

// NewBuilder returns a builder seeded with standard components and a fresh
// configuration identity.
func NewBuilder() *Builder {
	return &Builder{cfg: Configuration{
		ID:            uuid.NewString(),
		Engine:        Engine{Type: EngineFusion},
		HeatSinkType:  HeatSinkSingle,
		HeatSinkCount: 10,
	}}
}

func (b *Builder) Name(name string) *Builder { b.cfg.Name = name; return b }

func (b *Builder) Tonnage(t int) *Builder { b.cfg.Tonnage = t; return b }

func (b *Builder) TechBase(tb equipment.TechBase) *Builder { b.cfg.TechBase = tb; return b }

func (b *Builder) Engine(t EngineType, rating int) *Builder {
	b.cfg.Engine = Engine{Type: t, Rating: rating}
	return b
}

func (b *Builder) Structure(t StructureType) *Builder { b.cfg.StructureType = t; return b }

func (b *Builder) Gyro(t GyroType) *Builder { b.cfg.GyroType = t; return b }

func (b *Builder) Cockpit(t CockpitType) *Builder { b.cfg.CockpitType = t; return b }

func (b *Builder) ArmorKind(t ArmorType) *Builder { b.cfg.ArmorType = t; return b }

func (b *Builder) Armor(a ArmorAllocation) *Builder { b.cfg.Armor = a; return b }

func (b *Builder) HeatSinks(t HeatSinkType, count int) *Builder {
	b.cfg.HeatSinkType = t
	b.cfg.HeatSinkCount = count
	return b
}

func (b *Builder) WalkMP(mp int) *Builder { b.cfg.WalkMP = mp; return b }

func (b *Builder) Mount(ref string, loc Location, slot int) *Builder {
	b.cfg.Equipment = append(b.cfg.Equipment, EquipmentRef{Ref: ref, Location: loc, SlotIndex: slot})
	return b
}

// CritTokens records the raw critical-slot labels for one location.
func (b *Builder) CritTokens(loc Location, tokens []string) *Builder {
	if b.cfg.CritTokens == nil {
		b.cfg.CritTokens = make(map[Location][]string)
	}
	b.cfg.CritTokens[loc] = tokens
	return b
}

// Build validates structural constraints and returns the configuration.
// Every violation is reported; a non-nil error carries all of them.
func (b *Builder) Build() (Configuration, error) {
	var violations []string

	if b.cfg.Tonnage < 10 || b.cfg.Tonnage > 100 {
		violations = append(violations, fmt.Sprintf("tonnage %d outside [10, 100]", b.cfg.Tonnage))
	} else if b.cfg.Tonnage%5 != 0 {
		violations = append(violations, fmt.Sprintf("tonnage %d is not a multiple of 5", b.cfg.Tonnage))
	}
	if b.cfg.WalkMP < 0 {
		violations = append(violations, fmt.Sprintf("walk MP %d is negative", b.cfg.WalkMP))
	}
	if b.cfg.HeatSinkCount < 0 {
		violations = append(violations, fmt.Sprintf("heat sink count %d is negative", b.cfg.HeatSinkCount))
	}
	for i, v := range b.cfg.Armor.values() {
		if v < 0 {
			violations = append(violations, fmt.Sprintf("armor field %d is negative (%d)", i, v))
			break
		}
	}
	for _, ref := range b.cfg.Equipment {
		if _, ok := ParseLocation(string(ref.Location)); !ok {
			violations = append(violations, fmt.Sprintf("equipment %q mounted in unknown location %q", ref.Ref, ref.Location))
		}
		if ref.Ref == "" {
			violations = append(violations, "equipment reference is empty")
		}
	}

	if len(violations) > 0 {
		return Configuration{}, &ConfigError{Violations: violations}
	}
	return b.cfg.clone(), nil
}
