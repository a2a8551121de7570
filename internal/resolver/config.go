package resolver

import (
	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// ResolveAll resolves every equipment reference of a configuration,
// returning results parallel to cfg.Equipment. Each reference gets the
// crit-slot tokens of its own location plus the unit's declared tech base
// as hints.
func (r *Resolver) ResolveAll(cfg mech.Configuration) []Result {
	out := make([]Result, len(cfg.Equipment))
	for i, ref := range cfg.Equipment {
		hints := &Hints{
			SlotTokens:    cfg.CritTokens[ref.Location],
			TechBase:      cfg.TechBase,
			TechBaseKnown: true,
		}
		out[i] = r.Resolve(ref.Ref, hints)
	}
	return out
}

// Items extracts the resolved items from a result slice, nil for misses,
// parallel to the input.
func Items(results []Result) []*equipment.Item {
	items := make([]*equipment.Item, len(results))
	for i, res := range results {
		items[i] = res.Equipment
	}
	return items
}
