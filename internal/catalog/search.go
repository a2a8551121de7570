package catalog

import (
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
)

// Filter narrows a search. Nil pointer fields and zero values mean
// "don't care"; all provided fields must match (conjunction).
type Filter struct {
	Category   *equipment.Category
	TechBase   *equipment.TechBase
	RulesLevel *equipment.RulesLevel

	// YearMin/YearMax bound the introduction year; zero disables the bound.
	YearMin int
	YearMax int

	// Query is a case-insensitive substring match against id and name.
	Query string

	// UnitType requires compatibility with the given unit family.
	UnitType equipment.UnitType

	RequiredFlags []string
	ExcludedFlags []string
}

// Search returns every catalog item matching all provided filter fields,
// in load order.
func (c *Catalog) Search(f Filter) []*equipment.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := strings.ToLower(f.Query)
	var out []*equipment.Item
	for _, item := range c.ordered {
		if !matches(item, f, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(item *equipment.Item, f Filter, query string) bool {
	if f.Category != nil && item.Category != *f.Category {
		return false
	}
	if f.TechBase != nil && item.TechBase != *f.TechBase {
		return false
	}
	if f.RulesLevel != nil && item.RulesLevel != *f.RulesLevel {
		return false
	}
	if f.YearMin > 0 && item.IntroductionYear < f.YearMin {
		return false
	}
	if f.YearMax > 0 && item.IntroductionYear > f.YearMax {
		return false
	}
	if query != "" &&
		!strings.Contains(strings.ToLower(item.Name), query) &&
		!strings.Contains(strings.ToLower(item.ID), query) {
		return false
	}
	if f.UnitType != "" && !item.CompatibleWith(f.UnitType) {
		return false
	}
	for _, flag := range f.RequiredFlags {
		if !item.HasFlag(flag) {
			return false
		}
	}
	for _, flag := range f.ExcludedFlags {
		if item.HasFlag(flag) {
			return false
		}
	}
	return true
}
