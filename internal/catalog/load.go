package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
)

// manifest is the index document mapping equipment families to their
// source files, e.g. {"files": {"weapons": ["weapons.json"]}}.
type manifest struct {
	Files map[string][]string `json:"files"`
}

// rawItem is the tolerant on-disk record shape. Every field past id and
// name is optional.
type rawItem struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Category         string                 `json:"category"`
	TechBase         string                 `json:"tech_base"`
	RulesLevel       string                 `json:"rules_level"`
	Weight           float64                `json:"weight"`
	CriticalSlots    int                    `json:"critical_slots"`
	Cost             float64                `json:"cost"`
	BattleValue      int                    `json:"battle_value"`
	Heat             int                    `json:"heat"`
	Damage           float64                `json:"damage"`
	Ranges           equipment.RangeProfile `json:"ranges"`
	RackSize         int                    `json:"rack_size"`
	Shots            int                    `json:"shots"`
	IntroductionYear int                    `json:"introduction_year"`
	Flags            []string               `json:"flags"`
	AllowedUnitTypes []string               `json:"allowed_unit_types"`
	AllowedLocations []string               `json:"allowed_locations"`
}

func (r *rawItem) toItem(family string) *equipment.Item {
	category := equipment.ParseCategory(r.Category)
	if r.Category == "" {
		category = equipment.ParseCategory(family)
	}
	item := &equipment.Item{
		ID:               r.ID,
		Name:             r.Name,
		Category:         category,
		TechBase:         equipment.ParseTechBase(r.TechBase),
		RulesLevel:       equipment.ParseRulesLevel(r.RulesLevel),
		Weight:           r.Weight,
		CriticalSlots:    r.CriticalSlots,
		Cost:             r.Cost,
		BattleValue:      r.BattleValue,
		Heat:             r.Heat,
		Damage:           r.Damage,
		Ranges:           r.Ranges,
		RackSize:         r.RackSize,
		Shots:            r.Shots,
		IntroductionYear: r.IntroductionYear,
		Flags:            r.Flags,
		AllowedLocations: r.AllowedLocations,
	}
	for _, ut := range r.AllowedUnitTypes {
		item.AllowedUnitTypes = append(item.AllowedUnitTypes, equipment.UnitType(ut))
	}
	return item
}

// Load reads the index manifest under basePath and folds every declared
// source file into the catalog. A malformed or missing file is recorded as
// a warning and loading continues; one bad file never aborts the pass.
// The catalog that results from a partially failed load is still usable.
func (c *Catalog) Load(ctx context.Context, basePath string) (LoadResult, error) {
	indexPath := filepath.Join(basePath, "index.json")
	raw, err := os.ReadFile(indexPath)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read catalog index: %w", err)
	}
	var idx manifest
	if err := json.Unmarshal(raw, &idx); err != nil {
		return LoadResult{}, fmt.Errorf("parse catalog index: %w", err)
	}

	var result LoadResult
	byID := make(map[string]*equipment.Item)
	var ordered []*equipment.Item

	// Walk families in sorted order so item order and duplicate handling
	// do not depend on map iteration.
	families := make([]string, 0, len(idx.Files))
	for family := range idx.Files {
		families = append(families, family)
	}
	sort.Strings(families)

	for _, family := range families {
		for _, name := range idx.Files[family] {
			if err := ctx.Err(); err != nil {
				return LoadResult{}, err
			}
			path := filepath.Join(basePath, name)
			items, err := loadFile(path, family)
			if err != nil {
				msg := fmt.Sprintf("%s: %v", name, err)
				result.Warnings = append(result.Warnings, msg)
				c.log.Warn("skipping equipment file",
					zap.String("file", name),
					zap.String("family", family),
					zap.Error(err))
				continue
			}
			for _, item := range items {
				if item.ID == "" {
					result.Warnings = append(result.Warnings, fmt.Sprintf("%s: record with empty id skipped", name))
					continue
				}
				if _, dup := byID[item.ID]; dup {
					result.Warnings = append(result.Warnings, fmt.Sprintf("%s: duplicate id %q skipped", name, item.ID))
					continue
				}
				byID[item.ID] = item
				ordered = append(ordered, item)
			}
		}
	}
	result.ItemsLoaded = len(ordered)

	c.mu.Lock()
	c.byID = byID
	c.ordered = ordered
	c.last = result
	c.loaded = true
	c.mu.Unlock()

	c.log.Info("equipment catalog loaded",
		zap.Int("items", result.ItemsLoaded),
		zap.Int("warnings", len(result.Warnings)))
	return result, nil
}

func loadFile(path, family string) ([]*equipment.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []rawItem
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	items := make([]*equipment.Item, 0, len(records))
	for i := range records {
		items = append(items, records[i].toItem(family))
	}
	return items, nil
}
