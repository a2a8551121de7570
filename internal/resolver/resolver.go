// Package resolver maps arbitrary external equipment identifiers to
// canonical catalog entries via an ordered fallback strategy.
package resolver

import (
	"sort"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
)

// maxSuggestions caps the fuzzy alternates returned for a miss.
const maxSuggestions = 5

// Hints carries optional context for disambiguating IS/Clan variants.
type Hints struct {
	// SlotTokens is the raw critical-slot label list of the location that
	// owns the reference being resolved.
	SlotTokens []string

	// TechBase is the unit's declared tech-base mode; only consulted when
	// TechBaseKnown is set.
	TechBase      equipment.TechBase
	TechBaseKnown bool
}

// Result is the outcome of a resolution attempt. A miss is a normal,
// reportable outcome: Found is false, Equipment nil, and AlternateIDs may
// carry fuzzy suggestions for diagnostics. Suggestions are never
// substituted silently.
type Result struct {
	Found        bool
	Equipment    *equipment.Item
	CanonicalID  string
	AlternateIDs []string
}

// Resolver resolves identifiers against a loaded catalog. Build it after
// the catalog has loaded; it is immutable and safe for concurrent use.
type Resolver struct {
	cat *catalog.Catalog

	// aliases maps normalized name keys to the canonical IDs sharing that
	// name. IS/Clan variants of the same base name collide here on
	// purpose; variant choice happens at lookup time.
	aliases map[string][]string
}

// New builds a resolver over the given catalog, indexing every item's
// name plus the curated static aliases.
func New(cat *catalog.Catalog) *Resolver {
	r := &Resolver{
		cat:     cat,
		aliases: make(map[string][]string),
	}
	for _, item := range cat.Items() {
		r.addAlias(item.Name, item.ID)
		r.addAlias(item.ID, item.ID)
	}
	for name, id := range staticAliases {
		if cat.ByID(id) != nil {
			r.addAlias(name, id)
		}
	}
	return r
}

func (r *Resolver) addAlias(name, id string) {
	key := normKey(name)
	if key == "" {
		return
	}
	for _, existing := range r.aliases[key] {
		if existing == id {
			return
		}
	}
	r.aliases[key] = append(r.aliases[key], id)
}

// Resolve maps an external identifier or display name to a canonical
// catalog entry. The fallback order is fixed: exact canonical ID, alias
// table, legacy concatenated-ID parse, then fuzzy suggestions. Resolve
// never fails hard; an unresolvable input yields Found=false.
func (r *Resolver) Resolve(idOrName string, hints *Hints) Result {
	// Step 1: exact canonical ID, raw then normalized. The normalized form
	// goes through lookupID so a clan- sibling still gets a say when the
	// hints ask for it.
	if item := r.cat.ByID(idOrName); item != nil {
		return hit(item)
	}
	norm := NormalizeID(idOrName)
	if res, ok := r.lookupID(norm, techNone, hints); ok {
		return res
	}

	// Step 2: alias table on the normalized name.
	if res, ok := r.lookupAlias(normKey(idOrName), techNone, hints); ok {
		return res
	}

	// Step 3: legacy concatenated-ID parse, then steps 1-2 on the slug.
	if slug, base, tech, ok := parseLegacyID(idOrName); ok {
		if res, found := r.lookupID(slug, tech, hints); found {
			return res
		}
		if res, found := r.lookupAlias(normKey(slug), tech, hints); found {
			return res
		}
	} else if base != "" {
		// No rewrite rule matched; the squashed base may still be a known
		// name (e.g. "ISFlamer" -> "flamer").
		if res, found := r.lookupAlias(base, tech, hints); found {
			return res
		}
	}

	// Step 4: fuzzy suggestions only, never a silent substitution.
	return Result{AlternateIDs: r.suggest(norm)}
}

func hit(item *equipment.Item) Result {
	return Result{Found: true, Equipment: item, CanonicalID: item.ID}
}

// lookupID tries the slug and its clan-prefixed variant as canonical IDs,
// choosing between them with the usual preference order.
func (r *Resolver) lookupID(slug string, tech techHint, hints *Hints) (Result, bool) {
	base := r.cat.ByID(slug)
	clan := r.cat.ByID("clan-" + slug)
	if base == nil && clan == nil {
		return Result{}, false
	}
	if base == nil {
		return hit(clan), true
	}
	if clan == nil {
		return hit(base), true
	}
	if r.preferClan(normKey(slug), tech, hints) {
		return hit(clan), true
	}
	return hit(base), true
}

// lookupAlias resolves a normalized key through the alias table.
func (r *Resolver) lookupAlias(key string, tech techHint, hints *Hints) (Result, bool) {
	ids := r.aliases[key]
	switch len(ids) {
	case 0:
		return Result{}, false
	case 1:
		if item := r.cat.ByID(ids[0]); item != nil {
			return hit(item), true
		}
		return Result{}, false
	}

	// Multiple variants share this name; pick by tech preference.
	preferClan := r.preferClan(key, tech, hints)
	var fallback *equipment.Item
	for _, id := range ids {
		item := r.cat.ByID(id)
		if item == nil {
			continue
		}
		if fallback == nil {
			fallback = item
		}
		if (item.TechBase == equipment.TechClan) == preferClan {
			return hit(item), true
		}
	}
	if fallback != nil {
		return hit(fallback), true
	}
	return Result{}, false
}

// preferClan decides which variant of an ambiguous name to take:
// a crit-slot token marker wins, then the unit's declared tech base,
// then Inner Sphere.
func (r *Resolver) preferClan(baseKey string, tech techHint, hints *Hints) bool {
	if hints != nil {
		if t := techFromTokens(hints.SlotTokens, baseKey); t != techNone {
			return t == techClan
		}
	}
	if tech != techNone {
		return tech == techClan
	}
	if hints != nil && hints.TechBaseKnown {
		return hints.TechBase == equipment.TechClan
	}
	return false
}

// techFromTokens scans a location's raw critical-slot labels for the
// token naming the sought item and reads its Clan/IS marker, checking the
// adjacent slots when the matching token itself is unmarked. This is a
// best-effort match over free-text labels; unrecognized shapes yield no
// hint.
func techFromTokens(tokens []string, baseKey string) techHint {
	if baseKey == "" {
		return techNone
	}
	for i, tok := range tokens {
		if !tokenNames(tok, baseKey) {
			continue
		}
		if t := tokenMarker(tok); t != techNone {
			return t
		}
		if i > 0 {
			if t := bareMarker(tokens[i-1]); t != techNone {
				return t
			}
		}
		if i+1 < len(tokens) {
			if t := bareMarker(tokens[i+1]); t != techNone {
				return t
			}
		}
	}
	return techNone
}

// tokenNames reports whether a crit-slot label refers to the item with
// the given normalized base key, ignoring any tech marker prefix.
func tokenNames(tok, baseKey string) bool {
	key := normKey(tok)
	if key == "" {
		return false
	}
	for _, prefix := range []string{"clan", "cl", "is"} {
		if strings.HasPrefix(key, prefix) && strings.Contains(key[len(prefix):], baseKey) {
			return true
		}
	}
	return strings.Contains(key, baseKey)
}

// tokenMarker reads an embedded tech marker from a crit-slot label:
// a CL/Clan/(Clan) prefix or tag means Clan, IS/(IS)/[IS] means Inner
// Sphere.
func tokenMarker(tok string) techHint {
	t := strings.TrimSpace(tok)
	switch {
	case strings.Contains(t, "(Clan)") || strings.HasPrefix(t, "Clan"):
		return techClan
	case strings.HasPrefix(t, "CL"):
		return techClan
	case strings.Contains(t, "(IS)") || strings.Contains(t, "[IS]"):
		return techIS
	case strings.HasPrefix(t, "IS"):
		return techIS
	}
	return techNone
}

// bareMarker recognizes a slot label that is nothing but a tech marker.
func bareMarker(tok string) techHint {
	switch strings.TrimSpace(tok) {
	case "CL", "Clan", "(Clan)":
		return techClan
	case "IS", "(IS)", "[IS]":
		return techIS
	}
	return techNone
}

// suggest collects up to maxSuggestions catalog IDs whose normalized key
// substring-matches the query in either direction.
func (r *Resolver) suggest(query string) []string {
	qKey := normKey(query)
	if qKey == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, item := range r.cat.Items() {
		idKey := normKey(item.ID)
		nameKey := normKey(item.Name)
		if strings.Contains(idKey, qKey) || strings.Contains(qKey, idKey) ||
			strings.Contains(nameKey, qKey) || strings.Contains(qKey, nameKey) {
			if !seen[item.ID] {
				seen[item.ID] = true
				out = append(out, item.ID)
			}
		}
	}
	sort.Strings(out)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
