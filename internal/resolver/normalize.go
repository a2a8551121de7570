package resolver

import (
	"regexp"
	"strings"
)

// normalizeRules rewrite family-specific shorthand to canonical slug form.
// Applied in declared order to the id with any clan prefix already
// stripped; every rule must be a no-op on its own output so NormalizeID
// stays idempotent.
var normalizeRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	// Autocannon shorthand.
	{regexp.MustCompile(`^uac-?(\d+)`), "ultra-ac-$1"},
	{regexp.MustCompile(`^rac-?(\d+)`), "rotary-ac-$1"},
	{regexp.MustCompile(`^lac-?(\d+)`), "light-ac-$1"},
	{regexp.MustCompile(`^autocannon-(\d+)`), "ac-$1"},
	// LB-X slot-position fix: the size belongs between "lb" and "x".
	{regexp.MustCompile(`^lbx-?(\d+)(-ac)?$`), "lb-$1-x-ac"},
	{regexp.MustCompile(`^lb-x-ac-(\d+)$`), "lb-$1-x-ac"},
	{regexp.MustCompile(`^lb-?(\d+)-?x(-ac)?$`), "lb-$1-x-ac"},
	// Spelled-out extended range.
	{regexp.MustCompile(`extended-range`), "er"},
	// Ammo suffix variants.
	{regexp.MustCompile(`^ammo-(.+)$`), "$1-ammo"},
	{regexp.MustCompile(`-ammunition$`), "-ammo"},
}

var (
	separators  = regexp.MustCompile(`[\s_/]+`)
	nonSlugRune = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash   = regexp.MustCompile(`-{2,}`)
)

// NormalizeID canonicalizes an external equipment id: lowercases,
// unifies separators, preserves a leading clan prefix, and rewrites
// family abbreviations. Idempotent: NormalizeID(NormalizeID(x)) ==
// NormalizeID(x).
func NormalizeID(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))

	clan := false
	if strings.Contains(s, "(clan)") {
		s = strings.ReplaceAll(s, "(clan)", "")
		clan = true
	}
	s = strings.ReplaceAll(s, "(is)", "")
	s = strings.ReplaceAll(s, "(inner sphere)", "")

	s = separators.ReplaceAllString(s, "-")
	s = nonSlugRune.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	switch {
	case strings.HasPrefix(s, "clan-"):
		s = strings.TrimPrefix(s, "clan-")
		clan = true
	case strings.HasPrefix(s, "cl-"):
		s = strings.TrimPrefix(s, "cl-")
		clan = true
	}

	for _, rule := range normalizeRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}

	if clan && s != "" {
		s = "clan-" + s
	}
	return s
}

// normKey reduces a name or id to a bare alphanumeric key for alias and
// fuzzy matching.
func normKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
