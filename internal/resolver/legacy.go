package resolver

import (
	"regexp"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
)

// techHint is a tech-base preference extracted from an identifier or a
// critical-slot token.
type techHint int

const (
	techNone techHint = iota
	techIS
	techClan
)

func (t techHint) techBase() equipment.TechBase {
	if t == techClan {
		return equipment.TechClan
	}
	return equipment.TechInnerSphere
}

// legacyRules convert a squashed concatenated name ("ultraac5",
// "ermediumlaser") to a canonical slug. Order is a correctness invariant:
// specific families must be checked before the generic fallbacks they
// would otherwise match (streak before srm, ultra/rotary/light/LB-X
// autocannons before plain ac, er lasers before plain lasers, double heat
// sinks before heat sinks).
var legacyRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`^improvedjumpjet$`), "improved-jump-jet"},
	{regexp.MustCompile(`^jumpjet$`), "jump-jet"},
	{regexp.MustCompile(`^doubleheatsink$`), "double-heat-sink"},
	{regexp.MustCompile(`^heatsink$`), "heat-sink"},

	{regexp.MustCompile(`^ultraac(\d+)$`), "ultra-ac-$1"},
	{regexp.MustCompile(`^rotaryac(\d+)$`), "rotary-ac-$1"},
	{regexp.MustCompile(`^lightac(\d+)$`), "light-ac-$1"},
	{regexp.MustCompile(`^lbxac(\d+)$`), "lb-$1-x-ac"},
	{regexp.MustCompile(`^lb(\d+)xac$`), "lb-$1-x-ac"},
	{regexp.MustCompile(`^autocannon(\d+)$`), "ac-$1"},
	{regexp.MustCompile(`^ac(\d+)$`), "ac-$1"},

	{regexp.MustCompile(`^heavymachinegun$`), "heavy-machine-gun"},
	{regexp.MustCompile(`^lightmachinegun$`), "light-machine-gun"},
	{regexp.MustCompile(`^machinegun$`), "machine-gun"},

	{regexp.MustCompile(`^streaksrm(\d+)$`), "streak-srm-$1"},
	{regexp.MustCompile(`^streaklrm(\d+)$`), "streak-lrm-$1"},
	{regexp.MustCompile(`^lrm(\d+)$`), "lrm-$1"},
	{regexp.MustCompile(`^srm(\d+)$`), "srm-$1"},
	{regexp.MustCompile(`^mml(\d+)$`), "mml-$1"},
	{regexp.MustCompile(`^atm(\d+)$`), "atm-$1"},

	{regexp.MustCompile(`^er(micro|small|medium|large)laser$`), "er-$1-laser"},
	{regexp.MustCompile(`^(micro|small|medium|large)pulselaser$`), "$1-pulse-laser"},
	{regexp.MustCompile(`^heavy(small|medium|large)laser$`), "heavy-$1-laser"},
	{regexp.MustCompile(`^(small|medium|large)laser$`), "$1-laser"},

	{regexp.MustCompile(`^erppc$`), "er-ppc"},
	{regexp.MustCompile(`^lightppc$`), "light-ppc"},
	{regexp.MustCompile(`^heavyppc$`), "heavy-ppc"},
	{regexp.MustCompile(`^snubnoseppc$`), "snub-nose-ppc"},
	{regexp.MustCompile(`^ppc$`), "ppc"},

	{regexp.MustCompile(`^heavygaussrifle$`), "heavy-gauss-rifle"},
	{regexp.MustCompile(`^lightgaussrifle$`), "light-gauss-rifle"},
	{regexp.MustCompile(`^gaussrifle$`), "gauss-rifle"},

	{regexp.MustCompile(`^guardianecm(suite)?$`), "guardian-ecm-suite"},
	{regexp.MustCompile(`^ecmsuite$`), "ecm-suite"},
	{regexp.MustCompile(`^beagleactiveprobe$`), "beagle-active-probe"},
	{regexp.MustCompile(`^lightactiveprobe$`), "light-active-probe"},
	{regexp.MustCompile(`^activeprobe$`), "active-probe"},
	{regexp.MustCompile(`^antimissilesystem$`), "anti-missile-system"},
	{regexp.MustCompile(`^ams$`), "anti-missile-system"},
	{regexp.MustCompile(`^targetingcomputer$`), "targeting-computer"},
	{regexp.MustCompile(`^flamer$`), "flamer"},
	{regexp.MustCompile(`^erflamer$`), "er-flamer"},
}

var (
	leadingQuantity = regexp.MustCompile(`^(\d+)[\s-]+`)
	clanPrefix      = regexp.MustCompile(`^(?i)clan-?`)
	clPrefix        = regexp.MustCompile(`^(?i)cl`)
	isPrefix        = regexp.MustCompile(`^(?i)is`)
)

// parseLegacyID interprets a legacy concatenated identifier such as
// "1-ISMediumLaser" or "CLUltraAC5": it strips an optional leading
// quantity, detects a tech-base token, and converts the remainder to a
// canonical slug via the rewrite table. ok is false when no rewrite rule
// recognizes the remainder; the caller may still try the squashed base
// against the alias table.
func parseLegacyID(raw string) (slug string, base string, tech techHint, ok bool) {
	s := leadingQuantity.ReplaceAllString(raw, "")

	tech = techNone
	switch {
	case clanPrefix.MatchString(s):
		s = clanPrefix.ReplaceAllString(s, "")
		tech = techClan
	case clPrefix.MatchString(s):
		s = clPrefix.ReplaceAllString(s, "")
		tech = techClan
	case isPrefix.MatchString(s):
		s = isPrefix.ReplaceAllString(s, "")
		tech = techIS
	}

	base = normKey(s)
	if base == "" {
		return "", "", techNone, false
	}
	for _, rule := range legacyRules {
		if rule.re.MatchString(base) {
			return rule.re.ReplaceAllString(base, rule.repl), base, tech, true
		}
	}
	return "", base, tech, false
}
