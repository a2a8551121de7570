package resolver

// staticAliases maps curated alternate names to canonical IDs, covering
// items renamed or merged across data revisions. Keys are normalized with
// normKey at table build time, so spacing and punctuation here are
// cosmetic.
var staticAliases = map[string]string{
	// Renamed weapons.
	"particle cannon":           "ppc",
	"particle projector cannon": "ppc",
	"autocannon/2":              "ac-2",
	"autocannon/5":              "ac-5",
	"autocannon/10":             "ac-10",
	"autocannon/20":             "ac-20",
	"anti missile system":       "anti-missile-system",
	"antimissile system":        "anti-missile-system",
	"guardian ecm":              "guardian-ecm-suite",
	"triple strength myomer":    "tsm",
	"triple-strength myomer":    "tsm",

	// Merged heat sink entries.
	"single heat sink":   "heat-sink",
	"standard heat sink": "heat-sink",

	// Jump jet family naming drift.
	"standard jump jet":  "jump-jet",
	"improved jump jets": "improved-jump-jet",

	// Ammo naming drift.
	"gauss ammo":            "gauss-rifle-ammo",
	"gauss rifle rounds":    "gauss-rifle-ammo",
	"machine gun ammo half": "machine-gun-ammo",
}
