package bvcalc

import "strings"

// ammoBVTable holds the published BV per ton for ammo families, keyed by
// normalized name. Catalog values take precedence; this table backstops
// records whose data omits a battle value.
var ammoBVTable = map[string]int{
	"ac/2":  5,
	"ac/5":  9,
	"ac/10": 15,
	"ac/20": 22,

	"lb 2 x ac":  5,
	"lb 5 x ac":  9,
	"lb 10 x ac": 19,
	"lb 20 x ac": 22,

	"ultra ac/2":  7,
	"ultra ac/5":  14,
	"ultra ac/10": 26,
	"ultra ac/20": 35,

	"rotary ac/2": 15,
	"rotary ac/5": 31,

	"light ac/2": 4,
	"light ac/5": 8,

	"lrm 5":  6,
	"lrm 10": 11,
	"lrm 15": 17,
	"lrm 20": 23,

	"srm 2": 3,
	"srm 4": 5,
	"srm 6": 7,

	"streak srm 2": 4,
	"streak srm 4": 7,
	"streak srm 6": 11,

	"streak lrm 5":  6,
	"streak lrm 10": 11,
	"streak lrm 15": 17,
	"streak lrm 20": 23,

	"mrm 10": 7,
	"mrm 20": 14,
	"mrm 30": 21,
	"mrm 40": 28,

	"atm 3":  14,
	"atm 6":  26,
	"atm 9":  36,
	"atm 12": 52,

	"gauss":             40,
	"gauss rifle":       40,
	"heavy gauss rifle": 43,
	"light gauss rifle": 20,
	"ap gauss rifle":    3,

	"machine gun":       1,
	"light machine gun": 1,
	"heavy machine gun": 1,

	"anti missile system": 11,

	"plasma rifle":  26,
	"plasma cannon": 21,
}

// ammoKey normalizes an ammo name to its weapon family key for table
// lookup and for capping ammo BV against weapon BV.
func ammoKey(name string) string {
	n := strings.ToLower(name)
	n = strings.TrimPrefix(n, "is ")
	n = strings.TrimPrefix(n, "clan ")
	n = strings.TrimPrefix(n, "cl ")
	n = strings.TrimPrefix(n, "ammo ")
	n = strings.TrimSuffix(n, " ammo")
	n = strings.TrimSuffix(n, " artemis-capable")
	n = strings.TrimSuffix(n, " narc-capable")
	n = strings.ReplaceAll(n, "-", " ")
	n = strings.ReplaceAll(n, "autocannon/", "ac/")
	return strings.TrimSpace(n)
}

// fallbackAmmoBV looks the normalized name up in the published table,
// first exactly, then by containment.
func fallbackAmmoBV(name string) int {
	key := ammoKey(name)
	if bv, ok := ammoBVTable[key]; ok {
		return bv
	}
	for pattern, bv := range ammoBVTable {
		if strings.Contains(key, pattern) {
			return bv
		}
	}
	return 0
}
