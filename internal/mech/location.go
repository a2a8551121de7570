package mech

// Location is a standard biped mech section.
type Location string

const (
	Head        Location = "HD"
	CenterTorso Location = "CT"
	LeftTorso   Location = "LT"
	RightTorso  Location = "RT"
	LeftArm     Location = "LA"
	RightArm    Location = "RA"
	LeftLeg     Location = "LL"
	RightLeg    Location = "RL"
)

// Locations lists every location in canonical order.
var Locations = []Location{Head, CenterTorso, LeftTorso, RightTorso, LeftArm, RightArm, LeftLeg, RightLeg}

var locationNames = map[string]Location{
	"hd": Head, "head": Head,
	"ct": CenterTorso, "center torso": CenterTorso, "centertorso": CenterTorso,
	"lt": LeftTorso, "left torso": LeftTorso, "lefttorso": LeftTorso,
	"rt": RightTorso, "right torso": RightTorso, "righttorso": RightTorso,
	"la": LeftArm, "left arm": LeftArm, "leftarm": LeftArm,
	"ra": RightArm, "right arm": RightArm, "rightarm": RightArm,
	"ll": LeftLeg, "left leg": LeftLeg, "leftleg": LeftLeg,
	"rl": RightLeg, "right leg": RightLeg, "rightleg": RightLeg,
}

// ParseLocation maps abbreviations and long names ("LA", "Left Arm") to a
// Location. The second return is false for unknown strings.
func ParseLocation(s string) (Location, bool) {
	loc, ok := locationNames[lower(s)]
	return loc, ok
}

func (l Location) String() string {
	switch l {
	case Head:
		return "Head"
	case CenterTorso:
		return "Center Torso"
	case LeftTorso:
		return "Left Torso"
	case RightTorso:
		return "Right Torso"
	case LeftArm:
		return "Left Arm"
	case RightArm:
		return "Right Arm"
	case LeftLeg:
		return "Left Leg"
	case RightLeg:
		return "Right Leg"
	}
	return string(l)
}

// IsTorso reports whether the location has a rear armor facing.
func (l Location) IsTorso() bool {
	return l == CenterTorso || l == LeftTorso || l == RightTorso
}

// SlotCapacity returns the critical slot capacity for a standard biped.
func (l Location) SlotCapacity() int {
	switch l {
	case Head, LeftLeg, RightLeg:
		return 6
	default:
		return 12
	}
}

// structurePoints holds internal structure per location for a standard
// biped, indexed by tonnage. Columns: CT, side torso, arm, leg. Head is
// always 3.
var structurePoints = map[int][4]int{
	10:  {4, 3, 1, 2},
	15:  {5, 4, 2, 3},
	20:  {6, 5, 3, 4},
	25:  {8, 6, 4, 6},
	30:  {10, 7, 5, 7},
	35:  {11, 8, 6, 8},
	40:  {12, 10, 6, 10},
	45:  {14, 11, 7, 11},
	50:  {16, 12, 8, 12},
	55:  {18, 13, 9, 13},
	60:  {20, 14, 10, 14},
	65:  {21, 15, 10, 15},
	70:  {22, 15, 11, 15},
	75:  {23, 16, 12, 16},
	80:  {25, 17, 13, 17},
	85:  {27, 18, 14, 18},
	90:  {29, 19, 15, 19},
	95:  {30, 20, 16, 20},
	100: {31, 21, 17, 21},
}

// StructurePoints returns the internal structure for one location at the
// given tonnage, or 0 for tonnages off the table.
func StructurePoints(tonnage int, loc Location) int {
	row, ok := structurePoints[tonnage]
	if !ok {
		return 0
	}
	switch loc {
	case Head:
		return 3
	case CenterTorso:
		return row[0]
	case LeftTorso, RightTorso:
		return row[1]
	case LeftArm, RightArm:
		return row[2]
	case LeftLeg, RightLeg:
		return row[3]
	}
	return 0
}

// TotalStructurePoints returns the summed internal structure for the
// given tonnage.
func TotalStructurePoints(tonnage int) int {
	total := 0
	for _, loc := range Locations {
		total += StructurePoints(tonnage, loc)
	}
	return total
}

// MaxArmorPoints returns the armor cap for a location: twice its structure,
// except the head which is fixed at 9. Torso caps cover front plus rear.
func MaxArmorPoints(tonnage int, loc Location) int {
	if loc == Head {
		return 9
	}
	return 2 * StructurePoints(tonnage, loc)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
