package derive

import (
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// Movement is the derived movement profile.
type Movement struct {
	WalkMP int `json:"walk_mp"`
	RunMP  int `json:"run_mp"`
	JumpMP int `json:"jump_mp"`
}

// CalculateMovement derives running speed from walking speed and counts
// mounted jump jets. Every member of the jump-jet family (standard,
// light/medium/heavy classes, improved) contributes one jump MP.
func CalculateMovement(cfg mech.Configuration, resolved []*equipment.Item) Movement {
	m := Movement{
		WalkMP: cfg.WalkMP,
		RunMP:  cfg.WalkMP * 3 / 2,
	}
	for _, item := range resolved {
		if item != nil && isJumpJet(item) {
			m.JumpMP++
		}
	}
	return m
}

func isJumpJet(item *equipment.Item) bool {
	return item.HasFlag(equipment.FlagJumpJet) ||
		strings.Contains(item.ID, "jump-jet")
}
