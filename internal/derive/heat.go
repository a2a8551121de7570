package derive

import (
	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mech"
)

// HeatProfile is the derived heat balance.
type HeatProfile struct {
	// Dissipation is heat sunk per turn: sink count times capacity.
	Dissipation int `json:"dissipation"`
	// Generation is worst-case weapon heat plus movement heat.
	Generation int `json:"generation"`
	// Net is Generation minus Dissipation.
	Net int `json:"net"`
	// AlphaStrike is weapon heat alone, without movement.
	AlphaStrike int `json:"alpha_strike"`
}

// CalculateHeatProfile derives the heat balance. Movement heat is the
// greater of 2 (running) and the jump MP.
func CalculateHeatProfile(cfg mech.Configuration, resolved []*equipment.Item) HeatProfile {
	weaponHeat := 0
	for _, item := range resolved {
		if item != nil && item.IsWeapon() {
			weaponHeat += item.Heat
		}
	}
	movement := CalculateMovement(cfg, resolved)
	moveHeat := 2
	if movement.JumpMP > moveHeat {
		moveHeat = movement.JumpMP
	}

	p := HeatProfile{
		Dissipation: cfg.HeatSinkCount * cfg.HeatSinkType.Capacity(),
		Generation:  weaponHeat + moveHeat,
		AlphaStrike: weaponHeat,
	}
	p.Net = p.Generation - p.Dissipation
	return p
}
