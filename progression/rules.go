package progression

import (
	"time"

	"github.com/lixenwraith/survivor/parameter"
)

// Rules holds the tunables progression transitions depend on
// Built from config.Tuning; DefaultRules mirrors the parameter defaults
type Rules struct {
	BaseMaxHealth    int
	BaseAmmoCapacity int

	XPPerKill int
	XPBase    int
	XPStep    int
	MaxLevel  int

	MoveSpeedBase float64
	MoveSpeedStep float64

	InvincibleDuration time.Duration
	InvincibleCooldown time.Duration
}

// DefaultRules returns rules built from package parameter
func DefaultRules() Rules {
	return Rules{
		BaseMaxHealth:      parameter.PlayerBaseMaxHealth,
		BaseAmmoCapacity:   parameter.AmmoBaseCapacity,
		XPPerKill:          parameter.XPPerKill,
		XPBase:             parameter.XPBase,
		XPStep:             parameter.XPStep,
		MaxLevel:           parameter.MaxLevel,
		MoveSpeedBase:      parameter.MoveSpeedBaseFloat,
		MoveSpeedStep:      parameter.MoveSpeedStepFloat,
		InvincibleDuration: parameter.InvincibleDuration,
		InvincibleCooldown: parameter.InvincibleCooldown,
	}
}

// XPNeeded returns experience required to leave level, never below 1
func (r Rules) XPNeeded(level int) int {
	need := r.XPBase + (level-1)*r.XPStep
	if need < 1 {
		return 1
	}
	return need
}

// MoveSpeed returns player speed after the given number of move speed upgrades
func (r Rules) MoveSpeed(upgrades int) float64 {
	return r.MoveSpeedBase * (1 + r.MoveSpeedStep*float64(upgrades))
}
