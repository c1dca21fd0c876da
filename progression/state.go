// Package progression holds the player's progression state and its transitions
// Every transition takes a State value and returns the next one; out-of-range input clamps
package progression

import (
	"time"

	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/vmath"
)

// Tiers tracks upgrade levels; baseline tier is 1, cap is parameter.UpgradeMaxTier
// Move speed counts upgrades (0..4) and displays as upgrades+1
type Tiers struct {
	MaxHealth         int
	BulletDamage      int
	BulletCount       int
	AmmoCapacity      int
	MoveSpeedUpgrades int
}

// DropKind identifies a pickup type
type DropKind int

const (
	DropHeart DropKind = iota
)

func (k DropKind) String() string {
	switch k {
	case DropHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Drop is a pickup lying in the world until collected
type Drop struct {
	ID       int
	Kind     DropKind
	Position vmath.Vec2F
}

// State is the singleton player progression record
// Invariant: Health == 0 exactly when GameOver
type State struct {
	MaxHealth int
	Health    int

	AmmoCapacity int
	Ammo         int
	Reloading    bool
	InfiniteAmmo bool

	Kills    int
	Level    int
	XP       int
	XPToNext int

	UpgradePending int
	Tiers          Tiers
	MoveSpeed      float64

	Invincible          bool
	InvincibleRemaining time.Duration
	InvincibleCooldown  time.Duration

	Paused   bool
	GameOver bool

	// Generation increments on every reset, forcing a full world rebuild
	Generation int

	Drops      []Drop
	NextDropID int
}

// New returns the initial state for a fresh run
func New(r Rules) State {
	maxHealth := max(1, r.BaseMaxHealth)
	capacity := max(1, r.BaseAmmoCapacity)
	return State{
		MaxHealth:    maxHealth,
		Health:       maxHealth,
		AmmoCapacity: capacity,
		Ammo:         capacity,
		Level:        1,
		XPToNext:     r.XPNeeded(1),
		Tiers: Tiers{
			MaxHealth:    1,
			BulletDamage: 1,
			BulletCount:  1,
			AmmoCapacity: 1,
		},
		MoveSpeed:  r.MoveSpeed(0),
		NextDropID: 1,
	}
}

// Reset restores every field to its initial value and advances the generation
func Reset(s State, r Rules) State {
	next := New(r)
	next.Generation = s.Generation + 1
	return next
}

// Tier returns the displayed tier of an upgrade kind
func (s State) Tier(kind UpgradeKind) int {
	switch kind {
	case UpgradeMaxHealth:
		return s.Tiers.MaxHealth
	case UpgradeBulletDamage:
		return s.Tiers.BulletDamage
	case UpgradeBulletCount:
		return s.Tiers.BulletCount
	case UpgradeAmmoCapacity:
		return s.Tiers.AmmoCapacity
	case UpgradeMoveSpeed:
		return s.Tiers.MoveSpeedUpgrades + 1
	default:
		return 0
	}
}

// Capped reports whether an upgrade kind has no further effect
func (s State) Capped(kind UpgradeKind) bool {
	if kind == UpgradeMoveSpeed {
		return s.Tiers.MoveSpeedUpgrades >= parameter.UpgradeMoveSpeedMaxUpgrades
	}
	return s.Tier(kind) >= parameter.UpgradeMaxTier
}

// BulletDamage is per-projectile damage before pattern scaling
func (s State) BulletDamage() int { return s.Tiers.BulletDamage }

// BulletCount is projectiles per shot below the radial tier
func (s State) BulletCount() int { return s.Tiers.BulletCount }

// Piercing reports whether projectiles survive hits
func (s State) Piercing() bool { return s.Tiers.BulletDamage >= parameter.UpgradeMaxTier }

// RadialBurst reports whether firing uses the full circle pattern
func (s State) RadialBurst() bool { return s.Tiers.BulletCount >= parameter.UpgradeMaxTier }

// InvincibleUnlocked reports whether the move speed track grants the ability
func (s State) InvincibleUnlocked() bool {
	return s.Tiers.MoveSpeedUpgrades+1 >= parameter.UpgradeMaxTier
}

// Inert reports whether the simulation must not advance
func (s State) Inert() bool { return s.Paused || s.GameOver }
