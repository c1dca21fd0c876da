package progression

import (
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/vmath"
)

// UpgradeKind identifies a selectable upgrade track
type UpgradeKind int

const (
	UpgradeMaxHealth UpgradeKind = iota
	UpgradeBulletDamage
	UpgradeBulletCount
	UpgradeAmmoCapacity
	UpgradeMoveSpeed
	upgradeKindCount
)

var upgradeNames = [upgradeKindCount]string{
	UpgradeMaxHealth:    "max health",
	UpgradeBulletDamage: "bullet damage",
	UpgradeBulletCount:  "bullet count",
	UpgradeAmmoCapacity: "ammo capacity",
	UpgradeMoveSpeed:    "move speed",
}

func (k UpgradeKind) String() string {
	if k < 0 || k >= upgradeKindCount {
		return "unknown"
	}
	return upgradeNames[k]
}

// Valid reports whether k names an upgrade track
func (k UpgradeKind) Valid() bool {
	return k >= 0 && k < upgradeKindCount
}

// AllUpgrades returns every upgrade kind in declaration order
func AllUpgrades() []UpgradeKind {
	kinds := make([]UpgradeKind, upgradeKindCount)
	for i := range kinds {
		kinds[i] = UpgradeKind(i)
	}
	return kinds
}

// ApplyUpgrade resolves one pending choice; no-op when nothing is pending
// A capped kind still consumes the choice without further effect
func ApplyUpgrade(s State, r Rules, kind UpgradeKind) State {
	if s.UpgradePending <= 0 || !kind.Valid() {
		return s
	}

	switch kind {
	case UpgradeMaxHealth:
		if s.Tiers.MaxHealth < parameter.UpgradeMaxTier {
			s.Tiers.MaxHealth++
			s.MaxHealth++
			if s.Tiers.MaxHealth == parameter.UpgradeMaxTier {
				s.MaxHealth *= 2
			}
			if !s.GameOver {
				s.Health = s.MaxHealth
			}
		}

	case UpgradeBulletDamage:
		s.Tiers.BulletDamage = min(parameter.UpgradeMaxTier, s.Tiers.BulletDamage+1)

	case UpgradeBulletCount:
		s.Tiers.BulletCount = min(parameter.UpgradeMaxTier, s.Tiers.BulletCount+1)

	case UpgradeAmmoCapacity:
		if s.Tiers.AmmoCapacity < parameter.UpgradeMaxTier {
			s.Tiers.AmmoCapacity++
			s.AmmoCapacity++
			s.Ammo = s.AmmoCapacity
			if s.Tiers.AmmoCapacity == parameter.UpgradeMaxTier {
				s.InfiniteAmmo = true
				s.Reloading = false
			}
		}

	case UpgradeMoveSpeed:
		s.Tiers.MoveSpeedUpgrades = min(parameter.UpgradeMoveSpeedMaxUpgrades, s.Tiers.MoveSpeedUpgrades+1)
		s.MoveSpeed = r.MoveSpeed(s.Tiers.MoveSpeedUpgrades)
	}

	s.UpgradePending--
	if s.UpgradePending == 0 && !s.GameOver {
		s.Paused = false
	}
	return s
}

// RollChoices draws up to n distinct upgrade kinds for the level-up overlay
// Capped kinds are excluded unless every kind is capped
func RollChoices(s State, rng *vmath.FastRand, n int) []UpgradeKind {
	var pool []UpgradeKind
	for _, k := range AllUpgrades() {
		if !s.Capped(k) {
			pool = append(pool, k)
		}
	}
	if len(pool) == 0 {
		pool = AllUpgrades()
	}

	n = min(n, len(pool))
	choices := make([]UpgradeKind, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		choices = append(choices, pool[idx])
	}
	return choices
}
