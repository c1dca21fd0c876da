package parameter

import "time"

// Player Vitals
const (
	// PlayerBaseMaxHealth is starting and post-reset maximum health
	PlayerBaseMaxHealth = 4

	// PlayerHitRadiusFloat is the player's collision circle shared by monster AI and projectiles
	PlayerHitRadiusFloat = 1.0

	// HeartHealAmount is health restored per heart pickup
	HeartHealAmount = 1

	// HeartPickupRadiusFloat is the distance at which a heart drop is collected
	HeartPickupRadiusFloat = 0.8
)

// Experience
const (
	// XPPerKill is experience granted per monster kill
	XPPerKill = 1

	// XPBase is experience required to leave level 1
	XPBase = 3

	// XPStep is the per-level increase in required experience
	XPStep = 2

	// MaxLevel is the level cap; experience is discarded at the cap
	MaxLevel = 15
)

// Upgrades
const (
	// UpgradeMaxTier is the cap for every upgrade tier (baseline 1)
	UpgradeMaxTier = 5

	// UpgradeMoveSpeedMaxUpgrades caps move speed upgrades; upgrades+1 is the displayed tier
	UpgradeMoveSpeedMaxUpgrades = 4

	// UpgradeChoiceCount is the number of choices offered per pending upgrade
	UpgradeChoiceCount = 3

	// MoveSpeedBaseFloat is player speed in units per second before upgrades
	MoveSpeedBaseFloat = 4.5

	// MoveSpeedStepFloat is the fractional speed bonus per move speed upgrade
	MoveSpeedStepFloat = 0.1
)

// Ammo
const (
	// AmmoBaseCapacity is the starting magazine size
	AmmoBaseCapacity = 5

	// AmmoReloadTime is the duration of an empty-magazine reload
	AmmoReloadTime = 3 * time.Second
)

// Invincibility ability
const (
	// InvincibleDuration is how long the ability protects the player
	InvincibleDuration = 2 * time.Second

	// InvincibleCooldown is the delay before the ability can be triggered again
	InvincibleCooldown = 30 * time.Second
)
