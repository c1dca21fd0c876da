package parameter

import "time"

// MonsterAttackCooldown is the shared minimum interval between monster attacks
const MonsterAttackCooldown = 1 * time.Second

// MonsterDropChanceFloat is the heart drop probability for ordinary kinds
const MonsterDropChanceFloat = 0.1

// Skeleton: fast fodder
const (
	SkeletonSpeedFloat  = 1.0
	SkeletonHP          = 2
	SkeletonAttack      = 1
	SkeletonRadiusFloat = 0.5
)

// Zombie: slow and tough
const (
	ZombieSpeedFloat  = 0.75
	ZombieHP          = 6
	ZombieAttack      = 2
	ZombieRadiusFloat = 0.6
)

// Ghost: ranged kiter
const (
	GhostSpeedFloat           = 1.0
	GhostHP                   = 3
	GhostAttack               = 1
	GhostAttackRangeFloat     = 5.0
	GhostRangedDamage         = 1
	GhostProjectileSpeedFloat = 10.0
	GhostRadiusFloat          = 0.5
)

// Vampire: boss, always drops a heart
const (
	VampireSpeedFloat           = 1.2
	VampireHP                   = 50
	VampireAttack               = 3
	VampireAttackRangeFloat     = 2.0
	VampireRangedDamage         = 1
	VampireProjectileSpeedFloat = 8.0
	VampireRadiusFloat          = 0.7
	VampireDropChanceFloat      = 1.0
)
